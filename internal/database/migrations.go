package database

// migrations is an ordered list of SQL migration groups. Each entry is a slice
// of SQL statements that are executed together in a single transaction. The
// version number is the 1-based index into this slice.
//
// Foreign keys are declared for documentation but not enforced (see Open).
var migrations = [][]string{
	// Migration 1: contacts, addresses, and the join table.
	{
		`CREATE TABLE contacts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT,
			phone TEXT,
			contact_type TEXT NOT NULL DEFAULT 'other',
			status TEXT NOT NULL DEFAULT 'active',
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_contacts_type ON contacts(contact_type, status)`,

		`CREATE TABLE addresses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			street TEXT NOT NULL,
			street2 TEXT,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			zip TEXT NOT NULL,
			country TEXT NOT NULL DEFAULT 'US',
			latitude REAL,
			longitude REAL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE contact_addresses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			address_id INTEGER NOT NULL REFERENCES addresses(id),
			address_type TEXT NOT NULL DEFAULT 'home',
			is_primary BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_contact_addresses_contact ON contact_addresses(contact_id)`,
		`CREATE INDEX idx_contact_addresses_address ON contact_addresses(address_id)`,
	},

	// Migration 2: properties, units, tenants.
	{
		`CREATE TABLE properties (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			street TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			zip TEXT NOT NULL,
			property_type TEXT NOT NULL DEFAULT 'residential',
			year_built INTEGER,
			total_units INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE units (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			property_id INTEGER NOT NULL REFERENCES properties(id),
			unit_number TEXT NOT NULL,
			bedrooms INTEGER NOT NULL DEFAULT 0,
			bathrooms REAL NOT NULL DEFAULT 0,
			square_feet INTEGER,
			market_rent REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'vacant',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_units_property ON units(property_id)`,

		`CREATE TABLE tenants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			ssn TEXT,
			employer TEXT,
			employer_phone TEXT,
			monthly_income REAL,
			emergency_contact_name TEXT,
			emergency_contact_phone TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_tenants_contact ON tenants(contact_id)`,
	},

	// Migration 3: leases, payments, maintenance requests.
	{
		`CREATE TABLE leases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL REFERENCES units(id),
			tenant_id INTEGER NOT NULL REFERENCES tenants(id),
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			rent_amount REAL NOT NULL,
			security_deposit REAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_leases_unit ON leases(unit_id)`,
		`CREATE INDEX idx_leases_tenant ON leases(tenant_id)`,

		`CREATE TABLE payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			lease_id INTEGER NOT NULL REFERENCES leases(id),
			amount REAL NOT NULL,
			payment_date TEXT NOT NULL,
			payment_type TEXT NOT NULL DEFAULT 'rent',
			status TEXT NOT NULL DEFAULT 'pending',
			notes TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_payments_lease ON payments(lease_id)`,

		`CREATE TABLE maintenance_requests (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL REFERENCES units(id),
			tenant_id INTEGER REFERENCES tenants(id),
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT NOT NULL DEFAULT 'normal',
			status TEXT NOT NULL DEFAULT 'open',
			assigned_vendor_id INTEGER REFERENCES contacts(id),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_maintenance_unit ON maintenance_requests(unit_id, status)`,
	},

	// Migration 4: vacancies, leads, applications, templates.
	{
		`CREATE TABLE vacancies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL REFERENCES units(id),
			rent_amount REAL NOT NULL,
			deposit_amount REAL NOT NULL DEFAULT 0,
			available_date TEXT,
			amenities TEXT NOT NULL DEFAULT '[]',
			included_utilities TEXT NOT NULL DEFAULT '[]',
			description TEXT,
			status TEXT NOT NULL DEFAULT 'active',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_vacancies_unit ON vacancies(unit_id)`,

		`CREATE TABLE leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			vacancy_id INTEGER REFERENCES vacancies(id),
			source TEXT,
			notes TEXT,
			status TEXT NOT NULL DEFAULT 'new',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_leads_status ON leads(status)`,

		`CREATE TABLE application_templates (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			fields TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE rental_applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			vacancy_id INTEGER REFERENCES vacancies(id),
			lead_id INTEGER REFERENCES leads(id),
			template_id INTEGER REFERENCES application_templates(id),
			application_data TEXT NOT NULL DEFAULT '{}',
			credit_check_passed BOOLEAN,
			background_check_passed BOOLEAN,
			income_verified BOOLEAN,
			status TEXT NOT NULL DEFAULT 'submitted',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_applications_status ON rental_applications(status)`,
	},

	// Migration 5: communications, notifications, property assets.
	{
		`CREATE TABLE communication_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			lead_id INTEGER REFERENCES leads(id),
			application_id INTEGER REFERENCES rental_applications(id),
			channel TEXT NOT NULL DEFAULT 'email',
			direction TEXT NOT NULL DEFAULT 'outbound',
			subject TEXT,
			body TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_communications_contact ON communication_logs(contact_id)`,

		`CREATE TABLE notifications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			contact_id INTEGER NOT NULL REFERENCES contacts(id),
			message TEXT NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE insurance_policies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			property_id INTEGER NOT NULL REFERENCES properties(id),
			provider TEXT NOT NULL,
			policy_number TEXT NOT NULL,
			coverage_amount REAL NOT NULL DEFAULT 0,
			premium REAL NOT NULL DEFAULT 0,
			start_date TEXT,
			end_date TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE mortgages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			property_id INTEGER NOT NULL REFERENCES properties(id),
			lender TEXT NOT NULL,
			principal REAL NOT NULL DEFAULT 0,
			interest_rate REAL NOT NULL DEFAULT 0,
			monthly_payment REAL NOT NULL DEFAULT 0,
			start_date TEXT,
			term_years INTEGER NOT NULL DEFAULT 30,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE appliances (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit_id INTEGER NOT NULL REFERENCES units(id),
			name TEXT NOT NULL,
			make TEXT,
			model TEXT,
			serial_number TEXT,
			purchase_date TEXT,
			warranty_expiry TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX idx_appliances_unit ON appliances(unit_id)`,
	},
}
