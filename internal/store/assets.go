package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rentline/rentline/internal/domain"
)

// InsuranceStore defines the interface for insurance policy persistence.
type InsuranceStore interface {
	Get(ctx context.Context, id int64) (*domain.InsurancePolicy, error)
	List(ctx context.Context) ([]*domain.InsurancePolicy, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.InsurancePolicy, error)
	Create(ctx context.Context, in *domain.InsurancePolicyInput) (*domain.InsurancePolicy, error)
	Update(ctx context.Context, id int64, patch *domain.InsurancePolicyUpdate) (*domain.InsurancePolicy, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteInsuranceStore implements InsuranceStore backed by SQLite.
type SQLiteInsuranceStore struct {
	db *sql.DB
}

// NewSQLiteInsuranceStore creates a new SQLiteInsuranceStore.
func NewSQLiteInsuranceStore(db *sql.DB) *SQLiteInsuranceStore {
	return &SQLiteInsuranceStore{db: db}
}

const insuranceColumns = `id, property_id, provider, policy_number, coverage_amount, premium, start_date, end_date, created_at, updated_at`

func scanInsurance(row interface{ Scan(...any) error }) (*domain.InsurancePolicy, error) {
	var p domain.InsurancePolicy
	err := row.Scan(&p.ID, &p.PropertyID, &p.Provider, &p.PolicyNumber, &p.CoverageAmount,
		&p.Premium, &p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Get retrieves a single policy by ID.
func (s *SQLiteInsuranceStore) Get(ctx context.Context, id int64) (*domain.InsurancePolicy, error) {
	p, err := scanInsurance(s.db.QueryRowContext(ctx,
		`SELECT `+insuranceColumns+` FROM insurance_policies WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get insurance policy: %w", err)
	}
	return p, nil
}

func (s *SQLiteInsuranceStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.InsurancePolicy, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+insuranceColumns+` FROM insurance_policies `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list insurance policies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	policies := []*domain.InsurancePolicy{}
	for rows.Next() {
		p, err := scanInsurance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insurance policy: %w", err)
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return policies, nil
}

// List returns all policies.
func (s *SQLiteInsuranceStore) List(ctx context.Context) ([]*domain.InsurancePolicy, error) {
	return s.listWhere(ctx, ``)
}

// ListByProperty returns the policies covering one property.
func (s *SQLiteInsuranceStore) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.InsurancePolicy, error) {
	return s.listWhere(ctx, `WHERE property_id = ?`, propertyID)
}

// Create inserts a new policy.
func (s *SQLiteInsuranceStore) Create(ctx context.Context, in *domain.InsurancePolicyInput) (*domain.InsurancePolicy, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO insurance_policies (property_id, provider, policy_number, coverage_amount, premium, start_date, end_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PropertyID, in.Provider, in.PolicyNumber, in.CoverageAmount, in.Premium, in.StartDate, in.EndDate, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert insurance policy: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.InsurancePolicy{
		ID:             id,
		PropertyID:     in.PropertyID,
		Provider:       in.Provider,
		PolicyNumber:   in.PolicyNumber,
		CoverageAmount: in.CoverageAmount,
		Premium:        in.Premium,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}, nil
}

// Update shallow-merges the patch onto the existing policy.
func (s *SQLiteInsuranceStore) Update(ctx context.Context, id int64, patch *domain.InsurancePolicyUpdate) (*domain.InsurancePolicy, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Provider != nil {
		p.Provider = *patch.Provider
	}
	if patch.PolicyNumber != nil {
		p.PolicyNumber = *patch.PolicyNumber
	}
	if patch.CoverageAmount != nil {
		p.CoverageAmount = *patch.CoverageAmount
	}
	if patch.Premium != nil {
		p.Premium = *patch.Premium
	}
	if patch.StartDate != nil {
		p.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	p.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE insurance_policies SET provider = ?, policy_number = ?, coverage_amount = ?,
		 premium = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`,
		p.Provider, p.PolicyNumber, p.CoverageAmount, p.Premium, p.StartDate, p.EndDate, p.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update insurance policy: %w", err)
	}
	return p, nil
}

// Delete removes a policy.
func (s *SQLiteInsuranceStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM insurance_policies WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete insurance policy: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// MortgageStore defines the interface for mortgage persistence.
type MortgageStore interface {
	Get(ctx context.Context, id int64) (*domain.Mortgage, error)
	List(ctx context.Context) ([]*domain.Mortgage, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Mortgage, error)
	Create(ctx context.Context, in *domain.MortgageInput) (*domain.Mortgage, error)
	Update(ctx context.Context, id int64, patch *domain.MortgageUpdate) (*domain.Mortgage, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteMortgageStore implements MortgageStore backed by SQLite.
type SQLiteMortgageStore struct {
	db *sql.DB
}

// NewSQLiteMortgageStore creates a new SQLiteMortgageStore.
func NewSQLiteMortgageStore(db *sql.DB) *SQLiteMortgageStore {
	return &SQLiteMortgageStore{db: db}
}

const mortgageColumns = `id, property_id, lender, principal, interest_rate, monthly_payment, start_date, term_years, created_at, updated_at`

func scanMortgage(row interface{ Scan(...any) error }) (*domain.Mortgage, error) {
	var m domain.Mortgage
	err := row.Scan(&m.ID, &m.PropertyID, &m.Lender, &m.Principal, &m.InterestRate,
		&m.MonthlyPayment, &m.StartDate, &m.TermYears, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Get retrieves a single mortgage by ID.
func (s *SQLiteMortgageStore) Get(ctx context.Context, id int64) (*domain.Mortgage, error) {
	m, err := scanMortgage(s.db.QueryRowContext(ctx,
		`SELECT `+mortgageColumns+` FROM mortgages WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get mortgage: %w", err)
	}
	return m, nil
}

func (s *SQLiteMortgageStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Mortgage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mortgageColumns+` FROM mortgages `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list mortgages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	mortgages := []*domain.Mortgage{}
	for rows.Next() {
		m, err := scanMortgage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan mortgage: %w", err)
		}
		mortgages = append(mortgages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return mortgages, nil
}

// List returns all mortgages.
func (s *SQLiteMortgageStore) List(ctx context.Context) ([]*domain.Mortgage, error) {
	return s.listWhere(ctx, ``)
}

// ListByProperty returns the mortgages against one property.
func (s *SQLiteMortgageStore) ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Mortgage, error) {
	return s.listWhere(ctx, `WHERE property_id = ?`, propertyID)
}

// Create inserts a new mortgage.
func (s *SQLiteMortgageStore) Create(ctx context.Context, in *domain.MortgageInput) (*domain.Mortgage, error) {
	ts := now()
	termYears := in.TermYears
	if termYears == 0 {
		termYears = 30
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO mortgages (property_id, lender, principal, interest_rate, monthly_payment, start_date, term_years, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.PropertyID, in.Lender, in.Principal, in.InterestRate, in.MonthlyPayment, in.StartDate, termYears, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert mortgage: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Mortgage{
		ID:             id,
		PropertyID:     in.PropertyID,
		Lender:         in.Lender,
		Principal:      in.Principal,
		InterestRate:   in.InterestRate,
		MonthlyPayment: in.MonthlyPayment,
		StartDate:      in.StartDate,
		TermYears:      termYears,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}, nil
}

// Update shallow-merges the patch onto the existing mortgage.
func (s *SQLiteMortgageStore) Update(ctx context.Context, id int64, patch *domain.MortgageUpdate) (*domain.Mortgage, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Lender != nil {
		m.Lender = *patch.Lender
	}
	if patch.Principal != nil {
		m.Principal = *patch.Principal
	}
	if patch.InterestRate != nil {
		m.InterestRate = *patch.InterestRate
	}
	if patch.MonthlyPayment != nil {
		m.MonthlyPayment = *patch.MonthlyPayment
	}
	if patch.StartDate != nil {
		m.StartDate = patch.StartDate
	}
	if patch.TermYears != nil {
		m.TermYears = *patch.TermYears
	}
	m.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE mortgages SET lender = ?, principal = ?, interest_rate = ?, monthly_payment = ?,
		 start_date = ?, term_years = ?, updated_at = ? WHERE id = ?`,
		m.Lender, m.Principal, m.InterestRate, m.MonthlyPayment, m.StartDate, m.TermYears, m.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update mortgage: %w", err)
	}
	return m, nil
}

// Delete removes a mortgage.
func (s *SQLiteMortgageStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM mortgages WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete mortgage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// ApplianceStore defines the interface for appliance persistence.
type ApplianceStore interface {
	Get(ctx context.Context, id int64) (*domain.Appliance, error)
	List(ctx context.Context) ([]*domain.Appliance, error)
	ListByUnit(ctx context.Context, unitID int64) ([]*domain.Appliance, error)
	Create(ctx context.Context, in *domain.ApplianceInput) (*domain.Appliance, error)
	Update(ctx context.Context, id int64, patch *domain.ApplianceUpdate) (*domain.Appliance, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// SQLiteApplianceStore implements ApplianceStore backed by SQLite.
type SQLiteApplianceStore struct {
	db *sql.DB
}

// NewSQLiteApplianceStore creates a new SQLiteApplianceStore.
func NewSQLiteApplianceStore(db *sql.DB) *SQLiteApplianceStore {
	return &SQLiteApplianceStore{db: db}
}

const applianceColumns = `id, unit_id, name, make, model, serial_number, purchase_date, warranty_expiry, created_at, updated_at`

func scanAppliance(row interface{ Scan(...any) error }) (*domain.Appliance, error) {
	var a domain.Appliance
	err := row.Scan(&a.ID, &a.UnitID, &a.Name, &a.Make, &a.Model, &a.SerialNumber,
		&a.PurchaseDate, &a.WarrantyExpiry, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves a single appliance by ID.
func (s *SQLiteApplianceStore) Get(ctx context.Context, id int64) (*domain.Appliance, error) {
	a, err := scanAppliance(s.db.QueryRowContext(ctx,
		`SELECT `+applianceColumns+` FROM appliances WHERE id = ?`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appliance: %w", err)
	}
	return a, nil
}

func (s *SQLiteApplianceStore) listWhere(ctx context.Context, where string, args ...any) ([]*domain.Appliance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+applianceColumns+` FROM appliances `+where+` ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list appliances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	appliances := []*domain.Appliance{}
	for rows.Next() {
		a, err := scanAppliance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appliance: %w", err)
		}
		appliances = append(appliances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return appliances, nil
}

// List returns all appliances.
func (s *SQLiteApplianceStore) List(ctx context.Context) ([]*domain.Appliance, error) {
	return s.listWhere(ctx, ``)
}

// ListByUnit returns the appliances installed in one unit.
func (s *SQLiteApplianceStore) ListByUnit(ctx context.Context, unitID int64) ([]*domain.Appliance, error) {
	return s.listWhere(ctx, `WHERE unit_id = ?`, unitID)
}

// Create inserts a new appliance.
func (s *SQLiteApplianceStore) Create(ctx context.Context, in *domain.ApplianceInput) (*domain.Appliance, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO appliances (unit_id, name, make, model, serial_number, purchase_date, warranty_expiry, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		in.UnitID, in.Name, in.Make, in.Model, in.SerialNumber, in.PurchaseDate, in.WarrantyExpiry, ts, ts,
	)
	if err != nil {
		return nil, fmt.Errorf("insert appliance: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &domain.Appliance{
		ID:             id,
		UnitID:         in.UnitID,
		Name:           in.Name,
		Make:           in.Make,
		Model:          in.Model,
		SerialNumber:   in.SerialNumber,
		PurchaseDate:   in.PurchaseDate,
		WarrantyExpiry: in.WarrantyExpiry,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}, nil
}

// Update shallow-merges the patch onto the existing appliance.
func (s *SQLiteApplianceStore) Update(ctx context.Context, id int64, patch *domain.ApplianceUpdate) (*domain.Appliance, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Make != nil {
		a.Make = patch.Make
	}
	if patch.Model != nil {
		a.Model = patch.Model
	}
	if patch.SerialNumber != nil {
		a.SerialNumber = patch.SerialNumber
	}
	if patch.PurchaseDate != nil {
		a.PurchaseDate = patch.PurchaseDate
	}
	if patch.WarrantyExpiry != nil {
		a.WarrantyExpiry = patch.WarrantyExpiry
	}
	a.UpdatedAt = now()

	_, err = s.db.ExecContext(ctx,
		`UPDATE appliances SET name = ?, make = ?, model = ?, serial_number = ?,
		 purchase_date = ?, warranty_expiry = ?, updated_at = ? WHERE id = ?`,
		a.Name, a.Make, a.Model, a.SerialNumber, a.PurchaseDate, a.WarrantyExpiry, a.UpdatedAt, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update appliance: %w", err)
	}
	return a, nil
}

// Delete removes an appliance.
func (s *SQLiteApplianceStore) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM appliances WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete appliance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}
