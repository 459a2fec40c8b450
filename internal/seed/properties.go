package seed

import (
	"context"
	"database/sql"
	"fmt"
)

type propertyDef struct {
	name         string
	street       string
	city         string
	state        string
	zip          string
	propertyType string
	yearBuilt    int
	units        []unitDef
}

type unitDef struct {
	number     string
	bedrooms   int
	bathrooms  float64
	squareFeet int
	marketRent float64
	status     string
}

var defaultProperties = []propertyDef{
	{
		name: "Maple Court Apartments", street: "410 Maple Ct", city: "Springfield",
		state: "IL", zip: "62704", propertyType: "residential", yearBuilt: 1998,
		units: []unitDef{
			{number: "101", bedrooms: 2, bathrooms: 1, squareFeet: 850, marketRent: 1250, status: "occupied"},
			{number: "102", bedrooms: 2, bathrooms: 1.5, squareFeet: 900, marketRent: 1300, status: "occupied"},
			{number: "201", bedrooms: 1, bathrooms: 1, squareFeet: 650, marketRent: 1050, status: "vacant"},
		},
	},
	{
		name: "Birchwood Duplex", street: "78 Birchwood Ln", city: "Springfield",
		state: "IL", zip: "62702", propertyType: "residential", yearBuilt: 2011,
		units: []unitDef{
			{number: "A", bedrooms: 3, bathrooms: 2, squareFeet: 1400, marketRent: 1850, status: "vacant"},
			{number: "B", bedrooms: 3, bathrooms: 2, squareFeet: 1400, marketRent: 1850, status: "maintenance"},
		},
	},
}

// Properties inserts the demo properties and their units if none exist yet.
func Properties(ctx context.Context, db *sql.DB) error {
	empty, err := tableEmpty(ctx, db, "properties")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	for _, pd := range defaultProperties {
		res, err := db.ExecContext(ctx,
			`INSERT INTO properties (name, street, city, state, zip, property_type, year_built, total_units, status, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 'active', ?, ?)`,
			pd.name, pd.street, pd.city, pd.state, pd.zip, pd.propertyType, pd.yearBuilt, len(pd.units), seedTS, seedTS,
		)
		if err != nil {
			return fmt.Errorf("insert property %s: %w", pd.name, err)
		}
		propertyID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("property id: %w", err)
		}

		for _, ud := range pd.units {
			if _, err := db.ExecContext(ctx,
				`INSERT INTO units (property_id, unit_number, bedrooms, bathrooms, square_feet, market_rent, status, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				propertyID, ud.number, ud.bedrooms, ud.bathrooms, ud.squareFeet, ud.marketRent, ud.status, seedTS, seedTS,
			); err != nil {
				return fmt.Errorf("insert unit %s/%s: %w", pd.name, ud.number, err)
			}
		}
	}

	return nil
}

// unitID resolves a seeded unit by property name and unit number.
func unitID(ctx context.Context, db *sql.DB, propertyName, unitNumber string) (int64, error) {
	return lookupID(ctx, db,
		`SELECT u.id FROM units u JOIN properties p ON p.id = u.property_id
		 WHERE p.name = ? AND u.unit_number = ?`,
		propertyName, unitNumber)
}

// propertyID resolves a seeded property by name.
func propertyID(ctx context.Context, db *sql.DB, name string) (int64, error) {
	return lookupID(ctx, db, `SELECT id FROM properties WHERE name = ?`, name)
}
