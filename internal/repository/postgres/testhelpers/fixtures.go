package testhelpers

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Identifiers seeded by testdata/fixtures/reference.sql
const (
	DeptSantander     = "10000000-0000-0000-0000-000000000001"
	DeptAntioquia     = "10000000-0000-0000-0000-000000000002"
	CityBucaramanga   = "20000000-0000-0000-0000-000000000001"
	CityGiron         = "20000000-0000-0000-0000-000000000002"
	CityFloridablanca = "20000000-0000-0000-0000-000000000003"
	CityMedellin      = "20000000-0000-0000-0000-000000000004"
	// CitySantander shares its name with a department
	CitySantander     = "20000000-0000-0000-0000-000000000005"
	ContactAna        = "30000000-0000-0000-0000-000000000001"
	AmbienteCampestre = "40000000-0000-0000-0000-000000000001"
	AmbienteUrbano    = "40000000-0000-0000-0000-000000000002"
	AmbientePlaya     = "40000000-0000-0000-0000-000000000003"
	TipoBoda          = "50000000-0000-0000-0000-000000000001"
	TipoCorporativo   = "50000000-0000-0000-0000-000000000002"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}
