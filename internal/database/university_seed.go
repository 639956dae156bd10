package database

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// universitySeed mirrors the structure of the bundled university dataset
type universitySeed struct {
	Name              string   `json:"name"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	Control           string   `json:"control"`
	AcceptanceRate    *float64 `json:"acceptance_rate"`
	AvgGPA            *float64 `json:"avg_gpa"`
	SAT25             *float64 `json:"sat_25"`
	SAT75             *float64 `json:"sat_75"`
	ACT25             *float64 `json:"act_25"`
	ACT75             *float64 `json:"act_75"`
	TuitionInState    *float64 `json:"tuition_in_state"`
	TuitionOutOfState *float64 `json:"tuition_out_of_state"`
	Enrollment        *int64   `json:"enrollment"`
	Website           string   `json:"website"`
}

// SeedUniversities loads the bundled university dataset into the
// universities table. It is a no-op when the table is already populated.
func (db *DB) SeedUniversities(dataPath string) error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM universities").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check universities count: %w", err)
	}

	if count > 0 {
		log.Printf("University catalog already populated with %d entries", count)
		return nil
	}

	seeds, err := loadUniversitySeeds(dataPath)
	if err != nil {
		return err
	}

	// Start transaction for bulk insert
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `INSERT INTO universities
		(name, city, state, control, acceptance_rate, avg_gpa,
		 sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	rewrittenQuery := db.Dialect.RewriteQuery(insertQuery)

	stmt, err := tx.Prepare(rewrittenQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	added := 0
	for _, seed := range seeds {
		if seed.Name == "" {
			continue
		}
		_, err := stmt.Exec(seed.Name, seed.City, seed.State, seed.Control,
			seed.AcceptanceRate, seed.AvgGPA, seed.SAT25, seed.SAT75, seed.ACT25, seed.ACT75,
			seed.TuitionInState, seed.TuitionOutOfState, seed.Enrollment, seed.Website)
		if err != nil {
			return fmt.Errorf("failed to insert university %s: %w", seed.Name, err)
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit university seed: %w", err)
	}

	log.Printf("Seeded %d universities", added)
	return nil
}

// ReseedUniversities inserts dataset entries that are not yet present,
// matched by name. Existing rows keep any admin edits. Returns the
// number of universities added.
func (db *DB) ReseedUniversities(dataPath string) (int, error) {
	seeds, err := loadUniversitySeeds(dataPath)
	if err != nil {
		return 0, err
	}

	insertQuery := `INSERT INTO universities
		(name, city, state, control, acceptance_rate, avg_gpa,
		 sat_25, sat_75, act_25, act_75, tuition_in_state, tuition_out_of_state, enrollment, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	added := 0
	for _, seed := range seeds {
		if seed.Name == "" {
			continue
		}

		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM universities WHERE name = ?", seed.Name).Scan(&count)
		if err != nil {
			return added, fmt.Errorf("failed to check university %s: %w", seed.Name, err)
		}
		if count > 0 {
			continue
		}

		_, err = db.Exec(insertQuery, seed.Name, seed.City, seed.State, seed.Control,
			seed.AcceptanceRate, seed.AvgGPA, seed.SAT25, seed.SAT75, seed.ACT25, seed.ACT75,
			seed.TuitionInState, seed.TuitionOutOfState, seed.Enrollment, seed.Website)
		if err != nil {
			return added, fmt.Errorf("failed to insert university %s: %w", seed.Name, err)
		}
		added++
	}

	log.Printf("Reseeded university catalog, %d added", added)
	return added, nil
}

func loadUniversitySeeds(dataPath string) ([]universitySeed, error) {
	content, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read university data file: %w", err)
	}

	var seeds []universitySeed
	if err := json.Unmarshal(content, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse university data file: %w", err)
	}
	return seeds, nil
}
