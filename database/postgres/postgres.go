package postgres

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Configured reports whether a connection string is present. The service
// degrades to seed-only operation without one.
func Configured() bool {
	return os.Getenv("DATABASE_URL") != ""
}

func New() (*sqlx.DB, error) {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	// Some hosting dashboards hand out the URL wrapped in a psql command.
	if strings.HasPrefix(connString, "psql ") {
		if start := strings.Index(connString, "'"); start != -1 {
			if end := strings.LastIndex(connString, "'"); end > start {
				connString = connString[start+1 : end]
			}
		}
	}

	db, err := sqlx.Connect("postgres", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
