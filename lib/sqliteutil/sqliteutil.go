package sqliteutil

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// OpenDB opens the database at location and applies schema, which is
// expected to be idempotent (CREATE TABLE IF NOT EXISTS ...).
// Locations starting with libsql:// or https:// dial a remote libsql
// database; anything else is treated as a local sqlite file, created
// on first use.
func OpenDB(schema, location string) (*sql.DB, error) {
	if location == "" {
		return nil, fmt.Errorf("a database location was not specified")
	}

	var db *sql.DB
	var err error
	if strings.HasPrefix(location, "libsql://") || strings.HasPrefix(location, "https://") {
		db, err = sql.Open("libsql", location)
	} else {
		db, err = openFile(location)
	}
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(schema)
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		db.Close()
		return nil, err
	}
	return db, nil
}

func openFile(path string) (*sql.DB, error) {
	_, statErr := os.Stat(path)
	if os.IsNotExist(statErr) && path != ":memory:" {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		f.Close()
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// see this stackoverflow post for information on why the following
	// lines exist: https://stackoverflow.com/questions/35804884/sqlite-concurrent-writing-performance
	db.SetMaxOpenConns(1)
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
