// pkg/packages/sqlite.go
package packages

import (
	"errors"
	"fmt"
	"os"

	"zombiezen.com/go/sqlite"
)

// countSQLite opens a package manager's local database read-only and runs a
// single aggregate count query against it. A missing database file means
// the manager is not installed; a failure after the file was confirmed to
// exist makes the manager uncountable.
//
// Querying the database directly is much cheaper than spawning the manager
// itself: counting rpm packages through sqlite takes about a millisecond,
// while `rpm -qa` takes hundreds.
func countSQLite(dbPath, query string) (int, error) {
	if _, err := os.Stat(dbPath); err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotDetected
		}
		return 0, fmt.Errorf("stat %s: %w", dbPath, err)
	}

	conn, err := sqlite.OpenConn(dbPath, sqlite.OpenReadOnly)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer conn.Close()

	stmt, _, err := conn.PrepareTransient(query)
	if err != nil {
		return 0, fmt.Errorf("preparing count query: %w", err)
	}
	defer stmt.Finalize()

	hasRow, err := stmt.Step()
	if err != nil {
		return 0, fmt.Errorf("executing count query: %w", err)
	}
	if !hasRow {
		return 0, errors.New("count query returned no rows")
	}

	return stmt.ColumnInt(0), nil
}
