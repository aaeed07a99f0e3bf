package converters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/darianmavgo/jobrolesql/converters/common"
	"github.com/darianmavgo/jobrolesql/jobrole"

	_ "modernc.org/sqlite"
)

// ErrVerifyMismatch is returned when the script inserts a different number of rows than were read.
var ErrVerifyMismatch = errors.New("converters: verification row count mismatch")

// OpenScratchDB opens an empty in-memory SQLite database holding the target table.
func OpenScratchDB(ctx context.Context, table string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if table == "" {
		table = jobrole.DefaultTable
	}
	if _, err := db.ExecContext(ctx, common.GenCreateTableSQL(table, jobrole.Fields)); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return db, nil
}

// ExecScript runs the full script text against db.
func ExecScript(ctx context.Context, db *sql.DB, script *jobrole.Script) error {
	if _, err := db.ExecContext(ctx, script.String()); err != nil {
		return fmt.Errorf("failed to execute script: %w", err)
	}
	return nil
}

// VerifyScript executes script in a scratch database and checks that it inserts
// exactly one row per tuple. It returns the number of rows inserted.
func VerifyScript(ctx context.Context, script *jobrole.Script) (int, error) {
	db, err := OpenScratchDB(ctx, script.Table)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := ExecScript(ctx, db, script); err != nil {
		return 0, fmt.Errorf("verification failed: %w", err)
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", common.QuoteIdent(script.Table))
	if err := db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count imported rows: %w", err)
	}
	if count != script.Len() {
		return count, fmt.Errorf("%w: script inserted %d rows, read %d", ErrVerifyMismatch, count, script.Len())
	}
	return count, nil
}
