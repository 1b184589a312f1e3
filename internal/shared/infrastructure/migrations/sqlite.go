// Package migrations applies embedded schema migrations for local SQLite mode.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/tasklens/tasklens/internal/shared/infrastructure/database"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

// RunSQLite applies all embedded up-migrations in lexical order. Statements
// use CREATE TABLE IF NOT EXISTS so reruns are harmless.
func RunSQLite(ctx context.Context, conn database.Connection) error {
	entries, err := sqliteMigrations.ReadDir("sqlite")
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := sqliteMigrations.ReadFile("sqlite/" + name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := conn.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}

	return nil
}
