package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/myrjola/detective/internal/errors"
)

// schemaObject is a row of sqlite_schema.
type schemaObject struct {
	objectType string
	name       string
	sql        string
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// migrate ensures that the db schema matches the target schema defined in schemaDefinition.
//
// We employ a very simple declarative schema migration that:
//
// 1. Drops deleted or changed indexes, triggers, and views,
// 2. Deletes deleted tables,
// 3. Creates new tables,
// 4. Migrates changed tables using 12-step schema migration https://www.sqlite.org/lang_altertable.html#otheralter,
// 5. Creates the indexes, triggers, and views missing after the table changes.
//
// Inspired by https://david.rothlis.net/declarative-schema-migration-for-sqlite/
func (db *Database) migrate(ctx context.Context, schemaDefinition string) error {
	var (
		err     error
		target  *sql.DB
		targets []schemaObject
	)

	// Create schema against a temporary database so that we know what has changed.
	if target, err = sql.Open("sqlite3", ":memory:"); err != nil {
		return errors.Wrap(err, "open schema target database")
	}
	// Every new connection would see a fresh empty :memory: database.
	target.SetMaxOpenConns(1)
	defer func() {
		if closeErr := target.Close(); closeErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to close schema target database",
				errors.SlogError(closeErr))
		}
	}()
	if strings.TrimSpace(schemaDefinition) != "" {
		if _, err = target.ExecContext(ctx, schemaDefinition); err != nil {
			return errors.Wrap(err, "migrate schema target database")
		}
	}
	if targets, err = querySchema(ctx, target); err != nil {
		return errors.Wrap(err, "query target schema")
	}

	// 12-step schema migration starts here. See https://www.sqlite.org/lang_altertable.html#otheralter.
	// The pragma is a no-op inside a transaction so the steps are pinned to one connection.
	var conn *sql.Conn
	if conn, err = db.ReadWrite.Conn(ctx); err != nil {
		return errors.Wrap(err, "acquire connection")
	}
	defer func() {
		_ = conn.Close()
	}()

	// Step 1: Disable foreign key validation temporarily.
	if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return errors.Wrap(err, "disable foreign key validation")
	}
	// Step 12: Re-enable foreign key validation.
	defer func() {
		if _, fkErr := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); fkErr != nil {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to re-enable foreign key validation",
				errors.SlogError(fkErr))
		}
	}()

	// Step 2: Start transaction.
	var tx *sql.Tx
	if tx, err = conn.BeginTx(ctx, nil); err != nil {
		return errors.Wrap(err, "start transaction")
	}
	defer func() {
		// Rollback after commit returns sql.ErrTxDone which is expected.
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			db.logger.LogAttrs(ctx, slog.LevelError, "failed to rollback transaction",
				errors.SlogError(rollbackErr))
		}
	}()

	if err = db.migrateObjects(ctx, tx, target, targets); err != nil {
		return errors.Wrap(err, "migrate objects")
	}

	// Step 10: Check foreign key constraints.
	if err = checkForeignKeys(ctx, tx); err != nil {
		return errors.Wrap(err, "foreign key check")
	}

	// Step 11: Commit transaction from step 2.
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}

// migrateObjects synchronizes tables, indexes, triggers, and views of tx with targets.
func (db *Database) migrateObjects(ctx context.Context, tx *sql.Tx, target queryer, targets []schemaObject) error {
	var (
		currents []schemaObject
		err      error
	)
	if currents, err = querySchema(ctx, tx); err != nil {
		return errors.Wrap(err, "query current schema")
	}

	// Indexes, triggers, and views are cheap to recreate so changed ones are dropped and created again at the end.
	for _, current := range currents {
		if current.objectType == "table" {
			continue
		}
		if wanted, ok := findObject(targets, current.objectType, current.name); ok && wanted.sql == current.sql {
			continue
		}
		db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping schema object",
			slog.String("type", current.objectType), slog.String("name", current.name))
		stmt := fmt.Sprintf(`DROP %s IF EXISTS "%s"`, strings.ToUpper(current.objectType), current.name)
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "drop schema object", slog.String("name", current.name))
		}
	}

	for _, current := range currents {
		if current.objectType != "table" {
			continue
		}
		wanted, ok := findObject(targets, "table", current.name)
		switch {
		case !ok:
			db.logger.LogAttrs(ctx, slog.LevelInfo, "dropping table", slog.String("table", current.name))
			if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s"`, current.name)); err != nil {
				return errors.Wrap(err, "drop table", slog.String("table", current.name))
			}
		case wanted.sql != current.sql:
			if err = db.migrateTable(ctx, tx, target, current, wanted); err != nil {
				return errors.Wrap(err, "migrate table", slog.String("table", current.name))
			}
		}
	}

	for _, wanted := range targets {
		if wanted.objectType != "table" {
			continue
		}
		if _, ok := findObject(currents, "table", wanted.name); ok {
			continue
		}
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating table", slog.String("query", wanted.sql))
		if _, err = tx.ExecContext(ctx, wanted.sql); err != nil {
			return errors.Wrap(err, "create table", slog.String("table", wanted.name))
		}
	}

	// Steps 8 and 9: Recreate indexes, triggers, and views. Dropped tables took their indexes with them so the
	// schema is read again.
	if currents, err = querySchema(ctx, tx); err != nil {
		return errors.Wrap(err, "query migrated schema")
	}
	for _, wanted := range targets {
		if wanted.objectType == "table" {
			continue
		}
		if _, ok := findObject(currents, wanted.objectType, wanted.name); ok {
			continue
		}
		db.logger.LogAttrs(ctx, slog.LevelInfo, "creating schema object", slog.String("query", wanted.sql))
		if _, err = tx.ExecContext(ctx, wanted.sql); err != nil {
			return errors.Wrap(err, "create schema object", slog.String("name", wanted.name))
		}
	}

	return nil
}

// migrateTable runs steps 4-7 of the 12-step migration for a table whose definition changed.
func (db *Database) migrateTable(
	ctx context.Context,
	tx *sql.Tx,
	target queryer,
	current schemaObject,
	wanted schemaObject,
) error {
	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrating table",
		slog.String("table", current.name),
		slog.String("current_sql", current.sql),
		slog.String("new_sql", wanted.sql))

	var err error

	// Step 4: Create tables according to new schema on temporary names.
	tempName := current.name + "_migration_temp"
	tempNameSQL := strings.Replace(wanted.sql, current.name, tempName, 1)
	if _, err = tx.ExecContext(ctx, tempNameSQL); err != nil {
		return errors.Wrap(err, "create new table to temporary name", slog.String("query", tempNameSQL))
	}

	// Step 5: Copy common columns between tables.
	var currentColumns, wantedColumns []string
	if currentColumns, err = queryColumns(ctx, tx, current.name); err != nil {
		return errors.Wrap(err, "query current columns")
	}
	if wantedColumns, err = queryColumns(ctx, target, wanted.name); err != nil {
		return errors.Wrap(err, "query target columns")
	}
	var commonColumns []string
	for _, column := range currentColumns {
		if slices.Contains(wantedColumns, column) {
			// We wrap the column names in with double quotes to handle column names that are SQLite keywords.
			commonColumns = append(commonColumns, fmt.Sprintf(`"%s"`, column))
		}
	}
	if len(commonColumns) > 0 {
		common := strings.Join(commonColumns, ", ")
		copySQL := fmt.Sprintf(`INSERT INTO "%s" (%s) SELECT %s FROM "%s"`, //nolint: gosec // we trust the query.
			tempName, common, common, current.name)
		db.logger.LogAttrs(ctx, slog.LevelInfo, "copying data", slog.String("query", copySQL))
		if _, err = tx.ExecContext(ctx, copySQL); err != nil {
			return errors.Wrap(err, "copy data")
		}
	}

	// Step 6: Drop the old table.
	if _, err = tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE "%s"`, current.name)); err != nil {
		return errors.Wrap(err, "drop old table")
	}

	// Step 7: Rename new table to old table's name.
	if _, err = tx.ExecContext(ctx,
		fmt.Sprintf(`ALTER TABLE "%s" RENAME TO "%s"`, tempName, current.name)); err != nil {
		return errors.Wrap(err, "rename new table")
	}
	return nil
}

func findObject(objects []schemaObject, objectType, name string) (schemaObject, bool) {
	i := slices.IndexFunc(objects, func(o schemaObject) bool {
		return o.objectType == objectType && o.name == name
	})
	if i == -1 {
		return schemaObject{}, false
	}
	return objects[i], true
}

// querySchema lists the user-defined schema objects. Automatic indexes have no SQL and are skipped.
func querySchema(ctx context.Context, q queryer) ([]schemaObject, error) {
	var (
		objects []schemaObject
		rows    *sql.Rows
		err     error
	)
	if rows, err = q.QueryContext(ctx, `SELECT type, name, sql
FROM sqlite_schema
WHERE name NOT LIKE 'sqlite_%' AND sql IS NOT NULL
ORDER BY rowid`); err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer func() {
		_ = rows.Close()
	}()
	for rows.Next() {
		var object schemaObject
		if err = rows.Scan(&object.objectType, &object.name, &object.sql); err != nil {
			return nil, errors.Wrap(err, "scan schema object")
		}
		objects = append(objects, object)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}
	return objects, nil
}

// queryColumns returns the column names of table.
func queryColumns(ctx context.Context, q queryer, table string) ([]string, error) {
	var (
		columns []string
		rows    *sql.Rows
		err     error
	)
	if rows, err = q.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table); err != nil {
		return nil, errors.Wrap(err, "query")
	}
	defer func() {
		_ = rows.Close()
	}()
	for rows.Next() {
		var column string
		if err = rows.Scan(&column); err != nil {
			return nil, errors.Wrap(err, "scan column")
		}
		columns = append(columns, column)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "rows error")
	}
	return columns, nil
}

// checkForeignKeys fails when the migrated data violates a foreign key constraint.
func checkForeignKeys(ctx context.Context, tx *sql.Tx) error {
	rows, err := tx.QueryContext(ctx, "PRAGMA foreign_key_check")
	if err != nil {
		return errors.Wrap(err, "query")
	}
	defer func() {
		_ = rows.Close()
	}()
	if rows.Next() {
		return errors.New("foreign key violation after migration")
	}
	return errors.Wrap(rows.Err(), "rows error")
}
