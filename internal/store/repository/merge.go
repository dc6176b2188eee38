// Package repository implements persistence for the five pipeline entities.
// All writes go through one generic staged-merge operation: rows are staged
// into a run-scoped scratch table and merged into the persistent table in a
// single set-based statement keyed on the entity's identity columns. The
// entities themselves are declarative MergeSpec values in entities.go.
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/store"
)

const defaultBatchSize = 500

// MergeSpec describes one entity's staged merge: where rows land, which
// columns identify a row and which are overwritten on a key match.
type MergeSpec struct {
	Table        string
	KeyColumns   []string
	ValueColumns []string
	// InsertOnly skips the update branch for entities with no mutable
	// attributes.
	InsertOnly bool
	// BatchSize bounds the size of each staging insert. It never changes
	// merge results; the merge key makes row order irrelevant.
	BatchSize int
}

// Columns returns key columns followed by value columns.
func (s MergeSpec) Columns() []string {
	cols := make([]string, 0, len(s.KeyColumns)+len(s.ValueColumns))
	cols = append(cols, s.KeyColumns...)
	cols = append(cols, s.ValueColumns...)
	return cols
}

func (s MergeSpec) scratchTable() string {
	return "staging_" + s.Table
}

// createScratchSQL builds the scratch table statement. ON COMMIT DROP ties
// the scratch area's lifetime to the merge transaction, so it is torn down on
// both the commit and the rollback path.
func (s MergeSpec) createScratchSQL() string {
	return fmt.Sprintf(
		"CREATE TEMP TABLE %s (LIKE %s INCLUDING DEFAULTS) ON COMMIT DROP",
		s.scratchTable(), s.Table,
	)
}

// stageSQL builds the named insert into the scratch table.
func (s MergeSpec) stageSQL() string {
	cols := s.Columns()
	placeholders := make([]string, len(cols))
	for i, col := range cols {
		placeholders[i] = ":" + col
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.scratchTable(),
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
	)
}

// mergeSQL builds the set-based merge from the scratch table into the
// persistent table: update all non-key columns on a key match, insert the
// full row otherwise.
func (s MergeSpec) mergeSQL() string {
	cols := strings.Join(s.Columns(), ", ")
	keys := strings.Join(s.KeyColumns, ", ")

	var conflict string
	if s.InsertOnly || len(s.ValueColumns) == 0 {
		conflict = "DO NOTHING"
	} else {
		sets := make([]string, len(s.ValueColumns))
		for i, col := range s.ValueColumns {
			sets[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
		}
		conflict = "DO UPDATE SET " + strings.Join(sets, ", ")
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s FROM %s ON CONFLICT (%s) %s",
		s.Table, cols, cols, s.scratchTable(), keys, conflict,
	)
}

// Executor runs staged merges against the store.
type Executor struct {
	db  *store.Database
	log *zap.Logger
}

// NewExecutor creates a merge executor.
func NewExecutor(db *store.Database, log *zap.Logger) *Executor {
	return &Executor{db: db, log: log}
}

// Merge stages rows into the spec's scratch table and merges them into the
// persistent table inside one transaction. An empty row-set is a no-op. Any
// failure rolls back, which also drops the scratch table.
func Merge[T any](ctx context.Context, e *Executor, spec MergeSpec, rows []T) error {
	if len(rows) == 0 {
		e.log.Debug("nothing to merge", zap.String("table", spec.Table))
		return nil
	}

	tx, err := e.db.DB().BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "beginning %s merge", spec.Table)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, spec.createScratchSQL()); err != nil {
		return errors.Wrapf(err, "creating %s scratch table", spec.Table)
	}

	batch := spec.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}
	stage := spec.stageSQL()
	for start := 0; start < len(rows); start += batch {
		end := min(start+batch, len(rows))
		if _, err := tx.NamedExecContext(ctx, stage, rows[start:end]); err != nil {
			return errors.Wrapf(err, "staging %s rows %d..%d", spec.Table, start, end)
		}
	}

	if _, err := tx.ExecContext(ctx, spec.mergeSQL()); err != nil {
		return errors.Wrapf(err, "merging into %s", spec.Table)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "committing %s merge", spec.Table)
	}

	e.log.Info("entity merged",
		zap.String("table", spec.Table),
		zap.Int("rows", len(rows)))
	return nil
}
