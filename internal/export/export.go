// Package export writes database tables out as CSV files in bounded chunks,
// so a full season's player statistics never sit in memory at once.
package export

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/fortuna/courtside/internal/store"
)

// Tables is the exportable table set. Table names are taken from this list
// only, never from user input.
var Tables = []string{
	"players",
	"teams",
	"games",
	"team_statistics",
	"player_statistics",
}

// Exporter dumps tables to CSV.
type Exporter struct {
	db        *store.Database
	dir       string
	chunkSize int
	log       *zap.Logger
}

// NewExporter creates an exporter writing into dir.
func NewExporter(db *store.Database, dir string, chunkSize int, log *zap.Logger) *Exporter {
	if chunkSize <= 0 {
		chunkSize = 50000
	}
	return &Exporter{db: db, dir: dir, chunkSize: chunkSize, log: log}
}

// ExportAll exports every known table.
func (e *Exporter) ExportAll(ctx context.Context) error {
	for _, table := range Tables {
		if err := e.ExportTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}

// ExportTable writes one table to <dir>/<table>.csv.
func (e *Exporter) ExportTable(ctx context.Context, table string) error {
	if !knownTable(table) {
		return errors.Newf("unknown export table %q", table)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return errors.Wrap(err, "creating export directory")
	}

	path := filepath.Join(e.dir, table+".csv")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	started := time.Now()

	rows, err := e.db.DB().QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return errors.Wrapf(err, "querying %s", table)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return errors.Wrapf(err, "reading %s columns", table)
	}
	if err := writer.Write(columns); err != nil {
		return errors.Wrap(err, "writing header")
	}

	var total int
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return errors.Wrapf(err, "scanning %s row", table)
		}
		if err := writer.Write(formatRecord(values)); err != nil {
			return errors.Wrapf(err, "writing %s row", table)
		}
		total++
		if total%e.chunkSize == 0 {
			writer.Flush()
			if err := writer.Error(); err != nil {
				return errors.Wrapf(err, "flushing %s", path)
			}
			e.log.Debug("export progress",
				zap.String("table", table),
				zap.Int("rows", total))
		}
	}
	if err := rows.Err(); err != nil {
		return errors.Wrapf(err, "iterating %s", table)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "flushing %s", path)
	}

	e.log.Info("table exported",
		zap.String("table", table),
		zap.Int("rows", total),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}

func knownTable(table string) bool {
	for _, t := range Tables {
		if t == table {
			return true
		}
	}
	return false
}

// formatRecord renders scanned values the way the downstream notebooks
// expect: empty string for null, RFC 3339 for timestamps.
func formatRecord(values []interface{}) []string {
	record := make([]string, len(values))
	for i, v := range values {
		switch val := v.(type) {
		case nil:
			record[i] = ""
		case []byte:
			record[i] = string(val)
		case time.Time:
			record[i] = val.Format(time.RFC3339)
		case sql.RawBytes:
			record[i] = string(val)
		default:
			record[i] = fmt.Sprintf("%v", val)
		}
	}
	return record
}
