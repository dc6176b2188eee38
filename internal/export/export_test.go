package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKnownTable(t *testing.T) {
	for _, table := range Tables {
		assert.True(t, knownTable(table), table)
	}
	assert.False(t, knownTable("schema_migrations"))
	assert.False(t, knownTable("players; DROP TABLE players"))
}

func TestFormatRecord(t *testing.T) {
	ts := time.Date(2025, 1, 15, 19, 30, 0, 0, time.UTC)
	record := formatRecord([]interface{}{
		nil,
		int64(42),
		[]byte("text"),
		ts,
		3.5,
	})
	assert.Equal(t, []string{"", "42", "text", "2025-01-15T19:30:00Z", "3.5"}, record)
}
