package motivation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageLog(t *testing.T) {
	t.Run("Missing file reads as empty log", func(t *testing.T) {
		l := NewImageLog(filepath.Join(t.TempDir(), "img_list.txt"))

		records, err := l.Records()
		require.NoError(t, err)
		assert.Empty(t, records)

		_, ok, err := l.LastRecord()
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Append then read round-trips records in order", func(t *testing.T) {
		l := NewImageLog(filepath.Join(t.TempDir(), "img_list.txt"))

		require.NoError(t, l.Append("https://example.com/a.png", "2026-08-30"))
		require.NoError(t, l.Append("https://example.com/b.png", "2026-08-31"))

		records, err := l.Records()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, Record{Link: "https://example.com/a.png", Date: "2026-08-30"}, records[0])
		assert.Equal(t, Record{Link: "https://example.com/b.png", Date: "2026-08-31"}, records[1])

		last, ok, err := l.LastRecord()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "https://example.com/b.png", last.Link)
	})

	t.Run("Link with commas still parses", func(t *testing.T) {
		// дата отделяется последней запятой
		l := NewImageLog(filepath.Join(t.TempDir(), "img_list.txt"))

		require.NoError(t, l.Append("https://example.com/a,b,c.png", "2026-08-31"))

		records, err := l.Records()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "https://example.com/a,b,c.png", records[0].Link)
		assert.Equal(t, "2026-08-31", records[0].Date)
	})

	t.Run("Garbage entries are skipped", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "img_list.txt")
		require.NoError(t, os.WriteFile(path, []byte("no-comma-here><https://example.com/ok.png,2026-08-31><"), 0644))

		l := NewImageLog(path)
		records, err := l.Records()
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "https://example.com/ok.png", records[0].Link)
	})
}
