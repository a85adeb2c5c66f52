package backup

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstent/sportlog-go/internal/activity"
	"github.com/sstent/sportlog-go/internal/database"
)

func TestRunWritesSnapshot(t *testing.T) {
	dir := t.TempDir()

	store, err := database.Open(filepath.Join(dir, "activities.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec, err := activity.NewRecord(activity.Input{
		Date:      "2026-01-10",
		Type:      "cycling",
		Distance:  "42.0",
		AvgMetric: "28.0",
		Duration:  "1:30",
		Calories:  "950",
	})
	require.NoError(t, err)
	_, err = store.InsertRecord(rec)
	require.NoError(t, err)

	backupDir := filepath.Join(dir, "backups")
	svc := NewService(store, backupDir, zerolog.Nop())
	require.NoError(t, svc.Run(context.Background()))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "activities-"))

	data, err := os.ReadFile(filepath.Join(backupDir, entries[0].Name()))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "cycling")
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(nil, t.TempDir(), zerolog.Nop())
	assert.Error(t, svc.Run(ctx))
}
