package backup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carshare/internal/config"
	"carshare/internal/database"
)

func newTestService(t *testing.T) (*Service, *database.DB, string) {
	t.Helper()
	logger := zerolog.Nop()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), &logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	folder := t.TempDir()
	var cfg config.Config
	cfg.Backup.Enabled = true
	cfg.Backup.Path = folder
	cfg.Backup.RetentionDays = 30

	return NewService(db, cfg, &logger), db, folder
}

func TestPerformBackup(t *testing.T) {
	svc, db, folder := newTestService(t)
	ctx := context.Background()

	record, err := svc.PerformBackup(ctx)
	require.NoError(t, err)
	assert.Positive(t, record.FileSize)
	assert.Equal(t, folder, record.SaveFolder)

	// a backup file landed in the folder
	files, err := os.ReadDir(folder)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, files[0].Name(), "backup_")

	// the run is listed like any other entity
	backups, err := db.ListBackups(ctx)
	require.NoError(t, err)
	require.Len(t, backups, 1)
	assert.Equal(t, record.ID, backups[0].ID)
}

func TestExportStreamsDatabaseBytes(t *testing.T) {
	svc, db, _ := newTestService(t)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))

	raw, err := os.ReadFile(db.Path())
	require.NoError(t, err)
	assert.Equal(t, raw, buf.Bytes())
}

func TestRestoreReplacesDatabaseFile(t *testing.T) {
	svc, db, _ := newTestService(t)

	var snapshot bytes.Buffer
	require.NoError(t, svc.Export(&snapshot))

	require.NoError(t, db.Close())
	require.NoError(t, svc.Restore(snapshot.Bytes()))

	raw, err := os.ReadFile(db.Path())
	require.NoError(t, err)
	assert.Equal(t, snapshot.Bytes(), raw)
}

func TestCleanupOldBackups_KeepsRecentFiles(t *testing.T) {
	svc, _, folder := newTestService(t)

	_, err := svc.PerformBackup(context.Background())
	require.NoError(t, err)

	svc.CleanupOldBackups()

	files, err := os.ReadDir(folder)
	require.NoError(t, err)
	assert.Len(t, files, 1, "fresh backups survive the retention sweep")
}
