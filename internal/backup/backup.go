package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"carshare/internal/config"
	"carshare/internal/database"
	"carshare/internal/metrics"
	"carshare/internal/models"
)

// Service copies the database file to the backup folder on a schedule and
// records every run in the backups table.
type Service struct {
	db     *database.DB
	config config.Config
	logger *zerolog.Logger
}

func NewService(db *database.DB, cfg config.Config, logger *zerolog.Logger) *Service {
	return &Service{
		db:     db,
		config: cfg,
		logger: logger,
	}
}

func (s *Service) Start(ctx context.Context) {
	if !s.config.Backup.Enabled {
		s.logger.Info().Msg("Backup service is disabled")
		return
	}

	s.logger.Info().Dur("interval", s.config.BackupInterval()).Msg("Backup service started")

	ticker := time.NewTicker(s.config.BackupInterval())
	defer ticker.Stop()

	// Run first backup immediately
	if _, err := s.PerformBackup(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Initial backup failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.PerformBackup(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Scheduled backup failed")
			}
			s.CleanupOldBackups()
		}
	}
}

// PerformBackup copies the database file into the backup folder and records
// the run. It returns the recorded row.
func (s *Service) PerformBackup(ctx context.Context) (*models.Backup, error) {
	folder := s.config.Backup.Path
	if _, err := os.Stat(folder); os.IsNotExist(err) {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create backup directory: %w", err)
		}
	}

	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(folder, fmt.Sprintf("backup_%s.db", timestamp))

	s.logger.Info().Str("path", backupPath).Msg("Performing database backup")

	size, err := copyFile(s.db.Path(), backupPath)
	if err != nil {
		return nil, err
	}

	record, err := s.db.CreateBackup(ctx, models.NewBackup{
		FileSize:   size,
		SaveFolder: folder,
	})
	if err != nil {
		return nil, fmt.Errorf("record backup: %w", err)
	}

	metrics.IncBackupRun()
	s.logger.Info().Int64("size", size).Msg("Backup completed successfully")
	return record, nil
}

func copyFile(src, dst string) (int64, error) {
	source, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer source.Close()

	destination, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	defer destination.Close()

	return io.Copy(destination, source)
}

// CleanupOldBackups removes backup files older than the retention window.
func (s *Service) CleanupOldBackups() {
	if s.config.Backup.RetentionDays <= 0 {
		return
	}

	files, err := os.ReadDir(s.config.Backup.Path)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to read backup directory for cleanup")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.Backup.RetentionDays)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			s.logger.Info().Str("file", file.Name()).Msg("Deleting old backup")
			os.Remove(filepath.Join(s.config.Backup.Path, file.Name()))
		}
	}
}

// Export streams the raw database bytes, e.g. into a file-save dialog.
func (s *Service) Export(w io.Writer) error {
	source, err := os.Open(s.db.Path())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer source.Close()

	if _, err := io.Copy(w, source); err != nil {
		return fmt.Errorf("export database: %w", err)
	}
	return nil
}

// Restore replaces the database file with the given bytes. The caller must
// have closed the store first; the next open picks up the restored data.
func (s *Service) Restore(data []byte) error {
	if err := os.WriteFile(s.db.Path(), data, 0o644); err != nil {
		return fmt.Errorf("restore database: %w", err)
	}
	s.logger.Info().Int("bytes", len(data)).Msg("Database restored from snapshot")
	return nil
}
