package export

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// TableExporter provides access to store tables for export.
type TableExporter interface {
	TableNames(ctx context.Context) ([]string, error)
	TableData(ctx context.Context, tableName string) ([]map[string]any, []string, error)
}

// Service builds an xlsx workbook with one sheet per store table.
type Service struct {
	exporter TableExporter
	writer   func() SheetWriter
	logger   *zerolog.Logger
}

func NewService(exporter TableExporter, writerFactory func() SheetWriter, logger *zerolog.Logger) *Service {
	return &Service{
		exporter: exporter,
		writer:   writerFactory,
		logger:   logger,
	}
}

// Filename builds a workbook name like "carshare_2026-09-01.xlsx".
func Filename(t time.Time) string {
	return fmt.Sprintf("carshare_%s.xlsx", t.Format("2006-01-02"))
}

// Export writes the full workbook to w.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	excel := s.writer()
	defer excel.Close()

	if err := s.fill(ctx, excel); err != nil {
		return err
	}
	if err := excel.Save(w); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ExportToFile writes the full workbook to the given path.
func (s *Service) ExportToFile(ctx context.Context, path string) error {
	excel := s.writer()
	defer excel.Close()

	if err := s.fill(ctx, excel); err != nil {
		return err
	}
	if err := excel.SaveToFile(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	s.logger.Info().Str("path", path).Msg("Workbook export completed")
	return nil
}

func (s *Service) fill(ctx context.Context, excel SheetWriter) error {
	tables, err := s.exporter.TableNames(ctx)
	if err != nil {
		return fmt.Errorf("get table names: %w", err)
	}

	for _, tableName := range tables {
		data, columns, err := s.exporter.TableData(ctx, tableName)
		if err != nil {
			s.logger.Error().Err(err).Str("table", tableName).Msg("Failed to read table for export")
			continue
		}

		if err := excel.AddSheet(tableName); err != nil {
			s.logger.Error().Err(err).Str("table", tableName).Msg("Failed to add sheet")
			continue
		}

		if err := excel.WriteHeader(columns); err != nil {
			s.logger.Error().Err(err).Str("table", tableName).Msg("Failed to write header")
			continue
		}

		for _, row := range data {
			rowData := make([]any, len(columns))
			for i, col := range columns {
				rowData[i] = row[col]
			}
			if err := excel.WriteRow(rowData); err != nil {
				s.logger.Error().Err(err).Str("table", tableName).Msg("Failed to write row")
			}
		}

		s.logger.Debug().Str("table", tableName).Int("rows", len(data)).Msg("Exported table")
	}

	return nil
}
