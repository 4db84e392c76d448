package export

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeExporter struct{}

func (fakeExporter) TableNames(ctx context.Context) ([]string, error) {
	return []string{"cars", "clients"}, nil
}

func (fakeExporter) TableData(ctx context.Context, tableName string) ([]map[string]any, []string, error) {
	switch tableName {
	case "cars":
		return []map[string]any{
			{"id": int64(1), "brand": "Lada"},
			{"id": int64(2), "brand": "Kia"},
		}, []string{"id", "brand"}, nil
	case "clients":
		return []map[string]any{
			{"id": int64(1), "full_name": "Иван Иванов"},
		}, []string{"id", "full_name"}, nil
	}
	return nil, nil, fmt.Errorf("unknown table %q", tableName)
}

func TestService_Export(t *testing.T) {
	logger := zerolog.Nop()
	svc := NewService(fakeExporter{}, NewExcelizeWriter, &logger)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"cars", "clients"}, f.GetSheetList())

	rows, err := f.GetRows("cars")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "brand"}, rows[0])
	assert.Equal(t, []string{"1", "Lada"}, rows[1])
	assert.Equal(t, []string{"2", "Kia"}, rows[2])

	rows, err = f.GetRows("clients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Иван Иванов", rows[1][1])
}

func TestExcelizeWriter_RequiresSheet(t *testing.T) {
	w := NewExcelizeWriter()
	defer w.Close()

	assert.Error(t, w.WriteHeader([]string{"id"}))
	assert.Error(t, w.WriteRow([]any{1}))

	require.NoError(t, w.AddSheet("cars"))
	assert.NoError(t, w.WriteHeader([]string{"id"}))
}

func TestExcelizeWriter_TruncatesLongSheetNames(t *testing.T) {
	w := NewExcelizeWriter()
	defer w.Close()

	long := "a_very_long_table_name_that_exceeds_the_excel_limit"
	require.NoError(t, w.AddSheet(long))
	require.NoError(t, w.WriteHeader([]string{"id"}))

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	for _, name := range f.GetSheetList() {
		assert.LessOrEqual(t, len(name), 31)
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 9, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "carshare_2026-09-01.xlsx", Filename(ts))
}
