package excel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mt = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestPeriodLabelFromFilename(t *testing.T) {
	assert.Equal(t, "2025-01", PeriodLabel("銷貨單毛利分析表_20250101_20250131.xlsx", mt))
	assert.Equal(t, "2024-12", PeriodLabel("report_20241201_20241231.xlsx", mt))
}

func TestPeriodLabelFallsBackToModTime(t *testing.T) {
	assert.Equal(t, "2025-06", PeriodLabel("monthly-report.xlsx", mt))
	assert.Equal(t, "2025-06", PeriodLabel("report_abc_def.xlsx", mt))
}

func TestSnapshotDateFromFilename(t *testing.T) {
	assert.Equal(t, "2025/02/14", SnapshotDate("BC_產品全部SKU_20250214.xlsx", mt))
	assert.Equal(t, "2024/11/30", SnapshotDate("inventory_20241130.xlsx", mt))
}

func TestSnapshotDateFallsBackToModTime(t *testing.T) {
	assert.Equal(t, "2025/06/15", SnapshotDate("inventory_latest.xlsx", mt))
}

func TestListWorkbooksFiltersAndSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()

	older := filepath.Join(dir, "sales_20250101_20250131.xlsx")
	newer := filepath.Join(dir, "sales_20250201_20250228.xlsx")
	require.NoError(t, os.WriteFile(older, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(newer, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.xlsx"), 0o755))

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	files, err := ListWorkbooks(dir, PeriodLabel)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "sales_20250201_20250228.xlsx", files[0].Name)
	assert.Equal(t, "2025-02", files[0].Label)
	assert.Equal(t, "2025-01", files[1].Label)
}

func TestListWorkbooksMissingDir(t *testing.T) {
	_, err := ListWorkbooks(filepath.Join(t.TempDir(), "nope"), PeriodLabel)
	assert.Error(t, err)
}
