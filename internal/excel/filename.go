package excel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo is one data file available for selection, with the display label
// derived from its filename convention.
type FileInfo struct {
	Name    string
	Path    string
	Label   string
	ModTime time.Time
}

// PeriodLabel derives the "YYYY-MM" reporting-period label from a sales
// export filename like 銷貨單毛利分析表_20250101_20250131.xlsx: the second
// underscore-delimited token is the period start date. Parsing is
// best-effort; on failure the file's modification time stands in.
func PeriodLabel(filename string, modTime time.Time) string {
	parts := strings.Split(filename, "_")
	if len(parts) >= 3 {
		start := parts[1]
		if len(start) >= 6 && isNumeric(start[:6]) {
			return start[:4] + "-" + start[4:6]
		}
	}
	return modTime.Format("2006-01")
}

// SnapshotDate derives the "YYYY/MM/DD" display date from an inventory
// snapshot filename like BC_產品全部SKU_20250214.xlsx: the last token before
// the extension is the snapshot date. Falls back to the modification time.
func SnapshotDate(filename string, modTime time.Time) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	parts := strings.Split(base, "_")
	last := parts[len(parts)-1]
	if len(last) >= 8 && isNumeric(last[:8]) {
		return last[:4] + "/" + last[4:6] + "/" + last[6:8]
	}
	return modTime.Format("2006/01/02")
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

// ListWorkbooks returns the .xlsx files in dir, newest first. The label
// function turns each filename into its display label (PeriodLabel or
// SnapshotDate).
func ListWorkbooks(dir string, label func(name string, modTime time.Time) string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xlsx") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    e.Name(),
			Path:    filepath.Join(dir, e.Name()),
			Label:   label(e.Name(), info.ModTime()),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}
