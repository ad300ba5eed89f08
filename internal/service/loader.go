package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"salesdash/internal/aggregate"
	"salesdash/internal/cache"
	"salesdash/internal/dataset"
	"salesdash/internal/excel"
	"salesdash/internal/model"
	"salesdash/internal/worker"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoSalesData is returned when no sales workbook matches the request.
	ErrNoSalesData = errors.New("no sales data available")
	// ErrNoInventoryData is returned when no inventory snapshot is available.
	ErrNoInventoryData = errors.New("no inventory data available")
)

// loadKey identifies a workbook by path and modification time, so replacing
// a file on disk invalidates its cache entry without an explicit purge.
type loadKey struct {
	path    string
	modTime int64
}

// Loader reads sales and inventory workbooks off disk, normalizes them and
// memoizes the results. It is the single owner of the caches, shared by
// every service built on top of it.
type Loader struct {
	salesDir     string
	inventoryDir string
	poolSize     int

	salesCache     *cache.Cache[loadKey, *model.SalesTable]
	inventoryCache *cache.Cache[loadKey, *model.InventoryTable]
	aggCache       *cache.Cache[string, []model.ProductAggregate]
}

type LoaderOptions struct {
	SalesDir            string
	InventoryDir        string
	PoolSize            int
	LoadCacheMaxEntries int
	LoadCacheTTL        time.Duration
	AggCacheMaxEntries  int
	AggCacheTTL         time.Duration
}

func NewLoader(opts LoaderOptions) *Loader {
	return &Loader{
		salesDir:       opts.SalesDir,
		inventoryDir:   opts.InventoryDir,
		poolSize:       opts.PoolSize,
		salesCache:     cache.New[loadKey, *model.SalesTable](opts.LoadCacheMaxEntries, opts.LoadCacheTTL),
		inventoryCache: cache.New[loadKey, *model.InventoryTable](opts.LoadCacheMaxEntries, opts.LoadCacheTTL),
		aggCache:       cache.New[string, []model.ProductAggregate](opts.AggCacheMaxEntries, opts.AggCacheTTL),
	}
}

// SalesDir returns the directory scanned for sales workbooks.
func (l *Loader) SalesDir() string { return l.salesDir }

// InventoryDir returns the directory scanned for inventory snapshots.
func (l *Loader) InventoryDir() string { return l.inventoryDir }

// ListSalesFiles returns the sales workbooks on disk, newest first, each
// labeled with its reporting period.
func (l *Loader) ListSalesFiles() ([]excel.FileInfo, error) {
	return excel.ListWorkbooks(l.salesDir, excel.PeriodLabel)
}

// ListInventoryFiles returns the inventory snapshots on disk, newest first,
// each labeled with its snapshot date.
func (l *Loader) ListInventoryFiles() ([]excel.FileInfo, error) {
	return excel.ListWorkbooks(l.inventoryDir, excel.SnapshotDate)
}

// LoadSales loads the workbooks for the requested periods with order
// context filled in, ready for per-product aggregation.
func (l *Loader) LoadSales(ctx context.Context, periods []string) ([]*model.SalesTable, error) {
	tables, err := l.LoadSalesUnfilled(ctx, periods)
	if err != nil {
		return nil, err
	}
	filled := make([]*model.SalesTable, len(tables))
	for i, t := range tables {
		f := dataset.FillOrderContext(t)
		f.SourceModTime = t.SourceModTime
		filled[i] = f
	}
	return filled, nil
}

// LoadSalesUnfilled loads the workbooks for the requested periods without
// order-context filling: order-level totals appear only on each order's
// header row, which is what the summary metrics sum over. Empty periods
// means every known file. Files that fail to load are skipped with a
// warning; the call errors only when nothing loads at all.
func (l *Loader) LoadSalesUnfilled(ctx context.Context, periods []string) ([]*model.SalesTable, error) {
	files, err := l.ListSalesFiles()
	if err != nil {
		return nil, err
	}
	selected := selectByLabel(files, periods)
	if len(selected) == 0 {
		return nil, ErrNoSalesData
	}

	results := worker.Map(ctx, selected, l.poolSize, func(ctx context.Context, f excel.FileInfo) (*model.SalesTable, error) {
		return l.loadSalesFile(f)
	})

	tables := make([]*model.SalesTable, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			log.Warn().Str("file", r.Input.Name).Err(r.Err).Msg("skipping unreadable sales workbook")
			continue
		}
		tables = append(tables, r.Value)
	}
	if len(tables) == 0 {
		return nil, ErrNoSalesData
	}
	// Stable presentation order regardless of which goroutine finished first.
	sort.SliceStable(tables, func(i, j int) bool {
		return tables[i].PeriodLabel < tables[j].PeriodLabel
	})
	return tables, nil
}

func (l *Loader) loadSalesFile(f excel.FileInfo) (*model.SalesTable, error) {
	key := loadKey{path: f.Path, modTime: f.ModTime.UnixNano()}
	if t, ok := l.salesCache.Get(key); ok {
		return t, nil
	}

	raw, err := excel.ReadWorkbook(f.Path)
	if err != nil {
		return nil, err
	}
	table, err := dataset.NormalizeSales(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	table.SourceFile = f.Name
	table.SourceModTime = f.ModTime
	table.PeriodLabel = f.Label
	for i := range table.Items {
		table.Items[i].PeriodLabel = f.Label
	}

	l.salesCache.Add(key, table)
	return table, nil
}

// LoadInventory loads one inventory snapshot. An empty filename selects the
// newest snapshot on disk.
func (l *Loader) LoadInventory(filename string) (*model.InventoryTable, error) {
	files, err := l.ListInventoryFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInventoryData
	}

	f := files[0]
	if filename != "" {
		found := false
		for _, cand := range files {
			if cand.Name == filename {
				f, found = cand, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrNoInventoryData, filename)
		}
	}

	key := loadKey{path: f.Path, modTime: f.ModTime.UnixNano()}
	if t, ok := l.inventoryCache.Get(key); ok {
		return t, nil
	}

	raw, err := excel.ReadWorkbook(f.Path)
	if err != nil {
		return nil, err
	}
	table, err := dataset.NormalizeInventory(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	table.SourceFile = f.Name
	table.SnapshotDate = f.Label

	l.inventoryCache.Add(key, table)
	return table, nil
}

// Aggregates memoizes product aggregation over a set of loaded tables. The
// key fingerprints the exact file versions plus the filter, so a replaced
// workbook or a different code filter never serves a stale result.
func (l *Loader) Aggregates(tables []*model.SalesTable, codeFilter string) []model.ProductAggregate {
	key := aggFingerprint(tables, codeFilter)
	if aggs, ok := l.aggCache.Get(key); ok {
		return aggs
	}

	items := mergeItems(tables)
	aggs := aggregate.Products(items, aggregate.Options{CodeFilter: codeFilter})
	l.aggCache.Add(key, aggs)
	return aggs
}

// PurgeAll drops every cached table and aggregate.
func (l *Loader) PurgeAll() {
	l.salesCache.Purge()
	l.inventoryCache.Purge()
	l.aggCache.Purge()
}

func aggFingerprint(tables []*model.SalesTable, codeFilter string) string {
	var b strings.Builder
	for _, t := range tables {
		b.WriteString(t.SourceFile)
		b.WriteByte('@')
		b.WriteString(strconv.FormatInt(t.SourceModTime.UnixNano(), 10))
		b.WriteByte('|')
	}
	b.WriteString("code=")
	b.WriteString(strings.ToLower(codeFilter))
	return b.String()
}

func mergeItems(tables []*model.SalesTable) []model.LineItem {
	var n int
	for _, t := range tables {
		n += len(t.Items)
	}
	items := make([]model.LineItem, 0, n)
	for _, t := range tables {
		items = append(items, t.Items...)
	}
	return items
}

// selectByLabel keeps the files whose label is in wanted; empty wanted keeps
// everything.
func selectByLabel(files []excel.FileInfo, wanted []string) []excel.FileInfo {
	if len(wanted) == 0 {
		return files
	}
	keep := make(map[string]bool, len(wanted))
	for _, w := range wanted {
		keep[w] = true
	}
	out := make([]excel.FileInfo, 0, len(files))
	for _, f := range files {
		if keep[f.Label] {
			out = append(out, f)
		}
	}
	return out
}
