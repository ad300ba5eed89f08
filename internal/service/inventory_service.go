package service

import (
	"context"

	"salesdash/internal/aggregate"
	"salesdash/internal/dto"
)

// InventoryService defines the contract for the inventory snapshot views.
type InventoryService interface {
	List(ctx context.Context, q dto.InventoryQuery) (*dto.InventoryListResponse, error)
	Unsold(ctx context.Context, q dto.UnsoldQuery) (*dto.InventoryListResponse, error)
}

type inventoryService struct {
	loader *Loader
}

func NewInventoryService(loader *Loader) InventoryService {
	return &inventoryService{loader: loader}
}

func (s *inventoryService) List(ctx context.Context, q dto.InventoryQuery) (*dto.InventoryListResponse, error) {
	table, err := s.loader.LoadInventory(q.File)
	if err != nil {
		return nil, err
	}

	recs := aggregate.FilterInventory(table.Records, aggregate.InventoryFilter{
		Category:    q.Category,
		Subcategory: q.Subcategory,
		Vendor:      q.Vendor,
		Status:      aggregate.StockStatus(q.Stock),
	})

	resp := &dto.InventoryListResponse{
		Data:         make([]dto.InventoryItemResponse, 0, len(recs)),
		Total:        len(recs),
		SnapshotDate: table.SnapshotDate,
		SourceFile:   table.SourceFile,
	}
	for _, rec := range recs {
		resp.Data = append(resp.Data, toInventoryItemResponse(rec))
	}
	return resp, nil
}

// Unsold lists products that are in stock on the snapshot but have no sale
// in the selected periods.
func (s *inventoryService) Unsold(ctx context.Context, q dto.UnsoldQuery) (*dto.InventoryListResponse, error) {
	table, err := s.loader.LoadInventory(q.File)
	if err != nil {
		return nil, err
	}
	tables, err := s.loader.LoadSales(ctx, q.Periods)
	if err != nil {
		return nil, err
	}

	sold := aggregate.SoldCodes(mergeItems(tables))
	recs := aggregate.UnsoldInStock(table.Records, sold)

	resp := &dto.InventoryListResponse{
		Data:         make([]dto.InventoryItemResponse, 0, len(recs)),
		Total:        len(recs),
		SnapshotDate: table.SnapshotDate,
		SourceFile:   table.SourceFile,
	}
	for _, rec := range recs {
		resp.Data = append(resp.Data, toInventoryItemResponse(rec))
	}
	return resp, nil
}
