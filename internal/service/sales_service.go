package service

import (
	"context"

	"salesdash/internal/aggregate"
	"salesdash/internal/dto"
	"salesdash/internal/model"
)

// SalesService defines the contract for the sales analysis views.
type SalesService interface {
	Summary(ctx context.Context, q dto.SalesQuery) (*dto.SalesSummaryResponse, error)
	Products(ctx context.Context, q dto.SalesQuery) (*dto.ProductListResponse, error)
	LineItems(ctx context.Context, q dto.SalesQuery) (*dto.LineItemListResponse, error)
}

type salesService struct {
	loader *Loader
}

func NewSalesService(loader *Loader) SalesService {
	return &salesService{loader: loader}
}

func (s *salesService) Summary(ctx context.Context, q dto.SalesQuery) (*dto.SalesSummaryResponse, error) {
	// Unfilled rows: order totals live only on header rows, so the sums
	// count each order exactly once.
	tables, err := s.loader.LoadSalesUnfilled(ctx, q.Periods)
	if err != nil {
		return nil, err
	}
	items := mergeItems(tables)
	if q.Code != "" {
		items = aggregate.FilterByCode(items, q.Code)
	}
	resp := toSummaryResponse(aggregate.Summarize(items), periodLabels(tables))
	return &resp, nil
}

func (s *salesService) Products(ctx context.Context, q dto.SalesQuery) (*dto.ProductListResponse, error) {
	tables, err := s.loader.LoadSales(ctx, q.Periods)
	if err != nil {
		return nil, err
	}
	aggs := s.loader.Aggregates(tables, q.Code)

	resp := &dto.ProductListResponse{
		Data:    make([]dto.ProductAggregateResponse, 0, len(aggs)),
		Periods: periodLabels(tables),
		Total:   len(aggs),
	}
	for _, a := range aggs {
		resp.Data = append(resp.Data, toProductAggregateResponse(a))
	}
	return resp, nil
}

func (s *salesService) LineItems(ctx context.Context, q dto.SalesQuery) (*dto.LineItemListResponse, error) {
	tables, err := s.loader.LoadSales(ctx, q.Periods)
	if err != nil {
		return nil, err
	}
	items := mergeItems(tables)
	if q.Code != "" {
		items = aggregate.FilterByCode(items, q.Code)
	}

	resp := &dto.LineItemListResponse{
		Data:  make([]dto.LineItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, it := range items {
		resp.Data = append(resp.Data, toLineItemResponse(it))
	}
	return resp, nil
}

func periodLabels(tables []*model.SalesTable) []string {
	labels := make([]string, 0, len(tables))
	for _, t := range tables {
		labels = append(labels, t.PeriodLabel)
	}
	return labels
}
