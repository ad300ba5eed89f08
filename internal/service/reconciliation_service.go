package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"salesdash/internal/aggregate"
	"salesdash/internal/dto"
	"salesdash/internal/export"
	"salesdash/internal/model"
)

// ReconciliationService joins sold quantities against an inventory snapshot
// and renders the result as an API response or a downloadable file.
type ReconciliationService interface {
	Reconcile(ctx context.Context, q dto.ReconciliationQuery) (*dto.ReconciliationResponse, error)
	// Export writes the reconciled table to w and returns the suggested
	// filename and content type for the download.
	Export(ctx context.Context, q dto.ExportQuery, w io.Writer) (string, string, error)
}

type reconciliationService struct {
	loader *Loader
}

func NewReconciliationService(loader *Loader) ReconciliationService {
	return &reconciliationService{loader: loader}
}

func (s *reconciliationService) reconcile(ctx context.Context, q dto.ReconciliationQuery) ([]model.ReconciledProduct, []string, string, error) {
	tables, err := s.loader.LoadSales(ctx, q.Periods)
	if err != nil {
		return nil, nil, "", err
	}
	inv, err := s.loader.LoadInventory(q.File)
	if err != nil {
		return nil, nil, "", err
	}

	aggs := s.loader.Aggregates(tables, q.Code)
	joined := aggregate.JoinInventory(aggs, inv.Records)
	return joined, periodLabels(tables), inv.SourceFile, nil
}

func (s *reconciliationService) Reconcile(ctx context.Context, q dto.ReconciliationQuery) (*dto.ReconciliationResponse, error) {
	joined, periods, snapshotFile, err := s.reconcile(ctx, q)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReconciliationResponse{
		Data:         make([]dto.ReconciledProductResponse, 0, len(joined)),
		Periods:      periods,
		Total:        len(joined),
		SnapshotFile: snapshotFile,
	}
	for _, r := range joined {
		resp.Data = append(resp.Data, toReconciledResponse(r))
	}
	return resp, nil
}

func (s *reconciliationService) Export(ctx context.Context, q dto.ExportQuery, w io.Writer) (string, string, error) {
	joined, periods, _, err := s.reconcile(ctx, q.ReconciliationQuery)
	if err != nil {
		return "", "", err
	}

	headers, rows := export.ReconciliationTable(joined, periods)
	name := fmt.Sprintf("reconciliation_%s", time.Now().Format("20060102_150405"))

	switch q.Format {
	case "xlsx":
		if err := export.WriteXLSX(w, headers, rows); err != nil {
			return "", "", err
		}
		return name + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	default:
		if err := export.WriteCSV(w, headers, rows); err != nil {
			return "", "", err
		}
		return name + ".csv", "text/csv; charset=utf-8", nil
	}
}
