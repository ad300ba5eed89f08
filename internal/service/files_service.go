package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"salesdash/internal/dataset"
	"salesdash/internal/dto"
	"salesdash/internal/excel"
)

// ErrInvalidUpload is returned when an uploaded file is not a workbook this
// dashboard can read.
var ErrInvalidUpload = errors.New("invalid workbook upload")

// FileService lists the data directories and accepts uploaded workbooks.
type FileService interface {
	ListSales(ctx context.Context) (*dto.FileListResponse, error)
	ListInventory(ctx context.Context) (*dto.FileListResponse, error)
	SaveSales(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)
	SaveInventory(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error)
}

type fileService struct {
	loader *Loader
}

func NewFileService(loader *Loader) FileService {
	return &fileService{loader: loader}
}

func (s *fileService) ListSales(ctx context.Context) (*dto.FileListResponse, error) {
	files, err := s.loader.ListSalesFiles()
	if err != nil {
		return nil, err
	}
	return toFileList(files), nil
}

func (s *fileService) ListInventory(ctx context.Context) (*dto.FileListResponse, error) {
	files, err := s.loader.ListInventoryFiles()
	if err != nil {
		return nil, err
	}
	return toFileList(files), nil
}

// SaveSales validates that the upload parses as a sales export before
// letting it land in the data directory.
func (s *fileService) SaveSales(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := excel.ReadFrom(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	table, err := dataset.NormalizeSales(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	if err := s.store(s.loader.SalesDir(), filename, data); err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		Name:  filepath.Base(filename),
		Label: excel.PeriodLabel(filepath.Base(filename), time.Now()),
		Rows:  len(table.Items),
	}, nil
}

// SaveInventory validates that the upload parses as an inventory snapshot
// before letting it land in the data directory.
func (s *fileService) SaveInventory(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := excel.ReadFrom(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	table, err := dataset.NormalizeInventory(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	if err := s.store(s.loader.InventoryDir(), filename, data); err != nil {
		return nil, err
	}
	return &dto.UploadResponse{
		Name:  filepath.Base(filename),
		Label: excel.SnapshotDate(filepath.Base(filename), time.Now()),
		Rows:  len(table.Records),
	}, nil
}

func (s *fileService) store(dir, filename string, data []byte) error {
	name := filepath.Base(filename)
	if name == "." || name == "/" || !strings.HasSuffix(strings.ToLower(name), ".xlsx") {
		return fmt.Errorf("%w: bad filename %q", ErrInvalidUpload, filename)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return err
	}
	// A fresh file version means every cached derivation may be stale.
	s.loader.PurgeAll()
	return nil
}

func toFileList(files []excel.FileInfo) *dto.FileListResponse {
	resp := &dto.FileListResponse{Data: make([]dto.FileInfoResponse, 0, len(files))}
	for _, f := range files {
		resp.Data = append(resp.Data, toFileInfoResponse(f))
	}
	return resp
}
