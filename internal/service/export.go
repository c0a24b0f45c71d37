package service

import (
	"context"
	"io"

	"asset_maintenance/internal/export"
	"asset_maintenance/internal/models"
)

type lister interface {
	List(ctx context.Context, f ListFilter) (models.Page, error)
}

type ExportService struct {
	records lister
}

func NewExportService(records lister) *ExportService {
	return &ExportService{records: records}
}

// Report writes every ticket matching f as CSV. Paging in f is ignored.
func (s *ExportService) Report(ctx context.Context, f ListFilter, w io.Writer) error {
	f.Page, f.PageSize, f.Unpaged = 0, 0, true
	page, err := s.records.List(ctx, f)
	if err != nil {
		return err
	}
	return export.WriteReport(w, page.Records)
}
