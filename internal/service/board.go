package service

import (
	"context"
	"strings"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/repository"
)

type BoardService struct {
	repo repository.MaintenanceRepo
}

func NewBoardService(repo repository.MaintenanceRepo) *BoardService {
	return &BoardService{repo: repo}
}

// Snapshot projects the current tickets, optionally narrowed by search, into
// the board columns. Every call reads fresh records from the store.
func (s *BoardService) Snapshot(ctx context.Context, search string) (board.Snapshot, error) {
	records, _, err := s.repo.List(ctx, repository.RecordQuery{Search: strings.TrimSpace(search)})
	if err != nil {
		return board.Snapshot{}, err
	}
	return board.Project(records), nil
}

func (s *BoardService) Legend() board.Legend {
	return board.NewLegend()
}
