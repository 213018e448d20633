package service

import (
	"context"

	"instituteCMS/internal/models"
	"instituteCMS/internal/repository"
)

type TablesService interface {
	GetStats(ctx context.Context) (*models.CollectionStats, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetStats(ctx context.Context) (*models.CollectionStats, error) {
	return t.tablesRepo.CountCollections(ctx)
}
