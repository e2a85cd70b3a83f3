package services

import (
	"context"

	"go.uber.org/zap"

	"pump-inventory/internal/entities"
	"pump-inventory/internal/repositories"
)

type ReportServiceInterface interface {
	GetInventory(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryRow, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

func (s *ReportService) GetInventory(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryRow, error) {
	return s.reportRepo.GetInventory(ctx, filter)
}
