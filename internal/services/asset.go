package services

import (
	"context"

	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/entities"
	"pump-inventory/internal/repositories"
)

type AssetServiceInterface interface {
	GetAssetsByPump(ctx context.Context, pumpID uint64) ([]entities.Asset, error)
	CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error)
	UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error
	DeleteAsset(ctx context.Context, id uint64) error
}

type AssetService struct {
	assetRepo repositories.AssetRepositoryInterface
	logger    *zap.Logger
}

func NewAssetService(
	assetRepo repositories.AssetRepositoryInterface,
	logger *zap.Logger,
) AssetServiceInterface {
	return &AssetService{
		assetRepo: assetRepo,
		logger:    logger,
	}
}

func (s *AssetService) GetAssetsByPump(ctx context.Context, pumpID uint64) ([]entities.Asset, error) {
	return s.assetRepo.GetAssetsByPump(ctx, pumpID)
}

func (s *AssetService) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	id, err := s.assetRepo.CreateAsset(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create asset", zap.Error(err))
		return 0, err
	}
	s.logger.Info("asset created", zap.Uint64("id", id), zap.Uint64("pumpID", payload.PumpID))
	return id, nil
}

func (s *AssetService) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	return s.assetRepo.UpdateAsset(ctx, id, payload)
}

func (s *AssetService) DeleteAsset(ctx context.Context, id uint64) error {
	return s.assetRepo.DeleteAsset(ctx, id)
}
