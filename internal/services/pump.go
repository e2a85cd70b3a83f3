package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/entities"
	"pump-inventory/internal/repositories"
)

type PumpServiceInterface interface {
	GetPumps(ctx context.Context) ([]entities.Pump, error)
	CreatePump(ctx context.Context, payload dto.CreatePumpDTO) (*entities.Pump, error)
	UpdatePump(ctx context.Context, id uint64, payload dto.UpdatePumpDTO) error
	DeletePump(ctx context.Context, id uint64) error
}

type PumpService struct {
	pumpRepo  repositories.PumpRepositoryInterface
	assetRepo repositories.AssetRepositoryInterface
	txManager repositories.TxManagerInterface
	logger    *zap.Logger
}

func NewPumpService(
	pumpRepo repositories.PumpRepositoryInterface,
	assetRepo repositories.AssetRepositoryInterface,
	txManager repositories.TxManagerInterface,
	logger *zap.Logger,
) PumpServiceInterface {
	return &PumpService{
		pumpRepo:  pumpRepo,
		assetRepo: assetRepo,
		txManager: txManager,
		logger:    logger,
	}
}

func (s *PumpService) GetPumps(ctx context.Context) ([]entities.Pump, error) {
	return s.pumpRepo.GetPumps(ctx)
}

func (s *PumpService) CreatePump(ctx context.Context, payload dto.CreatePumpDTO) (*entities.Pump, error) {
	pump, err := s.pumpRepo.CreatePump(ctx, payload)
	if err != nil {
		s.logger.Error("failed to create pump", zap.Error(err))
		return nil, err
	}
	s.logger.Info("pump created", zap.Uint64("id", pump.ID), zap.String("name", pump.Name))
	return pump, nil
}

func (s *PumpService) UpdatePump(ctx context.Context, id uint64, payload dto.UpdatePumpDTO) error {
	return s.pumpRepo.UpdatePump(ctx, id, payload)
}

// DeletePump removes the pump together with every asset it owns. Both deletes
// run in one transaction: either the pump and its assets all go, or nothing
// does, so no orphaned asset rows can appear.
func (s *PumpService) DeletePump(ctx context.Context, id uint64) error {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		if err := s.assetRepo.DeleteAssetsByPump(ctx, tx, id); err != nil {
			return err
		}
		return s.pumpRepo.DeletePump(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("pump deleted", zap.Uint64("id", id))
	return nil
}
