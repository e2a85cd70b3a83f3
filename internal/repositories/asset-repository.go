package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/entities"
	apperrors "pump-inventory/pkg/errors"
)

const assetTable = "assets"

// pgForeignKeyViolation is the SQLSTATE raised when an insert references a
// missing pump.
const pgForeignKeyViolation = "23503"

type AssetRepositoryInterface interface {
	GetAssetsByPump(ctx context.Context, pumpID uint64) ([]entities.Asset, error)
	CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error)
	UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error
	DeleteAsset(ctx context.Context, id uint64) error
	DeleteAssetsByPump(ctx context.Context, tx pgx.Tx, pumpID uint64) error
}

type AssetRepository struct {
	storage *pgxpool.Pool
}

func NewAssetRepository(storage *pgxpool.Pool) AssetRepositoryInterface {
	return &AssetRepository{storage: storage}
}

func (r *AssetRepository) GetAssetsByPump(ctx context.Context, pumpID uint64) ([]entities.Asset, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := psql.
		Select("id", "pump_id", "serial_number", "asset_name", "asset_number", "barcode", "quantity", "units", "remarks").
		From(assetTable).
		Where(sq.Eq{"pump_id": pumpID}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build asset list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]entities.Asset, 0)
	for rows.Next() {
		var a entities.Asset
		err := rows.Scan(
			&a.ID, &a.PumpID, &a.SerialNumber, &a.AssetName, &a.AssetNumber,
			&a.Barcode, &a.Quantity, &a.Units, &a.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) CreateAsset(ctx context.Context, payload dto.CreateAssetDTO) (uint64, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (pump_id, serial_number, asset_name, asset_number, barcode, quantity, units, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, assetTable)

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		payload.PumpID,
		payload.SerialNumber,
		payload.AssetName,
		payload.AssetNumber,
		payload.Barcode,
		payload.Quantity,
		payload.Units,
		payload.Remarks,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return 0, apperrors.NewBadRequestError("Unknown pump")
		}
		return 0, fmt.Errorf("failed to insert asset: %w", err)
	}
	return id, nil
}

func (r *AssetRepository) UpdateAsset(ctx context.Context, id uint64, payload dto.UpdateAssetDTO) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET serial_number = $1, asset_name = $2, asset_number = $3, barcode = $4,
			quantity = $5, units = $6, remarks = $7
		WHERE id = $8
	`, assetTable)

	result, err := r.storage.Exec(ctx, query,
		payload.SerialNumber,
		payload.AssetName,
		payload.AssetNumber,
		payload.Barcode,
		payload.Quantity,
		payload.Units,
		payload.Remarks,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) DeleteAsset(ctx context.Context, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", assetTable)

	result, err := r.storage.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAssetsByPump removes every asset owned by a pump. Runs inside the
// pump-delete transaction; zero rows is not an error, a pump may be empty.
func (r *AssetRepository) DeleteAssetsByPump(ctx context.Context, tx pgx.Tx, pumpID uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE pump_id = $1", assetTable)

	if _, err := tx.Exec(ctx, query, pumpID); err != nil {
		return fmt.Errorf("failed to delete pump assets: %w", err)
	}
	return nil
}
