package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pump-inventory/internal/dto"
	"pump-inventory/internal/entities"
	apperrors "pump-inventory/pkg/errors"
)

const pumpTable = "pumps"

type PumpRepositoryInterface interface {
	GetPumps(ctx context.Context) ([]entities.Pump, error)
	FindPump(ctx context.Context, id uint64) (*entities.Pump, error)
	CreatePump(ctx context.Context, payload dto.CreatePumpDTO) (*entities.Pump, error)
	UpdatePump(ctx context.Context, id uint64, payload dto.UpdatePumpDTO) error
	DeletePump(ctx context.Context, tx pgx.Tx, id uint64) error
}

type PumpRepository struct {
	storage *pgxpool.Pool
}

func NewPumpRepository(storage *pgxpool.Pool) PumpRepositoryInterface {
	return &PumpRepository{storage: storage}
}

// GetPumps returns the whole pump set, newest first, each row carrying its
// derived asset count. The count is aggregated in the query so it can never
// drift from the actual child rows.
func (r *PumpRepository) GetPumps(ctx context.Context) ([]entities.Pump, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := psql.
		Select("p.id", "p.name", "p.location", "p.manager", "COUNT(a.id) AS asset_count").
		From(pumpTable + " AS p").
		LeftJoin("assets AS a ON a.pump_id = p.id").
		GroupBy("p.id").
		OrderBy("p.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build pump list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pumps: %w", err)
	}
	defer rows.Close()

	pumps := make([]entities.Pump, 0)
	for rows.Next() {
		var p entities.Pump
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Manager, &p.AssetCount); err != nil {
			return nil, fmt.Errorf("failed to scan pump: %w", err)
		}
		pumps = append(pumps, p)
	}
	return pumps, rows.Err()
}

func (r *PumpRepository) FindPump(ctx context.Context, id uint64) (*entities.Pump, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.name, p.location, p.manager, COUNT(a.id) AS asset_count
		FROM %s p
			LEFT JOIN assets a ON a.pump_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, pumpTable)

	var p entities.Pump
	err := r.storage.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Location, &p.Manager, &p.AssetCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan pump: %w", err)
	}
	return &p, nil
}

func (r *PumpRepository) CreatePump(ctx context.Context, payload dto.CreatePumpDTO) (*entities.Pump, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (name, location, manager)
		VALUES ($1, $2, $3)
		RETURNING id
	`, pumpTable)

	pump := entities.Pump{
		Name:     payload.Name,
		Location: payload.Location,
		Manager:  payload.Manager,
	}
	if err := r.storage.QueryRow(ctx, query, payload.Name, payload.Location, payload.Manager).Scan(&pump.ID); err != nil {
		return nil, fmt.Errorf("failed to insert pump: %w", err)
	}
	return &pump, nil
}

func (r *PumpRepository) UpdatePump(ctx context.Context, id uint64, payload dto.UpdatePumpDTO) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, location = $2, manager = $3
		WHERE id = $4
	`, pumpTable)

	result, err := r.storage.Exec(ctx, query, payload.Name, payload.Location, payload.Manager, id)
	if err != nil {
		return fmt.Errorf("failed to update pump: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePump removes the pump row only. Callers delete the child assets in the
// same transaction; see PumpService.DeletePump.
func (r *PumpRepository) DeletePump(ctx context.Context, tx pgx.Tx, id uint64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", pumpTable)

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete pump: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
