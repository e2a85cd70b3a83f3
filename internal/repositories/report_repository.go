package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"pump-inventory/internal/entities"
)

type ReportRepositoryInterface interface {
	GetInventory(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryRow, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

// GetInventory reads the joined pump/asset projection at request time.
func (r *ReportRepository) GetInventory(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryRow, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	builder := psql.
		Select(
			"p.id", "p.name", "p.location",
			"a.id", "a.serial_number", "a.asset_name", "a.asset_number",
			"a.barcode", "a.quantity", "a.units", "a.remarks",
		).
		From("assets AS a").
		Join("pumps AS p ON p.id = a.pump_id").
		OrderBy("p.id DESC", "a.id DESC")

	if filter.PumpID != nil {
		builder = builder.Where(sq.Eq{"a.pump_id": *filter.PumpID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build inventory query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	defer rows.Close()

	items := make([]entities.InventoryRow, 0)
	for rows.Next() {
		var row entities.InventoryRow
		err := rows.Scan(
			&row.PumpID, &row.PumpName, &row.Location,
			&row.AssetID, &row.SerialNumber, &row.AssetName, &row.AssetNumber,
			&row.Barcode, &row.Quantity, &row.Units, &row.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		items = append(items, row)
	}
	return items, rows.Err()
}
