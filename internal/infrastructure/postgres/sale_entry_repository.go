package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

var _ repository.SaleEntryRepository = (*SaleEntryRepo)(nil)

// SaleEntryRepo implementación de SaleEntryRepository (usable con pool o tx).
type SaleEntryRepo struct {
	q Querier
}

// NewSaleEntryRepository construye el adaptador.
func NewSaleEntryRepository(q Querier) *SaleEntryRepo {
	return &SaleEntryRepo{q: q}
}

const saleColumns = `id, product_id, sale_date, customer_name, quantity_sold, bill_number, created_at`

func scanSale(row pgx.Row, s *entity.SaleEntry, extra ...any) error {
	dest := append([]any{
		&s.ID, &s.ProductID, &s.SaleDate, &s.CustomerName, &s.QuantitySold, &s.BillNumber, &s.CreatedAt,
	}, extra...)
	return row.Scan(dest...)
}

// Create persiste una venta.
func (r *SaleEntryRepo) Create(ctx context.Context, s *entity.SaleEntry) error {
	query := `INSERT INTO sale_entries (` + saleColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, s.ID, s.ProductID, s.SaleDate, s.CustomerName, s.QuantitySold, s.BillNumber, s.CreatedAt)
	if err != nil {
		if mapped := mapWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert sale entry: %w", err)
	}
	return nil
}

// Delete elimina una venta.
func (r *SaleEntryRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM sale_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una venta.
func (r *SaleEntryRepo) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	var s entity.SaleEntry
	if err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sale_entries WHERE id = $1`, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale entry: %w", err)
	}
	return &s, nil
}

// ListByRange ventas entre start y end (días inclusive), más recientes primero.
func (r *SaleEntryRepo) ListByRange(ctx context.Context, start, end time.Time, limit, offset int) ([]entity.SaleEntry, int, error) {
	query := `SELECT ` + saleColumns + `, COUNT(*) OVER() FROM sale_entries
		WHERE sale_date BETWEEN $1::date AND $2::date
		ORDER BY sale_date DESC, created_at DESC, id
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, start.Format("2006-01-02"), end.Format("2006-01-02"), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sale entries: %w", err)
	}
	defer rows.Close()
	var (
		list  = []entity.SaleEntry{}
		total int
	)
	for rows.Next() {
		var s entity.SaleEntry
		if err := scanSale(rows, &s, &total); err != nil {
			return nil, 0, fmt.Errorf("scan sale entry: %w", err)
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

// ListAll todas las ventas en orden cronológico (instantánea para analítica).
func (r *SaleEntryRepo) ListAll(ctx context.Context) ([]entity.SaleEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sale_entries ORDER BY sale_date, created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list sale entries: %w", err)
	}
	defer rows.Close()
	list := []entity.SaleEntry{}
	for rows.Next() {
		var s entity.SaleEntry
		if err := scanSale(rows, &s); err != nil {
			return nil, fmt.Errorf("scan sale entry: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
