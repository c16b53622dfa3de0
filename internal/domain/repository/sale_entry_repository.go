package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SaleEntryRepository define el puerto de persistencia para SaleEntry.
type SaleEntryRepository interface {
	Create(ctx context.Context, entry *entity.SaleEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.SaleEntry, error)
	// ListByRange lista ventas entre start y end (días inclusive), más recientes primero.
	ListByRange(ctx context.Context, start, end time.Time, limit, offset int) ([]entity.SaleEntry, int, error)
	ListAll(ctx context.Context) ([]entity.SaleEntry, error)
}
