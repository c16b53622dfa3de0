package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// SalesPersonRepository define el puerto de persistencia para SalesPerson.
type SalesPersonRepository interface {
	Create(ctx context.Context, sp *entity.SalesPerson) error
	Update(ctx context.Context, sp *entity.SalesPerson) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.SalesPerson, error)
	List(ctx context.Context) ([]entity.SalesPerson, error)
}
