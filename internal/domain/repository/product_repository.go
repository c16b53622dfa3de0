package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// ProductFilter criterios de listado de productos (mismos que el filtro de inventario).
type ProductFilter struct {
	Search  string // subcadena en nombre o modelo
	BrandID string
	Limit   int
	Offset  int
}

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// AdjustQuantity suma delta (negativo para descontar) al stock.
	AdjustQuantity(ctx context.Context, id string, delta int) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int, error)
	ListAll(ctx context.Context) ([]entity.Product, error)
}

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	GetByName(ctx context.Context, name string) (*entity.Brand, error)
	List(ctx context.Context) ([]entity.Brand, error)
}
