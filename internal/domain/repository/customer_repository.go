package repository

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// CustomerFilter criterios de listado de clientes.
type CustomerFilter struct {
	Search        string // nombre o móvil, insensible a mayúsculas
	SalesPersonID string
	Limit         int
	Offset        int
}

// CustomerRepository define el puerto de persistencia para Customer (DIP).
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int, error)
	// ListWithFollowUps devuelve la instantánea completa para analítica.
	ListWithFollowUps(ctx context.Context) ([]entity.Customer, error)
}

// FollowUpRepository define el puerto de persistencia para FollowUp.
type FollowUpRepository interface {
	Create(ctx context.Context, followUp *entity.FollowUp) error
	Update(ctx context.Context, followUp *entity.FollowUp) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.FollowUp, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entity.FollowUp, error)
}
