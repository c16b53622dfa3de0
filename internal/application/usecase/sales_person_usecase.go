package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// SalesPersonUseCase CRUD de vendedores.
type SalesPersonUseCase struct {
	repo   repository.SalesPersonRepository
	bumper versionBumper
}

// NewSalesPersonUseCase construye el caso de uso.
func NewSalesPersonUseCase(repo repository.SalesPersonRepository, inv ports.CacheInvalidator, log *logger.Logger) *SalesPersonUseCase {
	return &SalesPersonUseCase{repo: repo, bumper: newVersionBumper(inv, log)}
}

// Create registra un vendedor.
func (uc *SalesPersonUseCase) Create(ctx context.Context, in dto.SalesPersonRequest) (*dto.SalesPersonResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	sp := &entity.SalesPerson{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, sp); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toSalesPersonResponse(sp), nil
}

// Rename cambia el nombre. Los clientes lo ven por join, no hay que propagarlo.
func (uc *SalesPersonUseCase) Rename(ctx context.Context, id string, in dto.SalesPersonRequest) (*dto.SalesPersonResponse, error) {
	sp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	sp.Name = name
	if err := uc.repo.Update(ctx, sp); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toSalesPersonResponse(sp), nil
}

// Delete elimina un vendedor. Con clientes asignados el repositorio devuelve ErrConflict.
func (uc *SalesPersonUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

// GetByID obtiene un vendedor.
func (uc *SalesPersonUseCase) GetByID(ctx context.Context, id string) (*dto.SalesPersonResponse, error) {
	sp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, domain.ErrNotFound
	}
	return toSalesPersonResponse(sp), nil
}

// List todos los vendedores ordenados por nombre.
func (uc *SalesPersonUseCase) List(ctx context.Context) ([]dto.SalesPersonResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesPersonResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toSalesPersonResponse(&rows[i]))
	}
	return out, nil
}

func toSalesPersonResponse(sp *entity.SalesPerson) *dto.SalesPersonResponse {
	return &dto.SalesPersonResponse{ID: sp.ID, Name: sp.Name, CreatedAt: sp.CreatedAt}
}
