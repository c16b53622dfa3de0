package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// ProductUseCase casos de uso CRUD para marcas y productos. El stock baja con cada venta registrada.
type ProductUseCase struct {
	products repository.ProductRepository
	brands   repository.BrandRepository
	bumper   versionBumper
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, brands repository.BrandRepository, inv ports.CacheInvalidator, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, brands: brands, bumper: newVersionBumper(inv, log)}
}

// CreateBrand crea una marca. El nombre es único.
func (uc *ProductUseCase) CreateBrand(ctx context.Context, in dto.BrandRequest) (*dto.BrandResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.brands.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	b := &entity.Brand{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	if err := uc.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return &dto.BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt}, nil
}

// ListBrands todas las marcas por nombre.
func (uc *ProductUseCase) ListBrands(ctx context.Context) ([]dto.BrandResponse, error) {
	rows, err := uc.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(rows))
	for _, b := range rows {
		out = append(out, dto.BrandResponse{ID: b.ID, Name: b.Name, CreatedAt: b.CreatedAt})
	}
	return out, nil
}

// DeleteBrand elimina una marca sin productos.
func (uc *ProductUseCase) DeleteBrand(ctx context.Context, id string) error {
	if err := uc.brands.Delete(ctx, id); err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

// Create crea un producto con stock inicial.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Quantity < 0 || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	brand, err := uc.brand(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		BrandID:     brand.ID,
		BrandName:   brand.Name,
		Name:        strings.TrimSpace(in.Name),
		ModelNumber: strings.TrimSpace(in.ModelNumber),
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(p), nil
}

// Update actualiza un producto. Quantity permite corregir el stock a mano (recuento).
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.BrandID != nil && *in.BrandID != p.BrandID {
		brand, err := uc.brand(ctx, *in.BrandID)
		if err != nil {
			return nil, err
		}
		p.BrandID, p.BrandName = brand.ID, brand.Name
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.ModelNumber != nil {
		p.ModelNumber = strings.TrimSpace(*in.ModelNumber)
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if p.Name == "" || p.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	p.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toProductResponse(p), nil
}

// List lista productos con los mismos filtros que la analítica de inventario.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	limit, offset := page(in.Limit, in.Offset)
	rows, total, err := uc.products.List(ctx, repository.ProductFilter{
		Search:  strings.TrimSpace(in.Search),
		BrandID: in.BrandID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(rows))
	for _, p := range rows {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Delete elimina un producto. Con ventas registradas el repositorio devuelve ErrConflict.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

func (uc *ProductUseCase) brand(ctx context.Context, id string) (*entity.Brand, error) {
	b, err := uc.brands.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		BrandID:     p.BrandID,
		BrandName:   p.BrandName,
		Name:        p.Name,
		ModelNumber: p.ModelNumber,
		Quantity:    p.Quantity,
		StockStatus: engine.StockStatus(p.Quantity),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
