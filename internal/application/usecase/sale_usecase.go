package usecase

import (
	"context"
	"fmt"
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

// SaleUseCase ventas de inventario (mostrador).
type SaleUseCase struct {
	tx     SaleTxRunner
	sales  repository.SaleEntryRepository
	bumper versionBumper
	now    func() time.Time
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(tx SaleTxRunner, sales repository.SaleEntryRepository, inv ports.CacheInvalidator, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{tx: tx, sales: sales, bumper: newVersionBumper(inv, log), now: time.Now}
}

// Create registra la venta y descuenta el stock en la misma transacción.
//  1. Bloquea la fila del producto.
//  2. Verifica stock suficiente (nunca queda negativo).
//  3. Descuenta e inserta la venta.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.QuantitySold <= 0 || strings.TrimSpace(in.CustomerName) == "" {
		return nil, domain.ErrInvalidInput
	}
	saleDate, err := parseDay("sale_date", in.SaleDate)
	if err != nil {
		return nil, err
	}
	entry := &entity.SaleEntry{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		SaleDate:     saleDate,
		CustomerName: strings.TrimSpace(in.CustomerName),
		QuantitySold: in.QuantitySold,
		BillNumber:   in.BillNumber,
		CreatedAt:    uc.now(),
	}

	err = uc.tx.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleEntryRepository) error {
		p, err := products.GetByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
		}
		if p.Quantity < in.QuantitySold {
			return fmt.Errorf("%w: disponible %d, solicitado %d", domain.ErrInsufficientStock, p.Quantity, in.QuantitySold)
		}
		if err := products.AdjustQuantity(ctx, p.ID, -in.QuantitySold); err != nil {
			return err
		}
		return sales.Create(ctx, entry)
	})
	if err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toSaleResponse(entry), nil
}

// Delete anula la venta y devuelve las unidades al stock.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	err := uc.tx.RunSale(ctx, func(products repository.ProductRepository, sales repository.SaleEntryRepository) error {
		entry, err := sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return domain.ErrNotFound
		}
		p, err := products.GetByIDForUpdate(ctx, entry.ProductID)
		if err != nil {
			return err
		}
		if p != nil {
			if err := products.AdjustQuantity(ctx, p.ID, entry.QuantitySold); err != nil {
				return err
			}
		}
		return sales.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

// GetByID obtiene una venta.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	entry, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(entry), nil
}

// List ventas del rango (por defecto todo el histórico hasta hoy), más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context, in dto.SaleListRequest) (*dto.SaleListResponse, error) {
	limit, offset := page(in.Limit, in.Offset)
	now := uc.now()
	var start time.Time
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var err error
	if in.StartDate != "" {
		if start, err = parseDay("start_date", in.StartDate); err != nil {
			return nil, err
		}
	}
	if in.EndDate != "" {
		if end, err = parseDay("end_date", in.EndDate); err != nil {
			return nil, err
		}
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}

	rows, total, err := uc.sales.ListByRange(ctx, start, end, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *toSaleResponse(&rows[i]))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toSaleResponse(s *entity.SaleEntry) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		SaleDate:     s.SaleDate.Format(dateLayout),
		CustomerName: s.CustomerName,
		QuantitySold: s.QuantitySold,
		BillNumber:   s.BillNumber,
		CreatedAt:    s.CreatedAt,
	}
}
