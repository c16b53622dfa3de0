package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// CustomerUseCase clientes del embudo y sus seguimientos.
type CustomerUseCase struct {
	customers    repository.CustomerRepository
	followUps    repository.FollowUpRepository
	salesPersons repository.SalesPersonRepository
	bumper       versionBumper
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	customers repository.CustomerRepository,
	followUps repository.FollowUpRepository,
	salesPersons repository.SalesPersonRepository,
	inv ports.CacheInvalidator,
	log *logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customers:    customers,
		followUps:    followUps,
		salesPersons: salesPersons,
		bumper:       newVersionBumper(inv, log),
	}
}

// Create crea un cliente asignado a un vendedor existente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	sp, err := uc.salesPerson(ctx, in.SalesPersonID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c := &entity.Customer{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Name),
		Mobile:          strings.TrimSpace(in.Mobile),
		Location:        strings.TrimSpace(in.Location),
		SalesPersonID:   sp.ID,
		SalesPersonName: sp.Name,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if c.Name == "" || c.Mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toCustomerResponse(c), nil
}

// GetByID obtiene el cliente con sus seguimientos ordenados por fecha.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.customer(ctx, id)
	if err != nil {
		return nil, err
	}
	fus, err := uc.followUps.ListByCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	c.FollowUps = fus
	out := toCustomerResponse(c)
	out.FollowUps = make([]dto.FollowUpResponse, 0, len(fus))
	for i := range fus {
		out.FollowUps = append(out.FollowUps, *toFollowUpResponse(&fus[i]))
	}
	return out, nil
}

// Update actualiza los campos enviados. Cambiar el vendedor reasigna el cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := uc.customer(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Mobile != nil {
		c.Mobile = strings.TrimSpace(*in.Mobile)
	}
	if in.Location != nil {
		c.Location = strings.TrimSpace(*in.Location)
	}
	if in.SalesPersonID != nil && *in.SalesPersonID != c.SalesPersonID {
		sp, err := uc.salesPerson(ctx, *in.SalesPersonID)
		if err != nil {
			return nil, err
		}
		c.SalesPersonID, c.SalesPersonName = sp.ID, sp.Name
	}
	if c.Name == "" || c.Mobile == "" {
		return nil, domain.ErrInvalidInput
	}
	c.UpdatedAt = time.Now()
	if err := uc.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toCustomerResponse(c), nil
}

// Delete elimina el cliente y, en cascada, sus seguimientos.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.customers.Delete(ctx, id); err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

// List lista clientes con búsqueda y filtro por vendedor.
func (uc *CustomerUseCase) List(ctx context.Context, in dto.CustomerListRequest) (*dto.CustomerListResponse, error) {
	limit, offset := page(in.Limit, in.Offset)
	rows, total, err := uc.customers.List(ctx, repository.CustomerFilter{
		Search:        strings.TrimSpace(in.Search),
		SalesPersonID: in.SalesPersonID,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// AddFollowUp registra un seguimiento del cliente.
func (uc *CustomerUseCase) AddFollowUp(ctx context.Context, customerID string, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	if _, err := uc.customer(ctx, customerID); err != nil {
		return nil, err
	}
	date, err := parseDay("date", in.Date)
	if err != nil {
		return nil, err
	}
	amount, err := salesAmount(in.SalesAmount)
	if err != nil {
		return nil, err
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	f := &entity.FollowUp{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		Date:           date,
		Status:         status,
		SalesAmount:    amount,
		Remarks:        in.Remarks,
		AmountReceived: in.AmountReceived,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.followUps.Create(ctx, f); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toFollowUpResponse(f), nil
}

// UpdateFollowUp actualiza los campos enviados de un seguimiento.
func (uc *CustomerUseCase) UpdateFollowUp(ctx context.Context, id string, in dto.UpdateFollowUpRequest) (*dto.FollowUpResponse, error) {
	f, err := uc.followUps.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != nil {
		if f.Date, err = parseDay("date", *in.Date); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		status := strings.TrimSpace(*in.Status)
		if status == "" {
			return nil, domain.ErrInvalidInput
		}
		f.Status = status
	}
	if in.SalesAmount != nil {
		if f.SalesAmount, err = salesAmount(in.SalesAmount); err != nil {
			return nil, err
		}
	}
	if in.Remarks != nil {
		f.Remarks = *in.Remarks
	}
	if in.AmountReceived != nil {
		f.AmountReceived = *in.AmountReceived
	}
	f.UpdatedAt = time.Now()
	if err := uc.followUps.Update(ctx, f); err != nil {
		return nil, err
	}
	uc.bumper.bump(ctx)
	return toFollowUpResponse(f), nil
}

// DeleteFollowUp elimina un seguimiento.
func (uc *CustomerUseCase) DeleteFollowUp(ctx context.Context, id string) error {
	if err := uc.followUps.Delete(ctx, id); err != nil {
		return err
	}
	uc.bumper.bump(ctx)
	return nil
}

// ListFollowUps seguimientos de un cliente en orden de fecha.
func (uc *CustomerUseCase) ListFollowUps(ctx context.Context, customerID string) ([]dto.FollowUpResponse, error) {
	if _, err := uc.customer(ctx, customerID); err != nil {
		return nil, err
	}
	rows, err := uc.followUps.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FollowUpResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toFollowUpResponse(&rows[i]))
	}
	return out, nil
}

func (uc *CustomerUseCase) customer(ctx context.Context, id string) (*entity.Customer, error) {
	c, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (uc *CustomerUseCase) salesPerson(ctx context.Context, id string) (*entity.SalesPerson, error) {
	sp, err := uc.salesPersons.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, fmt.Errorf("%w: vendedor %s", domain.ErrNotFound, id)
	}
	return sp, nil
}

// salesAmount nil significa sin monto; los montos negativos no se aceptan.
func salesAmount(in *decimal.Decimal) (decimal.NullDecimal, error) {
	if in == nil {
		return decimal.NullDecimal{}, nil
	}
	if in.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%w: sales_amount no puede ser negativo", domain.ErrInvalidInput)
	}
	return decimal.NewNullDecimal(*in), nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Mobile:          c.Mobile,
		Location:        c.Location,
		SalesPersonID:   c.SalesPersonID,
		SalesPersonName: c.SalesPersonName,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toFollowUpResponse(f *entity.FollowUp) *dto.FollowUpResponse {
	out := &dto.FollowUpResponse{
		ID:             f.ID,
		CustomerID:     f.CustomerID,
		Date:           f.Date.Format(dateLayout),
		Status:         f.Status,
		Remarks:        f.Remarks,
		AmountReceived: f.AmountReceived,
		CreatedAt:      f.CreatedAt,
	}
	if f.SalesAmount.Valid {
		amount := f.SalesAmount.Decimal
		out.SalesAmount = &amount
	}
	return out
}
