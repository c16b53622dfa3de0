package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria (solo los métodos que usan los casos de uso)
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct {
	repository.ProductRepository
	rows map[string]*entity.Product
}

func (m *memProducts) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return m.GetByID(ctx, id)
}

func (m *memProducts) AdjustQuantity(ctx context.Context, id string, delta int) error {
	p, ok := m.rows[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity += delta
	return nil
}

func (m *memProducts) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

type memBrands struct {
	repository.BrandRepository
	rows map[string]*entity.Brand
}

func (m *memBrands) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	return m.rows[id], nil
}

func (m *memBrands) GetByName(ctx context.Context, name string) (*entity.Brand, error) {
	for _, b := range m.rows {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memBrands) Create(ctx context.Context, b *entity.Brand) error {
	m.rows[b.ID] = b
	return nil
}

type memSales struct {
	repository.SaleEntryRepository
	rows map[string]*entity.SaleEntry
}

func (m *memSales) Create(ctx context.Context, s *entity.SaleEntry) error {
	cp := *s
	m.rows[s.ID] = &cp
	return nil
}

func (m *memSales) GetByID(ctx context.Context, id string) (*entity.SaleEntry, error) {
	return m.rows[id], nil
}

func (m *memSales) Delete(ctx context.Context, id string) error {
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memSales) ListByRange(ctx context.Context, start, end time.Time, limit, offset int) ([]entity.SaleEntry, int, error) {
	out := []entity.SaleEntry{}
	for _, s := range m.rows {
		if !s.SaleDate.Before(start) && !s.SaleDate.After(end) {
			out = append(out, *s)
		}
	}
	return out, len(out), nil
}

// memTx ejecuta fn sin transacción real; si fn falla no revierte (los tests lo tienen en cuenta).
type memTx struct {
	products *memProducts
	sales    *memSales
}

func (t *memTx) RunSale(ctx context.Context, fn func(repository.ProductRepository, repository.SaleEntryRepository) error) error {
	return fn(t.products, t.sales)
}

type memCustomers struct {
	repository.CustomerRepository
	rows map[string]*entity.Customer
}

func (m *memCustomers) Create(ctx context.Context, c *entity.Customer) error {
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

func (m *memCustomers) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomers) Update(ctx context.Context, c *entity.Customer) error {
	cp := *c
	m.rows[c.ID] = &cp
	return nil
}

type memFollowUps struct {
	repository.FollowUpRepository
	rows []entity.FollowUp
}

func (m *memFollowUps) Create(ctx context.Context, f *entity.FollowUp) error {
	m.rows = append(m.rows, *f)
	return nil
}

func (m *memFollowUps) ListByCustomer(ctx context.Context, customerID string) ([]entity.FollowUp, error) {
	out := []entity.FollowUp{}
	for _, f := range m.rows {
		if f.CustomerID == customerID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memSalesPersons struct {
	repository.SalesPersonRepository
	rows map[string]*entity.SalesPerson
}

func (m *memSalesPersons) GetByID(ctx context.Context, id string) (*entity.SalesPerson, error) {
	return m.rows[id], nil
}

type memUsers struct {
	repository.UserRepository
	rows map[string]*entity.User
}

func (m *memUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return m.rows[id], nil
}

func (m *memUsers) UpdateRole(ctx context.Context, id, role string) error {
	m.rows[id].Role = role
	return nil
}

// countingInvalidator cuenta invalidaciones de caché.
type countingInvalidator struct{ bumps int64 }

func (c *countingInvalidator) BumpVersion(ctx context.Context) (int64, error) {
	c.bumps++
	return c.bumps, nil
}
