package analytics_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomers struct {
	repository.CustomerRepository
	rows  []entity.Customer
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeCustomers) ListWithFollowUps(ctx context.Context) ([]entity.Customer, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.rows, f.err
}

type fakeSalesPersons struct {
	repository.SalesPersonRepository
	rows []entity.SalesPerson
}

func (f *fakeSalesPersons) List(ctx context.Context) ([]entity.SalesPerson, error) {
	return f.rows, nil
}

type fakeProducts struct {
	repository.ProductRepository
	rows []entity.Product
}

func (f *fakeProducts) ListAll(ctx context.Context) ([]entity.Product, error) {
	return f.rows, nil
}

type fakeSales struct {
	repository.SaleEntryRepository
	rows []entity.SaleEntry
}

func (f *fakeSales) ListAll(ctx context.Context) ([]entity.SaleEntry, error) {
	return f.rows, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Puertos de salida
// ──────────────────────────────────────────────────────────────────────────────

// fakeCache guarda JSON igual que la caché real.
type fakeCache struct {
	mu      sync.Mutex
	version int64
	items   map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{items: map[string][]byte{}} }

func (c *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = raw
	return nil
}

func (c *fakeCache) Version(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version, nil
}

func (c *fakeCache) BumpVersion(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return c.version, nil
}

type fakeStorage struct {
	keys        []string
	contentType string
	size        int
}

func (s *fakeStorage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	s.keys = append(s.keys, key)
	s.contentType = contentType
	s.size = len(body)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func won(date string, amount int64) entity.FollowUp {
	return entity.FollowUp{
		Date:        day(date),
		Status:      entity.FollowUpStatusCompleted,
		SalesAmount: decimal.NewNullDecimal(decimal.NewFromInt(amount)),
	}
}

func seedCustomers() []entity.Customer {
	return []entity.Customer{
		{ID: "c1", Name: "Luis", SalesPersonID: "sp1", SalesPersonName: "Ana", CreatedAt: day("2024-03-10"),
			FollowUps: []entity.FollowUp{won("2024-03-14", 100)}},
		{ID: "c2", Name: "Marta", SalesPersonID: "sp2", SalesPersonName: "Oculto", CreatedAt: day("2024-03-11"),
			FollowUps: []entity.FollowUp{won("2024-03-14", 200)}},
	}
}

func seedPeople() []entity.SalesPerson {
	return []entity.SalesPerson{{ID: "sp1", Name: "Ana"}, {ID: "sp2", Name: "Oculto"}}
}

func seedProducts() []entity.Product {
	return []entity.Product{{ID: "p1", BrandID: "b1", BrandName: "Acme", Name: "Taladro", ModelNumber: "T-1", Quantity: 3}}
}

func seedSales() []entity.SaleEntry {
	return []entity.SaleEntry{{ID: "s1", ProductID: "p1", SaleDate: day("2024-03-13"), CustomerName: "Mostrador", QuantitySold: 2}}
}
