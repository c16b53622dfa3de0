package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/application/usecase"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

func newProductFixture() (*usecase.ProductUseCase, *countingInvalidator) {
	inv := &countingInvalidator{}
	uc := usecase.NewProductUseCase(
		&memProducts{rows: map[string]*entity.Product{}},
		&memBrands{rows: map[string]*entity.Brand{"b1": {ID: "b1", Name: "Acme"}}},
		inv, nil,
	)
	return uc, inv
}

func TestProductCreate_ConEstadoDeStock(t *testing.T) {
	uc, inv := newProductFixture()

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{BrandID: "b1", Name: "Taladro", ModelNumber: "T-1", Quantity: 4})
	require.NoError(t, err)

	assert.Equal(t, "Acme", out.BrandName)
	assert.Equal(t, "Low Stock", out.StockStatus)
	assert.Equal(t, int64(1), inv.bumps)
}

func TestProductCreate_MarcaInexistente(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{BrandID: "zz", Name: "Taladro"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBrand_Duplicada(t *testing.T) {
	uc, _ := newProductFixture()

	_, err := uc.CreateBrand(context.Background(), dto.BrandRequest{Name: "Acme"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err := uc.CreateBrand(context.Background(), dto.BrandRequest{Name: " Bosch "})
	require.NoError(t, err)
	assert.Equal(t, "Bosch", out.Name)
}
