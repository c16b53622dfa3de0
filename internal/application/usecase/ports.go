package usecase

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Registrar o anular una venta toca stock y ventas a la vez.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(
		products repository.ProductRepository,
		sales repository.SaleEntryRepository,
	) error) error
}

// versionBumper invalida la caché de analítica después de cada escritura.
// Un fallo solo se registra: el dato ya quedó persistido.
type versionBumper struct {
	inv ports.CacheInvalidator
	log *logger.Logger
}

func newVersionBumper(inv ports.CacheInvalidator, log *logger.Logger) versionBumper {
	if log == nil {
		log = logger.Nop()
	}
	return versionBumper{inv: inv, log: log}
}

func (b versionBumper) bump(ctx context.Context) {
	if b.inv == nil {
		return
	}
	if _, err := b.inv.BumpVersion(ctx); err != nil {
		b.log.Warn().Err(err).Msg("caché: no se pudo invalidar la versión de datos")
	}
}
