// Package analytics contiene los casos de uso del dashboard, el registro diario
// de ventas y su exportación/archivo.
package analytics

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/ports"
	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

const defaultCacheTTL = 5 * time.Minute

// Viewer usuario que consulta; su rol decide la visibilidad.
type Viewer struct {
	UserID string
	Role   string
}

// IsAdmin indica si ve todos los datos.
func (v Viewer) IsAdmin() bool { return v.Role == entity.RoleAdmin }

// systemViewer usado por el archivo nocturno.
var systemViewer = Viewer{UserID: "system", Role: entity.RoleAdmin}

// Deps dependencias del caso de uso. Cache, Exporter, Renderer y Storage son opcionales.
type Deps struct {
	Customers         repository.CustomerRepository
	SalesPersons      repository.SalesPersonRepository
	Products          repository.ProductRepository
	Sales             repository.SaleEntryRepository
	Cache             ports.ResultCache
	CacheTTL          time.Duration
	Exporter          ports.ReportExporter
	Renderer          ports.ReportRenderer
	Storage           ports.ObjectStorage
	StoragePrefix     string
	HiddenSalesPerson string
	Now               func() time.Time
	Logger            *logger.Logger
}

// AnalyticsUseCase carga la instantánea de datos, aplica la visibilidad del usuario
// y delega el cálculo en el motor de agregación.
type AnalyticsUseCase struct {
	customers     repository.CustomerRepository
	salesPersons  repository.SalesPersonRepository
	products      repository.ProductRepository
	sales         repository.SaleEntryRepository
	cache         ports.ResultCache
	cacheTTL      time.Duration
	exporter      ports.ReportExporter
	renderer      ports.ReportRenderer
	storage       ports.ObjectStorage
	storagePrefix string
	hidden        string
	now           func() time.Time
	log           *logger.Logger
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(d Deps) *AnalyticsUseCase {
	uc := &AnalyticsUseCase{
		customers:     d.Customers,
		salesPersons:  d.SalesPersons,
		products:      d.Products,
		sales:         d.Sales,
		cache:         d.Cache,
		cacheTTL:      d.CacheTTL,
		exporter:      d.Exporter,
		renderer:      d.Renderer,
		storage:       d.Storage,
		storagePrefix: strings.Trim(d.StoragePrefix, "/"),
		hidden:        d.HiddenSalesPerson,
		now:           d.Now,
		log:           d.Logger,
	}
	if uc.cacheTTL <= 0 {
		uc.cacheTTL = defaultCacheTTL
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	return uc
}

// loadSnapshot lee las cuatro colecciones en paralelo y aplica la visibilidad.
func (uc *AnalyticsUseCase) loadSnapshot(ctx context.Context, viewer Viewer) (engine.Snapshot, error) {
	type customersResult struct {
		rows []entity.Customer
		err  error
	}
	type peopleResult struct {
		rows []entity.SalesPerson
		err  error
	}
	type productsResult struct {
		rows []entity.Product
		err  error
	}
	type salesResult struct {
		rows []entity.SaleEntry
		err  error
	}

	cCh := make(chan customersResult, 1)
	pCh := make(chan peopleResult, 1)
	prCh := make(chan productsResult, 1)
	sCh := make(chan salesResult, 1)

	go func() {
		rows, err := uc.customers.ListWithFollowUps(ctx)
		cCh <- customersResult{rows, err}
	}()
	go func() {
		rows, err := uc.salesPersons.List(ctx)
		pCh <- peopleResult{rows, err}
	}()
	go func() {
		rows, err := uc.products.ListAll(ctx)
		prCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.sales.ListAll(ctx)
		sCh <- salesResult{rows, err}
	}()

	customers := <-cCh
	people := <-pCh
	products := <-prCh
	sales := <-sCh

	if customers.err != nil {
		return engine.Snapshot{}, fmt.Errorf("analytics: clientes: %w", customers.err)
	}
	if people.err != nil {
		return engine.Snapshot{}, fmt.Errorf("analytics: vendedores: %w", people.err)
	}
	if products.err != nil {
		return engine.Snapshot{}, fmt.Errorf("analytics: productos: %w", products.err)
	}
	if sales.err != nil {
		return engine.Snapshot{}, fmt.Errorf("analytics: ventas: %w", sales.err)
	}

	snap := engine.Snapshot{
		Customers:    customers.rows,
		SalesPersons: people.rows,
		Products:     products.rows,
		Sales:        sales.rows,
	}
	return snap.Visible(engine.HiddenSalesPersonPolicy(uc.hidden, viewer.IsAdmin())), nil
}

// cacheKey incluye versión de datos, alcance de visibilidad y el día actual
// (los resultados dependen de "hoy"). Los parámetros van escapados para que
// un ":" dentro de un valor no colisione con otra combinación.
func (uc *AnalyticsUseCase) cacheKey(version int64, kind string, viewer Viewer, now time.Time, params ...string) string {
	scope := "restricted"
	if viewer.IsAdmin() {
		scope = "admin"
	}
	parts := []string{
		"analytics",
		fmt.Sprintf("v%d", version),
		kind,
		scope,
		now.Format("2006-01-02"),
	}
	for _, p := range params {
		parts = append(parts, url.QueryEscape(p))
	}
	return strings.Join(parts, ":")
}

// cached devuelve el resultado memoizado o lo calcula y lo guarda.
// Los fallos de caché se registran y nunca fallan la petición.
func cached[T any](ctx context.Context, uc *AnalyticsUseCase, kind string, viewer Viewer, now time.Time, params []string, compute func() (*T, error)) (*T, error) {
	if uc.cache == nil {
		return compute()
	}
	version, err := uc.cache.Version(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("caché: no se pudo leer la versión")
		return compute()
	}
	key := uc.cacheKey(version, kind, viewer, now, params...)

	var hit T
	found, err := uc.cache.Get(ctx, key, &hit)
	if err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché: lectura fallida")
	}
	if found {
		return &hit, nil
	}

	out, err := compute()
	if err != nil {
		return nil, err
	}
	if err := uc.cache.Set(ctx, key, out, uc.cacheTTL); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("caché: escritura fallida")
	}
	return out, nil
}
