package analytics

import (
	"context"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
)

// GetDashboard calcula todas las métricas del dashboard en una sola pasada:
//  1. Embudo de seguimientos y ranking de vendedores (clientes visibles).
//  2. Inventario y serie temporal sobre los productos filtrados.
//  3. Top de productos y marcas sobre la lista completa.
func (uc *AnalyticsUseCase) GetDashboard(ctx context.Context, viewer Viewer, req dto.DashboardRequest) (*dto.DashboardDTO, error) {
	period, err := engine.ParsePeriod(req.Period)
	if err != nil {
		return nil, err
	}
	salesType, err := engine.ParseSalesType(req.SalesType)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	params := []string{string(period), string(salesType), req.SalesPersonID, req.BrandID, req.Search}

	return cached(ctx, uc, "dashboard", viewer, now, params, func() (*dto.DashboardDTO, error) {
		snap, err := uc.loadSnapshot(ctx, viewer)
		if err != nil {
			return nil, err
		}

		filter := engine.ProductFilter{Search: req.Search, BrandID: req.BrandID}
		trend := engine.ComputeTrend(snap.Customers, snap.Sales, engine.TrendRequest{
			Period:        period,
			SalesPersonID: req.SalesPersonID,
			SalesType:     salesType,
			Products:      engine.FilterProducts(snap.Products, filter),
			Now:           now,
		})

		return &dto.DashboardDTO{
			Sales:            toSalesMetricsDTO(engine.ComputeSalesMetrics(snap.Customers, now)),
			Performance:      toPerformanceDTOs(engine.ComputePerformance(snap.SalesPersons, snap.Customers)),
			Inventory:        toInventoryDTO(engine.ComputeInventoryMetrics(snap.Products, snap.Sales, filter)),
			Trend:            toTrendDTO(trend, period, salesType),
			TopProducts:      toTopProductDTOs(engine.ComputeTopProducts(snap.Products, snap.Sales, now)),
			BrandPerformance: toBrandDTOs(engine.ComputeBrandPerformance(snap.Products, snap.Sales)),
		}, nil
	})
}
