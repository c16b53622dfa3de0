// Package ports define los puertos de salida de la capa de aplicación
// (exportadores, almacenamiento y caché), implementados en infrastructure.
package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
)

// ReportExporter serializa el registro diario a una hoja de cálculo.
type ReportExporter interface {
	ExportDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, error)
}

// ReportRenderer genera la versión imprimible (PDF) del registro diario.
type ReportRenderer interface {
	RenderDailyReport(ctx context.Context, report *dto.DailyReportDTO) ([]byte, error)
}

// ObjectStorage almacenamiento de archivos generados.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}

// CacheInvalidator incrementa la versión de datos; los resultados cacheados
// con una versión anterior dejan de usarse.
type CacheInvalidator interface {
	BumpVersion(ctx context.Context) (int64, error)
}

// ResultCache caché de resultados de analítica (JSON) con versión de datos.
type ResultCache interface {
	CacheInvalidator
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Version(ctx context.Context) (int64, error)
}
