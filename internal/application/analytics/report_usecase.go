package analytics

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/internal/domain"
	engine "github.com/jhoicas/Backoffice-api/internal/domain/analytics"
)

const (
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// ExportFile archivo generado listo para descargar.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// GetDailyReport construye el registro diario de ventas y su resumen para el rango pedido.
func (uc *AnalyticsUseCase) GetDailyReport(ctx context.Context, viewer Viewer, req dto.DailyReportRequest) (*dto.DailyReportDTO, error) {
	salesType, err := engine.ParseSalesType(req.SalesType)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	start, end, err := parseReportRange(req.StartDate, req.EndDate, now)
	if err != nil {
		return nil, err
	}
	params := []string{start.Format(dateLayout), end.Format(dateLayout), req.SalesPersonID, string(salesType)}

	return cached(ctx, uc, "daily", viewer, now, params, func() (*dto.DailyReportDTO, error) {
		return uc.buildDailyReport(ctx, viewer, start, end, req.SalesPersonID, salesType)
	})
}

func (uc *AnalyticsUseCase) buildDailyReport(ctx context.Context, viewer Viewer, start, end time.Time, salesPersonID string, salesType engine.SalesType) (*dto.DailyReportDTO, error) {
	snap, err := uc.loadSnapshot(ctx, viewer)
	if err != nil {
		return nil, err
	}
	days := engine.BuildDailyLog(snap.Customers, snap.Sales, snap.Products, engine.DailyLogRequest{
		Start:         start,
		End:           end,
		SalesPersonID: salesPersonID,
		SalesType:     salesType,
	})
	return &dto.DailyReportDTO{
		Period:    dto.PeriodDTO{StartDate: start.Format(dateLayout), EndDate: end.Format(dateLayout)},
		SalesType: string(salesType),
		Days:      toDaySalesDTOs(days),
		Summary:   toSummaryDTO(engine.Summarize(days)),
	}, nil
}

// ExportDailyReport genera el registro diario como xlsx (por defecto) o pdf.
func (uc *AnalyticsUseCase) ExportDailyReport(ctx context.Context, viewer Viewer, req dto.DailyReportRequest) (*ExportFile, error) {
	report, err := uc.GetDailyReport(ctx, viewer, req)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, report, req.Format)
}

func (uc *AnalyticsUseCase) render(ctx context.Context, report *dto.DailyReportDTO, format string) (*ExportFile, error) {
	start, err := time.Parse(dateLayout, report.Period.StartDate)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	end, err := time.Parse(dateLayout, report.Period.EndDate)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	switch format {
	case "", FormatXLSX:
		if uc.exporter == nil {
			return nil, fmt.Errorf("export: exportador xlsx no configurado")
		}
		content, err := uc.exporter.ExportDailyReport(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
		return &ExportFile{Filename: reportFileName(start, end, FormatXLSX), ContentType: ContentTypeXLSX, Content: content}, nil
	case FormatPDF:
		if uc.renderer == nil {
			return nil, fmt.Errorf("export: generador pdf no configurado")
		}
		content, err := uc.renderer.RenderDailyReport(ctx, report)
		if err != nil {
			return nil, fmt.Errorf("export pdf: %w", err)
		}
		return &ExportFile{Filename: reportFileName(start, end, FormatPDF), ContentType: ContentTypePDF, Content: content}, nil
	default:
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}
}

// ArchiveDailyReport exporta el rango completo (vista de administrador) a xlsx y lo sube al bucket.
func (uc *AnalyticsUseCase) ArchiveDailyReport(ctx context.Context, startDate, endDate string) (*dto.ArchiveReportResponse, error) {
	if uc.storage == nil {
		return nil, domain.ErrStorageDisabled
	}
	start, end, err := parseReportRange(startDate, endDate, uc.now())
	if err != nil {
		return nil, err
	}
	report, err := uc.buildDailyReport(ctx, systemViewer, start, end, "", engine.SalesTypeAll)
	if err != nil {
		return nil, err
	}
	file, err := uc.render(ctx, report, FormatXLSX)
	if err != nil {
		return nil, err
	}

	key := path.Join(uc.storagePrefix, start.Format("2006"), start.Format("01"), file.Filename)
	if err := uc.storage.Put(ctx, key, file.Content, file.ContentType); err != nil {
		return nil, fmt.Errorf("archive: %w", err)
	}
	uc.log.Info().Str("key", key).Int("bytes", len(file.Content)).Msg("reporte diario archivado")
	return &dto.ArchiveReportResponse{Key: key, Size: len(file.Content)}, nil
}

// ArchiveDay archiva el reporte de un único día. Lo usa el scheduler nocturno.
func (uc *AnalyticsUseCase) ArchiveDay(ctx context.Context, day time.Time) error {
	d := day.Format(dateLayout)
	_, err := uc.ArchiveDailyReport(ctx, d, d)
	return err
}
