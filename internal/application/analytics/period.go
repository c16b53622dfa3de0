package analytics

import (
	"fmt"
	"time"

	"github.com/jhoicas/Backoffice-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseReportRange convierte los strings YYYY-MM-DD en días calendario de la zona de now.
// Sin inicio: primer día del mes actual. Sin fin: hoy.
func parseReportRange(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if endStr == "" {
		end = today
	} else {
		end, err = time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date inválido", domain.ErrInvalidInput)
		}
	}

	if startStr == "" {
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	} else {
		start, err = time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date inválido", domain.ErrInvalidInput)
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date no puede ser posterior a end_date", domain.ErrInvalidInput)
	}
	return start, end, nil
}

// reportFileName nombre del archivo exportado.
func reportFileName(start, end time.Time, ext string) string {
	return fmt.Sprintf("Daily_Sales_Report_%s_to_%s.%s", start.Format(dateLayout), end.Format(dateLayout), ext)
}
