package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

// csvColumns cabecera esperada (en cualquier orden, insensible a mayúsculas).
var csvColumns = []string{"customer", "mobile", "location", "salesperson", "date", "status", "amount", "remarks", "received"}

// followUpRow una fila del CSV ya normalizada.
type followUpRow struct {
	Line        int
	Customer    string
	Mobile      string
	Location    string
	SalesPerson string
	Date        string
	Status      string
	Amount      *decimal.Decimal
	Remarks     string
	Received    bool
}

// parseFollowUpCSV lee el CSV completo. La primera fila es la cabecera.
func parseFollowUpCSV(r io.Reader) ([]followUpRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, col := range []string{"customer", "mobile", "salesperson", "date", "status"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("falta la columna %q (esperadas: %s)", col, strings.Join(csvColumns, ","))
		}
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []followUpRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row := followUpRow{
			Line:        line,
			Customer:    get(rec, "customer"),
			Mobile:      get(rec, "mobile"),
			Location:    get(rec, "location"),
			SalesPerson: get(rec, "salesperson"),
			Date:        get(rec, "date"),
			Status:      get(rec, "status"),
			Remarks:     get(rec, "remarks"),
		}
		if row.Customer == "" && row.Mobile == "" {
			continue
		}
		if s := strings.ReplaceAll(get(rec, "amount"), ",", ""); s != "" {
			amt, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("línea %d: monto %q inválido", line, s)
			}
			row.Amount = &amt
		}
		if s := get(rec, "received"); s != "" {
			row.Received, _ = strconv.ParseBool(strings.ToLower(s))
			if strings.EqualFold(s, "yes") || strings.EqualFold(s, "si") || strings.EqualFold(s, "sí") {
				row.Received = true
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type salesPersonService interface {
	List(ctx context.Context) ([]dto.SalesPersonResponse, error)
	Create(ctx context.Context, in dto.SalesPersonRequest) (*dto.SalesPersonResponse, error)
}

type customerService interface {
	Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	AddFollowUp(ctx context.Context, customerID string, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error)
}

type importStats struct {
	SalesPersons int
	Customers    int
	FollowUps    int
}

// importer crea vendedores por nombre y clientes por móvil a medida que aparecen.
// Pensado para una base recién creada: no busca clientes existentes.
type importer struct {
	salesPersons salesPersonService
	customers    customerService
	log          *logger.Logger
}

func (imp *importer) Run(ctx context.Context, rows []followUpRow) (importStats, error) {
	var stats importStats

	existing, err := imp.salesPersons.List(ctx)
	if err != nil {
		return stats, err
	}
	spByName := make(map[string]string, len(existing))
	for _, sp := range existing {
		spByName[strings.ToLower(sp.Name)] = sp.ID
	}
	customerByMobile := make(map[string]string)

	for _, row := range rows {
		spKey := strings.ToLower(row.SalesPerson)
		spID, ok := spByName[spKey]
		if !ok {
			sp, err := imp.salesPersons.Create(ctx, dto.SalesPersonRequest{Name: row.SalesPerson})
			if err != nil {
				return stats, fmt.Errorf("línea %d: vendedor %q: %w", row.Line, row.SalesPerson, err)
			}
			spID = sp.ID
			spByName[spKey] = spID
			stats.SalesPersons++
		}

		customerID, ok := customerByMobile[row.Mobile]
		if !ok {
			c, err := imp.customers.Create(ctx, dto.CreateCustomerRequest{
				Name: row.Customer, Mobile: row.Mobile, Location: row.Location, SalesPersonID: spID,
			})
			if err != nil {
				return stats, fmt.Errorf("línea %d: cliente %q: %w", row.Line, row.Customer, err)
			}
			customerID = c.ID
			customerByMobile[row.Mobile] = customerID
			stats.Customers++
		}

		_, err := imp.customers.AddFollowUp(ctx, customerID, dto.CreateFollowUpRequest{
			Date:           row.Date,
			Status:         row.Status,
			SalesAmount:    row.Amount,
			Remarks:        row.Remarks,
			AmountReceived: row.Received,
		})
		if err != nil {
			return stats, fmt.Errorf("línea %d: seguimiento: %w", row.Line, err)
		}
		stats.FollowUps++
	}
	imp.log.Debug().Int("follow_ups", stats.FollowUps).Msg("filas importadas")
	return stats, nil
}
