package main

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Backoffice-api/internal/application/dto"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

const sampleCSV = "Customer,Mobile,Location,SalesPerson,Date,Status,Amount,Remarks,Received\n" +
	"Juan Pérez,3001112222,Centro,Ana,2024-03-01,Interested,,primera visita,\n" +
	"Juan Pérez,3001112222,Centro,Ana,2024-03-05,Sales completed,\"1,250.50\",cerró,yes\n" +
	"Luisa Gómez,3003334444,Norte,Beto,2024-03-02,Sales rejected,,precio,no\n"

func TestParseFollowUpCSV(t *testing.T) {
	rows, err := parseFollowUpCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Nil(t, rows[0].Amount)
	require.NotNil(t, rows[1].Amount)
	assert.Equal(t, "1250.5", rows[1].Amount.String())
	assert.True(t, rows[1].Received)
	assert.False(t, rows[2].Received)
	assert.Equal(t, 4, rows[2].Line)
}

func TestParseFollowUpCSV_FaltaColumna(t *testing.T) {
	_, err := parseFollowUpCSV(strings.NewReader("customer,mobile,date\nx,1,2024-01-01\n"))
	assert.Error(t, err)
}

func TestParseFollowUpCSV_MontoInvalido(t *testing.T) {
	in := "customer,mobile,salesperson,date,status,amount\nx,1,Ana,2024-01-01,Sales completed,abc\n"
	_, err := parseFollowUpCSV(strings.NewReader(in))
	assert.ErrorContains(t, err, "línea 2")
}

type memSalesPersons struct{ items []dto.SalesPersonResponse }

func (m *memSalesPersons) List(ctx context.Context) ([]dto.SalesPersonResponse, error) {
	return m.items, nil
}

func (m *memSalesPersons) Create(ctx context.Context, in dto.SalesPersonRequest) (*dto.SalesPersonResponse, error) {
	sp := dto.SalesPersonResponse{ID: fmt.Sprintf("sp%d", len(m.items)+1), Name: in.Name}
	m.items = append(m.items, sp)
	return &sp, nil
}

type memCustomers struct {
	created   []dto.CreateCustomerRequest
	followUps map[string]int
}

func (m *memCustomers) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	m.created = append(m.created, in)
	return &dto.CustomerResponse{ID: fmt.Sprintf("c%d", len(m.created))}, nil
}

func (m *memCustomers) AddFollowUp(ctx context.Context, customerID string, in dto.CreateFollowUpRequest) (*dto.FollowUpResponse, error) {
	m.followUps[customerID]++
	return &dto.FollowUpResponse{ID: "f"}, nil
}

func TestImporter_Run(t *testing.T) {
	rows, err := parseFollowUpCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	sps := &memSalesPersons{items: []dto.SalesPersonResponse{{ID: "sp-ana", Name: "ANA"}}}
	customers := &memCustomers{followUps: map[string]int{}}
	imp := &importer{salesPersons: sps, customers: customers, log: logger.Nop()}

	stats, err := imp.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, importStats{SalesPersons: 1, Customers: 2, FollowUps: 3}, stats)
	assert.Equal(t, "sp-ana", customers.created[0].SalesPersonID, "vendedor existente se reutiliza sin importar mayúsculas")
	assert.Equal(t, 2, customers.followUps["c1"])
	assert.Equal(t, 1, customers.followUps["c2"])
}
