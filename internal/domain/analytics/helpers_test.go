package analytics_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Backoffice-api/internal/domain/entity"
)

// now fijo para todos los tests: viernes 15 de marzo de 2024, 10:00 UTC.
var now = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func completed(date string, amount int64) entity.FollowUp {
	return entity.FollowUp{
		Date:        day(date),
		Status:      entity.FollowUpStatusCompleted,
		SalesAmount: decimal.NewNullDecimal(decimal.NewFromInt(amount)),
		Remarks:     "cerrado",
	}
}

func completedNoAmount(date string) entity.FollowUp {
	return entity.FollowUp{Date: day(date), Status: entity.FollowUpStatusCompleted}
}

func rejected(date string) entity.FollowUp {
	return entity.FollowUp{Date: day(date), Status: entity.FollowUpStatusRejected}
}

func pending(date string) entity.FollowUp {
	return entity.FollowUp{Date: day(date), Status: "Interested"}
}

func customer(id, spID, spName string, followUps ...entity.FollowUp) entity.Customer {
	return entity.Customer{
		ID:              id,
		Name:            "Cliente " + id,
		Mobile:          "555-" + id,
		Location:        "Centro",
		SalesPersonID:   spID,
		SalesPersonName: spName,
		CreatedAt:       time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC),
		FollowUps:       followUps,
	}
}

func sale(productID, date string, qty int) entity.SaleEntry {
	return entity.SaleEntry{ProductID: productID, SaleDate: day(date), CustomerName: "Mostrador", QuantitySold: qty}
}

func product(id, brandID, brandName, name, model string, qty int) entity.Product {
	return entity.Product{ID: id, BrandID: brandID, BrandName: brandName, Name: name, ModelNumber: model, Quantity: qty}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
