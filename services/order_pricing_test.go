package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adiwirasta/franchise-supply-app/models"
)

func TestComputeOrderLinesTotals(t *testing.T) {
	catalog := []models.VendorCatalogItem{
		{VendorID: 1, Name: "rice", VendorPrice: 40},
		{VendorID: 1, Name: "Cooking Oil", VendorPrice: 15},
	}

	items := []RequestedItem{
		{ItemID: 1, ItemName: "Rice", Quantity: 10, Unit: "kg", UnitPrice: 50},
		{ItemID: 2, ItemName: "cooking oil ", Quantity: 2, Unit: "ltr", UnitPrice: 20},
	}

	lines, totalAmount, totalVendorCost := ComputeOrderLines(items, catalog)

	assert.Len(t, lines, 2)
	assert.Equal(t, 500.0, lines[0].LineTotal)
	assert.Equal(t, 400.0, lines[0].VendorCostLine)
	assert.Equal(t, 40.0, lines[0].VendorPrice)
	assert.Equal(t, 540.0, totalAmount)
	assert.Equal(t, 430.0, totalVendorCost)

	// Total selalu sama dengan jumlah field line-nya.
	var sumAmount, sumCost float64
	for _, line := range lines {
		sumAmount += line.LineTotal
		sumCost += line.VendorCostLine
	}
	assert.Equal(t, sumAmount, totalAmount)
	assert.Equal(t, sumCost, totalVendorCost)
}

func TestComputeOrderLinesEmpty(t *testing.T) {
	lines, totalAmount, totalVendorCost := ComputeOrderLines(nil, nil)
	assert.Empty(t, lines)
	assert.Equal(t, 0.0, totalAmount)
	assert.Equal(t, 0.0, totalVendorCost)
}

func TestComputeOrderLinesZeroAndMissingValues(t *testing.T) {
	items := []RequestedItem{
		{ItemName: "Rice", Quantity: 0, UnitPrice: 50},
		{ItemName: "Sugar", Quantity: 5}, // harga tidak dikirim
		{ItemName: "Salt", Quantity: -3, UnitPrice: -10},
		{ItemName: "Flour", Quantity: math.NaN(), UnitPrice: 12},
	}

	lines, totalAmount, totalVendorCost := ComputeOrderLines(items, nil)

	assert.Len(t, lines, 4)
	for _, line := range lines {
		assert.False(t, math.IsNaN(line.LineTotal))
		assert.False(t, math.IsNaN(line.VendorCostLine))
		assert.GreaterOrEqual(t, line.LineTotal, 0.0)
		assert.GreaterOrEqual(t, line.VendorCostLine, 0.0)
	}
	assert.Equal(t, 0.0, totalAmount)
	assert.Equal(t, 0.0, totalVendorCost)
}

func TestCatalogMatchingIsCaseAndWhitespaceInsensitive(t *testing.T) {
	catalog := []models.VendorCatalogItem{
		{Name: "tomato", VendorPrice: 7},
	}

	linesUpper, _, costUpper := ComputeOrderLines([]RequestedItem{
		{ItemName: "Tomato ", Quantity: 1, UnitPrice: 10},
	}, catalog)
	linesLower, _, costLower := ComputeOrderLines([]RequestedItem{
		{ItemName: "tomato", Quantity: 1, UnitPrice: 10},
	}, catalog)

	assert.Equal(t, 7.0, linesUpper[0].VendorPrice)
	assert.Equal(t, 7.0, linesLower[0].VendorPrice)
	assert.Equal(t, costUpper, costLower)
}

func TestUnmatchedItemDegradesVendorCostOnly(t *testing.T) {
	catalog := []models.VendorCatalogItem{
		{Name: "rice", VendorPrice: 40},
	}

	lines, totalAmount, totalVendorCost := ComputeOrderLines([]RequestedItem{
		{ItemName: "Dragonfruit", Quantity: 3, UnitPrice: 25},
	}, catalog)

	// Sisi pembeli tidak terpengaruh, hanya biaya vendor yang 0.
	assert.Equal(t, 0.0, lines[0].VendorPrice)
	assert.Equal(t, 75.0, totalAmount)
	assert.Equal(t, 0.0, totalVendorCost)
}
