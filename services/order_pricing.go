package services

import (
	"math"
	"strings"

	"github.com/adiwirasta/franchise-supply-app/models"
)

// RequestedItem adalah satu baris permintaan dari body POST /orders.
type RequestedItem struct {
	ItemID    uint    `json:"item_id"`
	ItemName  string  `json:"item_name" binding:"required"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"uom"`
	UnitPrice float64 `json:"unit_price"`
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// nonNegative: kuantitas/harga yang hilang, negatif, atau NaN dianggap 0,
// request tidak pernah gagal karena angka jelek.
func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// matchCatalogPrice mencari harga vendor berdasarkan nama item yang sudah
// dinormalisasi (lowercase + trim). Match pertama menang; tanpa match harga 0
// sehingga hanya sisi biaya vendor yang terdegradasi.
func matchCatalogPrice(itemName string, catalog []models.VendorCatalogItem) float64 {
	want := normalizeName(itemName)
	for _, entry := range catalog {
		if normalizeName(entry.Name) == want {
			return nonNegative(entry.VendorPrice)
		}
	}
	return 0
}

// ComputeOrderLines membentuk OrderLine untuk tiap item yang diminta dan
// menghitung dua total: tagihan pembeli dan hak supplier.
func ComputeOrderLines(items []RequestedItem, catalog []models.VendorCatalogItem) ([]models.OrderLine, float64, float64) {
	lines := make([]models.OrderLine, 0, len(items))
	var totalAmount, totalVendorCost float64

	for _, item := range items {
		qty := nonNegative(item.Quantity)
		unitPrice := nonNegative(item.UnitPrice)
		vendorPrice := matchCatalogPrice(item.ItemName, catalog)

		line := models.OrderLine{
			ItemID:         item.ItemID,
			ItemName:       item.ItemName,
			OrderedQty:     qty,
			Unit:           item.Unit,
			UnitPrice:      unitPrice,
			VendorPrice:    vendorPrice,
			LineTotal:      qty * unitPrice,
			VendorCostLine: qty * vendorPrice,
		}
		totalAmount += line.LineTotal
		totalVendorCost += line.VendorCostLine
		lines = append(lines, line)
	}

	return lines, totalAmount, totalVendorCost
}
