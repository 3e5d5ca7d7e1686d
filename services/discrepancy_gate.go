package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/models"
)

// DiscrepancyGate membaca discrepancy yang belum resolved untuk satu order.
// Pure read; dipakai sebagai veto pada transisi receive.
type DiscrepancyGate struct {
	DB *gorm.DB
}

func NewDiscrepancyGate(db *gorm.DB) *DiscrepancyGate {
	return &DiscrepancyGate{DB: db}
}

func (g *DiscrepancyGate) Unresolved(ctx context.Context, orderID uint) ([]models.Discrepancy, error) {
	var discrepancies []models.Discrepancy
	err := g.DB.WithContext(ctx).
		Where("order_id = ? AND resolved = ?", orderID, false).
		Find(&discrepancies).Error
	if err != nil {
		return nil, fmt.Errorf("query unresolved discrepancies for order %d: %w", orderID, err)
	}
	return discrepancies, nil
}
