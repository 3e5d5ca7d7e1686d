package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

func TestNotifierWritesNotifications(t *testing.T) {
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:notifiertest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	db.Exec("DELETE FROM notifications")

	notifier := NewNotifier(db, 8)
	notifier.Start()

	notifier.Notify(7, NotifTypeOrderPlaced, "New purchase order", "Order PO-1", "/orders", 1)
	notifier.Notify(7, NotifTypeOrderAccepted, "Order accepted", "Order PO-1", "/orders", 1)

	// Stop menunggu worker menguras antrian, setelahnya baris pasti tertulis.
	notifier.Stop()

	var notifications []models.Notification
	require.NoError(t, db.Where("user_id = ?", 7).Find(&notifications).Error)
	assert.Len(t, notifications, 2)
	assert.False(t, notifications[0].IsRead)
	assert.Equal(t, uint(1), notifications[0].ReferenceID)
}

func TestUnresolvedDiscrepancyQueryIsScopedToOrder(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:gatetest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Discrepancy{}))
	db.Exec("DELETE FROM discrepancies")

	require.NoError(t, db.Create(&models.Discrepancy{OrderID: 1, Description: "short delivery", ReportedBy: 1}).Error)
	require.NoError(t, db.Create(&models.Discrepancy{OrderID: 1, Description: "damaged packaging", ReportedBy: 1, Resolved: true}).Error)
	require.NoError(t, db.Create(&models.Discrepancy{OrderID: 2, Description: "other order", ReportedBy: 1}).Error)

	gate := NewDiscrepancyGate(db)
	unresolved, err := gate.Unresolved(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, unresolved, 1)
	assert.Equal(t, "short delivery", unresolved[0].Description)
}
