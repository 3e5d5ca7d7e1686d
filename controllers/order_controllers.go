package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/services"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Resolver *services.VendorResolver
	Gate     *services.DiscrepancyGate
	Notifier *services.Notifier
}

func NewOrderController(db *gorm.DB, resolver *services.VendorResolver, gate *services.DiscrepancyGate, notifier *services.Notifier) *OrderController {
	return &OrderController{DB: db, Resolver: resolver, Gate: gate, Notifier: notifier}
}

// CreateOrder -> franchise membuat purchase order ke vendor assignment-nya.
// Vendor dan harga katalog di-snapshot di sini; order tidak pernah mengikuti
// perubahan assignment/katalog setelahnya.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsFranchiseRole(claims.Role) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}
	if claims.FranchiseID == nil || *claims.FranchiseID == 0 {
		utils.RespondError(c, http.StatusForbidden, ErrFranchiseRequired)
		return
	}

	type ReqBody struct {
		VendorID *uint                    `json:"vendor_id"`
		Items    []services.RequestedItem `json:"items" binding:"required,min=1"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()

	vendorID, err := oc.Resolver.ResolveVendor(ctx, *claims.FranchiseID, body.VendorID)
	if err != nil {
		if errors.Is(err, services.ErrVendorMismatch) || errors.Is(err, services.ErrNoVendorAssigned) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	vendorName, catalog, err := oc.Resolver.LoadCatalog(ctx, vendorID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var franchise models.Franchise
	if err := oc.DB.WithContext(ctx).First(&franchise, *claims.FranchiseID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	lines, totalAmount, totalVendorCost := services.ComputeOrderLines(body.Items, catalog)

	now := time.Now()
	order := models.Order{
		OrderNumber:     utils.NewOrderNumber(now),
		FranchiseID:     franchise.ID,
		FranchiseName:   franchise.Name,
		VendorID:        vendorID,
		VendorName:      vendorName,
		Status:          models.OrderStatusPlaced,
		TotalAmount:     totalAmount,
		TotalVendorCost: totalVendorCost,
		CreatedBy:       claims.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Order dan seluruh line ditulis dalam satu transaksi supaya tidak ada
	// line yatim ketika salah satu write gagal di tengah jalan.
	err = oc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			lines[i].CreatedAt = now
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	order.OrderLines = lines

	oc.notifyVendorUsers(order.VendorID, services.NotifTypeOrderPlaced,
		"New purchase order",
		fmt.Sprintf("Order %s from %s, vendor total %.2f", order.OrderNumber, order.FranchiseName, order.TotalVendorCost),
		order.ID)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> list order sesuai scope role pemanggil.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	query := oc.DB.WithContext(c.Request.Context()).Preload("OrderLines")

	switch {
	case models.IsFranchiseRole(claims.Role):
		if claims.FranchiseID == nil {
			utils.RespondError(c, http.StatusForbidden, ErrFranchiseRequired)
			return
		}
		query = query.Where("franchise_id = ?", *claims.FranchiseID)
	case models.IsVendorRole(claims.Role):
		// Fallback ke user id mentah untuk data lama yang mencatat vendor_id
		// secara tidak konsisten.
		vendorID := claims.UserID
		if claims.VendorID != nil && *claims.VendorID != 0 {
			vendorID = *claims.VendorID
		}
		query = query.Where("vendor_id = ? OR vendor_id = ?", vendorID, claims.UserID)
	default:
		// admin melihat semuanya
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// AcceptOrder -> vendor menerima order. Hanya valid dari status PLACED;
// update bersyarat pada status lama membuat transisi ganda ditolak, bukan
// saling menimpa.
func (oc *OrderController) AcceptOrder(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsVendorRole(claims.Role) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	ctx := c.Request.Context()

	var order models.Order
	if err := oc.DB.WithContext(ctx).First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	now := time.Now()
	res := oc.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusPlaced).
		Updates(map[string]interface{}{
			"status":      models.OrderStatusAccepted,
			"accepted_at": now,
			"accepted_by": claims.UserID,
			"updated_at":  now,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("order %s cannot be accepted from status %s", order.OrderNumber, order.Status))
		return
	}

	oc.Notifier.Notify(order.CreatedBy, services.NotifTypeOrderAccepted,
		"Order accepted",
		fmt.Sprintf("Order %s has been accepted by %s", order.OrderNumber, order.VendorName),
		"/orders", order.ID)

	oc.respondWithOrder(c, order.ID, "Order accepted")
}

// DispatchOrder -> vendor mengirim order, opsional dengan foto dan catatan.
func (oc *OrderController) DispatchOrder(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsVendorRole(claims.Role) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	type ReqBody struct {
		DispatchPhotos []string `json:"dispatch_photos"`
		DispatchNotes  string   `json:"dispatch_notes"`
	}
	var body ReqBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	ctx := c.Request.Context()

	var order models.Order
	if err := oc.DB.WithContext(ctx).First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	now := time.Now()
	res := oc.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusAccepted).
		Updates(map[string]interface{}{
			"status":          models.OrderStatusDispatched,
			"dispatched_at":   now,
			"dispatched_by":   claims.UserID,
			"dispatch_photos": models.StringList(body.DispatchPhotos),
			"dispatch_notes":  body.DispatchNotes,
			"updated_at":      now,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("order %s cannot be dispatched from status %s", order.OrderNumber, order.Status))
		return
	}

	oc.Notifier.Notify(order.CreatedBy, services.NotifTypeOrderDispatched,
		"Order dispatched",
		fmt.Sprintf("Order %s is on its way from %s", order.OrderNumber, order.VendorName),
		"/orders", order.ID)

	oc.respondWithOrder(c, order.ID, "Order dispatched")
}

// ReceiveOrder -> franchise mengkonfirmasi penerimaan. Selama masih ada
// discrepancy yang belum resolved, transisi ditolak tanpa perubahan state
// dan caller menerima daftar lengkapnya.
func (oc *OrderController) ReceiveOrder(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}
	if !models.IsFranchiseRole(claims.Role) && claims.Role != models.RoleAdmin {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	type ReqBody struct {
		ReceivePhotos []string              `json:"receive_photos"`
		ReceivedItems []models.ReceivedItem `json:"receivedItems"`
	}
	var body ReqBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
	}

	ctx := c.Request.Context()

	var order models.Order
	if err := oc.DB.WithContext(ctx).First(&order, c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, ErrOrderNotFound)
		return
	}

	unresolved, err := oc.Gate.Unresolved(ctx, order.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if len(unresolved) > 0 {
		utils.RespondErrorData(c, http.StatusBadRequest, ErrDiscrepancyConflict, gin.H{
			"discrepancies": unresolved,
			"count":         len(unresolved),
		})
		return
	}

	now := time.Now()
	res := oc.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", order.ID, models.OrderStatusDispatched).
		Updates(map[string]interface{}{
			"status":         models.OrderStatusReceived,
			"received_at":    now,
			"received_by":    claims.UserID,
			"receive_photos": models.StringList(body.ReceivePhotos),
			"received_items": models.ReceivedItemList(body.ReceivedItems),
			"updated_at":     now,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("order %s cannot be received from status %s", order.OrderNumber, order.Status))
		return
	}

	oc.notifyVendorUsers(order.VendorID, services.NotifTypeOrderReceived,
		"Order received",
		fmt.Sprintf("Order %s has been received by %s", order.OrderNumber, order.FranchiseName),
		order.ID)

	oc.respondWithOrder(c, order.ID, "Order received")
}

// GetReceivedItems -> laporan atas order berstatus RECEIVED, bisa difilter
// per franchise dan rentang tanggal terima. Bukan bagian state machine.
func (oc *OrderController) GetReceivedItems(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	query := oc.DB.WithContext(c.Request.Context()).
		Preload("OrderLines").
		Where("status = ?", models.OrderStatusReceived)

	// Role franchise selalu terkunci ke franchise-nya sendiri.
	if models.IsFranchiseRole(claims.Role) {
		if claims.FranchiseID == nil {
			utils.RespondError(c, http.StatusForbidden, ErrFranchiseRequired)
			return
		}
		query = query.Where("franchise_id = ?", *claims.FranchiseID)
	} else if franchiseID := c.Query("franchise_id"); franchiseID != "" {
		query = query.Where("franchise_id = ?", franchiseID)
	}

	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("received_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("received_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var orders []models.Order
	if err := query.Order("received_at DESC").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type ReceivedRow struct {
		OrderID       uint       `json:"order_id"`
		OrderNumber   string     `json:"order_number"`
		FranchiseID   uint       `json:"franchise_id"`
		FranchiseName string     `json:"franchise_name"`
		VendorName    string     `json:"vendor_name"`
		ReceivedAt    *time.Time `json:"received_at"`
		ItemName      string     `json:"item_name"`
		OrderedQty    float64    `json:"quantity"`
		Unit          string     `json:"uom"`
		LineTotal     float64    `json:"line_total"`
	}

	rows := make([]ReceivedRow, 0)
	for _, order := range orders {
		for _, line := range order.OrderLines {
			rows = append(rows, ReceivedRow{
				OrderID:       order.ID,
				OrderNumber:   order.OrderNumber,
				FranchiseID:   order.FranchiseID,
				FranchiseName: order.FranchiseName,
				VendorName:    order.VendorName,
				ReceivedAt:    order.ReceivedAt,
				ItemName:      line.ItemName,
				OrderedQty:    line.OrderedQty,
				Unit:          line.Unit,
				LineTotal:     line.LineTotal,
			})
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Received items", rows)
}

// notifyVendorUsers fan-out ke semua user aktif sisi vendor tersebut.
func (oc *OrderController) notifyVendorUsers(vendorID uint, notifType, title, message string, orderID uint) {
	var users []models.User
	err := oc.DB.
		Where("vendor_id = ? AND is_active = ? AND role IN ?", vendorID, true,
			[]string{models.RoleVendorOwner, models.RoleVendorStaff}).
		Find(&users).Error
	if err != nil {
		utils.ErrorLogger.Printf("failed to load vendor %d users for notification: %v", vendorID, err)
		return
	}
	for _, user := range users {
		oc.Notifier.Notify(user.ID, notifType, title, message, "/orders", orderID)
	}
}

func (oc *OrderController) respondWithOrder(c *gin.Context, orderID uint, message string) {
	var order models.Order
	if err := oc.DB.WithContext(c.Request.Context()).Preload("OrderLines").First(&order, orderID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, order)
}
