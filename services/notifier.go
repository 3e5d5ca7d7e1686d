package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

const (
	NotifTypeOrderPlaced     = "order_placed"
	NotifTypeOrderAccepted   = "order_accepted"
	NotifTypeOrderDispatched = "order_dispatched"
	NotifTypeOrderReceived   = "order_received"
	NotifTypeDiscrepancy     = "order_discrepancy"
)

// Notifier menulis Notification lewat antrian terpisah dari transaksi order.
// Kegagalan kirim hanya dicatat di log; tidak pernah membatalkan transisi.
type Notifier struct {
	db    *gorm.DB
	queue chan models.Notification
	done  chan struct{}
}

func NewNotifier(db *gorm.DB, buffer int) *Notifier {
	if buffer <= 0 {
		buffer = 64
	}
	return &Notifier{
		db:    db,
		queue: make(chan models.Notification, buffer),
		done:  make(chan struct{}),
	}
}

func (n *Notifier) Start() {
	go func() {
		defer close(n.done)
		for notif := range n.queue {
			if err := n.db.Create(&notif).Error; err != nil {
				utils.ErrorLogger.Printf("failed to write notification %q for user %d: %v", notif.Type, notif.UserID, err)
			}
		}
	}()
}

// Stop menutup antrian dan menunggu worker menguras sisa notifikasi.
func (n *Notifier) Stop() {
	close(n.queue)
	<-n.done
}

// Notify meng-enqueue satu notifikasi. Saat antrian penuh notifikasi
// dijatuhkan dengan log, supaya caller tidak pernah terblokir.
func (n *Notifier) Notify(userID uint, notifType, title, message, link string, referenceID uint) {
	notif := models.Notification{
		UserID:      userID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Link:        link,
		ReferenceID: referenceID,
		CreatedAt:   time.Now(),
	}

	select {
	case n.queue <- notif:
	default:
		utils.ErrorLogger.Printf("notification queue full, dropping %q for user %d", notifType, userID)
	}
}
