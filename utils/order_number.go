package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber menghasilkan nomor order yang mudah dibaca:
// tanggal pembuatan plus suffix acak, mis. PO-20250114-9F3A2C.
func NewOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix)
}
