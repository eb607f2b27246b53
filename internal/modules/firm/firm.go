package firm

import (
	"time"

	"github.com/google/uuid"
)

// Firm is a storefront run by a vendor. Firms are managed elsewhere on the
// platform; vendor lookups only read them.
type Firm struct {
	ID        uuid.UUID `json:"id"`
	VendorID  uuid.UUID `json:"vendorId"`
	FirmName  string    `json:"firmName"`
	Area      string    `json:"area,omitempty"`
	Offer     string    `json:"offer,omitempty"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
