package firm

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for firm data storage.
type Repository interface {
	CreateFirm(ctx context.Context, f *Firm) error
	// ListFirmsByVendorIDs returns the firms of the given vendors ordered by
	// creation time, then id.
	ListFirmsByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID) ([]*Firm, error)
}
