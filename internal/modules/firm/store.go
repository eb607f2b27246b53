package firm

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/georgemunganga/vendor-accounts/internal/database"
)

// vendorBatchSize bounds the bind variables per query, well under the
// SQLite and Postgres limits.
const vendorBatchSize = 1000

type sqlRepository struct {
	db        *database.DB
	batchSize int
}

// NewSQLRepository creates a firm repository over Postgres or SQLite.
func NewSQLRepository(db *database.DB) Repository {
	return &sqlRepository{db: db, batchSize: vendorBatchSize}
}

func (r *sqlRepository) CreateFirm(ctx context.Context, f *Firm) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}
	query := r.db.Rebind(`
		INSERT INTO firms (id, vendor_id, firm_name, area, offer, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, f.ID, f.VendorID, f.FirmName, f.Area, f.Offer, f.Image, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert firm: %w", err)
	}
	return nil
}

func (r *sqlRepository) ListFirmsByVendorIDs(ctx context.Context, vendorIDs []uuid.UUID) ([]*Firm, error) {
	firms := []*Firm{}
	for start := 0; start < len(vendorIDs); start += r.batchSize {
		end := min(start+r.batchSize, len(vendorIDs))
		batch, err := r.listBatch(ctx, vendorIDs[start:end])
		if err != nil {
			return nil, err
		}
		firms = append(firms, batch...)
	}
	if len(vendorIDs) > r.batchSize {
		slices.SortStableFunc(firms, compareFirms)
	}
	return firms, nil
}

func (r *sqlRepository) listBatch(ctx context.Context, vendorIDs []uuid.UUID) ([]*Firm, error) {
	args := make([]any, len(vendorIDs))
	for i, id := range vendorIDs {
		args[i] = id
	}
	query := r.db.Rebind(`
		SELECT id, vendor_id, firm_name, area, offer, image, created_at
		FROM firms
		WHERE vendor_id IN (` + database.Placeholders(len(vendorIDs)) + `)
		ORDER BY created_at, id
	`)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list firms: %w", err)
	}
	defer rows.Close()

	var firms []*Firm
	for rows.Next() {
		f := &Firm{}
		if err := rows.Scan(&f.ID, &f.VendorID, &f.FirmName, &f.Area, &f.Offer, &f.Image, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan firm: %w", err)
		}
		firms = append(firms, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list firms: %w", err)
	}
	return firms, nil
}

// compareFirms matches the ORDER BY created_at, id of a single query.
func compareFirms(a, b *Firm) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
