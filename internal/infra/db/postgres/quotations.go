package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"cotiza-jara/go_backend/internal/domain/quotation"
)

// QuotationRepo implements quotation.Repository on postgres. Line items are
// kept as a jsonb column; a quotation is always read and replaced as one
// record, the same granularity the rest of the system assumes.
type QuotationRepo struct {
	db *DB
}

func NewQuotationRepo(db *DB) *QuotationRepo {
	return &QuotationRepo{db: db}
}

const quotationColumns = `id, display_name, reference, client_name, company_name, items, apply_tax, show_bank_details, created_at`

func (r *QuotationRepo) List(ctx context.Context) ([]quotation.SavedQuotation, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+quotationColumns+` FROM quotations ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var recs []quotation.SavedQuotation
	for rows.Next() {
		rec, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *QuotationRepo) Get(ctx context.Context, id string) (*quotation.SavedQuotation, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id)
	rec, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quotation.ErrNotFound
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return &rec, nil
}

func (r *QuotationRepo) Upsert(ctx context.Context, rec quotation.SavedQuotation) error {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("encode line items: %w", err)
	}
	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO quotations (id, display_name, reference, client_name, company_name, items, apply_tax, show_bank_details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			client_name = EXCLUDED.client_name,
			company_name = EXCLUDED.company_name,
			items = EXCLUDED.items,
			apply_tax = EXCLUDED.apply_tax,
			show_bank_details = EXCLUDED.show_bank_details
	`, rec.ID, rec.DisplayName, rec.Reference, rec.ClientName, rec.CompanyName,
		items, rec.ApplyTax, rec.ShowBankDetails, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return quotation.ErrNotFound
	}
	return nil
}

func scanQuotation(row pgx.Row) (quotation.SavedQuotation, error) {
	var rec quotation.SavedQuotation
	var items []byte
	err := row.Scan(&rec.ID, &rec.DisplayName, &rec.Reference, &rec.ClientName,
		&rec.CompanyName, &items, &rec.ApplyTax, &rec.ShowBankDetails, &rec.CreatedAt)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(items, &rec.Items); err != nil {
		return rec, fmt.Errorf("decode line items: %w", err)
	}
	return rec, nil
}
