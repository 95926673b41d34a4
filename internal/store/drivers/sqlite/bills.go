package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type billsRepo struct {
	q dbtx
}

const billColumns = `id, contract_id, month, rent_amount, water_units, water_amount, electricity_units, electricity_amount, total, due_date, status, evidence_url, created_at, updated_at`

func scanBill(row interface{ Scan(...any) error }) (domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(
		&b.ID, &b.ContractID, &b.Month, &b.RentAmount, &b.WaterUnits, &b.WaterAmount,
		&b.ElectricityUnits, &b.ElectricityAmount, &b.Total, &b.DueDate,
		&b.Status, &b.EvidenceURL, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Bill{}, mapNotFound(err)
	}
	return b, nil
}

func (r *billsRepo) CreateBill(ctx context.Context, b domain.Bill) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO bills (id, contract_id, month, rent_amount, water_units, water_amount, electricity_units, electricity_amount, total, due_date, status, evidence_url, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.ContractID, b.Month, b.RentAmount, b.WaterUnits, b.WaterAmount,
		b.ElectricityUnits, b.ElectricityAmount, b.Total, b.DueDate,
		b.Status, b.EvidenceURL, now, now,
	)
	return mapConstraint(err)
}

func (r *billsRepo) GetBillByID(ctx context.Context, id string) (domain.Bill, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+billColumns+` FROM bills WHERE id = ?`, id)
	return scanBill(row)
}

func (r *billsRepo) ListBillsByContract(ctx context.Context, contractID string, p store.Page) ([]domain.Bill, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+billColumns+` FROM bills WHERE contract_id = ?
		ORDER BY month DESC LIMIT ? OFFSET ?`,
		contractID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *billsRepo) ListBillsByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Bill, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT b.id, b.contract_id, b.month, b.rent_amount, b.water_units, b.water_amount, b.electricity_units, b.electricity_amount, b.total, b.due_date, b.status, b.evidence_url, b.created_at, b.updated_at
		FROM bills b
		JOIN contracts c ON c.id = b.contract_id
		WHERE c.tenant_id = ?
		ORDER BY b.month DESC LIMIT ? OFFSET ?`,
		tenantID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *billsRepo) ListBillsByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Bill, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT b.id, b.contract_id, b.month, b.rent_amount, b.water_units, b.water_amount, b.electricity_units, b.electricity_amount, b.total, b.due_date, b.status, b.evidence_url, b.created_at, b.updated_at
		FROM bills b
		JOIN contracts c ON c.id = b.contract_id
		JOIN rooms rm ON rm.id = c.room_id
		JOIN dorms d ON d.id = rm.dorm_id
		WHERE d.owner_id = ?
		ORDER BY b.month DESC LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBills(rows)
}

func (r *billsRepo) BillExistsForMonth(ctx context.Context, contractID, month string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM bills WHERE contract_id = ? AND month = ?`, contractID, month,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *billsRepo) UpdateBillStatus(ctx context.Context, id string, status domain.BillStatus, evidenceURL string) error {
	query := `UPDATE bills SET status = ?, updated_at = ? WHERE id = ?`
	args := []any{status, time.Now().UTC(), id}
	if evidenceURL != "" {
		query = `UPDATE bills SET status = ?, evidence_url = ?, updated_at = ? WHERE id = ?`
		args = []any{status, evidenceURL, time.Now().UTC(), id}
	}

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func collectBills(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Bill, error) {
	var bills []domain.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}
