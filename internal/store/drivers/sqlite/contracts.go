package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type contractsRepo struct {
	q dbtx
}

const contractColumns = `id, room_id, tenant_id, start_date, months, monthly_rent, deposit, status, created_at, updated_at`

func scanContract(row interface{ Scan(...any) error }) (domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(
		&c.ID, &c.RoomID, &c.TenantID, &c.StartDate, &c.Months,
		&c.MonthlyRent, &c.Deposit, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Contract{}, mapNotFound(err)
	}
	return c, nil
}

func (r *contractsRepo) CreateContract(ctx context.Context, c domain.Contract) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO contracts (id, room_id, tenant_id, start_date, months, monthly_rent, deposit, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.RoomID, c.TenantID, c.StartDate, c.Months,
		c.MonthlyRent, c.Deposit, c.Status, now, now,
	)
	return mapConstraint(err)
}

func (r *contractsRepo) GetContractByID(ctx context.Context, id string) (domain.Contract, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+contractColumns+` FROM contracts WHERE id = ?`, id)
	return scanContract(row)
}

func (r *contractsRepo) ListContractsByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Contract, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+contractColumns+` FROM contracts WHERE tenant_id = ?
		ORDER BY id DESC LIMIT ? OFFSET ?`,
		tenantID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractsRepo) ListContractsByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Contract, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT c.id, c.room_id, c.tenant_id, c.start_date, c.months, c.monthly_rent, c.deposit, c.status, c.created_at, c.updated_at
		FROM contracts c
		JOIN rooms rm ON rm.id = c.room_id
		JOIN dorms d ON d.id = rm.dorm_id
		WHERE d.owner_id = ?
		ORDER BY c.id DESC LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectContracts(rows)
}

func (r *contractsRepo) GetActiveContract(ctx context.Context, roomID, tenantID string) (domain.Contract, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+contractColumns+` FROM contracts
		WHERE room_id = ? AND tenant_id = ? AND status = 'active'`,
		roomID, tenantID,
	)
	return scanContract(row)
}

func (r *contractsRepo) UpdateContractStatus(ctx context.Context, id string, status domain.ContractStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE contracts SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func collectContracts(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Contract, error) {
	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
