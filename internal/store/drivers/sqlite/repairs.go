package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type repairsRepo struct {
	q dbtx
}

const repairColumns = `id, room_id, tenant_id, title, description, photo_url, status, created_at, updated_at`

func scanRepair(row interface{ Scan(...any) error }) (domain.Repair, error) {
	var rp domain.Repair
	err := row.Scan(
		&rp.ID, &rp.RoomID, &rp.TenantID, &rp.Title, &rp.Description,
		&rp.PhotoURL, &rp.Status, &rp.CreatedAt, &rp.UpdatedAt,
	)
	if err != nil {
		return domain.Repair{}, mapNotFound(err)
	}
	return rp, nil
}

func (r *repairsRepo) CreateRepair(ctx context.Context, rp domain.Repair) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO repairs (id, room_id, tenant_id, title, description, photo_url, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rp.ID, rp.RoomID, rp.TenantID, rp.Title, rp.Description, rp.PhotoURL, rp.Status, now, now,
	)
	return mapConstraint(err)
}

func (r *repairsRepo) GetRepairByID(ctx context.Context, id string) (domain.Repair, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+repairColumns+` FROM repairs WHERE id = ?`, id)
	return scanRepair(row)
}

func (r *repairsRepo) ListRepairsByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Repair, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+repairColumns+` FROM repairs WHERE tenant_id = ?
		ORDER BY id DESC LIMIT ? OFFSET ?`,
		tenantID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRepairs(rows)
}

func (r *repairsRepo) ListRepairsByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Repair, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT rp.id, rp.room_id, rp.tenant_id, rp.title, rp.description, rp.photo_url, rp.status, rp.created_at, rp.updated_at
		FROM repairs rp
		JOIN rooms rm ON rm.id = rp.room_id
		JOIN dorms d ON d.id = rm.dorm_id
		WHERE d.owner_id = ?
		ORDER BY rp.id DESC LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRepairs(rows)
}

func (r *repairsRepo) UpdateRepairStatus(ctx context.Context, id string, status domain.RepairStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE repairs SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func collectRepairs(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Repair, error) {
	var repairs []domain.Repair
	for rows.Next() {
		rp, err := scanRepair(rows)
		if err != nil {
			return nil, err
		}
		repairs = append(repairs, rp)
	}
	return repairs, rows.Err()
}
