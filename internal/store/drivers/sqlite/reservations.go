package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type reservationsRepo struct {
	q dbtx
}

const reservationColumns = `id, room_id, tenant_id, status, note, created_at, updated_at`

func scanReservation(row interface{ Scan(...any) error }) (domain.Reservation, error) {
	var rv domain.Reservation
	err := row.Scan(
		&rv.ID, &rv.RoomID, &rv.TenantID, &rv.Status, &rv.Note,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return domain.Reservation{}, mapNotFound(err)
	}
	return rv, nil
}

func (r *reservationsRepo) CreateReservation(ctx context.Context, rv domain.Reservation) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO reservations (id, room_id, tenant_id, status, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rv.ID, rv.RoomID, rv.TenantID, rv.Status, rv.Note, now, now,
	)
	return mapConstraint(err)
}

func (r *reservationsRepo) GetReservationByID(ctx context.Context, id string) (domain.Reservation, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	return scanReservation(row)
}

func (r *reservationsRepo) ListReservationsByTenant(ctx context.Context, tenantID string, p store.Page) ([]domain.Reservation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+reservationColumns+` FROM reservations WHERE tenant_id = ?
		ORDER BY id DESC LIMIT ? OFFSET ?`,
		tenantID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *reservationsRepo) ListReservationsByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Reservation, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT rv.id, rv.room_id, rv.tenant_id, rv.status, rv.note, rv.created_at, rv.updated_at
		FROM reservations rv
		JOIN rooms rm ON rm.id = rv.room_id
		JOIN dorms d ON d.id = rm.dorm_id
		WHERE d.owner_id = ?
		ORDER BY rv.id DESC LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *reservationsRepo) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE reservations SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func collectReservations(rows interface {
	Next() bool
	Scan(...any) error
	Err() error
}) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}
