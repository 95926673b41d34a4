package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type roomsRepo struct {
	q dbtx
}

const roomColumns = `id, dorm_id, name, floor, monthly_rent, deposit, status, created_at, updated_at`

func scanRoom(row interface{ Scan(...any) error }) (domain.Room, error) {
	var rm domain.Room
	err := row.Scan(
		&rm.ID, &rm.DormID, &rm.Name, &rm.Floor, &rm.MonthlyRent,
		&rm.Deposit, &rm.Status, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return domain.Room{}, mapNotFound(err)
	}
	return rm, nil
}

func (r *roomsRepo) CreateRoom(ctx context.Context, rm domain.Room) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO rooms (id, dorm_id, name, floor, monthly_rent, deposit, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rm.ID, rm.DormID, rm.Name, rm.Floor, rm.MonthlyRent, rm.Deposit, rm.Status, now, now,
	)
	return mapConstraint(err)
}

func (r *roomsRepo) GetRoomByID(ctx context.Context, id string) (domain.Room, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = ?`, id)
	return scanRoom(row)
}

func (r *roomsRepo) ListRoomsByDorm(ctx context.Context, dormID string, status domain.RoomStatus, p store.Page) ([]domain.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE dorm_id = ?`
	args := []any{dormID}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY name LIMIT ? OFFSET ?`
	args = append(args, p.Limit, p.Offset)

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *roomsRepo) RoomNameExists(ctx context.Context, dormID, name string) (bool, error) {
	var n int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM rooms WHERE dorm_id = ? AND name = ?`, dormID, name,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *roomsRepo) UpdateRoom(ctx context.Context, rm domain.Room) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE rooms SET name = ?, floor = ?, monthly_rent = ?, deposit = ?, updated_at = ?
		WHERE id = ?`,
		rm.Name, rm.Floor, rm.MonthlyRent, rm.Deposit, time.Now().UTC(), rm.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *roomsRepo) UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE rooms SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), roomID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *roomsRepo) DeleteRoom(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
