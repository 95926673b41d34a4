package sqlite

import (
	"context"
	"time"

	"github.com/dormdesk/dormdesk/internal/domain"
	"github.com/dormdesk/dormdesk/internal/store"
)

type dormsRepo struct {
	q dbtx
}

const dormColumns = `id, owner_id, name, address, description, photo_url, water_rate, electricity_rate, created_at, updated_at`

func scanDorm(row interface{ Scan(...any) error }) (domain.Dorm, error) {
	var d domain.Dorm
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.Name, &d.Address, &d.Description, &d.PhotoURL,
		&d.WaterRate, &d.ElectricityRate, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return domain.Dorm{}, mapNotFound(err)
	}
	return d, nil
}

func (r *dormsRepo) CreateDorm(ctx context.Context, d domain.Dorm) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO dorms (id, owner_id, name, address, description, photo_url, water_rate, electricity_rate, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.OwnerID, d.Name, d.Address, d.Description, d.PhotoURL,
		d.WaterRate, d.ElectricityRate, now, now,
	)
	return mapConstraint(err)
}

func (r *dormsRepo) GetDormByID(ctx context.Context, id string) (domain.Dorm, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+dormColumns+` FROM dorms WHERE id = ?`, id)
	return scanDorm(row)
}

func (r *dormsRepo) ListDormsByOwner(ctx context.Context, ownerID string, p store.Page) ([]domain.Dorm, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+dormColumns+` FROM dorms WHERE owner_id = ?
		ORDER BY id LIMIT ? OFFSET ?`,
		ownerID, p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dorms []domain.Dorm
	for rows.Next() {
		d, err := scanDorm(rows)
		if err != nil {
			return nil, err
		}
		dorms = append(dorms, d)
	}
	return dorms, rows.Err()
}

func (r *dormsRepo) UpdateDorm(ctx context.Context, d domain.Dorm) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE dorms SET name = ?, address = ?, description = ?, photo_url = ?,
			water_rate = ?, electricity_rate = ?, updated_at = ?
		WHERE id = ?`,
		d.Name, d.Address, d.Description, d.PhotoURL,
		d.WaterRate, d.ElectricityRate, time.Now().UTC(), d.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *dormsRepo) DeleteDorm(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM dorms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *dormsRepo) ListPublic(ctx context.Context, p store.Page) ([]domain.DormListing, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT d.id, d.name, d.address, d.description, d.photo_url,
			COUNT(rm.id),
			COALESCE(SUM(CASE WHEN rm.status = 'available' THEN 1 ELSE 0 END), 0),
			COALESCE(MIN(rm.monthly_rent), 0),
			COALESCE(MAX(rm.monthly_rent), 0)
		FROM dorms d
		LEFT JOIN rooms rm ON rm.dorm_id = d.id
		GROUP BY d.id
		ORDER BY d.id
		LIMIT ? OFFSET ?`,
		p.Limit, p.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.DormListing
	for rows.Next() {
		var l domain.DormListing
		err := rows.Scan(
			&l.ID, &l.Name, &l.Address, &l.Description, &l.PhotoURL,
			&l.TotalRooms, &l.AvailableRooms, &l.MinRent, &l.MaxRent,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
