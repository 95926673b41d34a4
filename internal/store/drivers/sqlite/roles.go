package sqlite

import (
	"context"

	"github.com/dormdesk/dormdesk/internal/domain"
)

type rolesRepo struct {
	q dbtx
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	var role domain.Role
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM roles WHERE id = ?`, id,
	).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	var role domain.Role
	err := r.q.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM roles WHERE name = ?`, name,
	).Scan(&role.ID, &role.Name, &role.CreatedAt)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) FindRoleName(ctx context.Context, roleID string) (string, error) {
	var name string
	err := r.q.QueryRowContext(ctx, `SELECT name FROM roles WHERE id = ?`, roleID).Scan(&name)
	if err != nil {
		return "", mapNotFound(err)
	}
	return name, nil
}

func (r *rolesRepo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT id, name, created_at FROM roles ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []domain.Role
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.CreatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
