package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "blog-platform/internal/auth/repository"
	"blog-platform/internal/model"
)

const userColumns = `id, name, email, COALESCE(password_hash, ''), COALESCE(phone, ''), role, status, email_verified, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Role, &u.Status, &u.EmailVerified, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, name, email, password_hash, phone, role, status, email_verified, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, NOW(), NOW())
		RETURNING %s`, userColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		opt.Name,
		opt.Email,
		opt.PasswordHash,
		opt.Phone,
		opt.Role,
		opt.Status,
		opt.EmailVerified,
	)

	u, err := scanUser(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND
// condition). Returns zero-value User (ID == "") when not found — do NOT
// return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}

	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, where)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUser updates a User by ID and returns the updated entity. Only
// supplied fields are changed.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	var sets []string
	var args []any
	idx := 1

	if opt.Name != "" {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, opt.Name)
		idx++
	}
	if opt.Phone != "" {
		sets = append(sets, fmt.Sprintf("phone = $%d", idx))
		args = append(args, opt.Phone)
		idx++
	}
	if opt.Status != "" {
		sets = append(sets, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.SetEmailVerified {
		sets = append(sets, fmt.Sprintf("email_verified = $%d", idx))
		args = append(args, opt.EmailVerified)
		idx++
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, opt.ID)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), idx, userColumns)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}
