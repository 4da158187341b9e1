package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"shopapi/internal/model"
	"shopapi/internal/repository"
)

const userColumns = `id, name, email, password_hash, role, avatar, age, phone_number, address,
	active, gender, verification_code_hash, verification_expires_at, created_at, updated_at`

const (
	insertUserSQL = `INSERT INTO users (name, email, password_hash, role, avatar, age, phone_number, address,
		active, gender, verification_code_hash, verification_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + userColumns

	getUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`

	updateUserSQL = `UPDATE users SET name = $2, email = $3, password_hash = $4, role = $5, avatar = $6,
		age = $7, phone_number = $8, address = $9, active = $10, gender = $11,
		verification_code_hash = $12, verification_expires_at = $13, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	deleteUserSQL = `DELETE FROM users WHERE id = $1`
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) Create(ctx context.Context, u *model.User) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, insertUserSQL,
		u.Name, u.Email, u.PasswordHash, u.Role, u.Avatar, nullInt(u.Age), u.PhoneNumber, u.Address,
		u.Active, u.Gender, u.VerificationCodeHash, u.VerificationExpiresAt,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, mapErr("insert user", err)
	}
	return out, nil
}

func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	out, err := scanUser(r.db.QueryRowContext(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, mapErr("get user", err)
	}
	return out, nil
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	out, err := scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, mapErr("get user by email", err)
	}
	return out, nil
}

// List filters with ILIKE and orders by name when a direction is requested.
func (r *UserPostgres) List(ctx context.Context, f repository.UserFilter) (*repository.PageResult[model.User], error) {
	var (
		conds []string
		args  []any
	)
	if f.Name != "" {
		args = append(args, "%"+escapeLike(f.Name)+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if f.Email != "" {
		args = append(args, "%"+escapeLike(f.Email)+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if f.Role != "" {
		args = append(args, f.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users"+where, args...).Scan(&total); err != nil {
		return nil, mapErr("count users", err)
	}

	order := " ORDER BY name ASC, id ASC"
	if f.SortDesc {
		order = " ORDER BY name DESC, id DESC"
	}
	args = append(args, f.Limit, f.Offset)
	q := "SELECT " + userColumns + " FROM users" + where + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, mapErr("list users", err)
	}
	defer rows.Close()

	items := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapErr("scan user", err)
		}
		items = append(items, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapErr("list users", err)
	}
	return &repository.PageResult[model.User]{Items: items, Total: total}, nil
}

func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	row := r.db.QueryRowContext(ctx, updateUserSQL,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Avatar, nullInt(u.Age), u.PhoneNumber, u.Address,
		u.Active, u.Gender, u.VerificationCodeHash, u.VerificationExpiresAt,
	)
	out, err := scanUser(row)
	if err != nil {
		return nil, mapErr("update user", err)
	}
	return out, nil
}

func (r *UserPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return mapErr("delete user", err)
	}
	return affected("delete user", res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	var (
		u   model.User
		age sql.NullInt64
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &age, &u.PhoneNumber, &u.Address,
		&u.Active, &u.Gender, &u.VerificationCodeHash, &u.VerificationExpiresAt, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Age = intPtr(age)
	return &u, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
