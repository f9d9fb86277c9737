package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	intdb "reservoria/internal/db"
	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/utils"
)

// mysqlDuplicateEntry is the server error number for unique key violations.
const mysqlDuplicateEntry = 1062

type UserRepository struct {
	DB *sql.DB
}

const userSelect = `SELECT id, name, email, role, status, password_hash, created_at FROM users`

func (r UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, " WHERE LOWER(email) = ?", utils.NormalizeEmail(email))
}

func (r UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, " WHERE id = ?", id)
}

func (r UserRepository) findOne(ctx context.Context, where string, arg any) (models.User, error) {
	if r.DB == nil {
		return models.User{}, domain.InternalError{Msg: "database not connected"}
	}
	var u models.User
	err := r.DB.QueryRowContext(ctx, userSelect+where+" LIMIT 1", arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.PasswordHash, &u.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "query user", Err: err}
	}
	return u, nil
}

func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	if r.DB == nil {
		return models.User{}, domain.InternalError{Msg: "database not connected"}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	u.Email = utils.NormalizeEmail(u.Email)

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, role, status, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, u.ID, u.Name, u.Email, u.Role, u.Status, u.PasswordHash, u.CreatedAt, u.CreatedAt)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return models.User{}, domain.InternalError{Msg: "insert user", Err: err}
	}
	return u, nil
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	if r.DB == nil || !intdb.HasTable(ctx, r.DB, "users") {
		return []models.User{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, userSelect+" ORDER BY created_at ASC, id ASC")
	if err != nil {
		return nil, domain.InternalError{Msg: "query users", Err: err}
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Status, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "scan user", Err: err}
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "iterate users", Err: err}
	}
	return out, nil
}
