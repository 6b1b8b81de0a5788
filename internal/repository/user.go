package repository

import (
	"context"

	"github.com/deppfellow/todo-api/internal/database"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/pkg/errors"
)

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserRepository struct {
	q database.Querier
}

func NewUserRepository(q database.Querier) *UserRepository {
	return &UserRepository{q: q}
}

const userColumns = `id, name, email, password_digest, created_at, updated_at`

func scanUser(row database.Row, user *model.User) error {
	return row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordDigest, &user.CreatedAt, &user.UpdatedAt)
}

// CreateUser inserts user. A taken email surfaces as the driver's unique
// violation, which sqlerr turns into a 400.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	ts := now()
	row := r.q.QueryRow(ctx,
		`INSERT INTO users (name, email, password_digest, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Name, user.Email, user.PasswordDigest, ts, ts,
	)
	if err := row.Scan(&user.ID); err != nil {
		return errors.Wrap(err, "create user")
	}
	user.CreatedAt = ts
	user.UpdatedAt = ts
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err := scanUser(row, &user); err != nil {
		return nil, scanErr(err, "get user")
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err := scanUser(row, &user); err != nil {
		return nil, scanErr(err, "get user by email")
	}
	return &user, nil
}
