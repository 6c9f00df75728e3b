package sqlxrepos

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/maneno/core"
	"github.com/trezcool/maneno/core/user"
)

// dbUser maps users rows; roles are stored as JSON-encoded text.
type dbUser struct {
	ID           string           `db:"id"`
	Name         string           `db:"name"`
	Username     string           `db:"username"`
	Email        string           `db:"email"`
	IsActive     bool             `db:"is_active"`
	Roles        core.StringSlice `db:"roles"`
	PasswordHash []byte           `db:"password_hash"`
	CreatedAt    time.Time        `db:"created_at"`
	UpdatedAt    time.Time        `db:"updated_at"`
	LastLogin    time.Time        `db:"last_login"`
}

func packUser(usr user.User) dbUser {
	roles := core.StringSlice(usr.Roles)
	if roles == nil {
		roles = core.StringSlice{}
	}
	return dbUser{
		ID:           usr.ID,
		Name:         usr.Name,
		Username:     usr.Username,
		Email:        usr.Email,
		IsActive:     usr.IsActive,
		Roles:        roles,
		PasswordHash: usr.PasswordHash,
		CreatedAt:    usr.CreatedAt,
		UpdatedAt:    usr.UpdatedAt,
		LastLogin:    usr.LastLogin,
	}
}

func unpackUser(du dbUser) user.User {
	return user.User{
		ID:           du.ID,
		Name:         du.Name,
		Username:     du.Username,
		Email:        du.Email,
		IsActive:     du.IsActive,
		Roles:        du.Roles,
		PasswordHash: du.PasswordHash,
		CreatedAt:    du.CreatedAt,
		UpdatedAt:    du.UpdatedAt,
		LastLogin:    du.LastLogin,
	}
}

func unpackUsers(dus []dbUser) []user.User {
	users := make([]user.User, len(dus))
	for i, du := range dus {
		users[i] = unpackUser(du)
	}
	return users
}

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) CheckUsernameUniqueness(ctx context.Context, username, email string, excludedUsers ...user.User) error {
	exclIDs := make([]string, 0, len(excludedUsers))
	for _, usr := range excludedUsers {
		exclIDs = append(exclIDs, usr.ID)
	}
	// one row per taken field; NOT IN ('') is a no-op exclusion
	if len(exclIDs) == 0 {
		exclIDs = append(exclIDs, "")
	}

	query, args, err := sqlx.In(
		"SELECT username, email FROM users WHERE (username = ? OR email = ?) AND id NOT IN (?)",
		username, email, exclIDs,
	)
	if err != nil {
		return errors.Wrap(err, "building uniqueness query")
	}

	var rows []dbUser
	if err = repo.db.SelectContext(ctx, &rows, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "checking uniqueness")
	}
	for _, row := range rows {
		if username != "" && row.Username == username {
			return user.ErrUsernameExists
		}
		if email != "" && row.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.ID = uuid.New().String()

	query := `
		INSERT INTO users (
			id, name, username, email, is_active, roles, password_hash,
			created_at, updated_at, last_login
		) VALUES (
			:id, :name, :username, :email, :is_active, :roles, :password_hash,
			:created_at, :updated_at, :last_login
		)`
	if _, err := repo.db.NamedExecContext(ctx, query, packUser(usr)); err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var rows []dbUser
	if err := repo.db.SelectContext(ctx, &rows, "SELECT * FROM users ORDER BY created_at DESC"); err != nil {
		return nil, errors.Wrap(err, "querying users")
	}
	return unpackUsers(rows), nil
}

func (repo *userRepository) getUser(ctx context.Context, query string, args ...interface{}) (user.User, error) {
	var row dbUser
	if err := repo.db.GetContext(ctx, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user")
	}
	return unpackUser(row), nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return repo.getUser(ctx, "SELECT * FROM users WHERE id = $1", id)
}

func (repo *userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return repo.getUser(ctx, "SELECT * FROM users WHERE username = $1", username)
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	return repo.getUser(ctx, "SELECT * FROM users WHERE email = $1", email)
}

func (repo *userRepository) GetUserByUsernameOrEmail(ctx context.Context, username string) (user.User, error) {
	return repo.getUser(ctx, "SELECT * FROM users WHERE username = $1 OR email = $1", username)
}

// UpdateUser applies the non-zero fields of usr; isActive is applied
// whenever it is non-nil.
func (repo *userRepository) UpdateUser(ctx context.Context, usr user.User, isActive *bool) (user.User, error) {
	var (
		sets []string
		args []interface{}
	)
	addSet := func(set string, arg interface{}) {
		args = append(args, arg)
		sets = append(sets, fmt.Sprintf(set, len(args)))
	}

	if usr.Name != "" {
		addSet("name = $%d", usr.Name)
	}
	if usr.Username != "" {
		addSet("username = $%d", usr.Username)
	}
	if usr.Email != "" {
		addSet("email = $%d", usr.Email)
	}
	if usr.Roles != nil {
		addSet("roles = $%d", core.StringSlice(usr.Roles))
	}
	if usr.PasswordHash != nil {
		addSet("password_hash = $%d", usr.PasswordHash)
	}
	if !usr.LastLogin.IsZero() {
		addSet("last_login = $%d", usr.LastLogin)
	}
	if !usr.UpdatedAt.IsZero() {
		addSet("updated_at = $%d", usr.UpdatedAt)
	}
	if isActive != nil {
		addSet("is_active = $%d", *isActive)
	}
	if len(sets) == 0 {
		return repo.GetUserByID(ctx, usr.ID)
	}

	args = append(args, usr.ID)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING *", strings.Join(sets, ", "), len(args))

	var row dbUser
	if err := repo.db.GetContext(ctx, &row, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "updating user")
	}
	return unpackUser(row), nil
}

func (repo *userRepository) DeleteUsersByID(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM users WHERE id IN (?)", ids)
	if err != nil {
		return errors.Wrap(err, "building delete query")
	}
	if _, err = repo.db.ExecContext(ctx, repo.db.Rebind(query), args...); err != nil {
		return errors.Wrap(err, "deleting users")
	}
	return nil
}
