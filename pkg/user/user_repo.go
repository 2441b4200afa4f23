package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type Repo interface {
	CreateUser(ctx context.Context, user User, passwordHash string) (int, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	// GetUserByEmail also returns the stored password hash for credential checks.
	GetUserByEmail(ctx context.Context, email string) (User, string, error)
	UpdateDisplayCurrency(ctx context.Context, userId int, currency Currency) (bool, error)
}

type RepoImpl struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *RepoImpl {
	return &RepoImpl{db: db}
}

func (u *RepoImpl) CreateUser(ctx context.Context, user User, passwordHash string) (int, error) {
	query := `INSERT INTO users (uid, email, password_hash, display_name, display_currency)
				VALUES (?, ?, ?, ?, ?) RETURNING id`
	var id int
	err := u.db.QueryRowContext(ctx, query,
		user.Uid,
		user.Email,
		passwordHash,
		user.DisplayName,
		string(user.DisplayCurrency),
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to create user: %v", err)
		return 0, fmt.Errorf("could not create user: %w", err)
	}
	return id, nil
}

func (u *RepoImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	query := `SELECT id, uid, email, display_name, display_currency FROM users WHERE uid = ?`

	var user User
	err := u.db.QueryRowContext(ctx, query, uid).Scan(
		&user.Id,
		&user.Uid,
		&user.Email,
		&user.DisplayName,
		&user.DisplayCurrency,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debugf("user with uid %s not found", uid)
		return User{}, ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, err
	}
	return user, nil
}

func (u *RepoImpl) GetUserByEmail(ctx context.Context, email string) (User, string, error) {
	query := `SELECT id, uid, email, display_name, display_currency, password_hash FROM users WHERE email = ?`

	var user User
	var passwordHash string
	err := u.db.QueryRowContext(ctx, query, email).Scan(
		&user.Id,
		&user.Uid,
		&user.Email,
		&user.DisplayName,
		&user.DisplayCurrency,
		&passwordHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debugf("user with email %s not found", email)
		return User{}, "", ErrUserNotFound
	} else if err != nil {
		log.Errorf("failed to get user: %v", err)
		return User{}, "", err
	}
	return user, passwordHash, nil
}

func (u *RepoImpl) UpdateDisplayCurrency(ctx context.Context, userId int, currency Currency) (bool, error) {
	query := `UPDATE users SET display_currency = ? WHERE id = ?`
	result, err := u.db.ExecContext(ctx, query, string(currency), userId)
	if err != nil {
		log.Errorf("failed to update display currency: %v", err)
		return false, fmt.Errorf("could not update display currency: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}
