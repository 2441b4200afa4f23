package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/domakasa/domakasa/internal/validation"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type Service interface {
	SignUp(ctx context.Context, email, password, displayName string) (User, error)
	// SignIn returns a signed session token together with the user.
	SignIn(ctx context.Context, email, password string) (string, User, error)
	GetUserByUid(ctx context.Context, uid string) (User, error)
	GetCurrentUser(ctx context.Context) (User, error)
	SetDisplayCurrency(ctx context.Context, currency Currency) (User, error)
}

type ServiceImpl struct {
	repo        Repo
	tokenSecret string
	tokenTTL    time.Duration
}

func NewUserService(repo Repo, tokenSecret string, tokenTTL time.Duration) *ServiceImpl {
	return &ServiceImpl{repo: repo, tokenSecret: tokenSecret, tokenTTL: tokenTTL}
}

func (s *ServiceImpl) SignUp(ctx context.Context, email, password, displayName string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.First(
		validation.Text("email", email, true, 200),
		validation.Text("displayName", displayName, true, 200),
	); err != nil {
		return User{}, err
	}
	if !strings.Contains(email, "@") {
		return User{}, &validation.Error{Field: "email", Message: "must be a valid email address"}
	}
	if len(password) < 8 {
		return User{}, &validation.Error{Field: "password", Message: "must be at least 8 characters"}
	}

	if _, _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("could not hash password: %w", err)
	}

	user := User{
		Uid:             uuid.NewString(),
		Email:           email,
		DisplayName:     strings.TrimSpace(displayName),
		DisplayCurrency: CurrencyEUR,
	}
	id, err := s.repo.CreateUser(ctx, user, string(hash))
	if err != nil {
		return User{}, err
	}
	user.Id = id
	log.Infof("registered user %s", user.Uid)
	return user, nil
}

func (s *ServiceImpl) SignIn(ctx context.Context, email, password string) (string, User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, hash, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", User{}, ErrInvalidCredentials
	} else if err != nil {
		return "", User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		log.Debugf("failed sign-in attempt for %s", email)
		return "", User{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.tokenSecret, user.Uid, s.tokenTTL)
	if err != nil {
		return "", User{}, fmt.Errorf("could not issue session token: %w", err)
	}
	return token, user, nil
}

func (s *ServiceImpl) GetUserByUid(ctx context.Context, uid string) (User, error) {
	return s.repo.GetUserByUid(ctx, uid)
}

func (s *ServiceImpl) GetCurrentUser(ctx context.Context) (User, error) {
	return CurrentUser(ctx)
}

func (s *ServiceImpl) SetDisplayCurrency(ctx context.Context, currency Currency) (User, error) {
	user, err := CurrentUser(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if !currency.Valid() {
		return User{}, &validation.Error{Field: "currency", Message: "must be BGN or EUR"}
	}

	updated, err := s.repo.UpdateDisplayCurrency(ctx, user.Id, currency)
	if err != nil {
		return User{}, err
	}
	if !updated {
		return User{}, ErrUserNotFound
	}
	user.DisplayCurrency = currency
	return user, nil
}
