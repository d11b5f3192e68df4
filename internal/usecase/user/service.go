package user

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/blog-discussion/domain"
)

const minPasswordLen = 6

type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(u domain.UserRepository, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:  u,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return domain.User{}, domain.NewError(domain.ErrInvalidArgument, "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, domain.NewError(domain.ErrInvalidArgument, "email is not valid")
	}
	if len(password) < minPasswordLen {
		return domain.User{}, domain.NewError(domain.ErrInvalidArgument, "password must be at least 6 characters")
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domain.User{}, domain.NewError(domain.ErrConflict, "email already registered")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		logrus.Errorf("failed to look up user by email: %v", err)
		return domain.User{}, domain.ErrServiceUnavailable
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now()
	u := domain.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		Role:      domain.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, domain.NewError(domain.ErrConflict, "email already registered")
		}
		logrus.Errorf("failed to insert user: %v", err)
		return domain.User{}, domain.ErrServiceUnavailable
	}
	u.Password = ""
	return u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.NewError(domain.ErrUnauthorized, "invalid email or password")
	}
	if err != nil {
		logrus.Errorf("failed to look up user by email: %v", err)
		return "", domain.ErrServiceUnavailable
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.NewError(domain.ErrUnauthorized, "invalid email or password")
	}

	role := u.Role
	if role == "" {
		role = domain.RoleUser
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}
