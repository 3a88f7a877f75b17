package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
)

// AdminService handles back-office credentials and token issuance.
type AdminService struct {
	Repo       repository.AdminRepository
	JWT        *helpers.JWTManager
	BcryptCost int
	Logger     *logrus.Logger
}

func NewAdminService(repo repository.AdminRepository, jwt *helpers.JWTManager, bcryptCost int, logger *logrus.Logger) *AdminService {
	return &AdminService{Repo: repo, JWT: jwt, BcryptCost: bcryptCost, Logger: logger}
}

func (s *AdminService) Signup(ctx context.Context, username, password string) (*entity.Admin, error) {
	if existing, err := s.Repo.GetByUsername(ctx, username); err == nil && existing != nil {
		return nil, ErrUsernameTaken
	}
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	a := &entity.Admin{Username: username, Password: hash}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Login verifies the password hash and issues a signed, time-boxed bearer
// token. Hash comparison completes before any token is produced. The
// authenticated admin is returned alongside the token so callers can record
// who logged in.
func (s *AdminService) Login(ctx context.Context, username, password string) (*entity.Admin, string, time.Time, error) {
	a, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, ErrNotFound
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(a.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(a.ID, a.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin", a.Username).Error("token generation failed")
		}
		return nil, "", time.Time{}, err
	}
	return a, token, exp, nil
}
