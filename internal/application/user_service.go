package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dilvertex/pipesite-backend/internal/domain/entity"
	"github.com/dilvertex/pipesite-backend/internal/domain/repository"
	"github.com/dilvertex/pipesite-backend/pkg/helpers"
	"github.com/dilvertex/pipesite-backend/pkg/mailer"
)

// EmailPublisher enqueues an email job for the worker. Satisfied by
// helpers.RabbitPublisher.
type EmailPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserService handles visitor registration, the email verification flow and
// login.
type UserService struct {
	Users      repository.UserRepository
	Tokens     repository.VerificationTokenRepository
	JWT        *helpers.JWTManager
	Pub        EmailPublisher
	BcryptCost int
	VerifyURL  string // base link embedded in the verification email
	MailOn     bool
	Logger     *logrus.Logger
}

func NewUserService(users repository.UserRepository, tokens repository.VerificationTokenRepository, jwt *helpers.JWTManager, pub EmailPublisher, bcryptCost int, verifyURL string, mailOn bool, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:      users,
		Tokens:     tokens,
		JWT:        jwt,
		Pub:        pub,
		BcryptCost: bcryptCost,
		VerifyURL:  verifyURL,
		MailOn:     mailOn,
		Logger:     logger,
	}
}

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Register creates an unverified account plus its single-use verification
// token and enqueues the verification email. The notification channel is
// best-effort: a publish failure does not undo the registration.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	if existing, err := s.Users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	tok, err := genToken(32)
	if err != nil {
		return nil, err
	}
	vt := &entity.VerificationToken{Token: tok, UserID: u.ID}
	if err := s.Tokens.Create(ctx, vt); err != nil {
		return nil, err
	}

	if s.Pub != nil && s.MailOn {
		link := s.VerifyURL + "/" + tok
		job := mailer.EmailJob{
			To:       u.Email,
			Template: mailer.TemplateVerifyEmail,
			Data:     map[string]any{"Name": u.Name, "Link": link},
		}
		if perr := s.Pub.PublishJSON(ctx, job); perr != nil && s.Logger != nil {
			s.Logger.WithError(perr).WithField("email", u.Email).Warn("failed to enqueue verification email")
		}
	}
	return u, nil
}

// VerifyEmail consumes the token: flips the verified flag and deletes the
// token record, so a second call with the same value fails.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	vt, err := s.Tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidOrExpired
		}
		return err
	}
	if err := s.Users.SetVerified(ctx, vt.UserID); err != nil {
		return err
	}
	if err := s.Tokens.Delete(ctx, vt.Token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Another request consumed the token between Get and Delete.
			// Only the request that deletes the row may report success.
			return ErrInvalidOrExpired
		}
		return err
	}
	return nil
}

// Login verifies the password and issues a bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
