package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/souravverma/portfolio-backend/internal/domain/entity"
	repo "github.com/souravverma/portfolio-backend/internal/domain/repository"
	"github.com/souravverma/portfolio-backend/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash keeps Login's timing uniform when the username does not resolve:
// bcrypt runs either way, so unknown-username and wrong-password failures are
// indistinguishable to a caller measuring response times.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService verifies admin credentials and issues bearer tokens.
type AuthService struct {
	Admins repo.AdminRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(admins repo.AdminRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Admins: admins, JWT: jwt, Logger: logger}
}

// LoginResult carries the signed token and the authenticated admin profile.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *entity.Admin
}

// Login authenticates username/password and returns a signed 24h token. Both
// unknown usernames and wrong passwords fail with ErrInvalidCredentials; the
// route layer must not differentiate them.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	admin, err := s.Admins.GetByUsername(username)
	if err != nil || admin == nil {
		helpers.CompareHashAndPassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(admin.Password, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.Admins.TouchLastLogin(admin.ID, now); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin_id", admin.ID).Warn("failed to update last login")
		}
	} else {
		admin.LastLogin = &now
	}

	token, exp, err := s.JWT.Generate(admin.ID, admin.Username, string(admin.Role))
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("admin_id", admin.ID).Error("token generation failed")
		}
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: exp, Admin: admin}, nil
}
