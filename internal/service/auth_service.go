package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"instituteCMS/internal/config"
	"instituteCMS/internal/models"
	"instituteCMS/internal/repository"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Admin, string, error)
	ValidateToken(tokenString string) (*AdminClaims, error)
	GetAdminFromToken(ctx context.Context, tokenString string) (*models.Admin, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

// AdminClaims is the JWT payload; the subject is the admin id.
type AdminClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type authService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
	now       func() time.Time
}

func NewAuthService(adminRepo repository.AdminRepository, cfg *config.Config) AuthService {
	return &authService{
		adminRepo: adminRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Login fails with models.ErrUnauthorized whether the email is unknown or
// the password is wrong.
func (s *authService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	if err := validateStruct(models.LoginRequest{Email: email, Password: password}); err != nil {
		return nil, "", err
	}

	admin, err := s.adminRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	token, err := s.generateAccessToken(admin)
	if err != nil {
		return nil, "", fmt.Errorf("error generating access token: %w", err)
	}

	return admin, token, nil
}

func (s *authService) generateAccessToken(admin *models.Admin) (string, error) {
	now := s.now()

	claims := AdminClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.AdminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) ValidateToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.JWTSecretKey), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrUnauthorized, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: invalid token", models.ErrUnauthorized)
	}

	return claims, nil
}

// GetAdminFromToken validates the token and resolves its subject, so a
// token for a removed account is rejected.
func (s *authService) GetAdminFromToken(ctx context.Context, tokenString string) (*models.Admin, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetAdminByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("%w: admin no longer exists", models.ErrUnauthorized)
		}
		return nil, err
	}

	return admin, nil
}

// EnsureAdmin provisions an admin account unless one with that email
// already exists. It reports whether an account was created.
type adminSeed struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	seed := adminSeed{Email: email, Password: password}
	if err := validateStruct(seed); err != nil {
		return false, err
	}

	_, err := s.adminRepo.GetAdminByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return false, err
	}

	err = s.adminRepo.CreateAdmin(ctx, &models.Admin{Email: email}, password)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
