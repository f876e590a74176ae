package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/turnolab/turnos-backend-go/internal/domain/auth"
	"github.com/turnolab/turnos-backend-go/internal/domain/company"
	"github.com/turnolab/turnos-backend-go/internal/domain/user"
	"github.com/turnolab/turnos-backend-go/internal/pkg/database"
	"github.com/turnolab/turnos-backend-go/internal/pkg/jwt"
	"github.com/turnolab/turnos-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	company.CompanyRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, companyRepository company.CompanyRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:                db,
		UserRepository:    userRepository,
		CompanyRepository: companyRepository,
		Service:           jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService. It creates the company and its
// owner account in one transaction; a half-registered tenant must never
// exist.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	_, err := a.CompanyRepository.GetByUsername(ctx, req.CompanyUsername)
	if err == nil {
		return auth.TokenResponse{}, company.ErrCompanyUsernameExists
	}
	if !errors.Is(err, company.ErrCompanyNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to check company username: %w", err)
	}

	hashedPassword, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var newUser user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, postgresql.TxKey, tx)

		newCompany, err := a.CompanyRepository.Create(txCtx, company.Company{
			Name:     req.CompanyName,
			Username: req.CompanyUsername,
		})
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		newUser, err = a.UserRepository.Create(txCtx, user.User{
			CompanyID:    newCompany.ID,
			Email:        req.Email,
			PasswordHash: hashedPassword,
			Role:         user.RoleOwner,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(newUser)
}

// Login implements auth.AuthService. Credentials are scoped to a company:
// the same email may exist under different tenants.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	companyData, err := a.CompanyRepository.GetByUsername(ctx, req.CompanyUsername)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get company by username: %w", err)
	}

	userData, err := a.UserRepository.GetByEmail(ctx, companyData.ID, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService. The refresh token must verify, be
// of type "refresh", and not have been revoked by a logout.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.Service.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	if a.Service.IsTokenRevoked(refreshToken) {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrUserNotFound
	}

	accessToken, expiresAt, err := a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        string(userData.Role),
		CompanyID:   userData.CompanyID,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := a.Service.DecodeRefreshToken(refreshToken); err != nil {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(refreshToken)
	return nil
}

func (a *AuthServiceImpl) issueTokens(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.ExpiresAt, err = a.Service.GenerateAccessToken(userData.ID, userData.Email, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, _, err = a.Service.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.Role = string(userData.Role)
	tokenResponse.CompanyID = userData.CompanyID

	return tokenResponse, nil
}
