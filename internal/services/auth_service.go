package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"reservoria/internal/domain"
	"reservoria/internal/domain/models"
	"reservoria/internal/events"
	"reservoria/internal/repositories"
	"reservoria/internal/utils"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

// Claims is the JWT payload for both token types.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"typ"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	User         models.User `json:"user"`
}

type AuthService struct {
	Users      repositories.UserStore
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int
	Events     events.Publisher
	Now        func() time.Time
	RequestID  string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AuthService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	in.Email = utils.NormalizeEmail(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return AuthResult{}, err
	}
	u, err := s.Users.FindByEmail(ctx, in.Email)
	if domain.IsNotFound(err) {
		return AuthResult{}, errBadCredentials
	}
	if err != nil {
		return AuthResult{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return AuthResult{}, errBadCredentials
	}
	if u.Status != "" && u.Status != "active" {
		return AuthResult{}, domain.UnauthorizedError{Msg: "account is not active"}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+u.ID)
	return s.issue(u)
}

// Register creates a staff account and signs it in.
func (s AuthService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	in.Name = utils.NormalizeSpace(in.Name)
	in.Email = utils.NormalizeEmail(in.Email)
	if err := utils.ValidateStruct(in); err != nil {
		return AuthResult{}, err
	}

	if _, err := s.Users.FindByEmail(ctx, in.Email); err == nil {
		return AuthResult{}, domain.ConflictError{Resource: "user", Msg: "email already registered"}
	} else if !domain.IsNotFound(err) {
		return AuthResult{}, err
	}

	cost := s.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), cost)
	if err != nil {
		return AuthResult{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	u, err := s.Users.Create(ctx, models.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         models.RoleStaff,
		Status:       "active",
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	})
	if err != nil {
		return AuthResult{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "register", "user_id="+u.ID)
	events.Emit(ctx, s.Events, s.RequestID, events.UserRegisteredKey, events.UserRegistered{
		UserID: u.ID, Email: u.Email, Role: u.Role, OccurredAt: s.now(),
	})
	return s.issue(u)
}

// Refresh exchanges a refresh token for a new token pair.
func (s AuthService) Refresh(ctx context.Context, refreshToken string) (AuthResult, error) {
	claims, err := s.ParseToken(refreshToken, TokenRefresh)
	if err != nil {
		return AuthResult{}, err
	}
	u, err := s.Users.FindByID(ctx, claims.UserID)
	if domain.IsNotFound(err) {
		return AuthResult{}, domain.UnauthorizedError{Msg: "user no longer exists"}
	}
	if err != nil {
		return AuthResult{}, err
	}
	return s.issue(u)
}

func (s AuthService) Me(ctx context.Context, userID string) (models.User, error) {
	return s.Users.FindByID(ctx, userID)
}

// ParseToken verifies signature, expiry and token type.
func (s AuthService) ParseToken(raw, wantType string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.UnauthorizedError{Msg: "token expired", Err: err}
		}
		return Claims{}, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}
	if claims.Type != wantType {
		return Claims{}, domain.UnauthorizedError{Msg: "wrong token type"}
	}
	return claims, nil
}

func (s AuthService) issue(u models.User) (AuthResult, error) {
	if len(s.Secret) == 0 {
		return AuthResult{}, domain.InternalError{Msg: "jwt secret not configured"}
	}
	accessTTL := s.AccessTTL
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	refreshTTL := s.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = 30 * 24 * time.Hour
	}

	access, err := s.sign(u, TokenAccess, accessTTL)
	if err != nil {
		return AuthResult{}, err
	}
	refresh, err := s.sign(u, TokenRefresh, refreshTTL)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTTL.Seconds()),
		User:         u,
	}, nil
}

func (s AuthService) sign(u models.User, typ string, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return signed, nil
}
