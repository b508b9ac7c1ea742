// Package auth covers account registration, credential checks and JWT
// issuance for the API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akilima/akilima/internal/domain/apperr"
	"github.com/akilima/akilima/internal/domain/models"
	"github.com/akilima/akilima/internal/repository/mongodb"
)

const tokenTTL = 24 * time.Hour

// ErrInvalidCredentials indicates a failed login attempt. Unknown email and
// wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken indicates a missing, malformed or expired bearer token.
var ErrInvalidToken = errors.New("invalid token")

// Service implements account and token operations.
type Service struct {
	repo      mongodb.UserRepository
	jwtSecret string
	logger    *zap.Logger
	now       func() time.Time
}

// NewService wires a new auth service instance.
func NewService(repo mongodb.UserRepository, jwtSecret string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:      repo,
		jwtSecret: jwtSecret,
		logger:    logger,
		now:       time.Now,
	}
}

// Register creates a new account with a bcrypt-hashed password. The role
// defaults to farmer when omitted.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleFarmer
	}
	switch role {
	case models.RoleFarmer, models.RoleExtensionOfficer, models.RoleBuyer:
	default:
		return models.User{}, fmt.Errorf("unknown role %q: %w", role, apperr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	crops := make([]string, 0, len(req.Crops))
	for _, crop := range req.Crops {
		crops = append(crops, strings.ToLower(crop))
	}

	user := models.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Crops:        crops,
		CreatedAt:    s.now(),
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, mongodb.ErrDuplicateEmail) {
			return models.User{}, fmt.Errorf("%s: %w", user.Email, mongodb.ErrDuplicateEmail)
		}
		return models.User{}, err
	}

	s.logger.Info("user registered", zap.String("email", created.Email), zap.String("role", created.Role))
	return created, nil
}

// Login verifies credentials and returns a signed token with the user.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (string, models.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return "", models.User{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

// Profile returns the account behind a user id.
func (s *Service) Profile(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCrops replaces the user's selected crop list, lowercased. Unknown
// crop ids are stored as-is; the advisory lookup drops them silently.
func (s *Service) UpdateCrops(ctx context.Context, id primitive.ObjectID, crops []string) (models.User, error) {
	normalized := make([]string, 0, len(crops))
	for _, crop := range crops {
		normalized = append(normalized, strings.ToLower(crop))
	}

	if err := s.repo.UpdateCrops(ctx, id, normalized); err != nil {
		return models.User{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// TokenFor issues a token for an already-authenticated account, e.g. right
// after registration.
func (s *Service) TokenFor(userID primitive.ObjectID) (string, error) {
	return s.signToken(userID)
}

// signToken creates an HS256 token carrying the user id as subject.
func (s *Service) signToken(userID primitive.ObjectID) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": userID.Hex(),
		"exp": now.Add(tokenTTL).Unix(),
		"iat": now.Unix(),
		"iss": "akilima",
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// ParseToken validates a token and returns its subject as an ObjectID.
func (s *Service) ParseToken(tokenStr string) (primitive.ObjectID, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tok.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return primitive.NilObjectID, ErrInvalidToken
	}

	oid, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return oid, nil
}
