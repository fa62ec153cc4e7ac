package services

import (
	"context"
	"errors"
	"time"

	"items-api/config"
	"items-api/internal/domain/user"
	"items-api/internal/repository"
	items_errors "items-api/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	accessTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		accessTTL: time.Duration(cfg.JWTExpiryMin) * time.Minute,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AccessClaims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if in.Username == "" || in.Password == "" {
		return user.User{}, items_errors.ErrInvalidInput
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return user.User{}, items_errors.ErrInternal
	}

	newUser := &user.User{
		Username:     in.Username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return user.User{}, err
	}

	return *newUser, nil
}

// Login verifies the credentials and issues a signed access token. Unknown
// usernames and wrong passwords return the same error so callers cannot probe
// which usernames exist.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", items_errors.ErrInvalidCredentials
	}

	u, err := s.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, items_errors.ErrNotFound) {
			return "", items_errors.ErrInvalidCredentials
		}
		return "", err
	}

	if err := comparePassword(u.PasswordHash, in.Password); err != nil {
		return "", items_errors.ErrInvalidCredentials
	}

	return s.newAccessToken(u.ID)
}

func (s *AuthService) ParseAccessToken(tokenString string) (AccessClaims, error) {
	if tokenString == "" {
		return AccessClaims{}, items_errors.ErrNoToken
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, items_errors.ErrInvalidToken
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return AccessClaims{}, items_errors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return AccessClaims{}, items_errors.ErrInvalidToken
	}

	return *claims, nil
}

func (s *AuthService) newAccessToken(userID int) (string, error) {
	now := time.Now()

	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", items_errors.ErrInternal
	}
	return signed, nil
}

func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, items_errors.ErrInvalidInput),
		errors.Is(err, items_errors.ErrUsernameTaken),
		errors.Is(err, items_errors.ErrInvalidCredentials):
		return 400
	case errors.Is(err, items_errors.ErrNoToken):
		return 401
	case errors.Is(err, items_errors.ErrInvalidToken):
		return 403
	case errors.Is(err, items_errors.ErrItemNotFound), errors.Is(err, items_errors.ErrNotFound):
		return 404
	case errors.Is(err, items_errors.ErrRateLimited):
		return 429
	default:
		return 500
	}
}

type ctxKey string

var userIDKey ctxKey = "user_id"

func WithUserContext(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int, bool) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return 0, false
	}
	userID, ok := value.(int)
	return userID, ok
}

func hashPassword(password string) (string, error) {
	// bcrypt.DefaultCost is 10 rounds
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
