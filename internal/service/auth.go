package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/model"
	"github.com/deppfellow/todo-api/internal/repository"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	MessageMissingToken       = "Missing token"
	MessageInvalidToken       = "Invalid token"
	MessageExpiredToken       = "Signature has expired"
	MessageInvalidCredentials = "Invalid credentials"
	MessageAccountCreated     = "Account created successfully"
)

// Claims is the JWT body: the user id plus the registered exp/iat/sub.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService signs users up, logs them in and verifies bearer tokens.
type AuthService struct {
	server *server.Server
	users  repository.UserStore
	secret []byte
	ttl    time.Duration
	cost   int
	now    func() time.Time
}

func NewAuthService(s *server.Server, users repository.UserStore) *AuthService {
	return &AuthService{
		server: s,
		users:  users,
		secret: []byte(s.Config.Auth.SecretKey),
		ttl:    s.Config.Auth.TokenTTL,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

// Signup creates the account, queues the welcome email and returns a token.
func (a *AuthService) Signup(ctx context.Context, payload *model.SignupPayload) (*model.AuthResponse, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(payload.Password), a.cost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           strings.TrimSpace(payload.Name),
		Email:          normalizeEmail(payload.Email),
		PasswordDigest: string(digest),
	}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Int64("user_id", user.ID).Msg("user signed up")

	if a.server.Job != nil {
		if err := a.server.Job.EnqueueWelcomeEmail(ctx, user.ID, user.Email, user.Name); err != nil {
			logger.Error().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
		}
	}

	token, err := a.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		Message:   MessageAccountCreated,
		AuthToken: token,
	}, nil
}

// Login exchanges valid credentials for a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (a *AuthService) Login(ctx context.Context, payload *model.LoginPayload) (*model.AuthResponse, error) {
	user, err := a.users.GetUserByEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewCredentialsError(MessageInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(payload.Password)); err != nil {
		return nil, errs.NewCredentialsError(MessageInvalidCredentials)
	}

	token, err := a.IssueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{AuthToken: token}, nil
}

// IssueToken signs an HS256 token for userID valid for the configured TTL.
func (a *AuthService) IssueToken(userID int64) (string, error) {
	issuedAt := a.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(a.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Authenticate verifies token and loads its user.
//
// Expired tokens fail with "Signature has expired"; anything else wrong with
// the token, including a deleted user, fails with "Invalid token".
func (a *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewTokenError(MessageExpiredToken)
		}
		return nil, errs.NewTokenError(MessageInvalidToken)
	}

	user, err := a.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewTokenError(MessageInvalidToken)
		}
		return nil, err
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
