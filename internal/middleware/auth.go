package middleware

import (
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/todo-api/internal/errs"
	"github.com/deppfellow/todo-api/internal/server"
	"github.com/deppfellow/todo-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AuthMiddleware guards the versioned API with JWT bearer tokens.
type AuthMiddleware struct {
	server *server.Server
	auth   *service.AuthService
}

func NewAuthMiddleware(s *server.Server, auth *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		server: s,
		auth:   auth,
	}
}

// RequireAuth resolves the caller from the Authorization header and stores
// its id under UserIDKey. The token is the last space separated segment, so
// both "Bearer <token>" and a bare token are accepted.
//
// Failures answer 422 with a body of exactly {"message": "..."}.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		logger := GetLogger(c)

		token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if token == "" {
			logger.Warn().
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("missing authorization token")
			return errs.NewTokenError(service.MessageMissingToken)
		}

		user, err := auth.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("function", "RequireAuth").
				Dur("duration", time.Since(start)).
				Msg("token rejected")
			return err
		}

		userID := strconv.FormatInt(user.ID, 10)
		c.Set(UserIDKey, userID)

		// Downstream logs carry the caller.
		enriched := logger.With().Str("user_id", userID).Logger()
		c.Set(LoggerKey, &enriched)
		ctx := enriched.WithContext(c.Request().Context())
		c.SetRequest(c.Request().WithContext(ctx))

		if txn := newrelic.FromContext(ctx); txn != nil {
			txn.AddAttribute("user.id", userID)
		}

		enriched.Debug().
			Str("function", "RequireAuth").
			Dur("duration", time.Since(start)).
			Msg("user authenticated successfully")

		return next(c)
	}
}

func bearerToken(header string) string {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
