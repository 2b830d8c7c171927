package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshoppro/internal/common"
	"workshoppro/internal/config"
	"workshoppro/internal/logging"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const tokenContextKey = "user"

// Claims are the access token claims issued by the auth provider.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWT builds the bearer token middleware. Tokens are verified against the
// JWKS endpoint when one is configured, otherwise with the HS256 secret.
// The returned stop func ends the JWKS refresh goroutine.
func JWT(cfg config.AuthConfig, logger *logging.Logger) (echo.MiddlewareFunc, func(), error) {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }, func() {}, nil
	}
	if logger == nil {
		logger = logging.Nop()
	}

	jwtConfig := echojwt.Config{
		ContextKey: tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*Claims)
			if !ok {
				return
			}
			ctx := common.WithUserID(c.Request().Context(), claims.Subject)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Debug(c.Request().Context(), "auth", "token rejected", map[string]any{"error": err.Error()})
			return common.SendUnauthorizedError(c)
		},
	}

	stop := func() {}
	switch {
	case cfg.JWKSURL != "":
		jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshTimeout:    10 * time.Second,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				logger.Error(context.Background(), "auth", "failed to refresh JWKS", err, nil)
			},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("load JWKS: %w", err)
		}
		jwtConfig.KeyFunc = jwks.Keyfunc
		stop = jwks.EndBackground
	case cfg.JWTSecret != "":
		jwtConfig.SigningKey = []byte(cfg.JWTSecret)
		jwtConfig.SigningMethod = jwt.SigningMethodHS256.Alg()
	default:
		return nil, nil, errors.New("auth enabled without a JWT secret or JWKS URL")
	}

	return echojwt.WithConfig(jwtConfig), stop, nil
}
