package mid

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/common"
	fb "github.com/daphne-i/pantrypal/firebase"
	"github.com/daphne-i/pantrypal/framework/web"
)

const (
	dayDuration                  = 24 * time.Hour
	MaxValidRefreshTokenDuration = 2 * dayDuration
)

// Auth errors
var (
	ErrForbidden    = errors.New("forbidden operation")
	ErrUnauthorized = errors.New("unauthorized operation")
)

// AuthRequired middleware that auths requests coming from the client app.
func AuthRequired() web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			token, authTime, err := fb.VerifyIDToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set(common.CtxKeys.Claims, claims)
			ctx.Set(common.CtxKeys.UID, token.UID)

			// If it's been too long since the user last logged in, check if token is revoked
			if time.Since(*authTime) > MaxValidRefreshTokenDuration {
				if err := fb.VerifyIDTokenAndCheckRevoked(ctx); err != nil {
					return web.NewRequestError(err, http.StatusUnauthorized)
				}
			}

			if email, ok := claims["email"]; ok {
				if emailStr, ok := email.(string); ok {
					ctx.Set(common.CtxKeys.Email, strings.ToLower(emailStr))
				}
			}

			if name, ok := claims["name"]; ok {
				if nameStr, ok := name.(string); ok {
					ctx.Set(common.CtxKeys.Name, nameStr)
				}
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

// OwnerOnly restricts a route carrying a userID path param to the
// authenticated user it belongs to. Every document in the store is scoped to
// exactly one user; there is no cross-user sharing.
func OwnerOnly(paramName string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			uid := ctx.GetString(common.CtxKeys.UID)
			if uid == "" || uid != ctx.Param(paramName) {
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}
