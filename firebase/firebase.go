package firebase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/daphne-i/pantrypal/common"
)

var errNoAuthHeader = errors.New("No Authorization Header found")
var errInvalidAuthHeader = errors.New("Invalid Authorization Header found")

var (
	app     *firebase.App
	appOnce sync.Once
	appErr  error
)

// App returns the firebase app singleton for the configured project.
func App(ctx context.Context) (*firebase.App, error) {
	appOnce.Do(func() {
		app, appErr = firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID})
	})

	return app, appErr
}

func tokenAuthTime(token *auth.Token) (*time.Time, error) {
	if authTime, prs := token.Claims["auth_time"]; prs {
		if v, ok := authTime.(float64); ok {
			t := time.Unix(int64(v), 0)
			return &t, nil
		}
	}

	return nil, errors.New("invalid auth token")
}

// VerifyIDToken : Verify auth header
func VerifyIDToken(ctx *gin.Context) (*auth.Token, *time.Time, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil, errNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, nil, errInvalidAuthHeader
	}

	idToken := strings.Split(authHeader, " ")[1]

	fbApp, err := App(ctx)
	if err != nil {
		return nil, nil, err
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return nil, nil, err
	}

	token, err := authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, err
	}

	authTime, err := tokenAuthTime(token)
	if err != nil {
		return nil, nil, err
	}

	return token, authTime, nil
}

// VerifyIDTokenAndCheckRevoked verifies the request authorization header and
// additionally checks the token has not been revoked.
func VerifyIDTokenAndCheckRevoked(ctx *gin.Context) error {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader == "" {
		return errNoAuthHeader
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return errInvalidAuthHeader
	}

	fbApp, err := App(ctx)
	if err != nil {
		return err
	}

	authClient, err := fbApp.Auth(ctx)
	if err != nil {
		return err
	}

	idToken := strings.Split(authHeader, " ")[1]
	if _, err := authClient.VerifyIDTokenAndCheckRevoked(ctx, idToken); err != nil {
		return err
	}

	return nil
}
