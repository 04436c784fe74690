package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

var (
	CtxKeys struct {
		UID    string
		Email  string
		Name   string
		Claims string
	}

	// ProjectID is the GCP project hosting the Firestore database.
	ProjectID string

	// AppID scopes all user documents under artifacts/<AppID>/users/...
	AppID string

	GAEService string

	GAEVersion string

	// Production flag indicating if the app is running the production backend
	Production bool

	// IsLocalhost flag indicating if the app is running on localhost
	IsLocalhost bool
)

const (
	// TestProjectID is used by package tests that construct Firestore
	// clients without authentication.
	TestProjectID = "pantrypal-dev"

	defaultAppID = "pantrypal"
)

func init() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		log.Println("warning: GOOGLE_CLOUD_PROJECT is not set, using test project")

		ProjectID = TestProjectID
	}

	AppID = GetEnv("PANTRYPAL_APP_ID", defaultAppID)
	GAEService = GetEnv("GAE_SERVICE", "pantrypal-api")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")

	IsLocalhost = gin.Mode() != gin.ReleaseMode
	Production = !IsLocalhost && ProjectID != TestProjectID

	CtxKeys.UID = "uid"
	CtxKeys.Email = "email"
	CtxKeys.Name = "name"
	CtxKeys.Claims = "claims"
}

// GetEnv returns the value of the environment variable named by key, or
// fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// String returns a pointer to the string value passed in.
func String(v string) *string {
	return &v
}

// Float returns a pointer to the float64 value passed in.
func Float(v float64) *float64 {
	return &v
}
