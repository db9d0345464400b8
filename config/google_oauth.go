// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google OAuth Configuration (Analytics connect + One Tap)
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const AnalyticsReadOnlyScope = "https://www.googleapis.com/auth/analytics.readonly"

var (
	// GoogleOAuthConfig drives the GA connect flow. Offline access so we
	// get a refresh token to persist per user.
	GoogleOAuthConfig *oauth2.Config

	// OIDCVerifier verifies One Tap ID tokens for dashboard sign-in.
	OIDCVerifier *oidc.IDTokenVerifier
)

// InitGoogleOAuth initializes Google OAuth configuration
func InitGoogleOAuth() {
	ctx := context.Background()

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Fatal("❌ GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET must be set in .env")
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8080/api/v1/auth/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{AnalyticsReadOnlyScope},
		Endpoint:     google.Endpoint,
	}

	// OIDC provider for One Tap ID token verification
	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Fatalf("❌ Failed to create OIDC provider: %v", err)
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}

// GetFrontendURL returns the dashboard URL from environment
func GetFrontendURL() string {
	urlFromEnv := os.Getenv("FRONTEND_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:3000"
		log.Printf("⚠️  FRONTEND_URL not set, using default: %s", defaultURL)
		return defaultURL
	}
	return urlFromEnv
}
