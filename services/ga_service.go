package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"golang.org/x/oauth2"
)

const (
	gaDataBaseURL  = "https://analyticsdata.googleapis.com/v1beta"
	gaAdminBaseURL = "https://analyticsadmin.googleapis.com/v1beta"

	// Refresh tokens 5 minutes before expiry
	tokenRefreshBuffer = 5 * time.Minute
)

// ErrGoogleNotConnected means the user never completed the consent flow.
var ErrGoogleNotConnected = errors.New("google analytics not connected")

// GAToken returns a valid access token for the user, refreshing against
// Google's token endpoint when the stored one is expired or close to it.
// Refreshed tokens are persisted back to the connection row; a refresh
// failure is terminal for the request and leaves stored credentials alone.
func GAToken(ctx context.Context, conn *models.Connection) (string, error) {
	if conn.GoogleRefreshToken == "" {
		return "", ErrGoogleNotConnected
	}

	if conn.GoogleAccessToken != "" && conn.GoogleTokenExpiry != nil &&
		time.Now().Before(conn.GoogleTokenExpiry.Add(-tokenRefreshBuffer)) {
		return conn.GoogleAccessToken, nil
	}

	src := config.GoogleOAuthConfig.TokenSource(ctx, &oauth2.Token{
		RefreshToken: conn.GoogleRefreshToken,
	})
	newToken, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("failed to refresh access token: %w", err)
	}
	if newToken.AccessToken == "" {
		return "", errors.New("received empty access token")
	}

	if err := SaveGoogleTokens(conn.UserID, newToken.AccessToken, newToken.RefreshToken, newToken.Expiry); err != nil {
		// persisting is best-effort; the token is still usable this request
		return newToken.AccessToken, nil
	}
	conn.GoogleAccessToken = newToken.AccessToken
	conn.GoogleTokenExpiry = &newToken.Expiry

	return newToken.AccessToken, nil
}

func gaRequest(ctx context.Context, token, method, fullURL string, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("GA API error: %s - %s", resp.Status, string(respBody))
	}
	return respBody, nil
}

// RunGAReport executes a GA4 Data API runReport and returns the raw report
// body (the dashboard consumes Google's row/header shape directly).
func RunGAReport(ctx context.Context, conn *models.Connection, req models.GADataRequest) (json.RawMessage, error) {
	token, err := GAToken(ctx, conn)
	if err != nil {
		return nil, err
	}

	metrics := make([]map[string]string, 0, len(req.Metrics))
	for _, m := range req.Metrics {
		metrics = append(metrics, map[string]string{"name": m})
	}
	dimensions := make([]map[string]string, 0, len(req.Dimensions))
	for _, d := range req.Dimensions {
		dimensions = append(dimensions, map[string]string{"name": d})
	}

	body := map[string]any{
		"dateRanges": []map[string]string{
			{"startDate": req.StartDate, "endDate": req.EndDate},
		},
		"metrics": metrics,
	}
	if len(dimensions) > 0 {
		body["dimensions"] = dimensions
	}

	fullURL := fmt.Sprintf("%s/properties/%s:runReport", gaDataBaseURL, req.PropertyID)
	respBody, err := gaRequest(ctx, token, "POST", fullURL, body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(respBody), nil
}

// ListGAProperties lists the GA4 properties visible to the connected
// account via the Admin API account summaries.
func ListGAProperties(ctx context.Context, conn *models.Connection) ([]models.GAProperty, error) {
	token, err := GAToken(ctx, conn)
	if err != nil {
		return nil, err
	}

	respBody, err := gaRequest(ctx, token, "GET", gaAdminBaseURL+"/accountSummaries?pageSize=200", nil)
	if err != nil {
		return nil, err
	}

	var summaries struct {
		AccountSummaries []struct {
			PropertySummaries []struct {
				Property    string `json:"property"` // "properties/123456"
				DisplayName string `json:"displayName"`
			} `json:"propertySummaries"`
		} `json:"accountSummaries"`
	}
	if err := json.Unmarshal(respBody, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode account summaries: %w", err)
	}

	var properties []models.GAProperty
	for _, acct := range summaries.AccountSummaries {
		for _, p := range acct.PropertySummaries {
			properties = append(properties, models.GAProperty{
				Name:        p.Property,
				DisplayName: p.DisplayName,
				PropertyID:  strings.TrimPrefix(p.Property, "properties/"),
			})
		}
	}
	return properties, nil
}
