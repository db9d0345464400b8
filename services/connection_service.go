package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"gorm.io/gorm"
)

var ErrConnectionNotFound = errors.New("connection not found")

// GetConnection loads the user's credential row.
func GetConnection(userID string) (*models.Connection, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var conn models.Connection
	if err := config.Gorm.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

// getOrCreateConnection returns the user's row, creating an empty one on
// first save.
func getOrCreateConnection(userID string) (*models.Connection, error) {
	conn, err := GetConnection(userID)
	if err == nil {
		return conn, nil
	}
	if !errors.Is(err, ErrConnectionNotFound) {
		return nil, err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	conn = &models.Connection{
		ID:     uuid.Must(uuid.NewV7()).String(),
		UserID: userID,
	}
	if err := config.Gorm.WithContext(ctx).Create(conn).Error; err != nil {
		return nil, err
	}
	return conn, nil
}

// SaveWooCommerceCredentials upserts the store URL and REST keys.
func SaveWooCommerceCredentials(userID, storeURL, consumerKey, consumerSecret string) (*models.Connection, error) {
	conn, err := getOrCreateConnection(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	conn.WooURL = storeURL
	conn.WooConsumerKey = consumerKey
	conn.WooConsumerSecret = consumerSecret
	if err := config.Gorm.WithContext(ctx).
		Model(conn).
		Updates(map[string]any{
			"woo_url":             storeURL,
			"woo_consumer_key":    consumerKey,
			"woo_consumer_secret": consumerSecret,
		}).Error; err != nil {
		return nil, err
	}
	return conn, nil
}

// SaveFacebookCredentials upserts the Facebook Ads app id and token.
func SaveFacebookCredentials(userID, appID, accessToken string) (*models.Connection, error) {
	conn, err := getOrCreateConnection(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	conn.FacebookAppID = appID
	conn.FacebookAccessToken = accessToken
	if err := config.Gorm.WithContext(ctx).
		Model(conn).
		Updates(map[string]any{
			"facebook_app_id":       appID,
			"facebook_access_token": accessToken,
		}).Error; err != nil {
		return nil, err
	}
	return conn, nil
}

// SaveGoogleTokens persists OAuth tokens after the consent callback and
// after every refresh-on-expiry.
func SaveGoogleTokens(userID, accessToken, refreshToken string, expiry time.Time) error {
	conn, err := getOrCreateConnection(userID)
	if err != nil {
		return err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates := map[string]any{
		"google_access_token": accessToken,
		"google_token_expiry": expiry,
	}
	// Google omits the refresh token on re-consent; keep the stored one
	if refreshToken != "" {
		updates["google_refresh_token"] = refreshToken
	}
	return config.Gorm.WithContext(ctx).Model(conn).Updates(updates).Error
}

// UpdateStoreSettings saves the display name and/or logo URL.
func UpdateStoreSettings(userID, storeName, logoURL string) (*models.Connection, error) {
	conn, err := getOrCreateConnection(userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates := map[string]any{}
	if storeName != "" {
		updates["store_name"] = storeName
		conn.StoreName = storeName
	}
	if logoURL != "" {
		updates["logo_url"] = logoURL
		conn.LogoURL = logoURL
	}
	if len(updates) == 0 {
		return conn, nil
	}
	if err := config.Gorm.WithContext(ctx).Model(conn).Updates(updates).Error; err != nil {
		return nil, err
	}
	return conn, nil
}
