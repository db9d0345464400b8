package models

import "time"

// Connection holds one user's third-party credentials and store display
// settings. Secrets live only in this table; handlers mask them on read.
type Connection struct {
	ID     string `json:"id" gorm:"column:id;primaryKey"`
	UserID string `json:"user_id" gorm:"column:user_id"`

	// WooCommerce REST credentials
	WooURL            string `json:"woo_url" gorm:"column:woo_url"`
	WooConsumerKey    string `json:"woo_consumer_key" gorm:"column:woo_consumer_key"`
	WooConsumerSecret string `json:"woo_consumer_secret" gorm:"column:woo_consumer_secret"`

	// Facebook Ads
	FacebookAppID       string `json:"facebook_app_id" gorm:"column:facebook_app_id"`
	FacebookAccessToken string `json:"facebook_access_token" gorm:"column:facebook_access_token"`

	// Google Analytics OAuth tokens
	GoogleAccessToken  string     `json:"google_access_token" gorm:"column:google_access_token"`
	GoogleRefreshToken string     `json:"google_refresh_token" gorm:"column:google_refresh_token"`
	GoogleTokenExpiry  *time.Time `json:"google_token_expiry" gorm:"column:google_token_expiry"`

	// Store display settings
	StoreName string `json:"store_name" gorm:"column:store_name"`
	LogoURL   string `json:"logo_url" gorm:"column:logo_url"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Connection) TableName() string {
	return "connections"
}

// ConnectionView is the masked representation returned to the dashboard.
// Keys and tokens are reduced to a has_* flag plus the last 4 characters.
type ConnectionView struct {
	WooURL            string `json:"woo_url"`
	WooConnected      bool   `json:"woo_connected"`
	WooKeyHint        string `json:"woo_key_hint,omitempty"`
	FacebookConnected bool   `json:"facebook_connected"`
	FacebookAppID     string `json:"facebook_app_id,omitempty"`
	GoogleConnected   bool   `json:"google_connected"`
	StoreName         string `json:"store_name"`
	LogoURL           string `json:"logo_url"`
}

// SaveWooCommerceRequest is the connect-store payload.
type SaveWooCommerceRequest struct {
	URL            string `json:"url" binding:"required"`
	ConsumerKey    string `json:"consumer_key" binding:"required"`
	ConsumerSecret string `json:"consumer_secret" binding:"required"`
}

// SaveFacebookRequest stores Facebook Ads credentials.
type SaveFacebookRequest struct {
	AppID       string `json:"app_id" binding:"required"`
	AccessToken string `json:"access_token" binding:"required"`
}

// UpdateStoreSettingsRequest updates the display name; the logo arrives as
// multipart form data and is uploaded to Cloudinary.
type UpdateStoreSettingsRequest struct {
	StoreName string `form:"store_name"`
}

func maskHint(secret string) string {
	if len(secret) <= 4 {
		return ""
	}
	return "****" + secret[len(secret)-4:]
}

// View masks secrets for API responses.
func (conn *Connection) View() ConnectionView {
	return ConnectionView{
		WooURL:            conn.WooURL,
		WooConnected:      conn.WooURL != "" && conn.WooConsumerKey != "",
		WooKeyHint:        maskHint(conn.WooConsumerKey),
		FacebookConnected: conn.FacebookAccessToken != "",
		FacebookAppID:     conn.FacebookAppID,
		GoogleConnected:   conn.GoogleRefreshToken != "",
		StoreName:         conn.StoreName,
		LogoURL:           conn.LogoURL,
	}
}
