package models

import "time"

// User is a dashboard account. Sign-in is Google One Tap only; there is no
// password column.
type User struct {
	ID            string    `json:"id" gorm:"column:id;primaryKey"`
	Email         string    `json:"email" gorm:"column:email"`
	Name          string    `json:"name" gorm:"column:name"`
	Avatar        *string   `json:"avatar" gorm:"column:avatar"`
	GoogleID      string    `json:"-" gorm:"column:google_id"`
	EmailVerified bool      `json:"email_verified" gorm:"column:email_verified"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// GoogleUserInfo mirrors the OIDC ID token claims One Tap sends.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// UserResponse is the public view returned after login.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    *string   `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
