package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"gorm.io/gorm"
)

// UpsertGoogleUser finds the account matching a verified One Tap identity,
// creating it on first sign-in. Matching is by google_id first, then by
// email so pre-provisioned accounts get linked.
func UpsertGoogleUser(info models.GoogleUserInfo) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Gorm.WithContext(ctx).
		Where("google_id = ?", info.Sub).
		Or("email = ?", info.Email).
		First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:            uuid.Must(uuid.NewV7()).String(),
			Email:         info.Email,
			Name:          info.Name,
			GoogleID:      info.Sub,
			EmailVerified: info.EmailVerified,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}
		if info.Picture != "" {
			user.Avatar = &info.Picture
		}
		if err := config.Gorm.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	updates := map[string]any{
		"google_id":      info.Sub,
		"name":           info.Name,
		"email_verified": info.EmailVerified,
		"updated_at":     time.Now(),
	}
	if info.Picture != "" {
		updates["avatar"] = info.Picture
		user.Avatar = &info.Picture
	}
	if err := config.Gorm.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}
	user.GoogleID = info.Sub
	user.Name = info.Name
	user.EmailVerified = info.EmailVerified

	return &user, nil
}

// GetUserByID loads one dashboard account.
func GetUserByID(userID string) (*models.User, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Gorm.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
