package repositories

import (
	"context"
	"errors"
	"fmt"

	"health-server/db"
	"health-server/entities"

	"gorm.io/gorm"
)

type profilePgRepository struct {
	db db.Database
}

func NewProfilePgRepository(database db.Database) ProfileRepository {
	return &profilePgRepository{db: database}
}

func (r *profilePgRepository) GetByOwner(ctx context.Context, ownerID string) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", ownerID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Update saves the demographic fields. The patient id column is never written.
func (r *profilePgRepository) Update(ctx context.Context, profile *entities.Profile) error {
	err := r.db.GetDB().WithContext(ctx).Model(profile).
		Select("*").
		Omit("id", "patient_id", "user_id", "created_at").
		Updates(profile).Error
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func (r *profilePgRepository) HasPicture(ctx context.Context, ownerID, filename string) (bool, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).
		Model(&entities.Profile{}).
		Where("user_id = ? AND profile_picture = ?", ownerID, filename).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check profile picture: %w", err)
	}
	return count > 0, nil
}
