package repositories

import (
	"context"
	"errors"
	"fmt"

	"health-server/db"
	"health-server/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) CreateWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error {
	return r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return entities.ErrDuplicateEmail
			}
			return fmt.Errorf("create user: %w", err)
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePatientID
			}
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
}

func (r *userPgRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := first(r.db.GetDB().WithContext(ctx), &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (r *userPgRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func (r *userPgRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res := r.db.GetDB().WithContext(ctx).Model(&entities.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": hash,
		"updated_at":    entities.Now(),
	})
	if res.Error != nil {
		return fmt.Errorf("update password: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}
