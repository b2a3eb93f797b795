package repositories

import (
	"context"
	"errors"
	"fmt"

	"health-server/db"
	"health-server/entities"

	"gorm.io/gorm"
)

// Orders used by ListByOwner.
const (
	InsertionOrder = "created_at ASC, id ASC"
	BMIOrder       = "date_recorded DESC, created_at DESC"
	ExerciseOrder  = "log_date DESC, created_at DESC"
	MealOrder      = "meal_date DESC, meal_type ASC"
	PlannerOrder   = "event_date ASC, created_at ASC"
)

type ownedPgRepository[T entities.Record] struct {
	db    db.Database
	order string
}

// NewOwnedPgRepository returns a gorm repository for T listing records in the given order.
func NewOwnedPgRepository[T entities.Record](database db.Database, order string) OwnedRepository[T] {
	if order == "" {
		order = InsertionOrder
	}
	return &ownedPgRepository[T]{db: database, order: order}
}

func NewMedicalHistoryPgRepository(database db.Database) MedicalHistoryRepository {
	return NewOwnedPgRepository[entities.MedicalHistory](database, InsertionOrder)
}

func NewMedicinePgRepository(database db.Database) MedicineRepository {
	return NewOwnedPgRepository[entities.Medicine](database, InsertionOrder)
}

func NewHabitPgRepository(database db.Database) HabitRepository {
	return NewOwnedPgRepository[entities.Habit](database, InsertionOrder)
}

func NewUploadPgRepository(database db.Database) UploadRepository {
	return NewOwnedPgRepository[entities.Upload](database, InsertionOrder)
}

func NewPlannerEntryPgRepository(database db.Database) PlannerEntryRepository {
	return NewOwnedPgRepository[entities.PlannerEntry](database, PlannerOrder)
}

func NewBMIEntryPgRepository(database db.Database) BMIEntryRepository {
	return NewOwnedPgRepository[entities.BMIEntry](database, BMIOrder)
}

func NewEmergencyContactPgRepository(database db.Database) EmergencyContactRepository {
	return NewOwnedPgRepository[entities.EmergencyContact](database, InsertionOrder)
}

func NewExerciseLogPgRepository(database db.Database) ExerciseLogRepository {
	return NewOwnedPgRepository[entities.ExerciseLog](database, ExerciseOrder)
}

func NewMealPlanEntryPgRepository(database db.Database) MealPlanEntryRepository {
	return NewOwnedPgRepository[entities.MealPlanEntry](database, MealOrder)
}

func (r *ownedPgRepository[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.GetDB().WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

func (r *ownedPgRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var rec T
	if err := first(r.db.GetDB().WithContext(ctx), &rec, id); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ownedPgRepository[T]) ListByOwner(ctx context.Context, ownerID string) ([]T, error) {
	recs := []T{}
	err := r.db.GetDB().WithContext(ctx).Where("user_id = ?", ownerID).Order(r.order).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return recs, nil
}

func (r *ownedPgRepository[T]) ListByOwnerWhere(ctx context.Context, ownerID, query string, args ...any) ([]T, error) {
	recs := []T{}
	err := r.db.GetDB().WithContext(ctx).
		Where("user_id = ?", ownerID).
		Where(query, args...).
		Order(r.order).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return recs, nil
}

func (r *ownedPgRepository[T]) ExistsForOwner(ctx context.Context, ownerID, query string, args ...any) (bool, error) {
	var count int64
	err := r.db.GetDB().WithContext(ctx).
		Model(new(T)).
		Where("user_id = ?", ownerID).
		Where(query, args...).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return count > 0, nil
}

func (r *ownedPgRepository[T]) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.GetDB().WithContext(ctx).Model(new(T)).Where("user_id = ?", ownerID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}

func (r *ownedPgRepository[T]) Update(ctx context.Context, rec *T) error {
	if err := r.db.GetDB().WithContext(ctx).Save(rec).Error; err != nil {
		return fmt.Errorf("update: %w", err)
	}
	return nil
}

func (r *ownedPgRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.GetDB().WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return fmt.Errorf("delete: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

func (r *ownedPgRepository[T]) Mutate(ctx context.Context, id string, fn func(rec *T) error) (*T, error) {
	var rec T
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &rec, id); err != nil {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("update: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ownedPgRepository[T]) Remove(ctx context.Context, id string, fn func(rec *T) error) (*T, error) {
	var rec T
	err := r.db.Transaction(ctx, func(tx *gorm.DB) error {
		if err := first(tx, &rec, id); err != nil {
			return err
		}
		if err := fn(&rec); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(new(T)).Error; err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func first(tx *gorm.DB, dest any, id string) error {
	err := tx.Where("id = ?", id).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get: %w", err)
	}
	return nil
}
