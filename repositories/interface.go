package repositories

import (
	"context"
	"errors"

	"health-server/entities"
)

// ErrDuplicatePatientID is returned when a freshly generated patient id collides.
var ErrDuplicatePatientID = errors.New("patient id already taken")

// OwnedRepository persists one kind of user-owned record. Every lookup that
// misses returns entities.ErrNotFound.
type OwnedRepository[T entities.Record] interface {
	Create(ctx context.Context, rec *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	ListByOwner(ctx context.Context, ownerID string) ([]T, error)
	ListByOwnerWhere(ctx context.Context, ownerID, query string, args ...any) ([]T, error)
	ExistsForOwner(ctx context.Context, ownerID, query string, args ...any) (bool, error)
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id string) error

	// Mutate loads the record, hands it to fn and saves it, all in one transaction.
	// An error from fn aborts without writing.
	Mutate(ctx context.Context, id string, fn func(rec *T) error) (*T, error)
	// Remove loads the record, hands it to fn and deletes it, all in one transaction.
	Remove(ctx context.Context, id string, fn func(rec *T) error) (*T, error)
}

type (
	MedicalHistoryRepository   = OwnedRepository[entities.MedicalHistory]
	MedicineRepository         = OwnedRepository[entities.Medicine]
	HabitRepository            = OwnedRepository[entities.Habit]
	UploadRepository           = OwnedRepository[entities.Upload]
	PlannerEntryRepository     = OwnedRepository[entities.PlannerEntry]
	BMIEntryRepository         = OwnedRepository[entities.BMIEntry]
	EmergencyContactRepository = OwnedRepository[entities.EmergencyContact]
	ExerciseLogRepository      = OwnedRepository[entities.ExerciseLog]
	MealPlanEntryRepository    = OwnedRepository[entities.MealPlanEntry]
)

type UserRepository interface {
	// CreateWithProfile inserts the user and its profile atomically.
	CreateWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	UpdatePasswordHash(ctx context.Context, id, hash string) error
}

type ProfileRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*entities.Profile, error)
	Update(ctx context.Context, profile *entities.Profile) error
	HasPicture(ctx context.Context, ownerID, filename string) (bool, error)
}
