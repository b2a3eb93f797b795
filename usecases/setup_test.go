package usecases

import (
	"context"
	"testing"

	"health-server/db/dbtest"
	"health-server/entities"
	"health-server/repositories"
	"health-server/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	repos Repos
	store *storage.LocalStore
	auth  *AuthUseCase
	log   *zap.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	database := dbtest.Open(t)
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	repos := Repos{
		Users:             repositories.NewUserPgRepository(database),
		Profiles:          repositories.NewProfilePgRepository(database),
		MedicalHistories:  repositories.NewMedicalHistoryPgRepository(database),
		Medicines:         repositories.NewMedicinePgRepository(database),
		Habits:            repositories.NewHabitPgRepository(database),
		Uploads:           repositories.NewUploadPgRepository(database),
		PlannerEntries:    repositories.NewPlannerEntryPgRepository(database),
		BMIEntries:        repositories.NewBMIEntryPgRepository(database),
		EmergencyContacts: repositories.NewEmergencyContactPgRepository(database),
		ExerciseLogs:      repositories.NewExerciseLogPgRepository(database),
		MealPlanEntries:   repositories.NewMealPlanEntryPgRepository(database),
	}
	log := zap.NewNop()
	auth := NewAuthUseCase(repos.Users, log)
	auth.HashCost = bcrypt.MinCost

	return &fixture{repos: repos, store: store, auth: auth, log: log}
}

func (f *fixture) register(t *testing.T, email string) *entities.User {
	t.Helper()
	user, err := f.auth.Register(context.Background(), RegisterInput{Email: email, Password: "pw1"})
	require.NoError(t, err)
	return user
}
