package repositories

import (
	"context"
	"errors"
	"testing"

	"health-server/db/dbtest"
	"health-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, users UserRepository, email string) *entities.User {
	t.Helper()
	user := &entities.User{Email: email, PasswordHash: "hash"}
	profile := &entities.Profile{PatientID: "PID-" + email}
	require.NoError(t, users.CreateWithProfile(context.Background(), user, profile))
	return user
}

func TestOwnedRepository_CreateAndList(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u1 := seedUser(t, NewUserPgRepository(database), "a@x.com")
	u2 := seedUser(t, NewUserPgRepository(database), "b@x.com")

	repo := NewMedicinePgRepository(database)
	med := &entities.Medicine{UserID: u1.ID, Name: "Aspirin", Dosage: "100mg", StartDate: strPtr("2024-01-02")}
	require.NoError(t, repo.Create(ctx, med))
	assert.NotEmpty(t, med.ID)
	assert.NotEmpty(t, med.CreatedAt)
	require.NoError(t, repo.Create(ctx, &entities.Medicine{UserID: u2.ID, Name: "Other"}))

	list, err := repo.ListByOwner(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Aspirin", list[0].Name)
	assert.Equal(t, "100mg", list[0].Dosage)
	assert.Equal(t, "2024-01-02", *list[0].StartDate)
	assert.False(t, list[0].Taken)

	count, err := repo.CountByOwner(ctx, u2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestOwnedRepository_ListByOwnerEmpty(t *testing.T) {
	repo := NewHabitPgRepository(dbtest.Open(t))

	list, err := repo.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestOwnedRepository_DomainOrder(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u := seedUser(t, NewUserPgRepository(database), "order@x.com")

	meals := NewMealPlanEntryPgRepository(database)
	for _, m := range []entities.MealPlanEntry{
		{UserID: u.ID, MealType: "Lunch", FoodItem: "Soup", MealDate: "2024-03-01"},
		{UserID: u.ID, MealType: "Breakfast", FoodItem: "Eggs", MealDate: "2024-03-01"},
		{UserID: u.ID, MealType: "Dinner", FoodItem: "Fish", MealDate: "2024-03-02"},
	} {
		m := m
		require.NoError(t, meals.Create(ctx, &m))
	}

	list, err := meals.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Fish", list[0].FoodItem)
	assert.Equal(t, "Eggs", list[1].FoodItem)
	assert.Equal(t, "Soup", list[2].FoodItem)

	bmis := NewBMIEntryPgRepository(database)
	require.NoError(t, bmis.Create(ctx, &entities.BMIEntry{UserID: u.ID, HeightCM: 170, WeightKG: 70, BMIValue: 24.2, DateRecorded: "2024-01-01"}))
	require.NoError(t, bmis.Create(ctx, &entities.BMIEntry{UserID: u.ID, HeightCM: 170, WeightKG: 72, BMIValue: 24.9, DateRecorded: "2024-02-01"}))

	history, err := bmis.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2024-02-01", history[0].DateRecorded)
}

func TestOwnedRepository_GetByIDNotFound(t *testing.T) {
	repo := NewPlannerEntryPgRepository(dbtest.Open(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestOwnedRepository_Mutate(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u := seedUser(t, NewUserPgRepository(database), "m@x.com")
	repo := NewHabitPgRepository(database)

	habit := &entities.Habit{UserID: u.ID, HabitName: "Walk"}
	require.NoError(t, repo.Create(ctx, habit))

	updated, err := repo.Mutate(ctx, habit.ID, func(h *entities.Habit) error {
		h.Done = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, updated.Done)

	stored, err := repo.GetByID(ctx, habit.ID)
	require.NoError(t, err)
	assert.True(t, stored.Done)
	assert.Equal(t, habit.CreatedAt, stored.CreatedAt)
}

func TestOwnedRepository_MutateAbortsOnGuardError(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u := seedUser(t, NewUserPgRepository(database), "g@x.com")
	repo := NewHabitPgRepository(database)

	habit := &entities.Habit{UserID: u.ID, HabitName: "Walk"}
	require.NoError(t, repo.Create(ctx, habit))

	guard := errors.New("nope")
	_, err := repo.Mutate(ctx, habit.ID, func(h *entities.Habit) error {
		h.HabitName = "Run"
		return guard
	})
	assert.ErrorIs(t, err, guard)

	stored, err := repo.GetByID(ctx, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Walk", stored.HabitName)

	_, err = repo.Mutate(ctx, "missing", func(*entities.Habit) error { return nil })
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestOwnedRepository_Remove(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u := seedUser(t, NewUserPgRepository(database), "r@x.com")
	repo := NewEmergencyContactPgRepository(database)

	contact := &entities.EmergencyContact{UserID: u.ID, Name: "Mum", PhoneNumber: "123"}
	require.NoError(t, repo.Create(ctx, contact))

	_, err := repo.Remove(ctx, contact.ID, func(*entities.EmergencyContact) error { return entities.ErrForbidden })
	assert.ErrorIs(t, err, entities.ErrForbidden)
	_, err = repo.GetByID(ctx, contact.ID)
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, contact.ID, func(*entities.EmergencyContact) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, "Mum", removed.Name)
	_, err = repo.GetByID(ctx, contact.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, contact.ID), entities.ErrNotFound)
}

func TestOwnedRepository_WhereHelpers(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()
	u := seedUser(t, NewUserPgRepository(database), "w@x.com")
	repo := NewMedicalHistoryPgRepository(database)

	require.NoError(t, repo.Create(ctx, &entities.MedicalHistory{UserID: u.ID, Condition: "Asthma", DocumentFilename: strPtr("doc.pdf")}))
	require.NoError(t, repo.Create(ctx, &entities.MedicalHistory{UserID: u.ID, Condition: "Flu"}))

	withDocs, err := repo.ListByOwnerWhere(ctx, u.ID, "document_filename IS NOT NULL")
	require.NoError(t, err)
	require.Len(t, withDocs, 1)
	assert.Equal(t, "Asthma", withDocs[0].Condition)

	ok, err := repo.ExistsForOwner(ctx, u.ID, "document_filename = ?", "doc.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ExistsForOwner(ctx, "someone-else", "document_filename = ?", "doc.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}
