package usecases

import (
	"context"
	"testing"

	"health-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicine_MarkTakenScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "a@x.com")
	_, err := f.auth.Authenticate(ctx, LoginInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	uc := NewMedicineUseCase(f.repos.Medicines, f.log)
	med, err := uc.Create(ctx, user.ID, MedicineInput{Name: "Aspirin", Dosage: "100mg"})
	require.NoError(t, err)

	list, err := uc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Taken)
	assert.Equal(t, "100mg", list[0].Dosage)

	_, err = uc.MarkTaken(ctx, med.ID, user.ID)
	require.NoError(t, err)
	// idempotent
	_, err = uc.MarkTaken(ctx, med.ID, user.ID)
	require.NoError(t, err)

	got, err := uc.Get(ctx, med.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, got.Taken)
}

func TestMedicine_MarkTakenByNonOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.register(t, "a@x.com")
	u2 := f.register(t, "b@x.com")

	uc := NewMedicineUseCase(f.repos.Medicines, f.log)
	med, err := uc.Create(ctx, u1.ID, MedicineInput{Name: "Aspirin"})
	require.NoError(t, err)

	_, err = uc.MarkTaken(ctx, med.ID, u2.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)

	got, err := uc.Get(ctx, med.ID, u1.ID)
	require.NoError(t, err)
	assert.False(t, got.Taken)
}

func TestEmergencyContact_DeleteByNonOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.register(t, "a@x.com")
	u2 := f.register(t, "b@x.com")

	uc := NewEmergencyContactUseCase(f.repos.EmergencyContacts, f.log)
	c, err := uc.Create(ctx, u1.ID, EmergencyContactInput{Name: "Mum", Relationship: "Mother", PhoneNumber: "555-1234"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Delete(ctx, c.ID, u2.ID), entities.ErrForbidden)

	list, err := uc.List(ctx, u1.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	assert.ErrorIs(t, uc.Delete(ctx, "missing", u1.ID), entities.ErrNotFound)
	require.NoError(t, uc.Delete(ctx, c.ID, u1.ID))
}

func TestRecord_UpdateByNonOwnerLeavesRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u1 := f.register(t, "a@x.com")
	u2 := f.register(t, "b@x.com")

	uc := NewHabitUseCase(f.repos.Habits, f.log)
	h, err := uc.Create(ctx, u1.ID, HabitInput{HabitName: "Walk", Frequency: "Daily"})
	require.NoError(t, err)

	_, err = uc.Update(ctx, h.ID, u2.ID, HabitInput{HabitName: "Hijacked"})
	assert.ErrorIs(t, err, entities.ErrForbidden)

	updated, err := uc.Update(ctx, h.ID, u1.ID, HabitInput{HabitName: "Run", Frequency: "Weekly"})
	require.NoError(t, err)
	assert.Equal(t, "Run", updated.HabitName)
	assert.Equal(t, u1.ID, updated.UserID)

	_, err = uc.MarkDone(ctx, h.ID, u1.ID)
	require.NoError(t, err)
	got, err := uc.Get(ctx, h.ID, u1.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "Weekly", got.Frequency)

	_, err = uc.Get(ctx, h.ID, u2.ID)
	assert.ErrorIs(t, err, entities.ErrForbidden)
}

func TestBMI_Record(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "a@x.com")
	uc := NewBMIUseCase(f.repos.BMIEntries, f.log)

	entry, err := uc.Create(ctx, user.ID, BMIInput{HeightCM: "170", WeightKG: "70"})
	require.NoError(t, err)
	assert.InDelta(t, 24.22, entry.BMIValue, 0.01)
	assert.Equal(t, 170.0, entry.HeightCM)
	assert.Equal(t, 70.0, entry.WeightKG)
	assert.Equal(t, entities.Today(), entry.DateRecorded)

	_, err = uc.Create(ctx, user.ID, BMIInput{HeightCM: "-5", WeightKG: "70"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = uc.Create(ctx, user.ID, BMIInput{HeightCM: "tall", WeightKG: "70"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = uc.Update(ctx, entry.ID, user.ID, BMIInput{HeightCM: "180", WeightKG: "70"})
	assert.ErrorIs(t, err, entities.ErrValidation)

	list, err := uc.List(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRecord_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "a@x.com")

	exercise := NewExerciseUseCase(f.repos.ExerciseLogs, f.log)
	meals := NewMealUseCase(f.repos.MealPlanEntries, f.log)
	contacts := NewEmergencyContactUseCase(f.repos.EmergencyContacts, f.log)
	planner := NewPlannerUseCase(f.repos.PlannerEntries, f.log)
	bmi := NewBMIUseCase(f.repos.BMIEntries, f.log)
	profiles := NewProfileUseCase(f.repos.Profiles, f.store, f.log)

	cases := []struct {
		name  string
		field string
		run   func() error
	}{
		{"non-numeric duration", "duration_minutes", func() error {
			_, err := exercise.Create(ctx, user.ID, ExerciseInput{ActivityName: "Run", DurationMinutes: "ten"})
			return err
		}},
		{"zero duration", "duration_minutes", func() error {
			_, err := exercise.Create(ctx, user.ID, ExerciseInput{ActivityName: "Run", DurationMinutes: "0"})
			return err
		}},
		{"non-numeric calories", "calories", func() error {
			_, err := meals.Create(ctx, user.ID, MealInput{MealType: "Lunch", FoodItem: "Soup", Calories: "lots"})
			return err
		}},
		{"infinite calories burned", "calories_burned", func() error {
			_, err := exercise.Create(ctx, user.ID, ExerciseInput{ActivityName: "Run", DurationMinutes: "30", CaloriesBurned: "Inf"})
			return err
		}},
		{"NaN calories", "calories", func() error {
			_, err := meals.Create(ctx, user.ID, MealInput{MealType: "Lunch", FoodItem: "Soup", Calories: "NaN"})
			return err
		}},
		{"infinite height", "height_cm", func() error {
			_, err := bmi.Create(ctx, user.ID, BMIInput{HeightCM: "Infinity", WeightKG: "70"})
			return err
		}},
		{"NaN profile weight", "weight", func() error {
			_, err := profiles.Update(ctx, user.ID, ProfileInput{Weight: "nan"}, nil)
			return err
		}},
		{"malformed date", "meal_date", func() error {
			_, err := meals.Create(ctx, user.ID, MealInput{MealType: "Lunch", FoodItem: "Soup", MealDate: "03/01/2024"})
			return err
		}},
		{"missing phone", "phone_number", func() error {
			_, err := contacts.Create(ctx, user.ID, EmergencyContactInput{Name: "Mum"})
			return err
		}},
		{"blank event name", "event_name", func() error {
			_, err := planner.Create(ctx, user.ID, PlannerInput{EventName: "  "})
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRecord_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "a@x.com")

	t.Run("exercise", func(t *testing.T) {
		uc := NewExerciseUseCase(f.repos.ExerciseLogs, f.log)
		_, err := uc.Create(ctx, user.ID, ExerciseInput{ActivityName: "Swim", DurationMinutes: "45", CaloriesBurned: "300.5", LogDate: "2024-02-03"})
		require.NoError(t, err)
		list, err := uc.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Swim", list[0].ActivityName)
		assert.Equal(t, 45, list[0].DurationMinutes)
		require.NotNil(t, list[0].CaloriesBurned)
		assert.Equal(t, 300.5, *list[0].CaloriesBurned)
		assert.Equal(t, "2024-02-03", list[0].LogDate)
	})

	t.Run("meal without calories", func(t *testing.T) {
		uc := NewMealUseCase(f.repos.MealPlanEntries, f.log)
		_, err := uc.Create(ctx, user.ID, MealInput{MealType: "Breakfast", FoodItem: "Oats"})
		require.NoError(t, err)
		list, err := uc.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Nil(t, list[0].Calories)
		assert.Equal(t, entities.Today(), list[0].MealDate)
	})

	t.Run("planner", func(t *testing.T) {
		uc := NewPlannerUseCase(f.repos.PlannerEntries, f.log)
		_, err := uc.Create(ctx, user.ID, PlannerInput{EventName: "Checkup", EventDate: "2024-06-01", Notes: "fasting"})
		require.NoError(t, err)
		list, err := uc.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Checkup", list[0].EventName)
		assert.Equal(t, "2024-06-01", *list[0].EventDate)
		assert.Equal(t, "fasting", list[0].Notes)
	})

	t.Run("medical history without document", func(t *testing.T) {
		uc := NewMedicalHistoryUseCase(f.repos.MedicalHistories, f.store, f.log)
		_, err := uc.Create(ctx, user.ID, MedicalHistoryInput{Condition: "Asthma", DiagnosisDate: "2010-01-01"})
		require.NoError(t, err)
		list, err := uc.List(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Asthma", list[0].Condition)
		assert.Nil(t, list[0].DocumentFilename)
	})
}

func TestRecord_RequiresSession(t *testing.T) {
	f := newFixture(t)
	uc := NewHabitUseCase(f.repos.Habits, f.log)

	_, err := uc.Create(context.Background(), "", HabitInput{HabitName: "Walk"})
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
	_, err = uc.List(context.Background(), "")
	assert.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestCheckOwner(t *testing.T) {
	assert.NoError(t, CheckOwner("u1", "u1"))
	assert.ErrorIs(t, CheckOwner("u1", "u2"), entities.ErrForbidden)
	assert.ErrorIs(t, CheckOwner("u1", ""), entities.ErrForbidden)
}
