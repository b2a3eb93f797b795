package usecases

import (
	"context"
	"strings"

	"health-server/entities"
	"health-server/repositories"

	"go.uber.org/zap"
)

type MedicineUseCase struct {
	*RecordUseCase[entities.Medicine, MedicineInput]
}

func NewMedicineUseCase(repo repositories.MedicineRepository, log *zap.Logger) *MedicineUseCase {
	return &MedicineUseCase{NewRecordUseCase[entities.Medicine, MedicineInput](repo, log, "medicine",
		func(dst, src *entities.Medicine, _ MedicineInput) {
			dst.Name = src.Name
			dst.Dosage = src.Dosage
			dst.Frequency = src.Frequency
			dst.StartDate = src.StartDate
		})}
}

// MarkTaken sets taken=true. Marking twice is a no-op.
func (uc *MedicineUseCase) MarkTaken(ctx context.Context, id, ownerID string) (*entities.Medicine, error) {
	return uc.mutate(ctx, id, ownerID, "mark taken", func(m *entities.Medicine) { m.Taken = true })
}

type HabitUseCase struct {
	*RecordUseCase[entities.Habit, HabitInput]
}

func NewHabitUseCase(repo repositories.HabitRepository, log *zap.Logger) *HabitUseCase {
	return &HabitUseCase{NewRecordUseCase[entities.Habit, HabitInput](repo, log, "habit",
		func(dst, src *entities.Habit, _ HabitInput) {
			dst.HabitName = src.HabitName
			dst.Frequency = src.Frequency
			dst.Notes = src.Notes
		})}
}

// MarkDone sets done=true. Marking twice is a no-op.
func (uc *HabitUseCase) MarkDone(ctx context.Context, id, ownerID string) (*entities.Habit, error) {
	return uc.mutate(ctx, id, ownerID, "mark done", func(h *entities.Habit) { h.Done = true })
}

type PlannerUseCase = RecordUseCase[entities.PlannerEntry, PlannerInput]

func NewPlannerUseCase(repo repositories.PlannerEntryRepository, log *zap.Logger) *PlannerUseCase {
	return NewRecordUseCase[entities.PlannerEntry, PlannerInput](repo, log, "planner",
		func(dst, src *entities.PlannerEntry, _ PlannerInput) {
			dst.EventName = src.EventName
			dst.EventDate = src.EventDate
			dst.Notes = src.Notes
		})
}

// BMIUseCase records snapshots only; an entry is never edited or recomputed.
type BMIUseCase = RecordUseCase[entities.BMIEntry, BMIInput]

func NewBMIUseCase(repo repositories.BMIEntryRepository, log *zap.Logger) *BMIUseCase {
	return NewRecordUseCase[entities.BMIEntry, BMIInput](repo, log, "bmi", nil)
}

type EmergencyContactUseCase = RecordUseCase[entities.EmergencyContact, EmergencyContactInput]

func NewEmergencyContactUseCase(repo repositories.EmergencyContactRepository, log *zap.Logger) *EmergencyContactUseCase {
	return NewRecordUseCase[entities.EmergencyContact, EmergencyContactInput](repo, log, "emergency_contact",
		func(dst, src *entities.EmergencyContact, _ EmergencyContactInput) {
			dst.Name = src.Name
			dst.Relationship = src.Relationship
			dst.PhoneNumber = src.PhoneNumber
		})
}

// A blank date on update keeps the stored one.
type ExerciseUseCase = RecordUseCase[entities.ExerciseLog, ExerciseInput]

func NewExerciseUseCase(repo repositories.ExerciseLogRepository, log *zap.Logger) *ExerciseUseCase {
	return NewRecordUseCase[entities.ExerciseLog, ExerciseInput](repo, log, "exercise",
		func(dst, src *entities.ExerciseLog, in ExerciseInput) {
			dst.ActivityName = src.ActivityName
			dst.DurationMinutes = src.DurationMinutes
			dst.CaloriesBurned = src.CaloriesBurned
			if strings.TrimSpace(in.LogDate) != "" {
				dst.LogDate = src.LogDate
			}
		})
}

type MealUseCase = RecordUseCase[entities.MealPlanEntry, MealInput]

func NewMealUseCase(repo repositories.MealPlanEntryRepository, log *zap.Logger) *MealUseCase {
	return NewRecordUseCase[entities.MealPlanEntry, MealInput](repo, log, "meal",
		func(dst, src *entities.MealPlanEntry, in MealInput) {
			dst.MealType = src.MealType
			dst.FoodItem = src.FoodItem
			dst.Calories = src.Calories
			if strings.TrimSpace(in.MealDate) != "" {
				dst.MealDate = src.MealDate
			}
		})
}
