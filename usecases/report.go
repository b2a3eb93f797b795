package usecases

import (
	"context"
	"fmt"
	"time"

	"health-server/entities"
	"health-server/repositories"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Repos bundles the read side of every repository for dashboard and report.
type Repos struct {
	Users             repositories.UserRepository
	Profiles          repositories.ProfileRepository
	MedicalHistories  repositories.MedicalHistoryRepository
	Medicines         repositories.MedicineRepository
	Habits            repositories.HabitRepository
	Uploads           repositories.UploadRepository
	PlannerEntries    repositories.PlannerEntryRepository
	BMIEntries        repositories.BMIEntryRepository
	EmergencyContacts repositories.EmergencyContactRepository
	ExerciseLogs      repositories.ExerciseLogRepository
	MealPlanEntries   repositories.MealPlanEntryRepository
}

type Dashboard struct {
	Profile *entities.Profile `json:"profile"`
	Counts  map[string]int64  `json:"counts"`
}

// Report is the read-only aggregate of everything a user has recorded.
type Report struct {
	User              *entities.User              `json:"user"`
	Profile           *entities.Profile           `json:"profile"`
	MedicalHistory    []entities.MedicalHistory   `json:"medical_history"`
	Medicines         []entities.Medicine         `json:"medicines"`
	Habits            []entities.Habit            `json:"habits"`
	BMIEntries        []entities.BMIEntry         `json:"bmi_entries"`
	EmergencyContacts []entities.EmergencyContact `json:"emergency_contacts"`
	ExerciseLogs      []entities.ExerciseLog      `json:"exercise_logs"`
	MealPlanEntries   []entities.MealPlanEntry    `json:"meal_plan_entries"`
	GeneratedAt       time.Time                   `json:"generated_at"`
}

type ReportUseCase struct {
	Repos Repos
	Log   *zap.Logger
}

func NewReportUseCase(repos Repos, log *zap.Logger) *ReportUseCase {
	return &ReportUseCase{Repos: repos, Log: log.With(zap.String("component", "report"))}
}

func (uc *ReportUseCase) Dashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	profile, err := uc.Repos.Profiles.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	counters := []struct {
		name  string
		count func(context.Context, string) (int64, error)
	}{
		{"medicines", uc.Repos.Medicines.CountByOwner},
		{"habits", uc.Repos.Habits.CountByOwner},
		{"uploads", uc.Repos.Uploads.CountByOwner},
		{"bmi_entries", uc.Repos.BMIEntries.CountByOwner},
		{"emergency_contacts", uc.Repos.EmergencyContacts.CountByOwner},
		{"exercise_logs", uc.Repos.ExerciseLogs.CountByOwner},
		{"meal_plan_entries", uc.Repos.MealPlanEntries.CountByOwner},
	}
	counts := make(map[string]int64, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		counts[c.name] = n
	}
	return &Dashboard{Profile: profile, Counts: counts}, nil
}

// Assemble fetches every collection concurrently. The first failure cancels
// the remaining fetches and fails the whole report.
func (uc *ReportUseCase) Assemble(ctx context.Context, ownerID string) (*Report, error) {
	if ownerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	r := &Report{GeneratedAt: time.Now().UTC()}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.User, err = uc.Repos.Users.GetByID(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.Profile, err = uc.Repos.Profiles.GetByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.MedicalHistory, err = uc.Repos.MedicalHistories.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.Medicines, err = uc.Repos.Medicines.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.Habits, err = uc.Repos.Habits.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.BMIEntries, err = uc.Repos.BMIEntries.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.EmergencyContacts, err = uc.Repos.EmergencyContacts.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.ExerciseLogs, err = uc.Repos.ExerciseLogs.ListByOwner(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		r.MealPlanEntries, err = uc.Repos.MealPlanEntries.ListByOwner(ctx, ownerID)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.Log.Error("report assembly failed", zap.String("user_id", ownerID), zap.Error(err))
		return nil, err
	}
	return r, nil
}
