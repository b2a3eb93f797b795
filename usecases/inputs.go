package usecases

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"health-server/entities"
	"health-server/services"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(entities.DateLayout, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	v.RegisterValidation("float", func(fl validator.FieldLevel) bool {
		_, ok := parseFinite(fl.Field().String())
		return ok
	})
	return v
}

// check runs the struct tags of in and reports the first failing field.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return entities.NewValidationError(fe.Field(), reason(fe))
	}
	return entities.NewValidationError("input", err.Error())
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "float":
		return "must be numeric"
	case "email":
		return "must be a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "is invalid"
	}
}

// Number is a numeric field as submitted. Forms send it as text; JSON bodies may
// send either a number or a string.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*n = Number(str)
		return nil
	}
	*n = Number(s)
	return nil
}

func (n Number) blank() bool { return strings.TrimSpace(string(n)) == "" }

// parseFinite rejects NaN and the infinities, which strconv accepts.
func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func (n Number) float() float64 {
	f, _ := parseFinite(string(n))
	return f
}

// optionalFloat returns nil for a blank field.
func (n Number) optionalFloat() *float64 {
	if n.blank() {
		return nil
	}
	f := n.float()
	return &f
}

// optional turns a blank string into nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// dateOrToday returns the trimmed date or today's date when blank.
func dateOrToday(s string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return entities.Today()
}

type RegisterInput struct {
	Email    string `form:"email" json:"email" validate:"required,email,max=150"`
	Password string `form:"password" json:"password" validate:"notblank"`
}

type LoginInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type ChangePasswordInput struct {
	CurrentPassword string `form:"current_password" json:"current_password"`
	NewPassword     string `form:"new_password" json:"new_password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

type MedicalHistoryInput struct {
	Condition     string `form:"condition" json:"condition" validate:"notblank,max=200"`
	DiagnosisDate string `form:"diagnosis_date" json:"diagnosis_date" validate:"omitempty,isodate"`
	Notes         string `form:"notes" json:"notes"`
}

func (in MedicalHistoryInput) Record(ownerID string) (*entities.MedicalHistory, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.MedicalHistory{
		UserID:        ownerID,
		Condition:     strings.TrimSpace(in.Condition),
		DiagnosisDate: optional(in.DiagnosisDate),
		Notes:         in.Notes,
	}, nil
}

type MedicineInput struct {
	Name      string `form:"name" json:"name" validate:"notblank,max=100"`
	Dosage    string `form:"dosage" json:"dosage" validate:"max=50"`
	Frequency string `form:"frequency" json:"frequency" validate:"max=50"`
	StartDate string `form:"start_date" json:"start_date" validate:"omitempty,isodate"`
}

func (in MedicineInput) Record(ownerID string) (*entities.Medicine, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.Medicine{
		UserID:    ownerID,
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Frequency: strings.TrimSpace(in.Frequency),
		StartDate: optional(in.StartDate),
	}, nil
}

type HabitInput struct {
	HabitName string `form:"habit_name" json:"habit_name" validate:"notblank,max=150"`
	Frequency string `form:"frequency" json:"frequency" validate:"max=50"`
	Notes     string `form:"notes" json:"notes"`
}

func (in HabitInput) Record(ownerID string) (*entities.Habit, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.Habit{
		UserID:    ownerID,
		HabitName: strings.TrimSpace(in.HabitName),
		Frequency: strings.TrimSpace(in.Frequency),
		Notes:     in.Notes,
	}, nil
}

type PlannerInput struct {
	EventName string `form:"event_name" json:"event_name" validate:"notblank,max=200"`
	EventDate string `form:"event_date" json:"event_date" validate:"omitempty,isodate"`
	Notes     string `form:"notes" json:"notes"`
}

func (in PlannerInput) Record(ownerID string) (*entities.PlannerEntry, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.PlannerEntry{
		UserID:    ownerID,
		EventName: strings.TrimSpace(in.EventName),
		EventDate: optional(in.EventDate),
		Notes:     in.Notes,
	}, nil
}

type BMIInput struct {
	HeightCM     Number `form:"height_cm" json:"height_cm" validate:"float"`
	WeightKG     Number `form:"weight_kg" json:"weight_kg" validate:"float"`
	DateRecorded string `form:"date_recorded" json:"date_recorded" validate:"omitempty,isodate"`
}

func (in BMIInput) Record(ownerID string) (*entities.BMIEntry, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	height, weight := in.HeightCM.float(), in.WeightKG.float()
	bmi, err := services.CalculateBMI(height, weight)
	if err != nil {
		return nil, entities.NewValidationError("height_cm/weight_kg", "must be positive values")
	}
	return &entities.BMIEntry{
		UserID:       ownerID,
		HeightCM:     height,
		WeightKG:     weight,
		BMIValue:     bmi,
		DateRecorded: dateOrToday(in.DateRecorded),
	}, nil
}

type EmergencyContactInput struct {
	Name         string `form:"name" json:"name" validate:"notblank,max=100"`
	Relationship string `form:"relationship" json:"relationship" validate:"max=50"`
	PhoneNumber  string `form:"phone_number" json:"phone_number" validate:"notblank,max=20"`
}

func (in EmergencyContactInput) Record(ownerID string) (*entities.EmergencyContact, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	return &entities.EmergencyContact{
		UserID:       ownerID,
		Name:         strings.TrimSpace(in.Name),
		Relationship: strings.TrimSpace(in.Relationship),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
	}, nil
}

type ExerciseInput struct {
	ActivityName    string `form:"activity_name" json:"activity_name" validate:"notblank,max=150"`
	DurationMinutes Number `form:"duration_minutes" json:"duration_minutes" validate:"float"`
	CaloriesBurned  Number `form:"calories_burned" json:"calories_burned" validate:"omitempty,float"`
	LogDate         string `form:"log_date" json:"log_date" validate:"omitempty,isodate"`
}

func (in ExerciseInput) Record(ownerID string) (*entities.ExerciseLog, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(string(in.DurationMinutes)))
	if err != nil || minutes <= 0 {
		return nil, entities.NewValidationError("duration_minutes", "must be a positive whole number")
	}
	calories := in.CaloriesBurned.optionalFloat()
	if calories != nil && *calories < 0 {
		return nil, entities.NewValidationError("calories_burned", "cannot be negative")
	}
	return &entities.ExerciseLog{
		UserID:          ownerID,
		ActivityName:    strings.TrimSpace(in.ActivityName),
		DurationMinutes: minutes,
		CaloriesBurned:  calories,
		LogDate:         dateOrToday(in.LogDate),
	}, nil
}

type MealInput struct {
	MealType string `form:"meal_type" json:"meal_type" validate:"notblank,max=50"`
	FoodItem string `form:"food_item" json:"food_item" validate:"notblank,max=200"`
	Calories Number `form:"calories" json:"calories" validate:"omitempty,float"`
	MealDate string `form:"meal_date" json:"meal_date" validate:"omitempty,isodate"`
}

func (in MealInput) Record(ownerID string) (*entities.MealPlanEntry, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	calories := in.Calories.optionalFloat()
	if calories != nil && *calories < 0 {
		return nil, entities.NewValidationError("calories", "cannot be negative")
	}
	return &entities.MealPlanEntry{
		UserID:   ownerID,
		MealType: strings.TrimSpace(in.MealType),
		FoodItem: strings.TrimSpace(in.FoodItem),
		Calories: calories,
		MealDate: dateOrToday(in.MealDate),
	}, nil
}

// ProfileInput carries the editable demographic fields. Blank fields are stored as null.
type ProfileInput struct {
	FullName      string `form:"full_name" json:"full_name" validate:"max=200"`
	DateOfBirth   string `form:"date_of_birth" json:"date_of_birth" validate:"omitempty,isodate"`
	ContactNumber string `form:"contact_number" json:"contact_number" validate:"max=20"`
	Address       string `form:"address" json:"address" validate:"max=250"`
	Email         string `form:"email" json:"email" validate:"omitempty,email,max=150"`
	Age           string `form:"age" json:"age" validate:"omitempty,float,max=10"`
	Gender        string `form:"gender" json:"gender" validate:"max=20"`
	BloodType     string `form:"blood_type" json:"blood_type" validate:"max=10"`
	Height        string `form:"height" json:"height" validate:"omitempty,float,max=10"`
	Weight        string `form:"weight" json:"weight" validate:"omitempty,float,max=10"`
	Disability    string `form:"disability" json:"disability" validate:"max=100"`
}

func (in ProfileInput) apply(p *entities.Profile) error {
	if err := check(in); err != nil {
		return err
	}
	p.FullName = optional(in.FullName)
	p.DateOfBirth = optional(in.DateOfBirth)
	p.ContactNumber = optional(in.ContactNumber)
	p.Address = optional(in.Address)
	p.Email = optional(in.Email)
	p.Age = optional(in.Age)
	p.Gender = optional(in.Gender)
	p.BloodType = optional(in.BloodType)
	p.Height = optional(in.Height)
	p.Weight = optional(in.Weight)
	p.Disability = optional(in.Disability)
	return nil
}
