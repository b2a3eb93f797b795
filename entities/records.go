package entities

type MedicalHistory struct {
	Model
	UserID           string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Condition        string  `gorm:"type:varchar(200);not null" json:"condition"`
	DiagnosisDate    *string `gorm:"type:varchar(10)" json:"diagnosis_date"`
	Notes            string  `gorm:"type:text" json:"notes"`
	DocumentFilename *string `gorm:"type:varchar(250)" json:"document_filename"`
}

func (m MedicalHistory) GetOwnerID() string { return m.UserID }

type Medicine struct {
	Model
	UserID    string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Dosage    string  `gorm:"type:varchar(50)" json:"dosage"`
	Frequency string  `gorm:"type:varchar(50)" json:"frequency"`
	StartDate *string `gorm:"type:varchar(10)" json:"start_date"`
	Taken     bool    `gorm:"not null;default:false" json:"taken"`
}

func (m Medicine) GetOwnerID() string { return m.UserID }

type Habit struct {
	Model
	UserID    string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	HabitName string `gorm:"type:varchar(150);not null" json:"habit_name"`
	Frequency string `gorm:"type:varchar(50)" json:"frequency"`
	Notes     string `gorm:"type:text" json:"notes"`
	Done      bool   `gorm:"not null;default:false" json:"done"`
}

func (h Habit) GetOwnerID() string { return h.UserID }

// Upload is a standalone document. Filename is the generated storage name,
// OriginalName is only kept for display.
type Upload struct {
	Model
	UserID       string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Filename     string `gorm:"type:varchar(300);uniqueIndex;not null" json:"filename"`
	OriginalName string `gorm:"type:varchar(300)" json:"original_name"`
	UploadDate   string `gorm:"type:varchar(64);not null" json:"upload_date"`
}

func (u Upload) GetOwnerID() string { return u.UserID }

type PlannerEntry struct {
	Model
	UserID    string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	EventName string  `gorm:"type:varchar(200);not null" json:"event_name"`
	EventDate *string `gorm:"type:varchar(10)" json:"event_date"`
	Notes     string  `gorm:"type:text" json:"notes"`
}

func (p PlannerEntry) GetOwnerID() string { return p.UserID }

// BMIEntry stores the computed BMI as a snapshot; it is never recomputed.
type BMIEntry struct {
	Model
	UserID       string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	HeightCM     float64 `gorm:"not null" json:"height_cm"`
	WeightKG     float64 `gorm:"not null" json:"weight_kg"`
	BMIValue     float64 `gorm:"not null" json:"bmi_value"`
	DateRecorded string  `gorm:"type:varchar(10);not null" json:"date_recorded"`
}

func (b BMIEntry) GetOwnerID() string { return b.UserID }

type EmergencyContact struct {
	Model
	UserID       string `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	Relationship string `gorm:"type:varchar(50)" json:"relationship"`
	PhoneNumber  string `gorm:"type:varchar(20);not null" json:"phone_number"`
}

func (e EmergencyContact) GetOwnerID() string { return e.UserID }

type ExerciseLog struct {
	Model
	UserID          string   `gorm:"type:varchar(36);index;not null" json:"user_id"`
	ActivityName    string   `gorm:"type:varchar(150);not null" json:"activity_name"`
	DurationMinutes int      `gorm:"not null" json:"duration_minutes"`
	CaloriesBurned  *float64 `json:"calories_burned"`
	LogDate         string   `gorm:"type:varchar(10);not null" json:"log_date"`
}

func (e ExerciseLog) GetOwnerID() string { return e.UserID }

type MealPlanEntry struct {
	Model
	UserID   string   `gorm:"type:varchar(36);index;not null" json:"user_id"`
	MealType string   `gorm:"type:varchar(50);not null" json:"meal_type"` // Breakfast, Lunch, Dinner, Snack
	FoodItem string   `gorm:"type:varchar(200);not null" json:"food_item"`
	Calories *float64 `json:"calories"`
	MealDate string   `gorm:"type:varchar(10);not null" json:"meal_date"`
}

func (m MealPlanEntry) GetOwnerID() string { return m.UserID }
