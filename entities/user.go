package entities

// User is an account holder. Every other table hangs off users.id.
type User struct {
	Model
	Email        string `gorm:"type:varchar(150);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(256);not null" json:"-"`

	Profile           *Profile           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MedicalHistories  []MedicalHistory   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Medicines         []Medicine         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Habits            []Habit            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Uploads           []Upload           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PlannerEntries    []PlannerEntry     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	BMIEntries        []BMIEntry         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	EmergencyContacts []EmergencyContact `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	ExerciseLogs      []ExerciseLog      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	MealPlanEntries   []MealPlanEntry    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// Profile holds the optional demographic details of a user. Exactly one per user,
// created together with the account.
type Profile struct {
	Model
	UserID    string `gorm:"type:varchar(36);uniqueIndex;not null" json:"user_id"`
	PatientID string `gorm:"type:varchar(20);uniqueIndex;not null" json:"patient_id"`

	FullName       *string `gorm:"type:varchar(200)" json:"full_name"`
	DateOfBirth    *string `gorm:"type:varchar(10)" json:"date_of_birth"`
	ContactNumber  *string `gorm:"type:varchar(20)" json:"contact_number"`
	Address        *string `gorm:"type:varchar(250)" json:"address"`
	ProfilePicture *string `gorm:"type:varchar(250)" json:"profile_picture"`
	Email          *string `gorm:"type:varchar(150)" json:"email"`
	Age            *string `gorm:"type:varchar(10)" json:"age"`
	Gender         *string `gorm:"type:varchar(20)" json:"gender"`
	BloodType      *string `gorm:"type:varchar(10)" json:"blood_type"`
	Height         *string `gorm:"type:varchar(10)" json:"height"`
	Weight         *string `gorm:"type:varchar(10)" json:"weight"`
	Disability     *string `gorm:"type:varchar(100)" json:"disability"`
}

func (p Profile) GetOwnerID() string { return p.UserID }
