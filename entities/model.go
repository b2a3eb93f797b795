package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimestampLayout is fixed-width so stored timestamps sort lexically in time order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// DateLayout is the storage and input format of calendar dates.
const DateLayout = "2006-01-02"

// Model carries the surrogate key and bookkeeping timestamps shared by every table.
type Model struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt string `gorm:"type:varchar(64);index" json:"created_at"`
	UpdatedAt string `gorm:"type:varchar(64)" json:"updated_at"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = Now()
	m.UpdatedAt = m.CreatedAt
	return
}

func (m *Model) BeforeUpdate(tx *gorm.DB) (err error) {
	m.UpdatedAt = Now()
	return
}

func (m Model) GetID() string { return m.ID }

// Now formats the current UTC time with TimestampLayout.
func Now() string {
	return time.Now().UTC().Format(TimestampLayout)
}

// Today returns the current calendar date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Record is implemented by every entity that belongs to a single user.
type Record interface {
	GetID() string
	GetOwnerID() string
}
