package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot represents a doctor's weekly availability window.
// At most one slot row exists per (doctor_id, day_of_week); a second
// write through the availability-upsert path updates the existing row.
type TimeSlot struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_time_slots_doctor_day" json:"doctor_id"`
	DayOfWeek   int       `gorm:"not null;uniqueIndex:idx_time_slots_doctor_day" json:"day_of_week"`
	StartTime   string    `gorm:"type:time;not null" json:"start_time"`
	EndTime     string    `gorm:"type:time;not null" json:"end_time"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}
