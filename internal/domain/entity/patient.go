package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents patient-specific profile data.
// At most one Patient row exists per User (unique index on user_id);
// the row is created at registration or lazily on the first
// patient-scoped action.
type Patient struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID                uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	BloodType             string     `gorm:"type:varchar(5)" json:"blood_type,omitempty"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	MedicalHistory        string     `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies             string     `gorm:"type:text" json:"allergies,omitempty"`
	EmergencyContactName  string     `gorm:"type:varchar(255)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
