package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents doctor-specific profile data.
// Rating and TotalReviews are denormalized aggregates over the reviews
// table; they are recomputed after every review mutation and are never
// authoritative on their own.
type Doctor struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization     string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	LicenseNumber      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	ExperienceYears    int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationFee    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	Rating             float64         `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	TotalReviews       int             `gorm:"not null;default:0" json:"total_reviews"`
	AvailabilityStatus string          `gorm:"type:varchar(20);not null;default:'available'" json:"availability_status"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
	TimeSlots    []TimeSlot    `gorm:"foreignKey:DoctorID" json:"time_slots,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Defaults applied when a doctor record is auto-provisioned
const (
	DefaultSpecialization  = "General Physician"
	DefaultConsultationFee = "50.00"
)

// Availability status constants
const (
	DoctorAvailable   = "available"
	DoctorUnavailable = "unavailable"
)
