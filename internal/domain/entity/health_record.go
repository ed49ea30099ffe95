package entity

import (
	"time"

	"github.com/google/uuid"
)

// HealthRecordType represents the kind of health record
type HealthRecordType string

const (
	HealthTypeCondition   HealthRecordType = "Condition"
	HealthTypeMedication  HealthRecordType = "Medication"
	HealthTypeProcedure   HealthRecordType = "Procedure"
	HealthTypeAllergy     HealthRecordType = "Allergy"
	HealthTypeVaccination HealthRecordType = "Vaccination"
	HealthTypeOther       HealthRecordType = "Other"
)

// HealthRecordStatus represents the lifecycle state of a record
type HealthRecordStatus string

const (
	HealthStatusOngoing  HealthRecordStatus = "Ongoing"
	HealthStatusResolved HealthRecordStatus = "Resolved"
	HealthStatusActive   HealthRecordStatus = "Active"
)

// HealthRecord represents one entry in a family member's health history.
// RecordDate is a YYYY-MM-DD string; renewal/refill due dates are derived
// from it by the reminder engine.
type HealthRecord struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	MemberID   *uuid.UUID         `gorm:"type:uuid;index" json:"member_id,omitempty"`
	PersonName string             `gorm:"type:varchar(255);not null" json:"person_name"`
	Type       HealthRecordType   `gorm:"type:varchar(50);not null;index" json:"type"`
	Title      string             `gorm:"type:varchar(255);not null" json:"title"`
	RecordDate string             `gorm:"type:varchar(20);not null" json:"record_date"`
	Status     HealthRecordStatus `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	Notes      string             `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User   User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Member *FamilyMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
