package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded family document with optional expiry
// tracking (passport, license, certificate, ...).
//
// UploadedDate and ExpiryDate are stored as YYYY-MM-DD strings. An empty
// ExpiryDate means no expiry is tracked for the document; a value the engine
// cannot parse simply produces no reminder.
type Document struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	MemberID     *uuid.UUID `gorm:"type:uuid;index" json:"member_id,omitempty"`
	PersonName   string     `gorm:"type:varchar(255);not null" json:"person_name"`
	Type         string     `gorm:"type:varchar(100);not null;index" json:"type"`
	Number       string     `gorm:"type:varchar(100)" json:"number,omitempty"`
	UploadedDate string     `gorm:"type:varchar(20);not null" json:"uploaded_date"`
	ExpiryDate   string     `gorm:"type:varchar(20)" json:"expiry_date,omitempty"`
	FileRef      string     `gorm:"type:text" json:"file_ref,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User   User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Member *FamilyMember `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

// HasExpiry reports whether an expiry date is tracked for this document.
func (d *Document) HasExpiry() bool {
	return d.ExpiryDate != ""
}
