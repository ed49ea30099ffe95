package entity

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember represents one person in a household.
//
// Age is free text as entered by the user ("40 years", "8"). The reminder
// engine extracts the leading integer and skips the member when none is
// present, so no numeric column is enforced here.
type FamilyMember struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Relation   string    `gorm:"type:varchar(100);not null" json:"relation"`
	Age        string    `gorm:"type:varchar(50)" json:"age,omitempty"`
	Avatar     string    `gorm:"type:text" json:"avatar,omitempty"`
	BloodGroup string    `gorm:"type:varchar(10)" json:"blood_group,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (FamilyMember) TableName() string {
	return "family_members"
}
