package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleType represents the kind of vehicle
type VehicleType string

const (
	VehicleTypeCar   VehicleType = "car"
	VehicleTypeBike  VehicleType = "bike"
	VehicleTypeTruck VehicleType = "truck"
)

// Vehicle document name constants. Insurance and PUC are short-horizon and
// actively monitored through ExpiryDate; the Registration Certificate is
// long-horizon and uses ValidUntilDate instead.
const (
	VehicleDocInsurance = "Insurance"
	VehicleDocPUC       = "PUC"
	VehicleDocRC        = "Registration Certificate"
)

// Vehicle represents a household vehicle and its tracked papers.
type Vehicle struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Type      VehicleType `gorm:"type:varchar(20);not null;default:'car'" json:"type"`
	Name      string      `gorm:"type:varchar(255);not null" json:"name"`
	Model     string      `gorm:"type:varchar(255)" json:"model,omitempty"`
	Number    string      `gorm:"type:varchar(50)" json:"number,omitempty"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User      User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Documents []VehicleDocument `gorm:"foreignKey:VehicleID" json:"documents,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleDocument is one paper attached to a vehicle. ExpiryDate and
// ValidUntilDate are YYYY-MM-DD strings; which one is populated depends on
// the document name (see the name constants above). Amount holds the premium
// or fee paid for the document, when known.
type VehicleDocument struct {
	ID             int             `gorm:"primaryKey;autoIncrement" json:"id"`
	VehicleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	ExpiryDate     string          `gorm:"type:varchar(20)" json:"expiry_date,omitempty"`
	ValidUntilDate string          `gorm:"type:varchar(20)" json:"valid_until_date,omitempty"`
	FileRef        string          `gorm:"type:text" json:"file_ref,omitempty"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"amount"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (VehicleDocument) TableName() string {
	return "vehicle_documents"
}

// TrackedDate returns the date relevant for status display: the RC uses its
// long-horizon valid-until date, everything else the expiry date.
func (d *VehicleDocument) TrackedDate() string {
	if d.Name == VehicleDocRC && d.ValidUntilDate != "" {
		return d.ValidUntilDate
	}
	return d.ExpiryDate
}
