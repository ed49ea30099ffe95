package entity

// DocumentType is an admin-managed lookup of accepted document types
// (Passport, Driving License, ...).
type DocumentType struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

// BloodGroup is an admin-managed lookup of blood group labels.
type BloodGroup struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(10);uniqueIndex;not null" json:"name"`
}

func (BloodGroup) TableName() string {
	return "blood_groups"
}
