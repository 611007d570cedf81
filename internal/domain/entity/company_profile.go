package entity

import "github.com/google/uuid"

// CompanyProfile represents company-specific profile data
type CompanyProfile struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RegistrationNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"registration_number"`
	PhoneNumber        string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Address            string    `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:CompanyID" json:"bookings,omitempty"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}
