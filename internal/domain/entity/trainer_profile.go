package entity

import "github.com/google/uuid"

// TrainerProfile represents trainer-specific profile data, including the
// catalogue of training types the trainer offers.
type TrainerProfile struct {
	UserID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	CertificationNumber  string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"certification_number"`
	OfferedTrainingTypes StringList `gorm:"type:jsonb;not null" json:"offered_training_types"`
	Biography            string     `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:TrainerID" json:"bookings,omitempty"`
}

func (TrainerProfile) TableName() string {
	return "trainer_profiles"
}
