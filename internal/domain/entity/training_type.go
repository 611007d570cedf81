package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Training type vocabulary. Trainers declare a subset of these as their
// offered catalogue; bookings may only request types from that subset.
const (
	TrainingTypeYoga              = "yoga"
	TrainingTypeStrength          = "strength"
	TrainingTypeCardio            = "cardio"
	TrainingTypePilates           = "pilates"
	TrainingTypeCrossfit          = "crossfit"
	TrainingTypeZumba             = "zumba"
	TrainingTypeMeditation        = "meditation"
	TrainingTypeNutritionCoaching = "nutrition_coaching"
)

// trainingTypeVocabulary is the closed set of recognized training types.
var trainingTypeVocabulary = map[string]struct{}{
	TrainingTypeYoga:              {},
	TrainingTypeStrength:          {},
	TrainingTypeCardio:            {},
	TrainingTypePilates:           {},
	TrainingTypeCrossfit:          {},
	TrainingTypeZumba:             {},
	TrainingTypeMeditation:        {},
	TrainingTypeNutritionCoaching: {},
}

// IsKnownTrainingType reports whether s belongs to the controlled vocabulary.
func IsKnownTrainingType(s string) bool {
	_, ok := trainingTypeVocabulary[s]
	return ok
}

// StringList is a JSONB-backed list of strings for GORM
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*l = StringList(result)
	return nil
}

// Contains reports whether the list contains s.
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}
