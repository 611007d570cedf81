package service

import (
	"errors"
	"fmt"

	"go-training-booking/internal/domain/entity"
)

var (
	// ErrEmptyTrainingTypes is returned when a booking carries no training types.
	ErrEmptyTrainingTypes = errors.New("at least one training type is required")
)

// UnknownTrainingTypeError reports a type outside the controlled vocabulary.
type UnknownTrainingTypeError struct {
	TrainingType string
}

func (e *UnknownTrainingTypeError) Error() string {
	return fmt.Sprintf("unknown training type %q", e.TrainingType)
}

// TypeNotOfferedError reports a vocabulary type the trainer does not offer.
type TypeNotOfferedError struct {
	TrainingType string
}

func (e *TypeNotOfferedError) Error() string {
	return fmt.Sprintf("training type %q is not offered by this trainer", e.TrainingType)
}

// CatalogValidator checks requested training types against the controlled
// vocabulary and a trainer's offered catalogue.
type CatalogValidator struct{}

func NewCatalogValidator() *CatalogValidator {
	return &CatalogValidator{}
}

// Validate enforces: non-empty request, no duplicates, every type known, and
// every type within the trainer's offered set.
func (v *CatalogValidator) Validate(requested []string, trainer *entity.TrainerProfile) error {
	if len(requested) == 0 {
		return ErrEmptyTrainingTypes
	}

	seen := make(map[string]struct{}, len(requested))
	for _, t := range requested {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("duplicate training type %q", t)
		}
		seen[t] = struct{}{}

		if !entity.IsKnownTrainingType(t) {
			return &UnknownTrainingTypeError{TrainingType: t}
		}
		if !trainer.OfferedTrainingTypes.Contains(t) {
			return &TypeNotOfferedError{TrainingType: t}
		}
	}
	return nil
}

// ValidateVocabulary checks types against the vocabulary only, for trainer
// catalogue updates where there is no offered set to compare against.
func (v *CatalogValidator) ValidateVocabulary(types []string) error {
	if len(types) == 0 {
		return ErrEmptyTrainingTypes
	}
	for _, t := range types {
		if !entity.IsKnownTrainingType(t) {
			return &UnknownTrainingTypeError{TrainingType: t}
		}
	}
	return nil
}
