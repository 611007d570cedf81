package service

import (
	"testing"

	"go-training-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testTrainer(offered ...string) *entity.TrainerProfile {
	return &entity.TrainerProfile{
		UserID:               uuid.New(),
		OfferedTrainingTypes: entity.StringList(offered),
	}
}

func TestCatalogValidateAccepted(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga, entity.TrainingTypeStrength, entity.TrainingTypeCardio)

	assert.NoError(t, v.Validate([]string{entity.TrainingTypeYoga}, trainer))
	assert.NoError(t, v.Validate([]string{entity.TrainingTypeYoga, entity.TrainingTypeCardio}, trainer))
}

func TestCatalogValidateEmpty(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga)

	assert.ErrorIs(t, v.Validate(nil, trainer), ErrEmptyTrainingTypes)
	assert.ErrorIs(t, v.Validate([]string{}, trainer), ErrEmptyTrainingTypes)
}

func TestCatalogValidateDuplicates(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga, entity.TrainingTypeCardio)

	err := v.Validate([]string{entity.TrainingTypeYoga, entity.TrainingTypeYoga}, trainer)
	assert.Error(t, err)
}

func TestCatalogValidateUnknownType(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga)

	err := v.Validate([]string{"underwater_basket_weaving"}, trainer)

	var unknown *UnknownTrainingTypeError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, "underwater_basket_weaving", unknown.TrainingType)
}

func TestCatalogValidateNotOffered(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga)

	// Known vocabulary, but outside this trainer's catalogue
	err := v.Validate([]string{entity.TrainingTypeCrossfit}, trainer)

	var notOffered *TypeNotOfferedError
	assert.ErrorAs(t, err, &notOffered)
	assert.Equal(t, entity.TrainingTypeCrossfit, notOffered.TrainingType)
}

// One request mixing offered and non-offered types fails on the first
// non-offered entry.
func TestCatalogValidateMixedRequest(t *testing.T) {
	v := NewCatalogValidator()
	trainer := testTrainer(entity.TrainingTypeYoga, entity.TrainingTypeStrength)

	err := v.Validate([]string{entity.TrainingTypeYoga, entity.TrainingTypeZumba}, trainer)

	var notOffered *TypeNotOfferedError
	assert.ErrorAs(t, err, &notOffered)
}

func TestValidateVocabulary(t *testing.T) {
	v := NewCatalogValidator()

	assert.NoError(t, v.ValidateVocabulary([]string{entity.TrainingTypeMeditation, entity.TrainingTypeNutritionCoaching}))
	assert.ErrorIs(t, v.ValidateVocabulary(nil), ErrEmptyTrainingTypes)

	var unknown *UnknownTrainingTypeError
	assert.ErrorAs(t, v.ValidateVocabulary([]string{"jogging"}), &unknown)
}
