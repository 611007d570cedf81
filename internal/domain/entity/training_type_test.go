package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsKnownTrainingType(t *testing.T) {
	for _, known := range []string{
		TrainingTypeYoga, TrainingTypeStrength, TrainingTypeCardio,
		TrainingTypePilates, TrainingTypeCrossfit, TrainingTypeZumba,
		TrainingTypeMeditation, TrainingTypeNutritionCoaching,
	} {
		assert.True(t, IsKnownTrainingType(known), known)
	}

	assert.False(t, IsKnownTrainingType("Yoga"))
	assert.False(t, IsKnownTrainingType("swimming"))
	assert.False(t, IsKnownTrainingType(""))
}

func TestStringListContains(t *testing.T) {
	l := StringList{TrainingTypeYoga, TrainingTypeCardio}

	assert.True(t, l.Contains(TrainingTypeYoga))
	assert.False(t, l.Contains(TrainingTypePilates))
	assert.False(t, StringList(nil).Contains(TrainingTypeYoga))
}

func TestStringListScanRoundTrip(t *testing.T) {
	l := StringList{TrainingTypeYoga, TrainingTypeZumba}
	v, err := l.Value()
	assert.NoError(t, err)

	var scanned StringList
	assert.NoError(t, scanned.Scan(v))
	assert.Equal(t, l, scanned)

	var fromNil StringList
	assert.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}
