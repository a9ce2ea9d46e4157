package utils_test

import (
	"testing"

	"backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := utils.CalculateBMI(170, 70)
	require.NoError(t, err)
	assert.InDelta(t, 24.22, bmi, 0.01)
	assert.Equal(t, "Normal weight", utils.BMICategory(bmi))

	_, err = utils.CalculateBMI(0, 70)
	assert.Error(t, err)

	_, err = utils.CalculateBMI(170, 0)
	assert.Error(t, err)
}

func TestCalculateBMI_ImplausibleInput(t *testing.T) {
	// 1.70 looks like meters passed where centimeters are expected
	_, err := utils.CalculateBMI(1.70, 70)
	assert.ErrorIs(t, err, utils.ErrImplausibleMeasure)

	_, err = utils.CalculateBMI(170, 500)
	assert.ErrorIs(t, err, utils.ErrImplausibleMeasure)
}

func TestBMICategory_Bands(t *testing.T) {
	assert.Equal(t, "Underweight", utils.BMICategory(17))
	assert.Equal(t, "Overweight", utils.BMICategory(27.5))
	assert.Equal(t, "Obesity class III", utils.BMICategory(42))
}
