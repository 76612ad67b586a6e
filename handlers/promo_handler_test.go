package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeDiscount(t *testing.T) {
	t.Run("PercentageDiscount", func(t *testing.T) {
		discount, final := computeDiscount("percentage", 20, 100)
		assert.Equal(t, 20.0, discount)
		assert.Equal(t, 80.0, final)
	})

	t.Run("FixedDiscount", func(t *testing.T) {
		discount, final := computeDiscount("fixed", 15, 100)
		assert.Equal(t, 15.0, discount)
		assert.Equal(t, 85.0, final)
	})

	t.Run("FixedDiscountFlooredAtZero", func(t *testing.T) {
		discount, final := computeDiscount("fixed", 50, 30)
		assert.Equal(t, 50.0, discount)
		assert.Equal(t, 0.0, final)
	})

	t.Run("FullPercentageDiscount", func(t *testing.T) {
		discount, final := computeDiscount("percentage", 100, 45)
		assert.Equal(t, 45.0, discount)
		assert.Equal(t, 0.0, final)
	})

	t.Run("UnknownTypeLeavesAmountUntouched", func(t *testing.T) {
		discount, final := computeDiscount("bogus", 20, 100)
		assert.Equal(t, 0.0, discount)
		assert.Equal(t, 100.0, final)
	})
}

func TestDiscountMessage(t *testing.T) {
	assert.Equal(t, "20% discount applied!", discountMessage("percentage", 20))
	assert.Equal(t, "$15 discount applied!", discountMessage("fixed", 15))
	assert.Equal(t, "$12.5 discount applied!", discountMessage("fixed", 12.5))
}
