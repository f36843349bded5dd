package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShipmentEstimate(t *testing.T) {
	// 1000 units at 24 per container: 41.67 containers, so 42 with 8
	// slack units, on pallets of 20 containers: 3 pallets.
	est := CalculateShipmentEstimate(1000, 24, 20, 85)

	assert.Equal(t, 42, est.ContainersNeeded)
	assert.InDelta(t, 1000.0/24.0, est.ContainersExact, 1e-9)
	assert.Equal(t, 8, est.OverpackUnits)
	assert.Equal(t, 3, est.PalletsNeeded)
	assert.InDelta(t, 255, est.EstimatedCost, 1e-9)
}

func TestCalculateShipmentEstimate_ExactFill(t *testing.T) {
	est := CalculateShipmentEstimate(96, 24, 4, 85)
	assert.Equal(t, 4, est.ContainersNeeded)
	assert.Equal(t, 0, est.OverpackUnits)
	assert.Equal(t, 1, est.PalletsNeeded)
}

func TestCalculateShipmentEstimate_DegenerateInputs(t *testing.T) {
	est := CalculateShipmentEstimate(0, 24, 20, 85)
	assert.Equal(t, 0, est.ContainersNeeded)
	assert.Equal(t, 0, est.PalletsNeeded)

	est = CalculateShipmentEstimate(100, 0, 20, 85)
	assert.Equal(t, 0, est.ContainersNeeded)

	// No pallet layout yet: containers computed, pallets left at zero.
	est = CalculateShipmentEstimate(100, 24, 0, 85)
	assert.Equal(t, 5, est.ContainersNeeded)
	assert.Equal(t, 0, est.PalletsNeeded)
	assert.Equal(t, 0.0, est.EstimatedCost)
}
