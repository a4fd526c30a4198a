package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineRates(t *testing.T) {
	a := Hall{Number: 1, HourlyRate: 2000, Capacity: 5}
	b := Hall{Number: 2, HourlyRate: 3000, Capacity: 10}

	assert.Equal(t, 5000.0, CombineRates(a, b))
	assert.Equal(t, CombineRates(a, b), CombineRates(b, a))
}

func TestSameHallIdentity(t *testing.T) {
	a := Hall{Number: 1, HourlyRate: 2000, Capacity: 5}

	// Идентичность определяется номером, остальные поля не участвуют
	assert.True(t, SameHallIdentity(a, Hall{Number: 1, HourlyRate: 9999, Capacity: 1}))
	assert.False(t, SameHallIdentity(a, Hall{Number: 2, HourlyRate: 2000, Capacity: 5}))
}
