package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerificationRateZeroUsers(t *testing.T) {
	assert.Equal(t, 0, VerificationRate(0, 0))
}

func TestVerificationRate(t *testing.T) {
	assert.Equal(t, 100, VerificationRate(5, 5))
	assert.Equal(t, 75, VerificationRate(3, 4))
	assert.Equal(t, 0, VerificationRate(0, 10))
}

func TestVerificationRateRounds(t *testing.T) {
	assert.Equal(t, 33, VerificationRate(1, 3))
	assert.Equal(t, 67, VerificationRate(2, 3))
	assert.Equal(t, 17, VerificationRate(1, 6))
}
