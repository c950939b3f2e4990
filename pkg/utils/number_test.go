package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int64
	}{
		{"inteiro", 40000, 40000},
		{"meio positivo sobe", 2.5, 3},
		{"abaixo do meio desce", 2.49, 2},
		{"meio negativo sobe", -2.5, -2},
		{"negativo abaixo do meio", -2.6, -3},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundHalfUp(tt.input))
		})
	}
}

func TestParseMonth(t *testing.T) {
	month, err := ParseMonth("2024-03")
	assert.NoError(t, err)
	assert.Equal(t, "2024-03", month.Format(MonthLayout))

	month, err = ParseMonth("")
	assert.NoError(t, err)
	assert.Nil(t, month)

	_, err = ParseMonth("03/2024")
	assert.Error(t, err)
}
