package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.March, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T10:20:00Z"`), &parsed))
	assert.Equal(t, d, parsed)

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &parsed))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 1, 8, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, NewDate(2024, time.January, 8), d)

	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, "2024-02", d.MonthKey())

	assert.Error(t, d.Scan(42))
}

func TestParseEnums(t *testing.T) {
	status, err := ParseStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, status)

	_, err = ParseStatus("en_progreso")
	assert.ErrorIs(t, err, ErrValidation)

	stage, err := ParseFunnelStage("suscrito")
	require.NoError(t, err)
	assert.Equal(t, StageSuscrito, stage)

	_, err = ParseCostFrequency("weekly")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMonthNames(t *testing.T) {
	assert.True(t, IsMonthName("Marzo"))
	assert.False(t, IsMonthName("marzo"))
	assert.Equal(t, "Octubre", MonthNameOf(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
}

func TestCampaign_StageCount(t *testing.T) {
	c := Campaign{ContactoInicial: 10, InfoEnviada: 8, ContactoPersonal: 5, Registrado: 3, Suscrito: 2}

	counts := make([]int64, 0, len(FunnelStages))
	for _, stage := range FunnelStages {
		counts = append(counts, c.StageCount(stage))
	}

	assert.Equal(t, []int64{10, 8, 5, 3, 2}, counts)
}
