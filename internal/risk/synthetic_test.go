package risk_test

import (
	"strings"
	"testing"

	"github.com/astrasemi/fabassist/internal/risk"
	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFleet_Deterministic(t *testing.T) {
	first := risk.DefaultFleet()
	second := risk.DefaultFleet()
	assert.Equal(t, first, second, "built-in fleet must be identical across calls")
}

func TestDefaultFleet_Shape(t *testing.T) {
	fleet := risk.DefaultFleet()
	require.Len(t, fleet, 8)

	assert.Equal(t, "MCH001", fleet[0].MachineID)
	assert.Equal(t, "MCH008", fleet[7].MachineID)
	for _, m := range fleet {
		assert.GreaterOrEqual(t, m.RuntimeHours, 500.0)
		assert.LessOrEqual(t, m.RuntimeHours, 9800.0)
		assert.GreaterOrEqual(t, m.Temperature, 60.0)
		assert.LessOrEqual(t, m.Temperature, 100.0)
		assert.GreaterOrEqual(t, m.Vibration, 2.0)
	}
}

func TestParseReadingsCSV(t *testing.T) {
	csv := "Machine ID,Runtime Hours,Last Maintenance Days,Temperature,Vibration,Error Codes\n" +
		"MCH001,9500,300,95,15,E101,E202\n"

	readings, err := risk.ParseReadingsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, readings, 1)

	r := readings[0]
	assert.Equal(t, "MCH001", r.MachineID)
	assert.Equal(t, 9500.0, r.RuntimeHours)
	assert.Equal(t, 300.0, r.LastMaintenanceDays)
	assert.Equal(t, 95.0, r.Temperature)
	assert.Equal(t, 15.0, r.Vibration)
	assert.Equal(t, []string{"E101", "E202"}, r.ErrorCodes)
	assert.Equal(t, 2, r.ErrorCount())
}

func TestParseReadingsCSV_MalformedNumericsCoerceToZero(t *testing.T) {
	csv := "Machine ID,Runtime Hours,Last Maintenance Days,Temperature,Vibration,Error Codes\n" +
		"MCH002,not-a-number,,abc,4.5\n"

	readings, err := risk.ParseReadingsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, readings, 1)

	r := readings[0]
	assert.Equal(t, 0.0, r.RuntimeHours)
	assert.Equal(t, 0.0, r.LastMaintenanceDays)
	assert.Equal(t, 0.0, r.Temperature)
	assert.Equal(t, 4.5, r.Vibration)
	assert.Equal(t, 0, r.ErrorCount())
}

func TestParseReadingsCSV_SkipsBlankIDs(t *testing.T) {
	csv := "Machine ID,Runtime Hours,Last Maintenance Days,Temperature,Vibration,Error Codes\n" +
		",100,10,70,3\n" +
		"MCH003,100,10,70,3\n"

	readings, err := risk.ParseReadingsCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, readings, 1)
	assert.Equal(t, "MCH003", readings[0].MachineID)
}

func TestParseReadingsCSV_NoRows(t *testing.T) {
	csv := "Machine ID,Runtime Hours,Last Maintenance Days,Temperature,Vibration,Error Codes\n"
	_, err := risk.ParseReadingsCSV(strings.NewReader(csv))
	require.Error(t, err)
}

func scoredFleet(t *testing.T) []models.MachineHealth {
	t.Helper()
	scorer := risk.NewScorer(nil)
	fleet := risk.DefaultFleet()
	machines := make([]models.MachineHealth, 0, len(fleet))
	for _, reading := range fleet {
		machines = append(machines, models.MachineHealth{
			Reading:    reading,
			Assessment: scorer.Score(reading),
		})
	}
	return machines
}

func TestSummarize(t *testing.T) {
	machines := scoredFleet(t)
	summary := risk.Summarize(machines)

	assert.Equal(t, len(machines), summary.MachineCount)
	assert.Greater(t, summary.AverageHealth, 0.0)
	assert.LessOrEqual(t, summary.AverageHealth, 100.0)

	total := 0
	for _, n := range summary.TierCounts {
		total += n
	}
	assert.Equal(t, len(machines), total)

	for _, id := range summary.AttentionNeeded {
		found := false
		for _, m := range machines {
			if m.Reading.MachineID == id {
				found = true
				assert.Greater(t, m.Assessment.FailureProbability, 0.5)
			}
		}
		assert.True(t, found, "attention id %s not in fleet", id)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := risk.Summarize(nil)
	assert.Equal(t, 0, summary.MachineCount)
	assert.Equal(t, 0.0, summary.AverageHealth)
}

func TestTrendSeries(t *testing.T) {
	machines := scoredFleet(t)
	series := risk.TrendSeries(machines, 12)

	require.Len(t, series, 12)
	for _, v := range series {
		assert.GreaterOrEqual(t, v, 5.0)
		assert.LessOrEqual(t, v, 100.0)
	}

	// Last point is the current fleet average (to one decimal).
	summary := risk.Summarize(machines)
	assert.InDelta(t, summary.AverageHealth, series[11], 0.11)
}

func TestTrendSeries_DefaultLength(t *testing.T) {
	series := risk.TrendSeries(nil, 0)
	assert.Len(t, series, risk.TrendPoints)
}
