package risk_test

import (
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/astrasemi/fabassist/internal/risk"
	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededScorer() *risk.Scorer {
	return risk.NewScorer(rand.New(rand.NewPCG(1, 2)))
}

func TestScore_BaselineReadingIsPerfect(t *testing.T) {
	a := seededScorer().Score(models.MachineReading{
		MachineID:           "MCH-BASE",
		RuntimeHours:        0,
		LastMaintenanceDays: 0,
		Temperature:         70,
		Vibration:           5,
	})

	assert.Equal(t, 0.0, a.FailureProbability)
	assert.Equal(t, 100.0, a.HealthScore)
}

func TestScore_HealthIdentity(t *testing.T) {
	scorer := seededScorer()
	readings := []models.MachineReading{
		{RuntimeHours: 9500, LastMaintenanceDays: 300, Temperature: 95, Vibration: 15},
		{RuntimeHours: 100, LastMaintenanceDays: 10, Temperature: 72, Vibration: 3},
		{RuntimeHours: 50000, LastMaintenanceDays: 1000, Temperature: 200, Vibration: 40},
		{},
	}
	for _, r := range readings {
		a := scorer.Score(r)
		assert.InDelta(t, 100-95*a.FailureProbability, a.HealthScore, 1e-9,
			"health must equal 100 - 95*p for %+v", r)
	}
}

func TestScore_ProbabilityClamp(t *testing.T) {
	a := seededScorer().Score(models.MachineReading{
		RuntimeHours:        1e6,
		LastMaintenanceDays: 1e6,
		Temperature:         500,
		Vibration:           500,
	})
	assert.Equal(t, 0.95, a.FailureProbability)
	assert.InDelta(t, 9.75, a.HealthScore, 1e-9)
}

func TestScore_DocumentedScenario(t *testing.T) {
	// MCH001,9500,300,95,15 → p = 0.285 + 0.09375 + 0.14575 + 0.1644
	a := seededScorer().Score(models.MachineReading{
		MachineID:           "MCH001",
		RuntimeHours:        9500,
		LastMaintenanceDays: 300,
		Temperature:         95,
		Vibration:           15,
		ErrorCodes:          []string{"E101", "E202"},
	})

	assert.InDelta(t, 0.689, a.FailureProbability, 0.001)
	assert.InDelta(t, 34.6, a.HealthScore, 0.1)
}

func TestScore_MaintenanceOffsetTiers(t *testing.T) {
	scorer := seededScorer()
	cases := []struct {
		name    string
		reading models.MachineReading
		lo, hi  int
	}{
		{"critical", models.MachineReading{RuntimeHours: 20000, LastMaintenanceDays: 400, Temperature: 120, Vibration: 20}, 1, 7},
		{"high", models.MachineReading{RuntimeHours: 9500, LastMaintenanceDays: 300, Temperature: 95, Vibration: 15}, 7, 30},
		{"medium", models.MachineReading{RuntimeHours: 7000, LastMaintenanceDays: 200, Temperature: 85, Vibration: 9}, 30, 90},
		{"low", models.MachineReading{RuntimeHours: 100, LastMaintenanceDays: 10, Temperature: 70, Vibration: 4}, 90, 180},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				a := scorer.Score(tc.reading)
				require.GreaterOrEqual(t, a.DaysToMaintenance, tc.lo)
				require.Less(t, a.DaysToMaintenance, tc.hi)
			}
		})
	}
}

func TestScore_MaintenanceDateMatchesOffset(t *testing.T) {
	before := time.Now()
	a := seededScorer().Score(models.MachineReading{Temperature: 70, Vibration: 5})
	after := time.Now()

	days := math.Round(a.RecommendedMaintenanceDate.Sub(before).Hours() / 24)
	assert.InDelta(t, float64(a.DaysToMaintenance), days, 1)
	assert.True(t, a.RecommendedMaintenanceDate.After(after), "maintenance date must be in the future")
}

// One Scorer is shared by every request, so concurrent Score calls must be
// safe. Run with -race.
func TestScore_ConcurrentUse(t *testing.T) {
	scorer := risk.NewScorer(nil)
	reading := models.MachineReading{
		RuntimeHours:        9500,
		LastMaintenanceDays: 300,
		Temperature:         95,
		Vibration:           15,
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				a := scorer.Score(reading)
				if a.DaysToMaintenance < 7 || a.DaysToMaintenance >= 30 {
					t.Errorf("offset %d outside the high-risk window", a.DaysToMaintenance)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestTier(t *testing.T) {
	assert.Equal(t, "low", risk.Tier(0.3))
	assert.Equal(t, "medium", risk.Tier(0.31))
	assert.Equal(t, "medium", risk.Tier(0.5))
	assert.Equal(t, "high", risk.Tier(0.51))
	assert.Equal(t, "high", risk.Tier(0.7))
	assert.Equal(t, "critical", risk.Tier(0.71))
}
