package risk

import (
	"fmt"
	"math/rand/v2"

	"github.com/astrasemi/fabassist/pkg/models"
)

// defaultFleetSeed fixes the random source for the built-in demo fleet so
// it is identical across runs and processes. The maintenance-date offset
// and the trend simulation intentionally stay unseeded.
const defaultFleetSeed = 42

const defaultFleetSize = 8

var errorCodePool = []string{"E101", "E202", "E303", "E404", "E215", "E512"}

// DefaultFleet generates the built-in synthetic machine fleet used when no
// equipment CSV is uploaded. Deterministic: every call returns the same
// readings.
func DefaultFleet() []models.MachineReading {
	rng := rand.New(rand.NewPCG(defaultFleetSeed, 0))

	fleet := make([]models.MachineReading, 0, defaultFleetSize)
	for i := 0; i < defaultFleetSize; i++ {
		var codes []string
		for _, code := range errorCodePool {
			if rng.Float64() < 0.25 {
				codes = append(codes, code)
			}
		}
		fleet = append(fleet, models.MachineReading{
			MachineID:           fmt.Sprintf("MCH%03d", i+1),
			RuntimeHours:        500 + rng.Float64()*9300,
			LastMaintenanceDays: 5 + rng.Float64()*335,
			Temperature:         60 + rng.Float64()*40,
			Vibration:           2 + rng.Float64()*12,
			ErrorCodes:          codes,
		})
	}
	return fleet
}

// Summary aggregates a scored fleet for the predictive dashboard.
type Summary struct {
	MachineCount    int            `json:"machine_count"`
	AverageHealth   float64        `json:"average_health"`
	TierCounts      map[string]int `json:"tier_counts"`
	AttentionNeeded []string       `json:"attention_needed"`
}

// Summarize computes the fleet aggregate. AttentionNeeded lists machines
// above 0.5 failure probability in fleet order.
func Summarize(machines []models.MachineHealth) Summary {
	summary := Summary{
		MachineCount: len(machines),
		TierCounts:   map[string]int{"low": 0, "medium": 0, "high": 0, "critical": 0},
	}
	if len(machines) == 0 {
		return summary
	}

	total := 0.0
	for _, m := range machines {
		total += m.Assessment.HealthScore
		summary.TierCounts[Tier(m.Assessment.FailureProbability)]++
		if m.Assessment.FailureProbability > 0.5 {
			summary.AttentionNeeded = append(summary.AttentionNeeded, m.Reading.MachineID)
		}
	}
	summary.AverageHealth = round1(total / float64(len(machines)))
	return summary
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
