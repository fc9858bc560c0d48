package risk

import (
	"math"
	"math/rand/v2"

	"github.com/astrasemi/fabassist/pkg/models"
)

// TrendPoints is the length of the simulated historical health series.
const TrendPoints = 12

// TrendSeries simulates a historical average-health series ending at the
// fleet's current average. The walk is unseeded and illustrative only: it
// differs on every call.
func TrendSeries(machines []models.MachineHealth, points int) []float64 {
	if points <= 0 {
		points = TrendPoints
	}

	current := 100.0
	if len(machines) > 0 {
		total := 0.0
		for _, m := range machines {
			total += m.Assessment.HealthScore
		}
		current = total / float64(len(machines))
	}

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

	series := make([]float64, points)
	series[points-1] = round1(current)
	value := current
	// Walk backwards: equipment generally degrades, so history trends
	// slightly healthier than the present.
	for i := points - 2; i >= 0; i-- {
		value += rng.Float64()*2.5 - 0.75
		value = math.Min(100, math.Max(minHealthScore, value))
		series[i] = round1(value)
	}
	return series
}
