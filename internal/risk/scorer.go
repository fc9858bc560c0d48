// Package risk converts raw machine readings into failure probabilities,
// health scores, and maintenance recommendations.
package risk

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/astrasemi/fabassist/pkg/models"
)

// Risk component weights. They sum to 1.0.
const (
	weightRuntime     = 0.30
	weightTemperature = 0.25
	weightVibration   = 0.25
	weightMaintenance = 0.20
)

const (
	maxFailureProbability = 0.95
	minHealthScore        = 5.0
)

// Scorer derives RiskAssessments from MachineReadings. The probability and
// health score are deterministic; only the maintenance-date offset draws
// from the scorer's random source.
type Scorer struct {
	rng *rand.Rand
	now func() time.Time
}

// NewScorer returns a Scorer using the given random source for the
// maintenance-date offset. A nil source selects the shared top-level
// generator, which is safe for concurrent use; one Scorer serves every
// request, so a seeded source should only be injected in tests.
func NewScorer(rng *rand.Rand) *Scorer {
	return &Scorer{rng: rng, now: time.Now}
}

func (s *Scorer) float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

// Score computes the assessment for one reading. It never fails: inputs are
// taken as-is, and the combined probability is clamped before use.
func (s *Scorer) Score(r models.MachineReading) models.RiskAssessment {
	runtimeRisk := math.Min(1.0, r.RuntimeHours/10000)
	tempRisk := math.Max(0, (r.Temperature-80)/40)
	vibrationRisk := math.Max(0, (r.Vibration-8)/12)
	maintenanceRisk := math.Min(1.0, r.LastMaintenanceDays/365)

	probability := weightRuntime*runtimeRisk +
		weightTemperature*tempRisk +
		weightVibration*vibrationRisk +
		weightMaintenance*maintenanceRisk
	probability = math.Min(maxFailureProbability, probability)

	health := math.Max(minHealthScore, 100-95*probability)

	days := s.maintenanceOffset(probability)
	now := s.now()

	return models.RiskAssessment{
		FailureProbability:         probability,
		HealthScore:                health,
		RecommendedMaintenanceDate: now.AddDate(0, 0, days),
		DaysToMaintenance:          days,
	}
}

// maintenanceOffset draws a day count uniformly from the urgency window of
// the probability's risk tier. Tier boundaries are strictly greater-than.
func (s *Scorer) maintenanceOffset(probability float64) int {
	var lo, hi float64
	switch {
	case probability > 0.7:
		lo, hi = 1, 7
	case probability > 0.5:
		lo, hi = 7, 30
	case probability > 0.3:
		lo, hi = 30, 90
	default:
		lo, hi = 90, 180
	}
	return int(lo + s.float64()*(hi-lo))
}

// Tier names the risk bucket for a failure probability.
func Tier(probability float64) string {
	switch {
	case probability > 0.7:
		return "critical"
	case probability > 0.5:
		return "high"
	case probability > 0.3:
		return "medium"
	default:
		return "low"
	}
}
