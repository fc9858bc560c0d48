package models

import "time"

// MachineReading is one set of raw per-machine sensor readings. Values are
// request-scoped; malformed inputs are coerced to zero at parse time rather
// than rejected.
type MachineReading struct {
	MachineID           string   `json:"machine_id"`
	RuntimeHours        float64  `json:"runtime_hours"`         // hours since commissioning
	LastMaintenanceDays float64  `json:"last_maintenance_days"` // days since last service
	Temperature         float64  `json:"temperature"`           // Celsius
	Vibration           float64  `json:"vibration"`             // mm/s RMS
	ErrorCodes          []string `json:"error_codes"`
}

// ErrorCount returns the number of recorded error codes.
func (r MachineReading) ErrorCount() int { return len(r.ErrorCodes) }

// RiskAssessment is the scored health state derived from a MachineReading.
// Invariant: HealthScore == 100 - 95*FailureProbability.
type RiskAssessment struct {
	FailureProbability         float64   `json:"failure_probability"` // [0, 0.95]
	HealthScore                float64   `json:"health_score"`        // [5, 100]
	RecommendedMaintenanceDate time.Time `json:"recommended_maintenance_date"`
	DaysToMaintenance          int       `json:"days_to_maintenance"`
}

// MachineHealth pairs a reading with its assessment for reporting.
type MachineHealth struct {
	Reading    MachineReading `json:"reading"`
	Assessment RiskAssessment `json:"assessment"`
}
