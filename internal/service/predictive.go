package service

import (
	"context"
	"fmt"
	"io"

	"github.com/astrasemi/fabassist/internal/prompt"
	"github.com/astrasemi/fabassist/internal/risk"
	"github.com/astrasemi/fabassist/pkg/models"
)

// FleetReport is the predictive dashboard payload: every machine scored,
// the fleet aggregate, and a simulated health trend.
type FleetReport struct {
	Machines []models.MachineHealth `json:"machines"`
	Summary  risk.Summary           `json:"summary"`
	Trend    []float64              `json:"trend"`
}

// MachineReport pairs one machine's data with its LLM maintenance advice.
type MachineReport struct {
	Machine  models.MachineHealth  `json:"machine"`
	Analysis models.AnalysisResult `json:"analysis"`
}

// PredictiveData scores a fleet of machine readings. A nil reader selects
// the built-in synthetic fleet. No LLM call happens here; this endpoint is
// pure data.
func (s *AnalysisService) PredictiveData(ctx context.Context, csv io.Reader) (*FleetReport, error) {
	var readings []models.MachineReading
	if csv == nil {
		readings = risk.DefaultFleet()
	} else {
		var err error
		readings, err = risk.ParseReadingsCSV(csv)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFileType, err)
		}
	}

	machines := s.scoreFleet(readings)
	return &FleetReport{
		Machines: machines,
		Summary:  risk.Summarize(machines),
		Trend:    risk.TrendSeries(machines, risk.TrendPoints),
	}, nil
}

// PredictiveAnalysis produces maintenance advice for one machine of the
// built-in fleet. The fleet's fixed seed makes the lookup deterministic
// without holding state across requests.
func (s *AnalysisService) PredictiveAnalysis(ctx context.Context, machineID string) (*MachineReport, error) {
	for _, reading := range risk.DefaultFleet() {
		if reading.MachineID != machineID {
			continue
		}
		machine := models.MachineHealth{
			Reading:    reading,
			Assessment: s.scorer.Score(reading),
		}
		return &MachineReport{
			Machine:  machine,
			Analysis: s.complete(ctx, prompt.Predictive(machine)),
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMachine, machineID)
}

func (s *AnalysisService) scoreFleet(readings []models.MachineReading) []models.MachineHealth {
	machines := make([]models.MachineHealth, 0, len(readings))
	for _, reading := range readings {
		machines = append(machines, models.MachineHealth{
			Reading:    reading,
			Assessment: s.scorer.Score(reading),
		})
	}
	return machines
}
