package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/astrasemi/fabassist/internal/prompt"
	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/astrasemi/fabassist/pkg/tabular"
)

// ShipmentReport is the output of the operations-overview pipeline.
type ShipmentReport struct {
	Shipments []map[string]string   `json:"shipments"`
	Analysis  models.AnalysisResult `json:"analysis"`
}

// AnalyzeShipments parses an uploaded shipment CSV and produces an
// analysis of its first rows.
func (s *AnalysisService) AnalyzeShipments(ctx context.Context, filename string, csv io.Reader) (*ShipmentReport, error) {
	if csv == nil {
		return nil, ErrMissingFile
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".csv") {
		return nil, fmt.Errorf("%w: %q is not a .csv file", ErrInvalidFileType, filename)
	}

	table, err := tabular.ParseCSV(csv)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFileType, err)
	}

	result := s.complete(ctx, prompt.Operations(table))
	return &ShipmentReport{
		Shipments: table.Records(),
		Analysis:  result,
	}, nil
}
