package risk

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/astrasemi/fabassist/pkg/models"
	"github.com/astrasemi/fabassist/pkg/tabular"
)

// Expected column order of an equipment readings CSV. Columns beyond
// Vibration hold error codes, one per cell.
const readingColumns = 5

// ParseReadingsCSV parses an equipment CSV with header
// "Machine ID,Runtime Hours,Last Maintenance Days,Temperature,Vibration,Error Codes".
// Malformed numeric cells coerce to 0; rows without a machine ID are
// skipped. Only a structurally unreadable file is an error.
func ParseReadingsCSV(r io.Reader) ([]models.MachineReading, error) {
	table, err := tabular.ParseCSV(r)
	if err != nil {
		return nil, err
	}

	readings := make([]models.MachineReading, 0, len(table.Rows))
	for _, row := range table.Rows {
		id := strings.TrimSpace(cell(row, 0))
		if id == "" {
			continue
		}

		reading := models.MachineReading{
			MachineID:           id,
			RuntimeHours:        parseFloat(cell(row, 1)),
			LastMaintenanceDays: parseFloat(cell(row, 2)),
			Temperature:         parseFloat(cell(row, 3)),
			Vibration:           parseFloat(cell(row, 4)),
		}
		for _, raw := range row[min(readingColumns, len(row)):] {
			if code := strings.TrimSpace(raw); code != "" {
				reading.ErrorCodes = append(reading.ErrorCodes, code)
			}
		}
		readings = append(readings, reading)
	}

	if len(readings) == 0 {
		return nil, fmt.Errorf("no machine readings found in csv")
	}
	return readings, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parseFloat coerces a cell to a non-negative-friendly float: malformed
// input becomes 0 instead of an error.
func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
