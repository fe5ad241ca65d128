package uniswap_il_calculator

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

var csvHeader = []string{"price", "position_value", "hold_value", "il_value", "il_percent"}

type CurveExporter struct {
	Format ExportFormat
}

func NewCurveExporter(format ExportFormat) (*CurveExporter, error) {
	switch format {
	case FormatCSV, FormatJSON:
		return &CurveExporter{Format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (e *CurveExporter) Write(w io.Writer, curve *Curve) error {
	switch e.Format {
	case FormatCSV:
		return writeCSV(w, curve)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(curve)
	default:
		return fmt.Errorf("unsupported format: %s", e.Format)
	}
}

// ExportFile writes curve_<scenario id>.<format> under dir and returns its path.
func (e *CurveExporter) ExportFile(dir string, scenario *Scenario, curve *Curve) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("curve_%s.%s", scenario.Id, e.Format))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := e.Write(f, curve); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"file":     path,
		"points":   len(curve.Points),
		"format":   e.Format,
		"scenario": scenario.Id,
	}).Info("curve exported")
	return path, nil
}

func writeCSV(w io.Writer, curve *Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range curve.Points {
		record := []string{
			formatFloat(p.Price),
			formatFloat(p.PositionValue),
			formatFloat(p.HoldValue),
			formatFloat(p.ImpermanentLossValue),
			formatFloat(p.ImpermanentLossPercent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
