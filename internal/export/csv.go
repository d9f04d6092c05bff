package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"MoveRadar/internal/model"
)

// Header is the column layout of the CSV export. No index column.
var Header = []string{"Symbol", "Movement (%)", "Open", "High", "Low", "Close", "Sector"}

// WriteCSV writes records to w, header included, one row per record.
func WriteCSV(w io.Writer, records []model.MovementRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Symbol,
			fixed2(r.MovementPct),
			fixed2(r.Open),
			fixed2(r.High),
			fixed2(r.Low),
			fixed2(r.Close),
			r.Sector,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %s: %w", r.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV export to path, creating or truncating the file.
func WriteFile(path string, records []model.MovementRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, records)
}

func fixed2(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
