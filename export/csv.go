package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"debt-payoff/domain"
)

var csvHeader = []string{"Debt", "Balance", "APR", "MinPayment"}

// WriteCSV writes a header row and one row per debt in list order. Numbers use the
// shortest exact decimal form; names containing commas or quotes are quoted.
func WriteCSV(w io.Writer, debts domain.DebtList) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, d := range debts {
		row := []string{
			d.Name,
			formatNumber(d.Balance),
			formatNumber(d.APR),
			formatNumber(d.MinPayment),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
