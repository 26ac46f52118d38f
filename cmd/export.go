package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"debt-payoff/cli"
	"debt-payoff/domain"
	"debt-payoff/export"

	"github.com/spf13/cobra"
)

var (
	flagCSVOut      string
	flagPDFOut      string
	flagPDFStrategy string
	flagShareBase   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the stored debts to a file",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "Export the debt list as CSV",
	RunE:  runExportCSV,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Export a printable payoff plan",
	RunE:  runExportPDF,
}

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print a link that encodes the stored debts",
	RunE:  runShare,
}

func init() {
	exportCSVCmd.Flags().StringVarP(&flagCSVOut, "out", "o", "debts.csv", "Output file (- for stdout)")
	exportPDFCmd.Flags().StringVarP(&flagPDFOut, "out", "o", "PayoffPlan.pdf", "Output file")
	exportPDFCmd.Flags().StringVarP(&flagPDFStrategy, "strategy", "s", "", "Include the snowball or avalanche order")
	shareCmd.Flags().StringVar(&flagShareBase, "base", export.DefaultShareBase, "Base URL of the link")

	exportCmd.AddCommand(exportCSVCmd, exportPDFCmd)
	rootCmd.AddCommand(exportCmd, shareCmd)
}

func runExportCSV(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return writeOutput(flagCSVOut, func(w io.Writer) error {
		return export.WriteCSV(w, a.debts.List())
	})
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	debts := a.debts.List()
	report := export.PDFReport{Debts: debts, Generated: time.Now()}
	if flagPDFStrategy != "" {
		strategy, err := domain.ParseStrategy(flagPDFStrategy)
		if err != nil {
			return err
		}
		plan, err := a.engine.SimulateMultiDebt(debts, strategy)
		if err != nil {
			fmt.Fprintln(os.Stderr, cli.RenderWarning(fmt.Sprintf("Payoff plan left out of the PDF: %v", err)))
		} else {
			report.Plan = &plan
		}
	}

	if flagPDFOut == "-" {
		return fmt.Errorf("pdf output needs a file path")
	}
	return writeOutput(flagPDFOut, func(w io.Writer) error {
		return export.WritePDF(w, report)
	})
}

func runShare(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	link, err := export.ShareLink(flagShareBase, a.debts.List())
	if err != nil {
		return err
	}
	fmt.Println(link)
	return nil
}

// writeOutput writes to path, or stdout for "-". A failed write removes the partial file.
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "  Wrote %s\n", path)
	return nil
}
