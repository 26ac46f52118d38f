package cmd

import (
	"fmt"
	"strconv"

	"debt-payoff/cli"
	"debt-payoff/domain"
	"debt-payoff/export"

	"github.com/spf13/cobra"
)

var (
	flagStrategy string
	flagBudget   float64
	flagShowPlan bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Snowball or avalanche payoff order for the stored debts",
	Long: "Without --budget each debt is paid at its own minimum and the result is the payoff order.\n" +
		"With --budget the leftover budget rolls into the next debt as each one clears.",
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", string(domain.Avalanche), "snowball, avalanche or compare (compare needs --budget)")
	planCmd.Flags().Float64Var(&flagBudget, "budget", 0, "Total monthly budget across all debts")
	planCmd.Flags().BoolVar(&flagShowPlan, "monthly", false, "Print the month-by-month payments (with --budget)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(_ *cobra.Command, _ []string) error {
	strategy, err := domain.ParseStrategy(flagStrategy)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	debts := a.debts.List()
	if flagBudget > 0 {
		result, err := a.engine.SimulateCascade(debts, strategy, flagBudget)
		if err != nil {
			return err
		}
		printCascade(result)
		return nil
	}

	if strategy == domain.Compare {
		return &domain.InvalidInputError{Field: "strategy", Value: flagStrategy, Reason: "compare needs --budget"}
	}
	result, err := a.engine.SimulateMultiDebt(debts, strategy)
	if err != nil {
		return err
	}
	printMultiDebt(result)
	return nil
}

func printMultiDebt(result domain.MultiDebtResult) {
	rows := make([][]string, 0, len(result.Debts))
	for i, d := range result.Debts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			displayName(d.Name),
			strconv.Itoa(d.Months),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s ORDER", titleStrategy(result.Strategy))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Debt", "Months"},
		Rows:    rows,
	}))
	fmt.Printf("\n  All debts cleared in %d months\n", result.TotalMonths)
}

func printCascade(result domain.CascadeResult) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s PLAN", titleStrategy(result.Strategy))))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total debt", export.FormatMoney(result.TotalDebt)},
			{"Total interest", export.FormatMoney(result.TotalInterestPaid)},
			{"Months to payoff", strconv.Itoa(result.MonthsToPayoff)},
		},
	}))

	if c := result.Comparison; c != nil {
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Comparison",
			Headers: []string{"Strategy", "Interest", "Months"},
			Rows: [][]string{
				{"Snowball", export.FormatMoney(c.Snowball.TotalInterestPaid), strconv.Itoa(c.Snowball.MonthsToPayoff)},
				{"Avalanche", export.FormatMoney(c.Avalanche.TotalInterestPaid), strconv.Itoa(c.Avalanche.MonthsToPayoff)},
				{"---"},
				{"Saved", export.FormatMoney(c.Savings.InterestSaved), strconv.Itoa(c.Savings.MonthsSaved)},
			},
		}))
	}

	if !flagShowPlan {
		return
	}
	rows := make([][]string, 0, len(result.MonthlyPlan))
	for _, m := range result.MonthlyPlan {
		for i, p := range m.Payments {
			month := ""
			if i == 0 {
				month = strconv.Itoa(m.Month)
			}
			rows = append(rows, []string{
				month,
				displayName(p.DebtName),
				export.FormatMoney(p.Payment),
				export.FormatMoney(p.RemainingBalance),
			})
		}
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly payments",
		Headers: []string{"Month", "Debt", "Payment", "Remaining"},
		Rows:    rows,
	}))
}

func displayName(name string) string {
	return domain.Debt{Name: name}.DisplayName()
}

func titleStrategy(s domain.Strategy) string {
	switch s {
	case domain.Snowball:
		return "SNOWBALL"
	case domain.Avalanche:
		return "AVALANCHE"
	default:
		return string(s)
	}
}
