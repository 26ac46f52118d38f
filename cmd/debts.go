package cmd

import (
	"fmt"
	"strconv"

	"debt-payoff/cli"
	"debt-payoff/domain"
	"debt-payoff/export"

	"github.com/spf13/cobra"
)

var debtsCmd = &cobra.Command{
	Use:   "debts",
	Short: "Manage the stored debt list",
	RunE:  runDebtsList,
}

var debtsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show stored debts",
	RunE:  runDebtsList,
}

var (
	flagAddName    string
	flagAddBalance float64
	flagAddAPR     float64
	flagAddMin     float64
)

var debtsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append a debt (zero values unless flags are given)",
	RunE:  runDebtsAdd,
}

var debtsEditCmd = &cobra.Command{
	Use:   "edit <index> <name|balance|apr|minPayment> <value>",
	Short: "Change one field of a stored debt",
	Args:  cobra.ExactArgs(3),
	RunE:  runDebtsEdit,
}

var debtsRemoveCmd = &cobra.Command{
	Use:     "rm <index>",
	Aliases: []string{"remove"},
	Short:   "Remove a stored debt",
	Args:    cobra.ExactArgs(1),
	RunE:    runDebtsRemove,
}

var debtsImportCmd = &cobra.Command{
	Use:   "import <share-link>",
	Short: "Replace the stored list with the debts in a share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runDebtsImport,
}

func init() {
	debtsAddCmd.Flags().StringVar(&flagAddName, "name", "", "Display name")
	debtsAddCmd.Flags().Float64Var(&flagAddBalance, "balance", 0, "Balance owed")
	debtsAddCmd.Flags().Float64Var(&flagAddAPR, "apr", 0, "APR as a percentage, e.g. 19.99")
	debtsAddCmd.Flags().Float64Var(&flagAddMin, "min", 0, "Minimum monthly payment")

	debtsCmd.AddCommand(debtsListCmd, debtsAddCmd, debtsEditCmd, debtsRemoveCmd, debtsImportCmd)
	rootCmd.AddCommand(debtsCmd)
}

func runDebtsList(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	printDebts(a.debts.List())
	return nil
}

func runDebtsAdd(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	index, err := a.debts.AddDebt(domain.Debt{
		Name:       flagAddName,
		Balance:    flagAddBalance,
		APR:        flagAddAPR,
		MinPayment: flagAddMin,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Added debt #%d\n", index)
	return nil
}

func runDebtsEdit(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if _, err := a.debts.Edit(index, args[1], args[2]); err != nil {
		return err
	}
	printDebts(a.debts.List())
	return nil
}

func runDebtsRemove(_ *cobra.Command, args []string) error {
	index, err := parseIndex(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.debts.Remove(index); err != nil {
		return err
	}
	printDebts(a.debts.List())
	return nil
}

func runDebtsImport(_ *cobra.Command, args []string) error {
	debts, err := export.ParseShareLink(args[0])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.debts.Replace(debts); err != nil {
		return err
	}
	printDebts(a.debts.List())
	return nil
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.InvalidInputError{Field: "index", Value: raw, Reason: "must be an integer"}
	}
	return index, nil
}

func printDebts(debts domain.DebtList) {
	if len(debts) == 0 {
		fmt.Println("\n  No debts stored. Add one with `debt-payoff debts add`.")
		return
	}

	rows := make([][]string, 0, len(debts)+2)
	for i, d := range debts {
		rows = append(rows, []string{
			strconv.Itoa(i),
			d.DisplayName(),
			export.FormatMoney(d.Balance),
			export.FormatPercent(d.APR),
			export.FormatMoney(d.MinPayment),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", export.FormatMoney(debts.TotalBalance()), "", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"#", "Debt", "Balance", "APR", "Min Payment"},
		Rows:    rows,
	}))
}
