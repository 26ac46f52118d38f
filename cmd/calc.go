package cmd

import (
	"fmt"
	"strconv"
	"time"

	"debt-payoff/cli"
	"debt-payoff/domain"
	"debt-payoff/export"
	"debt-payoff/service"

	"github.com/spf13/cobra"
)

var (
	flagBalance float64
	flagAPR     float64
	flagMin     float64
	flagPayment float64
	flagDate    string
	flagMonths  int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Payment needed to clear a balance by a target date, month by month",
	RunE:  runSchedule,
}

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Debt-free date for a fixed monthly payment",
	RunE:  runBudget,
}

var whatIfCmd = &cobra.Command{
	Use:   "whatif",
	Short: "Months and total interest for a payment and APR",
	RunE:  runWhatIf,
}

func init() {
	for _, c := range []*cobra.Command{scheduleCmd, budgetCmd, whatIfCmd} {
		c.Flags().Float64VarP(&flagBalance, "balance", "b", 0, "Balance owed")
		c.Flags().Float64VarP(&flagAPR, "apr", "a", 0, "APR as a percentage, e.g. 19.99")
		_ = c.MarkFlagRequired("balance")
	}
	scheduleCmd.Flags().Float64Var(&flagMin, "min", 0, "Current minimum payment")
	scheduleCmd.Flags().StringVar(&flagDate, "date", "", "Target payoff date (YYYY-MM-DD)")
	scheduleCmd.Flags().IntVar(&flagMonths, "months", 0, "Months to payoff, instead of --date")
	scheduleCmd.MarkFlagsMutuallyExclusive("date", "months")
	scheduleCmd.MarkFlagsOneRequired("date", "months")

	for _, c := range []*cobra.Command{budgetCmd, whatIfCmd} {
		c.Flags().Float64VarP(&flagPayment, "payment", "p", 0, "Monthly payment")
		_ = c.MarkFlagRequired("payment")
	}

	rootCmd.AddCommand(scheduleCmd, budgetCmd, whatIfCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	months := flagMonths
	if flagDate != "" {
		target, err := time.Parse(time.DateOnly, flagDate)
		if err != nil {
			return &domain.InvalidInputError{Field: "date", Value: flagDate, Reason: "must be YYYY-MM-DD"}
		}
		months = service.MonthsUntil(time.Now(), target)
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	result, err := engine.ScheduleByTargetDate(flagBalance, flagAPR, flagMin, months)
	if err != nil {
		return err
	}

	s := result.Schedule
	rows := make([][]string, 0, s.Months())
	for i := range s.Balance {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			export.FormatMoney(s.Principal[i]),
			export.FormatMoney(s.Interest[i]),
			export.FormatMoney(s.Balance[i]),
		})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PAYOFF IN %d MONTHS", months)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Principal", "Interest", "Balance"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Required payment", export.FormatMoney(result.RequiredMonthlyPayment)},
			{"Above minimum", export.FormatMoney(result.ExtraOverMinimum)},
			{"Total interest", export.FormatMoney(result.TotalInterest)},
		},
	}))
	fmt.Println()
	fmt.Println("  " + cli.RenderProgress(service.ProgressPercent(flagBalance, s.FinalBalance()), 30))
	return nil
}

func runBudget(_ *cobra.Command, _ []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	result, err := engine.MonthsToPayoffByFixedPayment(flagBalance, flagAPR, flagPayment)
	if err != nil {
		return err
	}

	payoff := service.PayoffDate(time.Now(), result.Months)
	fmt.Printf("\n  You will be debt-free by: %s (%d months, %s interest)\n",
		payoff.Format("Mon Jan 02 2006"), result.Months, export.FormatMoney(result.TotalInterest))
	return nil
}

func runWhatIf(_ *cobra.Command, _ []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	result, err := engine.WhatIfProjection(flagBalance, flagAPR, flagPayment)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Payoff in %d months, total interest: %s\n", result.Months, export.FormatMoney(result.TotalInterest))
	return nil
}

// loadEngine builds the engine from config without opening the store.
func loadEngine() (*service.PayoffEngine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return service.NewPayoffEngine(cfg.Engine.MaxPayoffMonths), nil
}
