package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/config"
	"github.com/MikeSquared-Agency/Showroom/internal/finance"
)

type financeOpts struct {
	carID     string
	price     float64
	apr       float64
	term      int
	down      float64
	tradeIn   float64
	outputFmt string
}

func newFinanceCmd(configPath *string) *cobra.Command {
	var opts financeOpts

	cmd := &cobra.Command{
		Use:   "finance",
		Short: "Compare finance, lease and used-car options",
		Example: `  showroom finance --car 1
  showroom finance --price 32000 --apr 3.9 --term 48 --down 15`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			fo := cfg.Finance.Finance
			if cmd.Flags().Changed("apr") {
				fo.InterestRate = opts.apr
			}
			if cmd.Flags().Changed("term") {
				fo.TermMonths = opts.term
			}
			if cmd.Flags().Changed("down") {
				fo.DownPayment = opts.down
			}
			if cmd.Flags().Changed("trade-in") {
				fo.TradeInValue = opts.tradeIn
			}
			return runFinance(cmd.OutOrStdout(), cfg.Finance, fo, opts)
		},
	}

	cmd.Flags().StringVar(&opts.carID, "car", "", "Catalog car id")
	cmd.Flags().Float64Var(&opts.price, "price", 0, "Vehicle price (overrides the catalog price)")
	cmd.Flags().Float64Var(&opts.apr, "apr", 0, "Loan APR in percent")
	cmd.Flags().IntVar(&opts.term, "term", 0, "Loan term in months")
	cmd.Flags().Float64Var(&opts.down, "down", 0, "Down payment in percent")
	cmd.Flags().Float64Var(&opts.tradeIn, "trade-in", 0, "Trade-in value in dollars")
	cmd.Flags().StringVar(&opts.outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func runFinance(w io.Writer, defaults config.FinanceConfig, fo finance.FinanceOption, opts financeOpts) error {
	if err := checkOutput(opts.outputFmt); err != nil {
		return err
	}

	car := catalog.Car{Year: time.Now().Year()}
	if opts.carID != "" {
		c, err := catalog.GetCar(opts.carID)
		if err != nil {
			return fmt.Errorf("car %q: %w", opts.carID, err)
		}
		car = c
	}
	if opts.price > 0 {
		car.Price = opts.price
	}
	if car.Price <= 0 {
		return fmt.Errorf("either --car or a positive --price is required")
	}

	lo := defaults.Lease
	uo := defaults.Used.UsedOption(car)
	if err := fo.Validate(); err != nil {
		return fmt.Errorf("finance: %w", err)
	}
	if err := lo.Validate(); err != nil {
		return fmt.Errorf("lease: %w", err)
	}
	if err := uo.Validate(); err != nil {
		return fmt.Errorf("used: %w", err)
	}

	cmp := finance.Compare(car.Price, fo, lo, uo)

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	}

	if car.Model != "" {
		fmt.Fprintf(w, "%d %s %s  $%.0f\n\n", car.Year, car.Brand, car.Model, car.Price)
	} else {
		fmt.Fprintf(w, "Vehicle price $%.0f\n\n", car.Price)
	}
	for i, o := range cmp.Options {
		marker := "  "
		if i == cmp.Best {
			marker = "* "
		}
		fmt.Fprintf(w, "%s%-18s $%8.2f/mo  total $%10.2f  down $%9.2f\n",
			marker, o.Label, o.MonthlyPayment, o.TotalCost, o.DownPayment)
		if o.BestFor != "" {
			fmt.Fprintf(w, "  %-18s best for: %s\n", "", o.BestFor)
		}
	}
	fmt.Fprintf(w, "\nLowest total cost: %s\n", cmp.BestOption().Label)
	return nil
}
