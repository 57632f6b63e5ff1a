package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Showroom/internal/catalog"
	"github.com/MikeSquared-Agency/Showroom/internal/quiz"
	"github.com/MikeSquared-Agency/Showroom/internal/scoring"
)

type matchOpts struct {
	answers     []string
	budget      float64
	safety      float64
	performance float64
	cargo       float64
	usePriority bool
	top         int
	outputFmt   string
}

func newMatchCmd(configPath *string) *cobra.Command {
	var opts matchOpts

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank the catalog against quiz answers",
		Long: `Derives a driving persona from quiz answers given as --answer question=value
and prints the best-matching vehicles. Run with no answers to see the defaults.`,
		Example: `  showroom match --answer driving-pace=calm --answer sensory-cabin=quiet --budget 30000
  showroom match --performance 10 --top 5 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("top") {
				opts.top = cfg.Matching.TopN
			}
			if !cmd.Flags().Changed("budget") {
				opts.budget = cfg.Matching.DefaultBudget
			}
			opts.usePriority = cmd.Flags().Changed("safety") ||
				cmd.Flags().Changed("performance") ||
				cmd.Flags().Changed("cargo")
			return runMatch(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.Logging), opts)
		},
	}

	cmd.Flags().StringArrayVar(&opts.answers, "answer", nil, "Quiz answer as question-id=value (repeatable)")
	cmd.Flags().Float64Var(&opts.budget, "budget", 0, "Budget in dollars (0 = no budget)")
	cmd.Flags().Float64Var(&opts.safety, "safety", 0, "Safety priority 0-10")
	cmd.Flags().Float64Var(&opts.performance, "performance", 0, "Performance priority 0-10")
	cmd.Flags().Float64Var(&opts.cargo, "cargo", 0, "Cargo priority 0-10")
	cmd.Flags().IntVar(&opts.top, "top", 3, "Number of vehicles to show (0 = all)")
	cmd.Flags().StringVar(&opts.outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func parseAnswers(answers []string) (quiz.Selections, error) {
	sel := make(quiz.Selections, len(answers))
	for _, a := range answers {
		id, value, ok := strings.Cut(a, "=")
		if !ok || id == "" || value == "" {
			return nil, fmt.Errorf("invalid answer %q: want question-id=value", a)
		}
		sel[id] = value
	}
	return sel, nil
}

func runMatch(w io.Writer, logger *slog.Logger, opts matchOpts) error {
	if err := checkOutput(opts.outputFmt); err != nil {
		return err
	}
	sel, err := parseAnswers(opts.answers)
	if err != nil {
		return err
	}

	var priorities *quiz.Priorities
	if opts.usePriority {
		priorities = &quiz.Priorities{Safety: opts.safety, Performance: opts.performance, Cargo: opts.cargo}
	}

	questions := quiz.Questions()
	resp := quiz.Derive(questions, sel, priorities, opts.budget)

	results := scoring.NewMatcher(catalog.Profiles(), opts.top, logger).Match(resp, 0)

	if opts.outputFmt == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"responses": resp,
			"results":   results,
		})
	}

	fmt.Fprintf(w, "Persona: %s, %s, %s, %s\n",
		resp.Driving.DisplayName(), resp.Sensory.DisplayName(),
		resp.Tech.DisplayName(), resp.Maintenance.DisplayName())
	if missing := quiz.Unanswered(questions, sel); len(missing) > 0 && len(missing) < len(questions) {
		fmt.Fprintf(w, "Unanswered: %s\n", strings.Join(missing, ", "))
	}
	fmt.Fprintln(w)

	for i, r := range results {
		car, err := catalog.GetCar(r.CarID)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%d. %d %s %s  score %d  $%.0f\n", i+1, car.Year, car.Brand, car.Model, r.MatchScore, car.Price)
		for _, h := range r.Highlights {
			fmt.Fprintf(w, "   - %s\n", h)
		}
	}
	return nil
}
