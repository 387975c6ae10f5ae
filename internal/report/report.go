// Package report renders simulation results as plain text.
package report

import (
	"bonus-route-planner/internal/domain"
	"bonus-route-planner/internal/services"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

var titles = map[string]string{
	services.StrategyExhaustive: "Basic simulation",
	services.StrategyHeuristic:  "Optimized simulation",
}

// WriteSimulation prints the summary of one run.
func WriteSimulation(w io.Writer, res *domain.SimulationResult) error {
	title, ok := titles[res.Strategy]
	if !ok {
		title = res.Strategy + " simulation"
	}

	_, err := fmt.Fprintf(w,
		"%s results:\nDeliveries made: %s\nTotal time spent: %s minutes\nTotal bonus: %s\n",
		title, formatDeliveries(res.Deliveries), num(res.TotalElapsed), num(res.TotalBonus),
	)
	return err
}

// WriteComparison prints both runs followed by the chart points.
func WriteComparison(w io.Writer, cmp *services.Comparison) error {
	for i, res := range []*domain.SimulationResult{cmp.Basic, cmp.Optimized} {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteSimulation(w, res); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\nComparison:\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "simulation\ttime\tbonus")
	for _, p := range cmp.Points {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Label, num(p.Elapsed), num(p.Bonus))
	}
	return tw.Flush()
}

// formatDeliveries renders deliveries as [(time, destination, bonus), ...].
func formatDeliveries(ds []domain.Delivery) string {
	b := []byte{'['}
	for i, d := range ds {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = fmt.Appendf(b, "(%s, %s, %s)", num(d.Time), d.Destination, num(d.Bonus))
	}
	return string(append(b, ']'))
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
