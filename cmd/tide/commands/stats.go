package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/engine/stats"
	"go.trai.ch/tide/internal/ui/style"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the graph and the cached routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			top, _ := cmd.Flags().GetInt("top")

			st, err := c.app.Stats(cmd.Context(), top)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.field("locations", fmt.Sprintf("%d", st.Locations))
			p.field("connections", fmt.Sprintf("%d", st.Connections))
			p.field("routes", fmt.Sprintf("%d", st.Routes))
			printRanking(p, "most visited", st.MostVisited)
			printRanking(p, "least visited", st.LeastVisited)
			return p.err
		},
	}

	cmd.Flags().IntP("top", "n", stats.DefaultTop, "Number of locations in each ranking")

	return cmd
}

func printRanking(p *printer, title string, counts []domain.VisitCount) {
	p.line("")
	p.line(p.style(style.Title).Render(title))
	if len(counts) == 0 {
		p.line(p.style(style.Label).Render("  no cached routes"))
		return
	}
	for i, vc := range counts {
		p.line(fmt.Sprintf("  %d. %s %s", i+1, vc.Name, p.style(style.Label).Render(fmt.Sprintf("(%d)", vc.Count))))
	}
}
