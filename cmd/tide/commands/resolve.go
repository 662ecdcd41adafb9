package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/tide/internal/core/domain"
	"go.trai.ch/tide/internal/ui/style"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <origin> <destination>",
		Short: "Find the least-cost route between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			res, err := c.app.Resolve(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			return printResolution(cmd, args[0], args[1], res)
		},
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func printResolution(cmd *cobra.Command, origin, destination string, res domain.Resolution) error {
	p := newPrinter(cmd.OutOrStdout())

	if !res.Found() {
		p.line(p.style(style.Bad).Render(style.Cross+" no route") + " from " + origin + " to " + destination)
		return p.err
	}

	p.line(p.style(style.Title).Render(strings.Join(res.Path, " "+style.Arrow+" ")))
	p.field("cost", fmt.Sprintf("%d", *res.Cost))
	if res.Valid {
		p.field("coastal", p.style(style.Good).Render(style.Check+" passes a coastal location"))
	} else {
		p.field("coastal", p.style(style.Bad).Render(style.Cross+" no coastal location on route"))
	}
	return p.err
}
