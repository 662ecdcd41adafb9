package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/tide/internal/ui/style"
)

func (c *CLI) newNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List the locations in the graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodes, err := c.app.Nodes(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, n := range nodes {
				name := n.Name
				if n.Coastal {
					name = p.style(style.Coastal).Render(name) + " " + style.Wave
				}
				p.line(fmt.Sprintf("%s %s", name, p.style(style.Label).Render(fmt.Sprintf("(%d visits)", n.Visits))))
			}
			return p.err
		},
	}
}
