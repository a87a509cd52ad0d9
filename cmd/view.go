package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/grouplist/internal/config"
	"github.com/mouse-blink/grouplist/internal/controller"
	m "github.com/mouse-blink/grouplist/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()
var viewColumnsFlag int

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [files...]",
		Short: "Render the grouped list",
		Long: `View renders every row of the grouped list. On a terminal the list is
interactive and can be edited; otherwise it is printed as a grid where
headers and footers span the full row.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configure := func(cfg *config.Config) error {
				if cmd.Flags().Changed("columns") {
					cfg.Columns = viewColumnsFlag
				}

				return nil
			}

			return runUI(cmd, args, configure, func(ui controller.UI, groups []m.Group) error {
				return ui.View(groups)
			})
		},
	}
	cmd.Flags().IntVarP(&viewColumnsFlag, "columns", "n", config.DefaultColumns, "grid columns used for items")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
