package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/grouplist/internal/config"
	"github.com/mouse-blink/grouplist/internal/controller"
	m "github.com/mouse-blink/grouplist/internal/model"
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()
var indexFormatFlag string

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [files...]",
		Short: "Print how every flat position maps onto the groups",
		Long: `Index prints one row per flat list position: its kind (header, item or
footer), the group it belongs to, its index within the group and its view
type code.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configure := func(cfg *config.Config) error {
				if cmd.Flags().Changed("format") {
					cfg.Format = indexFormatFlag
				}

				return nil
			}

			return runUI(cmd, args, configure, func(ui controller.UI, groups []m.Group) error {
				return ui.Index(groups)
			})
		},
	}
	cmd.Flags().StringVarP(&indexFormatFlag, "format", "f", string(controller.FormatTable), "output format: table or yaml")

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
