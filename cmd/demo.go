package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/grouplist/internal/adapter"
	m "github.com/mouse-blink/grouplist/internal/model"
)

// demoCmd represents the demo command.
var demoCmd = newDemoCmd()

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo <file>",
		Short: "Write the demo groups to a group file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := groupStore.Save(m.Path(args[0]), adapter.DemoGroups()); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote demo groups to %s\n", args[0])

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
