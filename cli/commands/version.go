package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
	"github.com/datagrove-io/impala-dialect/cli/internal/update"
	"github.com/datagrove-io/impala-dialect/cli/internal/version"
)

var versionCheck bool

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE:  runVersion,
	}

	cmd.Flags().BoolVar(&versionCheck, "check", false, "Check whether a newer release exists")

	return cmd
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.Get()
	fmt.Println(info.FullString())

	if !versionCheck {
		return nil
	}

	latest, newer, err := update.Check(info.Version)
	if err != nil {
		return err
	}
	if newer {
		ui.PrintWarning("A newer release is available: %s", latest)
		fmt.Printf("Download: %s\n", update.DownloadURL(latest))
	} else {
		ui.PrintSuccess("Up to date")
	}
	return nil
}
