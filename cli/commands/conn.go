package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
	"github.com/datagrove-io/impala-dialect/runtime/client"
)

var connPing bool

// NewConnCommand creates the conn command.
func NewConnCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conn",
		Short: "Show the resolved connection details",
		Long: `Show the connection details resolved from configuration,
environment and defaults. With --ping the endpoint is contacted.`,
		RunE: runConn,
	}

	cmd.Flags().BoolVar(&connPing, "ping", false, "Contact the endpoint")

	return cmd
}

func runConn(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	details := cfg.ConnectionDetails()
	ui.PrintKeyValues([][2]string{
		{"Host", fmt.Sprintf("%s:%d", details.Host, details.Port)},
		{"Database", details.Database},
		{"Subname", details.Subname()},
		{"Driver DSN", details.DriverDSN()},
		{"Results timezone", cfg.ResultsTimezone},
	})

	if !connPing {
		return nil
	}

	d, err := cfg.Dialect()
	if err != nil {
		return err
	}
	c, err := client.Open(details, d)
	if err != nil {
		return err
	}
	defer c.Disconnect()

	spinner, _ := ui.Spinner("Contacting endpoint")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Connect(ctx); err != nil {
		if spinner != nil {
			spinner.Fail("Unreachable")
		}
		return err
	}
	if spinner != nil {
		spinner.Success("Connected")
	}
	return nil
}
