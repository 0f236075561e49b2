package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/config"
	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
	"github.com/datagrove-io/impala-dialect/dialect/impala"
)

var initYes bool

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up a project interactively",
		Long: `Set up a project: prompt for connection settings, save them to
the user config, and drop a sample query document to start from.`,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept all defaults without prompting")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("impala-dialect", "Project setup")

	cfg := &config.Config{
		Host:     impala.DefaultHost,
		Port:     impala.DefaultPort,
		Database: impala.DefaultDatabase,
	}

	if !initYes {
		if err := promptSettings(cfg); err != nil {
			return err
		}
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	ui.PrintSuccess("Saved connection settings")

	if err := writeSampleQuery(config.AppFs); err != nil {
		return err
	}

	fmt.Println()
	ui.PrintList([]string{
		"Edit sample.query to match your tables",
		"Run: impala-dialect compile sample.query",
		"Run: impala-dialect conn --ping",
	})
	return nil
}

func promptSettings(cfg *config.Config) error {
	port := fmt.Sprintf("%d", cfg.Port)
	questions := []*survey.Question{
		{
			Name:     "host",
			Prompt:   &survey.Input{Message: "Host:", Default: cfg.Host},
			Validate: survey.Required,
		},
		{
			Name:   "port",
			Prompt: &survey.Input{Message: "Port:", Default: port},
		},
		{
			Name:   "database",
			Prompt: &survey.Input{Message: "Database:", Default: cfg.Database},
		},
		{
			Name: "timezone",
			Prompt: &survey.Input{
				Message: "Results timezone (IANA name, empty for local):",
			},
		},
	}

	answers := struct {
		Host     string
		Port     int
		Database string
		Timezone string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	cfg.Host = answers.Host
	cfg.Port = answers.Port
	cfg.Database = answers.Database
	cfg.ResultsTimezone = answers.Timezone
	return nil
}

const sampleQuery = `-- Quarterly order counts, newest quarter first.
from orders
select trunc(created_at, quarter) as q,
       count(*) as n
group by trunc(created_at, quarter)
order by trunc(created_at, quarter) desc
`

func writeSampleQuery(fs afero.Fs) error {
	const path = "sample.query"
	if exists, _ := afero.Exists(fs, path); exists {
		ui.PrintWarning("%s already exists, leaving it alone", path)
		return nil
	}
	if err := afero.WriteFile(fs, path, []byte(sampleQuery), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	ui.PrintSuccess("Created %s", path)
	return nil
}
