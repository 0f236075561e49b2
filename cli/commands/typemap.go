package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
	"github.com/datagrove-io/impala-dialect/dialect/impala"
)

// NewTypemapCommand creates the typemap command.
func NewTypemapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "typemap [type-name...]",
		Short: "Show how engine column types map onto base types",
		Long: `Show how engine column types map onto base types.

Without arguments the full ordered rule table is printed. With
arguments each given type name is resolved through the rules.`,
		RunE: runTypemap,
	}
}

func runTypemap(cmd *cobra.Command, args []string) error {
	d := impala.New()

	if len(args) == 0 {
		rows := make([][]string, 0, len(d.TypeMappings()))
		for _, m := range d.TypeMappings() {
			rows = append(rows, []string{m.Pattern, string(m.Base)})
		}
		ui.PrintTable([]string{"Pattern", "Base Type"}, rows)
		return nil
	}

	rows := make([][]string, 0, len(args))
	for _, name := range args {
		raw := strings.ToUpper(name)
		rows = append(rows, []string{raw, string(d.BaseType(raw))})
	}
	ui.PrintTable([]string{"Type", "Base Type"}, rows)
	return nil
}
