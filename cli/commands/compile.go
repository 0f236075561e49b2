package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/config"
	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
	"github.com/datagrove-io/impala-dialect/cli/internal/watch"
	"github.com/datagrove-io/impala-dialect/dialect/impala"
	"github.com/datagrove-io/impala-dialect/query/cache"
	"github.com/datagrove-io/impala-dialect/query/compiler"
	"github.com/datagrove-io/impala-dialect/query/sqlgen"
	"github.com/datagrove-io/impala-dialect/queryfile"
	"github.com/datagrove-io/impala-dialect/runtime/client"
)

var (
	compileWatch bool
	compileRun   bool

	// statements skips recompilation when a watched file is rewritten
	// with identical content.
	statements = cache.New(64, 0)
)

// NewCompileCommand creates the compile command.
func NewCompileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <query-file>",
		Short: "Compile a query document into Impala SQL",
		Long: `Compile a query document into Impala SQL.

The generated statement and its bound parameters are printed. With
--run the statement is also executed against the configured endpoint
and the result set rendered as a table.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompile,
	}

	cmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "Recompile when the file changes")
	cmd.Flags().BoolVar(&compileRun, "run", false, "Execute the compiled query")

	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	path := args[0]

	if !compileWatch {
		return compileOnce(path)
	}

	w, err := watch.New(path, func() error {
		if err := compileOnce(path); err != nil {
			ui.PrintError("%v", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	defer w.Stop()

	if err := w.Start(); err != nil {
		return err
	}
	ui.PrintInfo("Watching %s (ctrl-c to stop)", path)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func compileOnce(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	d, err := cfg.Dialect()
	if err != nil {
		return err
	}

	compiled, err := statements.GetOrCompute(cache.Key(d.Name(), string(src)), func() (*sqlgen.Query, error) {
		query, err := queryfile.ParseString(path, string(src))
		if err != nil {
			queryfile.WriteError(os.Stderr, string(src), err)
			return nil, fmt.Errorf("parse failed")
		}
		return compiler.New(d).Compile(query)
	})
	if err != nil {
		return err
	}

	ui.PrintCodeBlock(compiled.SQL, "sql")
	if len(compiled.Args) > 0 {
		params := make([]string, len(compiled.Args))
		for i, arg := range compiled.Args {
			params[i] = fmt.Sprintf("$%d = %v", i+1, arg)
		}
		ui.PrintSection("Parameters")
		ui.PrintList(params)
	}

	if compileRun {
		return executeQuery(cfg, d, compiled)
	}
	return nil
}

func executeQuery(cfg *config.Config, d *impala.Dialect, compiled *sqlgen.Query) error {
	c, err := client.Open(cfg.ConnectionDetails(), d)
	if err != nil {
		return err
	}
	defer c.Disconnect()

	ctx := context.Background()
	result, err := c.Query(ctx, compiled)
	if err != nil {
		return err
	}

	headers := make([]string, len(result.Columns))
	for i, col := range result.Columns {
		headers[i] = col.Name
	}
	rows := make([][]string, len(result.Rows))
	for i, row := range result.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				cells[j] = "NULL"
			} else {
				cells[j] = fmt.Sprintf("%v", cell)
			}
		}
		rows[i] = cells
	}

	ui.PrintTable(headers, rows)
	ui.PrintSuccess("%d row(s)", len(result.Rows))
	return nil
}
