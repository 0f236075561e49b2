package commands

import (
	"github.com/spf13/cobra"

	"github.com/datagrove-io/impala-dialect/cli/internal/ui"
)

// NewSyntaxCommand creates the syntax command.
func NewSyntaxCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "syntax",
		Short: "Show the query document syntax reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ui.PrintMarkdown(syntaxReference)
		},
	}
}

const syntaxReference = `# Query Document Syntax

A query document is a small text file describing one query.

## Clauses

` + "```" + `
from analytics.orders
select trunc(created_at, quarter) as q, count(*) as n
where status = "shipped" and total >= 100
group by trunc(created_at, quarter)
order by trunc(created_at, quarter) desc
page 2 by 25
` + "```" + `

* **from** — source table, optionally schema-qualified.
* **select** — comma-separated expressions, each with an optional ` + "`as`" + ` alias.
* **where** — comparisons joined by ` + "`and`" + ` or ` + "`or`" + ` (not mixed).
* **group by / order by** — expression lists; ordering takes ` + "`asc`" + ` or ` + "`desc`" + `.
* **page N by M** — 1-based page N with M rows per page. Pages past the
  first need an ` + "`order by`" + `.

## Expressions

* Column references: ` + "`total`" + `, ` + "`t.total`" + `.
* Literals: ` + "`42`" + `, ` + "`0.5`" + `, ` + "`\"shipped\"`" + `,
  ` + "`date \"2024-01-15\"`" + `, ` + "`timestamp \"2024-01-15 10:30:00\"`" + `.
* Interval shifts: ` + "`created_at + interval 7 day`" + `,
  ` + "`created_at - interval 3 month`" + `.

## Functions

* ` + "`trunc(expr, granularity)`" + ` — truncate a timestamp. Granularities:
  minute, hour, day, week, month, quarter, year.
* ` + "`extract(expr, granularity)`" + ` — extract a component: minute_of_hour,
  hour_of_day, day_of_month, day_of_year, day_of_week, week_of_year,
  month_of_year, quarter_of_year, year.
* ` + "`replace(expr, pattern, replacement)`" + ` — regexp replacement.
* ` + "`regex(expr, pattern)`" + ` — extract the first regexp match.
* ` + "`median(expr)`" + `, ` + "`percentile(expr, fraction)`" + ` — distribution
  aggregates; the fraction is between 0 and 1.
* ` + "`count(*)`" + `, ` + "`count(expr)`" + `, ` + "`sum`" + `, ` + "`avg`" + `, ` + "`min`" + `, ` + "`max`" + `.

Comments start with ` + "`--`" + ` and run to the end of the line.
`
