package queryfile

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

// WriteError pretty-prints a parse error against its source text. When
// the error carries a position the offending line is echoed with a
// caret under the failing column; otherwise only the message is shown.
func WriteError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed, color.Bold)
	dim := color.New(color.Faint)

	perr, ok := err.(participle.Error)
	if !ok {
		red.Fprint(w, "error: ")
		fmt.Fprintln(w, err.Error())
		return
	}

	pos := perr.Position()
	red.Fprint(w, "error: ")
	fmt.Fprintf(w, "%s (%s)\n", perr.Message(), pos)

	lines := strings.Split(src, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return
	}
	line := lines[pos.Line-1]
	prefix := fmt.Sprintf("%4d | ", pos.Line)
	dim.Fprint(w, prefix)
	fmt.Fprintln(w, line)

	col := pos.Column
	if col < 1 {
		col = 1
	}
	dim.Fprint(w, strings.Repeat(" ", len(prefix)-2)+"| ")
	red.Fprintln(w, strings.Repeat(" ", col-1)+"^")
}
