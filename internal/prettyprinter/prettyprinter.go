// Package prettyprinter renders kernel expressions for diagnostics,
// Lambda/Pi/App/Ident/Ref each get one fixed shape,
// and since binders are anonymised, printed Lambda/Pi show only the
// binder's type, never a binder name.
package prettyprinter

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/proofcheck/internal/kernel"
)

// Print renders a kernel expression to its canonical surface form.
func Print(e kernel.Expr) string {
	if e == nil {
		return "<nil>"
	}
	switch n := e.(type) {
	case *kernel.Lambda:
		return fmt.Sprintf("(%s => %s)", Print(n.Head), Print(n.Body))
	case *kernel.Pi:
		return fmt.Sprintf("(%s -> %s)", Print(n.Head), Print(n.Tail))
	case *kernel.App:
		return fmt.Sprintf("(%s %s)", Print(n.Fun), Print(n.Arg))
	case *kernel.Ident:
		return n.Name
	case *kernel.Ref:
		return fmt.Sprintf("\\%d", n.Index)
	case *kernel.ErrorSentinel:
		return "<sentinel>"
	case *kernel.SorrySentinel:
		return "<Sorry>"
	default:
		return "<?>"
	}
}

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// colorEnabled reports whether stderr is a real terminal (as opposed
// to piped to a file or a CI log), the usual gate for ANSI output.
func colorEnabled() bool {
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}

// Code wraps an error code for stderr, bold+red on a terminal and
// plain text otherwise.
func Code(code string) string {
	if !colorEnabled() {
		return code
	}
	return ansiBold + ansiRed + code + ansiReset
}

// Expr wraps a rendered expression for stderr the same way.
func Expr(e kernel.Expr) string {
	s := Print(e)
	if !colorEnabled() {
		return s
	}
	return ansiBold + s + ansiReset
}
