package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"drift/internal/diag"
	"drift/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, fs, d, opts)
	}
}

func writeDiagnostic(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	sev := d.Severity.String()
	if opts.Color {
		switch d.Severity {
		case diag.SevError:
			sev = sevErrorColor.Sprint(sev)
		case diag.SevWarning:
			sev = sevWarningColor.Sprint(sev)
		default:
			sev = sevInfoColor.Sprint(sev)
		}
	}

	// диагностики без привязки к файлу (I/O и т.п.)
	if fs == nil || int(d.Primary.File) >= fs.Len() {
		fmt.Fprintf(w, "%s %s: %s\n", sev, d.Code.ID(), d.Message)
		return
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	writeContext(w, f, start, end, opts)

	for _, n := range d.Notes {
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "%s:%d:%d: note: %s\n", f.Path, ns.Line, ns.Col, n.Msg)
	}
}

// writeContext печатает несколько строк исходника и подчёркивание ^~~~
// под спаном. Ширины считаем через runewidth, чтобы не разъезжалось на
// не-ASCII содержимом строк.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	first := uint32(1)
	if ctx := uint32(opts.Context); start.Line > ctx {
		first = start.Line - ctx
	}

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, "%5d | %s\n", ln, f.GetLine(ln))
	}

	line := f.GetLine(start.Line)
	if line == "" && start.Col <= 1 {
		return
	}

	runes := []rune(line)
	col := int(start.Col) - 1
	if col > len(runes) {
		col = len(runes)
	}
	pad := runewidth.StringWidth(string(runes[:col]))

	// подчёркиваем до конца спана, но не дальше конца строки
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		to := int(end.Col) - 1
		if to > len(runes) {
			to = len(runes)
		}
		if to > col {
			width = runewidth.StringWidth(string(runes[col:to]))
		}
	} else if end.Line > start.Line {
		width = runewidth.StringWidth(string(runes[col:]))
	}
	if width < 1 {
		width = 1
	}

	fmt.Fprintf(w, "      | %s^%s\n",
		strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}
