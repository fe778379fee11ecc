// printer.go
//
// Two textual renderings of a Value: Format is the plain renderer used by
// print and string; FormatColor is the decorated renderer used by the
// interactive loop and the reader-debug echo. Both elide list contents after
// six visible elements and render dotted tails with a literal ".".
// Environments render as their binding list; the parent link is never
// printed.
package elysp

import (
	"strconv"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[94m"
)

// maxListItems is the number of list elements rendered before eliding.
const maxListItems = 6

// Format renders v without decoration. Reading the result of a short form
// back yields a structurally equal value.
func Format(v Value) string {
	var b strings.Builder
	render(&b, v, false)
	return b.String()
}

// FormatColor renders v with terminal colors: symbols blue, strings green,
// numbers yellow.
func FormatColor(v Value) string {
	var b strings.Builder
	render(&b, v, true)
	return b.String()
}

// Display renders v for user-visible output: a string renders as its bare
// payload, everything else as Format. The string and print primitives build
// on this.
func Display(v Value) string {
	if v.Tag == TString {
		return v.Str()
	}
	return Format(v)
}

func render(b *strings.Builder, v Value, color bool) {
	switch v.Tag {
	case TNil:
		b.WriteString("nil")
	case TSymbol:
		paint(b, v.Sym().Name, colorBlue, color)
	case TNumber:
		paint(b, strconv.FormatInt(v.Num(), 10), colorYellow, color)
	case TString:
		paint(b, "\""+v.Str()+"\"", colorGreen, color)
	case TPair:
		renderList(b, v, color)
	case TEnv:
		render(b, v.Env().Vars(), color)
	case TNative:
		b.WriteString("#<native " + v.Native().Name + ">")
	case TFunc:
		b.WriteString("#<function>")
	case TMacro:
		b.WriteString("#<macro>")
	}
}

func renderList(b *strings.Builder, v Value, color bool) {
	b.WriteByte('(')
	p := v
	for i := 0; ; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == maxListItems {
			b.WriteString("...")
			break
		}
		render(b, p.Pair().Car, color)
		cdr := p.Pair().Cdr
		if cdr.Tag == TNil {
			break
		}
		if cdr.Tag != TPair {
			b.WriteString(" . ")
			render(b, cdr, color)
			break
		}
		p = cdr
	}
	b.WriteByte(')')
}

func paint(b *strings.Builder, s, color string, on bool) {
	if !on {
		b.WriteString(s)
		return
	}
	b.WriteString(color)
	b.WriteString(s)
	b.WriteString(colorReset)
}
