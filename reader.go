// reader.go
//
// The elysp reader: a single-pass recursive-descent parser over raw source
// text, character-addressed by position, with no tokenization stage. It
// produces exactly the Value graph the evaluator consumes.
//
// Grammar, informally:
//
//	form    = number | list | vector | quote | unquote | string | symbol
//	number  = digit+                        (base-10 integer)
//	list    = "(" form* [ "." form ] ")"    (empty () reads as nil)
//	vector  = "[" form* "]"                 (sugar for (list ...))
//	quote   = "'" form                      (sugar for (quote form))
//	unquote = "," form                      (sugar for (unquote form))
//	string  = '"' <anything but '"'> '"'    (no escape processing)
//	symbol  = symchar+ with symchar in [a-z] - + = / * ! ?
//
// '#' starts a line comment unless immediately followed by '-'; "#-" parses
// and discards exactly one complete form, then reads and returns the next
// one transparently, so an elision can sit in front of any element.
package elysp

import (
	"fmt"
	"io"
	"strconv"
)

// Reader reads successive top-level forms from src, interning symbols
// through in.
type Reader struct {
	src string
	pos int
	in  *Interner

	symList    Value
	symQuote   Value
	symUnquote Value
}

func NewReader(src string, in *Interner) *Reader {
	return &Reader{
		src:        src,
		pos:        0,
		in:         in,
		symList:    in.Intern("list"),
		symQuote:   in.Intern("quote"),
		symUnquote: in.Intern("unquote"),
	}
}

// Read returns the next top-level form, or io.EOF at a clean end of input.
// Syntax errors are returned as *Error with a caret snippet.
func (r *Reader) Read() (v Value, err error) {
	defer catch(&err)
	r.skipBlank()
	if r.pos >= len(r.src) {
		return Nil, io.EOF
	}
	return r.readForm(), nil
}

// skipBlank consumes whitespace and '#' line comments. It stops in front of
// "#-", which is form-level syntax, not a comment.
func (r *Reader) skipBlank() {
	for r.pos < len(r.src) {
		switch c := r.src[r.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			r.pos++
		case c == '#' && !(r.pos+1 < len(r.src) && r.src[r.pos+1] == '-'):
			for r.pos < len(r.src) && r.src[r.pos] != '\n' {
				r.pos++
			}
		default:
			return
		}
	}
}

func (r *Reader) readForm() Value {
	r.skipBlank()
	for r.pos+1 < len(r.src) && r.src[r.pos] == '#' && r.src[r.pos+1] == '-' {
		// "#-": parse and discard exactly one form, then keep reading.
		r.pos += 2
		r.readForm()
		r.skipBlank()
	}
	if r.pos >= len(r.src) {
		r.syntaxError("unexpected end of input")
	}

	c := r.src[r.pos]
	switch {
	case c >= '0' && c <= '9':
		return r.readNumber()
	case c == '(':
		r.pos++
		return r.readList()
	case c == '[':
		r.pos++
		return r.readVector()
	case c == '\'':
		r.pos++
		return List(r.symQuote, r.readForm())
	case c == ',':
		r.pos++
		return List(r.symUnquote, r.readForm())
	case c == '"':
		return r.readString()
	case isSymbolChar(c):
		return r.readSymbol()
	}
	r.syntaxError("unexpected character %q", c)
	return Nil
}

func (r *Reader) readList() Value {
	var items []Value
	tail := Nil
	for {
		r.skipBlank()
		if r.pos >= len(r.src) {
			r.syntaxError("unexpected end of input in list")
		}
		c := r.src[r.pos]
		if c == ')' {
			r.pos++
			break
		}
		if c == '.' && len(items) > 0 {
			r.pos++
			tail = r.readForm()
			r.skipBlank()
			r.consume(')')
			break
		}
		items = append(items, r.readForm())
	}
	return listFromSlice(items, tail)
}

// readVector desugars [e1 e2 ...] into (list e1 e2 ...), a use-site call to
// the list primitive.
func (r *Reader) readVector() Value {
	items := []Value{r.symList}
	for {
		r.skipBlank()
		if r.pos >= len(r.src) {
			r.syntaxError("unexpected end of input in vector")
		}
		if r.src[r.pos] == ']' {
			r.pos++
			break
		}
		items = append(items, r.readForm())
	}
	return listFromSlice(items, Nil)
}

func (r *Reader) readNumber() Value {
	start := r.pos
	for r.pos < len(r.src) && r.src[r.pos] >= '0' && r.src[r.pos] <= '9' {
		r.pos++
	}
	n, err := strconv.ParseInt(r.src[start:r.pos], 10, 64)
	if err != nil {
		r.syntaxError("number out of range: %s", r.src[start:r.pos])
	}
	return Num(n)
}

func (r *Reader) readString() Value {
	r.pos++ // opening quote
	start := r.pos
	for r.pos < len(r.src) {
		if r.src[r.pos] == '"' {
			s := r.src[start:r.pos]
			r.pos++
			return Str(s)
		}
		r.pos++
	}
	r.syntaxError("unterminated string")
	return Nil
}

func (r *Reader) readSymbol() Value {
	start := r.pos
	for r.pos < len(r.src) && isSymbolChar(r.src[r.pos]) {
		r.pos++
	}
	return r.in.Intern(r.src[start:r.pos])
}

func isSymbolChar(c byte) bool {
	if c >= 'a' && c <= 'z' {
		return true
	}
	switch c {
	case '-', '+', '=', '/', '*', '!', '?':
		return true
	}
	return false
}

// consume advances past want, failing with the expected and actual
// characters when the next character differs.
func (r *Reader) consume(want byte) {
	if r.pos >= len(r.src) {
		r.syntaxError("expected %q, got end of input", want)
	}
	if got := r.src[r.pos]; got != want {
		r.syntaxError("expected %q, got %q", want, got)
	}
	r.pos++
}

func (r *Reader) syntaxError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	line, col := lineCol(r.src, r.pos)
	panic(&Error{
		Kind:    ErrSyntax,
		Msg:     msg,
		Line:    line,
		Col:     col,
		Snippet: snippet(r.src, "syntax error", line, col, msg),
	})
}
