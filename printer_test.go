package elysp

import (
	"strings"
	"testing"
)

func Test_Printer_Scalars(t *testing.T) {
	in := NewInterner()
	wantRender(t, Nil, "nil")
	wantRender(t, Num(42), "42")
	wantRender(t, Str("hey"), `"hey"`)
	wantRender(t, in.Intern("sym"), "sym")
}

func Test_Printer_Lists(t *testing.T) {
	in := NewInterner()
	wantRender(t, List(in.Intern("a"), in.Intern("b")), "(a b)")
	wantRender(t, Cons(Num(1), Num(2)), "(1 . 2)")
	wantRender(t, Cons(Num(1), Cons(Num(2), Num(3))), "(1 2 . 3)")
	wantRender(t, List(List(Num(1)), Num(2)), "((1) 2)")
}

func Test_Printer_ElidesAfterSixElements(t *testing.T) {
	seven := List(Num(1), Num(2), Num(3), Num(4), Num(5), Num(6), Num(7))
	wantRender(t, seven, "(1 2 3 4 5 6 ...)")

	six := List(Num(1), Num(2), Num(3), Num(4), Num(5), Num(6))
	wantRender(t, six, "(1 2 3 4 5 6)")

	long := List(Num(1), Num(2), Num(3), Num(4), Num(5), Num(6), Num(7), Num(8), Num(9))
	wantRender(t, long, "(1 2 3 4 5 6 ...)")
}

func Test_Printer_EnvironmentRendersAsVarsList(t *testing.T) {
	ip := NewInterp()
	parent := NewEnv(nil)
	parent.Define(ip.Interner().Intern("hidden"), Num(0))
	env := NewEnv(parent)
	env.Define(ip.Interner().Intern("x"), Num(1))
	env.Define(ip.Interner().Intern("y"), Num(2))

	out := Format(EnvVal(env))
	if out != "((y . 2) (x . 1))" {
		t.Fatalf("want frame bindings newest first, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatal("the parent link must never be printed")
	}
}

func Test_Printer_OpaqueVariants(t *testing.T) {
	env := NewEnv(nil)
	wantRender(t, NativeVal("cons", nil), "#<native cons>")
	wantRender(t, FuncVal(Nil, Nil, env), "#<function>")
	wantRender(t, MacroVal(Nil, Nil, env), "#<macro>")
}

func Test_Printer_ColorWrapsByVariant(t *testing.T) {
	in := NewInterner()
	if got := FormatColor(Num(5)); got != colorYellow+"5"+colorReset {
		t.Fatalf("number color wrong: %q", got)
	}
	if got := FormatColor(in.Intern("x")); got != colorBlue+"x"+colorReset {
		t.Fatalf("symbol color wrong: %q", got)
	}
	if got := FormatColor(Str("s")); got != colorGreen+`"s"`+colorReset {
		t.Fatalf("string color wrong: %q", got)
	}
	// Structure stays undecorated; only the atoms are painted.
	got := FormatColor(List(Num(1)))
	if !strings.HasPrefix(got, "(") || !strings.HasSuffix(got, ")") {
		t.Fatalf("list parens must be plain: %q", got)
	}
}

func Test_Printer_PlainOutputHasNoEscapes(t *testing.T) {
	if strings.Contains(Format(List(Num(1), Str("s"))), "\x1b") {
		t.Fatal("plain renderer must not emit escape sequences")
	}
}

func Test_Printer_DisplayUnquotesStrings(t *testing.T) {
	if Display(Str("raw")) != "raw" {
		t.Fatal("display must render the bare string payload")
	}
	if Display(Num(7)) != "7" {
		t.Fatal("display of non-strings matches Format")
	}
}
