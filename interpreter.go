// interpreter.go: the elysp evaluator.
//
// The Interp owns the symbol interner plus a handful of cached well-known
// symbols, and carries the module-load stack for import. Evaluation is plain
// mutual recursion on the host stack: macro expansion calls eval, eval calls
// apply, apply calls eval. There is no tail-call flattening; sufficiently
// deep user recursion exhausts the Go stack, which is a documented boundary
// of the design rather than a recoverable error.
//
// The public surface recovers internal *Error panics into ordinary Go
// errors; everything below it raises with failf and never returns partial
// results.
package elysp

import "io"

// Interp is one interpreter instance. It is not safe for concurrent use.
type Interp struct {
	in *Interner

	symT           Value
	symQuote       Value
	symUnquote     Value
	symReaderDebug Value

	loadStack []string // import chain, innermost last
}

func NewInterp() *Interp {
	in := NewInterner()
	return &Interp{
		in:             in,
		symT:           in.Intern("t"),
		symQuote:       in.Intern("quote"),
		symUnquote:     in.Intern("unquote"),
		symReaderDebug: in.Intern("reader-debug"),
	}
}

// Interner exposes the symbol table so hosts can construct Readers that
// share this interpreter's symbol identities.
func (ip *Interp) Interner() *Interner { return ip.in }

// Eval evaluates a single form in env. Interpreter failures come back as a
// *Error; a successful evaluation returns the resulting value.
func (ip *Interp) Eval(env *Env, form Value) (v Value, err error) {
	defer catch(&err)
	return ip.eval(env, form), nil
}

// EvalString reads and evaluates every form in src against env and returns
// the value of the last one.
func (ip *Interp) EvalString(env *Env, src string) (Value, error) {
	r := NewReader(src, ip.in)
	last := Nil
	for {
		form, err := r.Read()
		if err == io.EOF {
			return last, nil
		}
		if err != nil {
			return Nil, err
		}
		last, err = ip.Eval(env, form)
		if err != nil {
			return Nil, err
		}
	}
}

func (ip *Interp) eval(env *Env, v Value) Value {
	for {
		switch v.Tag {
		case TSymbol:
			bound, ok := env.Lookup(v)
			if !ok {
				failf(ErrUnbound, "%s", v.Sym().Name)
			}
			return bound

		case TPair:
			// Expansion first. The no-expansion case is detected by
			// reference: macroExpand returns its input unchanged when the
			// head is not a macro.
			expanded := ip.macroExpand(env, v)
			if !Same(expanded, v) {
				v = expanded
				continue
			}
			p := v.Pair()
			fn := ip.eval(env, p.Car)
			return ip.apply(env, fn, p.Cdr)

		default:
			// Nil, numbers, strings, environments, natives, functions and
			// macros evaluate to themselves.
			return v
		}
	}
}

// macroExpand performs one expansion step. When the head of the pair is a
// symbol bound to a macro, the macro's parameters are bound to the
// *unevaluated* argument forms and its body is evaluated; the last body
// form's value is the expansion. Otherwise the input is returned unchanged
// (same object, so callers can detect it).
func (ip *Interp) macroExpand(env *Env, v Value) Value {
	p := v.Pair()
	if p.Car.Tag != TSymbol {
		return v
	}
	bound, ok := env.Lookup(p.Car)
	if !ok || bound.Tag != TMacro {
		return v
	}
	m := bound.Fun()
	return ip.evalBody(pushEnv(m.Env, m.Params, p.Cdr), m.Body)
}

// apply dispatches a call on the callee's variant.
func (ip *Interp) apply(env *Env, fn Value, argv Value) Value {
	switch fn.Tag {
	case TNative:
		// Natives receive the unevaluated argument list and the calling
		// environment; each decides what to evaluate.
		return fn.Native().Fn(ip, env, argv)

	case TFunc:
		f := fn.Fun()
		callEnv := pushEnv(f.Env, f.Params, ip.evalList(env, argv))
		return ip.evalBody(callEnv, f.Body)

	case TPair:
		// A literal list is callable as indexed access: one numeric
		// argument, zero-based, Nil when out of range.
		checkArity("list index", argv, 1, 1)
		idx := ip.evalArg(env, argv, 0, TNumber)
		if el, ok := ListIndex(fn, int(idx.Num())); ok {
			return el
		}
		return Nil

	default:
		failf(ErrNotCallable, "cannot call %s %s", fn.Tag, Format(fn))
		return Nil
	}
}

// evalList evaluates every element of a list left to right, preserving a
// dotted tail (which is evaluated as well).
func (ip *Interp) evalList(env *Env, v Value) Value {
	var items []Value
	for ; v.Tag == TPair; v = v.Pair().Cdr {
		items = append(items, ip.eval(env, v.Pair().Car))
	}
	tail := Nil
	if v.Tag != TNil {
		tail = ip.eval(env, v)
	}
	return listFromSlice(items, tail)
}

// evalBody evaluates a list of body forms in sequence and returns the value
// of the last one (Nil for an empty body).
func (ip *Interp) evalBody(env *Env, body Value) Value {
	result := Nil
	for b := body; b.Tag == TPair; b = b.Pair().Cdr {
		result = ip.eval(env, b.Pair().Car)
	}
	return result
}

// evalUnquotes gives quote its implicit quasiquote semantics: any sub-list
// whose head is the unquote symbol is evaluated immediately and its result
// takes the form's place; all other structure passes through unevaluated.
// Pairs are rebuilt rather than mutated so a macro body survives repeated
// expansion.
func (ip *Interp) evalUnquotes(env *Env, v Value) Value {
	if ip.isUnquoteForm(v) {
		rest := v.Pair().Cdr
		if rest.Tag != TPair || rest.Pair().Cdr.Tag != TNil {
			failf(ErrMalformed, "unquote expects exactly one form: %s", Format(v))
		}
		return ip.eval(env, rest.Pair().Car)
	}
	if v.Tag != TPair {
		return v
	}
	p := v.Pair()
	return Cons(ip.evalUnquotes(env, p.Car), ip.evalUnquotes(env, p.Cdr))
}

func (ip *Interp) isUnquoteForm(v Value) bool {
	return v.Tag == TPair && Same(v.Pair().Car, ip.symUnquote)
}

// isTrue implements the language's truth test: only the t symbol, by
// identity, is true. Everything else is false, Nil included.
func (ip *Interp) isTrue(v Value) bool {
	return Same(v, ip.symT)
}

func (ip *Interp) boolVal(b bool) Value {
	if b {
		return ip.symT
	}
	return Nil
}

// checkArity validates a primitive call's argument count. max < 0 means no
// maximum.
func checkArity(name string, argv Value, min, max int) {
	n := ListLen(argv)
	if min == max {
		if n != min {
			failf(ErrArity, "%s expects %d argument(s), got %d", name, min, n)
		}
		return
	}
	if n < min {
		failf(ErrArity, "%s expects at least %d argument(s), got %d", name, min, n)
	}
	if max >= 0 && n > max {
		failf(ErrArity, "%s expects at most %d argument(s), got %d", name, max, n)
	}
}

// arg fetches the i-th argument form without evaluating it.
func arg(argv Value, i int) Value {
	v, ok := ListIndex(argv, i)
	if !ok {
		failf(ErrArity, "missing argument %d", i)
	}
	return v
}

// evalArg evaluates the i-th argument on demand and checks its tag unless
// want is TAny.
func (ip *Interp) evalArg(env *Env, argv Value, i int, want Tag) Value {
	v := ip.eval(env, arg(argv, i))
	if want != TAny && v.Tag != want {
		failf(ErrType, "expected %s, got %s", want, v.Tag)
	}
	return v
}
