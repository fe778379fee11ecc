// env.go
//
// Lexical environments. A frame holds its bindings as an association list
// built from live Pair cells, ((sym . val) (sym . val) ...), and links to
// its parent through up. The assoc-list representation is load-bearing: Set
// mutates the binding Pair in place (visible through every alias of the
// frame), and environments print as their binding list.
package elysp

// Env is one frame of the lexical chain. vars is a Value so the frame itself
// is ordinary interpreter data.
type Env struct {
	vars Value
	up   *Env
}

func NewEnv(up *Env) *Env {
	return &Env{vars: Nil, up: up}
}

// Vars returns the frame's binding list. The renderer and import walk it.
func (e *Env) Vars() Value { return e.vars }

// Define prepends a fresh binding to this frame. It never checks for an
// existing binding: duplicates shadow, and lookup walks head-first so the
// most recent wins.
func (e *Env) Define(sym, v Value) {
	e.vars = Cons(Cons(sym, v), e.vars)
}

// Set walks this frame and each ancestor for a binding of sym (identity
// compare) and mutates the first match in place. When no frame in the chain
// holds the symbol, the binding is created in this frame: assignment to an
// unbound name defines it locally, not at the root.
func (e *Env) Set(sym, v Value) {
	for f := e; f != nil; f = f.up {
		for b := f.vars; b.Tag == TPair; b = b.Pair().Cdr {
			cell := b.Pair().Car.Pair()
			if Same(cell.Car, sym) {
				cell.Cdr = v
				return
			}
		}
	}
	e.Define(sym, v)
}

// Lookup resolves sym through the chain. The found flag distinguishes a
// missing binding from one legitimately bound to Nil.
func (e *Env) Lookup(sym Value) (Value, bool) {
	for f := e; f != nil; f = f.up {
		for b := f.vars; b.Tag == TPair; b = b.Pair().Cdr {
			cell := b.Pair().Car.Pair()
			if Same(cell.Car, sym) {
				return cell.Cdr, true
			}
		}
	}
	return Nil, false
}

// pushEnv builds a fresh child of up binding each parameter symbol pairwise
// to the corresponding argument. The counts must match exactly (a dotted
// tail counts as one extra element on either side); there is no variadic
// parameter support.
func pushEnv(up *Env, params, args Value) *Env {
	if want, got := ListLen(params), ListLen(args); want != got {
		failf(ErrArity, "call expects %d argument(s), got %d", want, got)
	}
	child := NewEnv(up)
	p, a := params, args
	for p.Tag == TPair {
		sym := p.Pair().Car
		if sym.Tag != TSymbol {
			failf(ErrMalformed, "parameter is not a symbol: %s", Format(sym))
		}
		if a.Tag != TPair {
			// Same length but different shape: a dotted argument tail has
			// run out of proper elements for the remaining parameters.
			failf(ErrArity, "dotted argument tail does not match the parameter list")
		}
		child.Define(sym, a.Pair().Car)
		p, a = p.Pair().Cdr, a.Pair().Cdr
	}
	switch p.Tag {
	case TNil:
	case TSymbol:
		// Dotted parameter tail: one extra binding for the argument tail.
		child.Define(p, a)
	default:
		failf(ErrMalformed, "parameter list tail is not a symbol: %s", Format(p))
	}
	return child
}
