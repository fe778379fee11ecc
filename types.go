// types.go
//
// The elysp runtime value model: a closed tagged union over every kind of
// datum the interpreter handles, plus the symbol interner and the structural
// equality and list helpers every other file consumes.
//
// Design notes:
//   - Value is a small struct passed by value; Data holds a pointer for the
//     mutable/identity-bearing variants (Pair, Symbol, Env, Native, Fun) and
//     a plain int64/string for numbers and strings. Copying a Value never
//     copies a cons cell, so mutation through one alias is visible through
//     every other, which the environment chain and the macro machinery rely
//     on.
//   - Symbols are interned: two symbols with the same name are the same
//     *Symbol, and every lookup in the interpreter compares symbols by that
//     pointer identity, never by name.
package elysp

// Tag discriminates the active variant of a Value.
type Tag int

const (
	TNil    Tag = iota // the empty list / false-ish singleton
	TSymbol            // *Symbol (interned)
	TPair              // *Pair (mutable cons cell)
	TNumber            // int64
	TString            // string (immutable payload)
	TEnv               // *Env
	TNative            // *Native (host function)
	TFunc              // *Fun
	TMacro             // *Fun (same shape, expansion-time treatment)
)

// TAny is the "no type check" sentinel accepted by the argument accessors.
const TAny Tag = -1

func (t Tag) String() string {
	switch t {
	case TNil:
		return "nil"
	case TSymbol:
		return "symbol"
	case TPair:
		return "pair"
	case TNumber:
		return "number"
	case TString:
		return "string"
	case TEnv:
		return "environment"
	case TNative:
		return "native function"
	case TFunc:
		return "function"
	case TMacro:
		return "macro"
	}
	return "unknown"
}

// Value is the universal runtime carrier. Tag selects the variant; Data holds
// the payload appropriate for the tag (see the Tag constants).
type Value struct {
	Tag  Tag
	Data any
}

// Nil is the shared empty-list singleton.
var Nil = Value{Tag: TNil}

// Symbol is an interned name. All Symbols come from an Interner; never
// construct one directly.
type Symbol struct {
	Name string
}

// Pair is a mutable cons cell. Both fields may be reassigned after
// construction; lists are not immutable once built.
type Pair struct {
	Car Value
	Cdr Value
}

// NativeFn is the host-function signature. Natives receive the *unevaluated*
// argument list and the calling environment; each primitive decides which
// arguments to evaluate, which is how special forms control evaluation order.
type NativeFn func(ip *Interp, env *Env, argv Value) Value

// Native wraps a host function with its registered name.
type Native struct {
	Name string
	Fn   NativeFn
}

// Fun is an interpreted function or macro: a parameter list of symbols, a
// list of body forms, and the environment captured (by reference) at the
// definition site.
type Fun struct {
	Params Value
	Body   Value
	Env    *Env
}

func Num(n int64) Value  { return Value{Tag: TNumber, Data: n} }
func Str(s string) Value { return Value{Tag: TString, Data: s} }

func Cons(car, cdr Value) Value { return Value{Tag: TPair, Data: &Pair{Car: car, Cdr: cdr}} }

func EnvVal(e *Env) Value { return Value{Tag: TEnv, Data: e} }

func NativeVal(name string, fn NativeFn) Value {
	return Value{Tag: TNative, Data: &Native{Name: name, Fn: fn}}
}

func FuncVal(params, body Value, env *Env) Value {
	return Value{Tag: TFunc, Data: &Fun{Params: params, Body: body, Env: env}}
}

func MacroVal(params, body Value, env *Env) Value {
	return Value{Tag: TMacro, Data: &Fun{Params: params, Body: body, Env: env}}
}

// Typed payload accessors. Callers are expected to have checked Tag first;
// a wrong-tag access is a programming error and panics.

func (v Value) Sym() *Symbol    { return v.Data.(*Symbol) }
func (v Value) Pair() *Pair     { return v.Data.(*Pair) }
func (v Value) Num() int64      { return v.Data.(int64) }
func (v Value) Str() string     { return v.Data.(string) }
func (v Value) Env() *Env       { return v.Data.(*Env) }
func (v Value) Native() *Native { return v.Data.(*Native) }
func (v Value) Fun() *Fun       { return v.Data.(*Fun) }

func (v Value) IsNil() bool { return v.Tag == TNil }

// Same reports object identity: the two values are the very same datum.
// Numbers and strings compare by payload (they carry no identity).
func Same(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	if a.Tag == TNil {
		return true
	}
	return a.Data == b.Data
}

// Equal is the structural equality used by the = primitive: tags must match,
// identity short-circuits, numbers and strings compare by value, pairs
// require equal list length and then deep equality of car and cdr. Every
// other variant is equal only by identity.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	if Same(a, b) {
		return true
	}
	switch a.Tag {
	case TNumber:
		return a.Num() == b.Num()
	case TString:
		return a.Str() == b.Str()
	case TPair:
		if ListLen(a) != ListLen(b) {
			return false
		}
		pa, pb := a.Pair(), b.Pair()
		return Equal(pa.Car, pb.Car) && Equal(pa.Cdr, pb.Cdr)
	default:
		return false
	}
}

// ListLen walks the cdr chain and returns the element count. A dotted tail
// counts as one extra element.
func ListLen(v Value) int {
	n := 0
	for v.Tag == TPair {
		n++
		v = v.Pair().Cdr
	}
	if v.Tag != TNil {
		n++
	}
	return n
}

// ListIndex returns the i-th element of a list, zero-based. The second
// result is false when i is out of range (including negative).
func ListIndex(v Value, i int) (Value, bool) {
	if i < 0 {
		return Nil, false
	}
	for ; v.Tag == TPair; v = v.Pair().Cdr {
		if i == 0 {
			return v.Pair().Car, true
		}
		i--
	}
	return Nil, false
}

// List builds a proper list from its arguments.
func List(items ...Value) Value {
	return listFromSlice(items, Nil)
}

func listFromSlice(items []Value, tail Value) Value {
	out := tail
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// Interner is the symbol table: a process-lifetime, append-only store mapping
// names to their unique Symbol. It is owned by an Interp (not a package
// global) so embedding several interpreters in one process stays sound.
type Interner struct {
	syms map[string]*Symbol
}

func NewInterner() *Interner {
	return &Interner{syms: make(map[string]*Symbol)}
}

// Intern returns the unique symbol Value for name, creating it on first use.
func (in *Interner) Intern(name string) Value {
	sym, ok := in.syms[name]
	if !ok {
		sym = &Symbol{Name: name}
		in.syms[name] = sym
	}
	return Value{Tag: TSymbol, Data: sym}
}
