package elysp

import "testing"

func Test_Env_DefineAndLookup(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("x")

	env := NewEnv(nil)
	if _, ok := env.Lookup(sym); ok {
		t.Fatal("lookup in an empty env must miss")
	}
	env.Define(sym, Num(1))
	v, ok := env.Lookup(sym)
	if !ok {
		t.Fatal("lookup must find a defined binding")
	}
	wantNum(t, v, 1)
}

func Test_Env_LookupDistinguishesBoundNil(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("maybe")

	env := NewEnv(nil)
	env.Define(sym, Nil)
	v, ok := env.Lookup(sym)
	if !ok {
		t.Fatal("a binding holding nil is still a binding")
	}
	wantNil(t, v)
}

func Test_Env_InnerFrameShadowsOuter(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("x")

	outer := NewEnv(nil)
	outer.Define(sym, Num(1))
	inner := NewEnv(outer)
	inner.Define(sym, Num(2))

	v, _ := inner.Lookup(sym)
	wantNum(t, v, 2)
	v, _ = outer.Lookup(sym)
	wantNum(t, v, 1)
}

func Test_Env_DuplicateDefinesMostRecentWins(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("x")

	env := NewEnv(nil)
	env.Define(sym, Num(1))
	env.Define(sym, Num(2))
	v, _ := env.Lookup(sym)
	wantNum(t, v, 2)
}

func Test_Env_SetMutatesNearestHoldingFrame(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("x")

	outer := NewEnv(nil)
	outer.Define(sym, Num(1))
	inner := NewEnv(outer)

	inner.Set(sym, Num(9))
	v, _ := outer.Lookup(sym)
	wantNum(t, v, 9)
	if inner.Vars().Tag != TNil {
		t.Fatal("set must not create a binding in the inner frame when an outer one exists")
	}
}

func Test_Env_SetUnboundDefinesLocally(t *testing.T) {
	ip := NewInterp()
	sym := ip.Interner().Intern("fresh")

	outer := NewEnv(nil)
	inner := NewEnv(outer)
	inner.Set(sym, Num(5))

	if _, ok := inner.Lookup(sym); !ok {
		t.Fatal("set of an unbound name must define it")
	}
	// The fallback lands in the frame set was called on, not the root.
	if outer.Vars().Tag != TNil {
		t.Fatal("fallback define must not touch the outer frame")
	}
	wantRender(t, inner.Vars(), "((fresh . 5))")
}

func Test_Env_BindingsCompareByIdentityNotName(t *testing.T) {
	ip := NewInterp()
	other := NewInterner() // a foreign interner with its own "x"
	mine := ip.Interner().Intern("x")
	theirs := other.Intern("x")

	env := NewEnv(nil)
	env.Define(mine, Num(1))
	if _, ok := env.Lookup(theirs); ok {
		t.Fatal("a same-named symbol from another interner must not resolve")
	}
}

func Test_Env_PushEnvBindsPairwise(t *testing.T) {
	ip, _ := newTestRuntime()
	params := mustRead(t, ip, "(a b)")
	args := List(Num(1), Num(2))

	child := pushEnv(nil, params, args)
	v, _ := child.Lookup(ip.Interner().Intern("a"))
	wantNum(t, v, 1)
	v, _ = child.Lookup(ip.Interner().Intern("b"))
	wantNum(t, v, 2)
}

func Test_Env_PushEnvArityMismatch(t *testing.T) {
	ip, _ := newTestRuntime()
	params := mustRead(t, ip, "(a b)")

	var err error
	func() {
		defer catch(&err)
		pushEnv(nil, params, List(Num(1)))
	}()
	wantErrKind(t, err, ErrArity)
}

func Test_Env_PushEnvRejectsDottedArgsForProperParams(t *testing.T) {
	ip, _ := newTestRuntime()
	params := mustRead(t, ip, "(x y)")

	var err error
	func() {
		defer catch(&err)
		pushEnv(nil, params, Cons(Num(1), Num(2)))
	}()
	wantErrKind(t, err, ErrArity)
}

func Test_Env_PushEnvRejectsNonSymbolParamTail(t *testing.T) {
	ip, _ := newTestRuntime()
	params := mustRead(t, ip, "(x . 5)")

	var err error
	func() {
		defer catch(&err)
		pushEnv(nil, params, List(Num(1), Num(2)))
	}()
	wantErrKind(t, err, ErrMalformed)
}

func Test_Env_PushEnvCountsDottedTailAsOne(t *testing.T) {
	ip, _ := newTestRuntime()
	params := mustRead(t, ip, "(a . rest)")

	// (a . rest) has length 2: two proper arguments match it.
	child := pushEnv(nil, params, List(Num(1), Num(2)))
	v, _ := child.Lookup(ip.Interner().Intern("a"))
	wantNum(t, v, 1)

	var err error
	func() {
		defer catch(&err)
		pushEnv(nil, params, List(Num(1), Num(2), Num(3)))
	}()
	wantErrKind(t, err, ErrArity)
}
