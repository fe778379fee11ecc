// builtin_core.go
//
// The fixed primitive library. Every native receives the *unevaluated*
// argument list and the calling environment and decides for itself which
// arguments to evaluate; that is the whole special-form mechanism: quote,
// if and define are ordinary natives that simply decline to evaluate some of
// their arguments.
package elysp

import "strings"

func registerCoreBuiltins(ip *Interp, env *Env) {
	// (fn (params) body...) -> closure over the defining environment
	register(ip, env, "fn", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("fn", argv, 1, -1)
		return FuncVal(paramList("fn", arg(argv, 0)), argv.Pair().Cdr, env)
	})

	// (defn name (params) body...) -> define name to a new function
	register(ip, env, "defn", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("defn", argv, 2, -1)
		name := bindingName("defn", arg(argv, 0))
		f := FuncVal(paramList("defn", arg(argv, 1)), argv.Pair().Cdr.Pair().Cdr, env)
		env.Set(name, f)
		return f
	})

	// (define sym expr) -> bind sym to the evaluated expr
	register(ip, env, "define", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("define", argv, 2, 2)
		name := bindingName("define", arg(argv, 0))
		v := ip.eval(env, arg(argv, 1))
		env.Set(name, v)
		return v
	})

	// (defmacro name (params) body...) -> define name to a new macro.
	// Every parameter must be a symbol.
	register(ip, env, "defmacro", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("defmacro", argv, 2, -1)
		name := bindingName("defmacro", arg(argv, 0))
		params := paramList("defmacro", arg(argv, 1))
		for p := params; p.Tag == TPair; p = p.Pair().Cdr {
			if p.Pair().Car.Tag != TSymbol {
				failf(ErrMalformed, "defmacro parameter is not a symbol: %s", Format(p.Pair().Car))
			}
		}
		m := MacroVal(params, argv.Pair().Cdr.Pair().Cdr, env)
		env.Set(name, m)
		return m
	})

	// (quote expr) -> expr with embedded (unquote ...) forms resolved
	register(ip, env, "quote", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("quote", argv, 1, 1)
		return ip.evalUnquotes(env, arg(argv, 0))
	})

	// (unquote expr) -> evaluated expr; outside a quote it is plain evaluation
	register(ip, env, "unquote", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("unquote", argv, 1, 1)
		return ip.eval(env, arg(argv, 0))
	})

	// (list e...) -> fresh list of the evaluated elements
	register(ip, env, "list", func(ip *Interp, env *Env, argv Value) Value {
		return ip.evalList(env, argv)
	})

	// (cons a b) -> fresh pair
	register(ip, env, "cons", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("cons", argv, 2, 2)
		return Cons(ip.evalArg(env, argv, 0, TAny), ip.evalArg(env, argv, 1, TAny))
	})

	register(ip, env, "car", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("car", argv, 1, 1)
		return ip.evalArg(env, argv, 0, TPair).Pair().Car
	})

	register(ip, env, "cdr", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("cdr", argv, 1, 1)
		return ip.evalArg(env, argv, 0, TPair).Pair().Cdr
	})

	// (if cond then else?) -> branch strictly on identity with t; any other
	// condition value, nil included, takes the else branch. A missing else
	// evaluates to nil.
	register(ip, env, "if", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("if", argv, 2, 3)
		if ip.isTrue(ip.eval(env, arg(argv, 0))) {
			return ip.eval(env, arg(argv, 1))
		}
		if ListLen(argv) == 3 {
			return ip.eval(env, arg(argv, 2))
		}
		return Nil
	})

	// (= a b) -> t when structurally equal, else nil
	register(ip, env, "=", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("=", argv, 2, 2)
		a := ip.evalArg(env, argv, 0, TAny)
		b := ip.evalArg(env, argv, 1, TAny)
		return ip.boolVal(Equal(a, b))
	})

	// (string e...) -> concatenation of each argument's plain rendering;
	// string payloads are spliced in bare.
	register(ip, env, "string", func(ip *Interp, env *Env, argv Value) Value {
		var b strings.Builder
		for a := argv; a.Tag == TPair; a = a.Pair().Cdr {
			b.WriteString(Display(ip.eval(env, a.Pair().Car)))
		}
		return Str(b.String())
	})

	register(ip, env, "+", arith("+", func(a, b int64) int64 { return a + b }))
	register(ip, env, "-", arith("-", func(a, b int64) int64 { return a - b }))
	register(ip, env, "*", arith("*", func(a, b int64) int64 { return a * b }))
	register(ip, env, "/", arith("/", func(a, b int64) int64 {
		if b == 0 {
			failf(ErrUser, "division by zero")
		}
		return a / b
	}))

	// (error msg) -> raise a user error
	register(ip, env, "error", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("error", argv, 1, 1)
		failf(ErrUser, "%s", ip.evalArg(env, argv, 0, TString).Str())
		return Nil
	})

	// (macex form) -> one macro-expansion step, not further evaluated
	register(ip, env, "macex", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("macex", argv, 1, 1)
		form := arg(argv, 0)
		if form.Tag != TPair {
			return form
		}
		return ip.macroExpand(env, form)
	})

	// (env) -> the calling environment
	register(ip, env, "env", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("env", argv, 0, 0)
		return EnvVal(env)
	})

	// (debug) -> flip the reader-debug binding between t and nil
	register(ip, env, "debug", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("debug", argv, 0, 0)
		next := ip.boolVal(!ip.ReaderDebug(env))
		env.Set(ip.symReaderDebug, next)
		return next
	})
}

// arith wraps a binary integer operation as a native with strict numeric
// operands.
func arith(name string, op func(a, b int64) int64) NativeFn {
	return func(ip *Interp, env *Env, argv Value) Value {
		checkArity(name, argv, 2, 2)
		a := ip.evalArg(env, argv, 0, TNumber)
		b := ip.evalArg(env, argv, 1, TNumber)
		return Num(op(a.Num(), b.Num()))
	}
}

// bindingName validates the name position of a defining form.
func bindingName(form string, v Value) Value {
	if v.Tag != TSymbol {
		failf(ErrMalformed, "%s name must be a symbol, got %s", form, v.Tag)
	}
	return v
}

// paramList validates the parameter-list position of a defining form. The
// list's elements are checked at binding time by pushEnv; defmacro checks
// them eagerly on top of this.
func paramList(form string, v Value) Value {
	if v.Tag != TNil && v.Tag != TPair {
		failf(ErrMalformed, "%s parameter list must be a list, got %s", form, v.Tag)
	}
	return v
}
