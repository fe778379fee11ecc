// runtime.go
//
// Assembly of the default environment: the root frame with nil, t and
// reader-debug, the primitive library, and the bundled prelude evaluated on
// top; prelude definitions become ordinary global bindings
// indistinguishable from user defines. import builds a second full default
// environment through the same path.
package elysp

import "fmt"

// NewRootEnv returns a freshly built default environment: constants,
// primitives, then the prelude.
func (ip *Interp) NewRootEnv() *Env {
	env := NewEnv(nil)

	// t is a symbol bound to itself: the canonical "true" sentinel.
	env.Define(ip.in.Intern("nil"), Nil)
	env.Define(ip.symT, ip.symT)
	env.Define(ip.symReaderDebug, Nil)

	registerCoreBuiltins(ip, env)
	registerIOBuiltins(ip, env)

	if _, err := ip.EvalString(env, preludeSource); err != nil {
		// The prelude ships with the binary; failing to evaluate it is a
		// build defect, not a user error.
		panic(fmt.Sprintf("elysp: broken prelude: %v", err))
	}
	return env
}

// ReaderDebug reports whether the reader-debug binding currently holds t.
// The host loop consults it to echo each parsed form before evaluation.
func (ip *Interp) ReaderDebug(env *Env) bool {
	v, ok := env.Lookup(ip.symReaderDebug)
	return ok && ip.isTrue(v)
}

// register installs a native function under name in env.
func register(ip *Interp, env *Env, name string, fn NativeFn) {
	env.Define(ip.in.Intern(name), NativeVal(name, fn))
}
