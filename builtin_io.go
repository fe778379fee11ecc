// builtin_io.go
//
// The primitives with side effects outside the interpreter: print writes to
// stdout, import pulls another source file's bindings into the calling
// environment (see modules.go for resolution and merging).
package elysp

import (
	"fmt"
	"strings"
)

func registerIOBuiltins(ip *Interp, env *Env) {
	// (print e...) -> write the plain rendering of each argument, space
	// separated, with a trailing newline; returns the last value.
	register(ip, env, "print", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("print", argv, 1, -1)
		var parts []string
		last := Nil
		for a := argv; a.Tag == TPair; a = a.Pair().Cdr {
			last = ip.eval(env, a.Pair().Car)
			parts = append(parts, Display(last))
		}
		fmt.Println(strings.Join(parts, " "))
		return last
	})

	// (import "path") -> evaluate the module and merge its top-level
	// bindings into the calling environment.
	register(ip, env, "import", func(ip *Interp, env *Env, argv Value) Value {
		checkArity("import", argv, 1, 1)
		return ip.importFile(env, ip.evalArg(env, argv, 0, TString).Str())
	})
}
