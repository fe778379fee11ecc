// prelude.go
//
// The bundled standard prelude, compiled into the binary. NewRootEnv
// evaluates it after installing the primitives, so everything it defines is
// an ordinary global binding.
package elysp

import _ "embed"

//go:embed prelude.lisp
var preludeSource string
