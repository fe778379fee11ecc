// modules.go: the elysp module loader.
//
// A module is an ordinary source file. (import "spec") resolves the spec to
// a file, evaluates it in a child of a *freshly built* default environment
// (its own primitives and prelude, untouched by the importer's state), and
// then copies every top-level binding of that module frame into the
// importing environment. The merge is flat: no aliasing, no selective
// import, later imports shadow earlier bindings of the same name.
//
// Resolution order for a relative spec:
//  1. the directory of the importing file (when the import happens inside
//     another module),
//  2. the current working directory,
//  3. each entry of ELYSP_PATH.
//
// A spec without an extension tries ".lisp" first, then the bare name.
// Import cycles are detected and reported as an A -> B -> A chain. Only the
// load stack is tracked; successful loads are not cached, so importing a
// module twice evaluates it twice.
package elysp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const moduleExt = ".lisp"

func (ip *Interp) importFile(env *Env, spec string) Value {
	path, err := resolveModule(spec, ip.currentImporter())
	if err != nil {
		failf(ErrUser, "%s", err)
	}
	for _, active := range ip.loadStack {
		if active == path {
			failf(ErrUser, "import cycle detected: %s",
				strings.Join(append(ip.loadStack, path), " -> "))
		}
	}

	src, rerr := os.ReadFile(path)
	if rerr != nil {
		failf(ErrUser, "cannot read module %s: %v", spec, rerr)
	}

	ip.loadStack = append(ip.loadStack, path)
	defer func() { ip.loadStack = ip.loadStack[:len(ip.loadStack)-1] }()

	modEnv := NewEnv(ip.NewRootEnv())
	if _, eerr := ip.EvalString(modEnv, string(src)); eerr != nil {
		failf(ErrUser, "in module %s: %v", spec, eerr)
	}

	mergeFrame(env, modEnv)
	return ip.symT
}

func (ip *Interp) currentImporter() string {
	if len(ip.loadStack) == 0 {
		return ""
	}
	return ip.loadStack[len(ip.loadStack)-1]
}

// mergeFrame copies every binding of the module frame into dst. Define
// prepends, so the frame is walked back to front to preserve the module's
// own definition order (and its internal shadowing).
func mergeFrame(dst *Env, mod *Env) {
	var cells []*Pair
	for b := mod.Vars(); b.Tag == TPair; b = b.Pair().Cdr {
		cells = append(cells, b.Pair().Car.Pair())
	}
	for i := len(cells) - 1; i >= 0; i-- {
		dst.Define(cells[i].Car, cells[i].Cdr)
	}
}

func resolveModule(spec, importer string) (string, error) {
	if filepath.IsAbs(spec) {
		if p, ok := tryModulePath(spec); ok {
			return p, nil
		}
		return "", fmt.Errorf("module not found: %s", spec)
	}

	var bases []string
	if importer != "" {
		bases = append(bases, filepath.Dir(importer))
	}
	if cwd, err := os.Getwd(); err == nil {
		bases = append(bases, cwd)
	}
	bases = append(bases, filepath.SplitList(os.Getenv("ELYSP_PATH"))...)

	for _, base := range bases {
		if p, ok := tryModulePath(filepath.Join(base, spec)); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("module not found: %s", spec)
}

func tryModulePath(p string) (string, bool) {
	cands := []string{p}
	if filepath.Ext(p) == "" {
		cands = []string{p + moduleExt, p}
	}
	for _, c := range cands {
		if fi, err := os.Stat(c); err == nil && !fi.IsDir() {
			abs, aerr := filepath.Abs(c)
			if aerr != nil {
				abs = c
			}
			return filepath.Clean(abs), true
		}
	}
	return "", false
}
