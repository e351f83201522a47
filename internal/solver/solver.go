package solver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/solverity/solverity/pkg/shared/files"
)

// Known backend identifiers.
const (
	Z3     = "z3"
	CVC4   = "cvc4"
	Yices2 = "yices2"
)

// executables maps a backend identifier to the executable filename searched
// for in the solver roots.
var executables = map[string]string{
	Z3:     "z3",
	CVC4:   "cvc4",
	Yices2: "yices2-smt2",
}

// NotFoundError reports that no executable could be resolved for a backend.
type NotFoundError struct {
	Backend string
	Roots   []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("solver not found: no %q executable in any of: %s", e.Backend, strings.Join(e.Roots, ", "))
}

// Known reports whether name is a supported backend identifier.
func Known(name string) bool {
	_, ok := executables[name]
	return ok
}

// Backends returns the supported backend identifiers in sorted order.
func Backends() []string {
	names := make([]string, 0, len(executables))
	for name := range executables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Find resolves the executable path for the requested backend. A non-empty
// override is used unconditionally after a fail-fast validity check.
// Otherwise the roots are searched in order and the first existing
// executable with the backend's filename wins. Missing roots are skipped.
func Find(backend, override string, roots []string, logger hclog.Logger) (string, error) {
	if override != "" {
		expanded, err := files.ExpandPath(override)
		if err != nil {
			return "", fmt.Errorf("failed to expand solver path %q: %w", override, err)
		}
		if !files.IsExecutable(expanded) {
			return "", fmt.Errorf("solver path %q is not an executable file", override)
		}
		logger.Debug("using solver override", "backend", backend, "path", expanded)
		return expanded, nil
	}

	exe, ok := executables[backend]
	if !ok {
		return "", fmt.Errorf("unknown solver backend %q, supported: %s", backend, strings.Join(Backends(), ", "))
	}

	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		candidate := filepath.Join(root, exe)
		if files.IsExecutable(candidate) {
			logger.Debug("solver resolved", "backend", backend, "path", candidate)
			return candidate, nil
		}
	}

	return "", &NotFoundError{Backend: backend, Roots: roots}
}
