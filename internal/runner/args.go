package runner

import (
	"fmt"
	"strings"

	"github.com/solverity/solverity/internal/solver"
)

// Arithmetic encoding modes accepted by the contract compiler.
const (
	ArithInt         = "int"
	ArithBV          = "bv"
	ArithMod         = "mod"
	ArithModOverflow = "mod-overflow"
)

var arithmeticModes = []string{ArithInt, ArithBV, ArithMod, ArithModOverflow}

// ValidArithmetic reports whether mode is one of the supported encodings.
func ValidArithmetic(mode string) bool {
	for _, m := range arithmeticModes {
		if m == mode {
			return true
		}
	}
	return false
}

// ArithmeticModes returns the supported encodings in declaration order.
func ArithmeticModes() []string {
	out := make([]string, len(arithmeticModes))
	copy(out, arithmeticModes)
	return out
}

// baseFlags is the fixed flag set passed to Boogie on every invocation.
var baseFlags = []string{"/nologo", "/doModSetAnalysis", "/errorTrace:0"}

// backendFlags describes the Boogie flags selecting a solver backend.
// Entries containing "%s" have the resolved solver path substituted.
// arith lists extra flags that are only valid for certain arithmetic
// encodings, keyed by encoding mode.
type backendFlags struct {
	base  []string
	arith map[string][]string
}

var backendFlagTable = map[string]backendFlags{
	solver.Z3: {
		base: []string{"/z3exe:%s"},
	},
	solver.CVC4: {
		base: []string{"/proverOpt:SOLVER=cvc4", "/proverOpt:PROVER_PATH=%s"},
		arith: map[string][]string{
			ArithMod:         {"/proverOpt:LOGIC=ALL", "/proverOpt:INCREMENTAL=true"},
			ArithModOverflow: {"/proverOpt:LOGIC=ALL", "/proverOpt:INCREMENTAL=true"},
		},
	},
	solver.Yices2: {
		base: []string{"/proverOpt:SOLVER=Yices2", "/proverOpt:PROVER_PATH=%s"},
	},
}

// SolverFlags assembles the backend-specific Boogie flags for the given
// backend, resolved solver path and arithmetic encoding.
func SolverFlags(backend, solverPath, arithmetic string) ([]string, error) {
	entry, ok := backendFlagTable[backend]
	if !ok {
		return nil, fmt.Errorf("unknown solver backend %q", backend)
	}

	flags := make([]string, 0, len(entry.base)+2)
	for _, f := range entry.base {
		if strings.Contains(f, "%s") {
			f = fmt.Sprintf(f, solverPath)
		}
		flags = append(flags, f)
	}
	flags = append(flags, entry.arith[arithmetic]...)
	return flags, nil
}
