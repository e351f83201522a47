package shared

import (
	"github.com/spf13/pflag"
)

// HasFlags reports whether any flag was explicitly set on the command line.
func HasFlags(flags *pflag.FlagSet) bool {
	return flags.NFlag() > 0
}
