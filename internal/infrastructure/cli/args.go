package cli

import (
	"strings"

	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

// PrepareArgs lets negative numbers through flag parsing: "-40 C F" would
// otherwise be read as the shorthand flags -4 and -0. A "--" is inserted in
// front of the first argument that parses as a negative number.
func PrepareArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if !strings.HasPrefix(arg, "-") || len(arg) < 2 {
			continue
		}
		if _, err := numfmt.Parse(arg); err != nil {
			continue
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")
		return append(out, args[i:]...)
	}
	return args
}
