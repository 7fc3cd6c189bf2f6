package execrun

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

const shellSpecial = " \t\n\"'\\$&|;<>()*?[]#~`"

// SplitArgs splits a user-supplied parameter string into argv tokens using
// shell word rules, without ever invoking a shell. Quoted segments keep
// embedded whitespace; metacharacters carry no meaning and survive as data.
func SplitArgs(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	args, err := shlex.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("split arguments: %w", err)
	}
	return args, nil
}

// RenderCommand renders a diagnostic command line with arguments quoted so
// the string can be copy-pasted into a shell for reproduction.
func RenderCommand(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteArg(name))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, shellSpecial) {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'"'"'`) + "'"
}
