package main

import (
	"regexp"
	"strings"
)

// multiValueFlags take one or more space separated values: --height 5 10 15.
var multiValueFlags = []string{"height", "leaf_count", "dry_weight"}

var negativeNumber = regexp.MustCompile(`^-(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

// expandMultiValueArgs rewrites "--name v1 v2 v3" into "--name=v1,v2,v3" for
// each flag in names so pflag's slice flags can parse it. Values run until
// the next token that looks like a flag; negative numbers count as values.
// Everything after a bare "--" is passed through untouched.
func expandMultiValueArgs(args []string, names []string) []string {
	multi := make(map[string]bool, len(names))
	for _, name := range names {
		multi["--"+name] = true
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if !multi[arg] {
			out = append(out, arg)
			continue
		}

		var values []string
		for i+1 < len(args) && isValue(args[i+1]) {
			values = append(values, args[i+1])
			i++
		}
		if len(values) == 0 {
			// Leave it to pflag to report the missing argument.
			out = append(out, arg)
			continue
		}
		out = append(out, arg+"="+strings.Join(values, ","))
	}
	return out
}

func isValue(arg string) bool {
	return !strings.HasPrefix(arg, "-") || negativeNumber.MatchString(arg)
}
