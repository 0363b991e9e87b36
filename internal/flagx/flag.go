// Package flagx helps several flag sets share one command line: each loader
// keeps only the flags it owns and parses them with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the listed flags.
//
// valueFlags take a value, either as the next argument ("-k key") or inline
// ("-k=key"). switchFlags are booleans and never consume the next argument
// ("-seed", "-seed=false"). Everything else is dropped. The result is never nil.
func FilterArgs(args []string, valueFlags []string, switchFlags []string) []string {
	values := toSet(valueFlags)
	switches := toSet(switchFlags)

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := values[name]; ok {
				filtered = append(filtered, arg)
			} else if _, ok := switches[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := switches[arg]; ok {
			filtered = append(filtered, arg)
			continue
		}

		if _, ok := values[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config file path given via -c or -config.
// It returns "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config", "--config"}, nil))

	return path
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
