// Package flagx holds command-line helpers shared by the binaries.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// ConfigFlagNames are the flags that may carry the JSON config file path.
var ConfigFlagNames = []string{"-c", "-config", "--config"}

// FilterArgs keeps only the allowed flags from args, together with their
// values. Both "-c conf.json" and "--config=conf.json" forms are recognised.
// A token following a flag is taken as its value only when it does not
// itself start with "-". The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigPath extracts the JSON config path from args (usually os.Args[1:]).
// Everything except the config flags is ignored, so the caller can parse
// its own flags afterwards. The last occurrence wins; "" means none given.
func ConfigPath(args []string) string {
	var config string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, ConfigFlagNames))

	return config
}
