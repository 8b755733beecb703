package config

import (
	"errors"
	"flag"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-track/internal/source"
)

// PropertiesFlag collects repeated "key=value" process properties.
// It implements the flag.Value interface.
type PropertiesFlag map[string]string

// String returns the collected properties as sorted "key=value" pairs
// joined by commas.
func (p PropertiesFlag) String() string {
	pairs := make([]string, 0, len(p))
	for _, key := range slices.Sorted(maps.Keys(p)) {
		pairs = append(pairs, key+"="+p[key])
	}
	return strings.Join(pairs, ",")
}

// Set parses one "key=value" pair. The value may itself contain '='.
func (p PropertiesFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return errors.New("need property in a form `key=value`")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("property key must not be empty")
	}

	p[key] = value
	return nil
}

// propertyFlag binds a flag to a single fixed process property.
type propertyFlag struct {
	props PropertiesFlag
	key   string
}

func (f *propertyFlag) String() string {
	if f == nil || f.props == nil {
		return ""
	}
	return f.props[f.key]
}

func (f *propertyFlag) Set(s string) error {
	f.props[f.key] = s
	return nil
}

// RegisterFlags defines all bootstrap configuration flags on fs and returns
// the config they populate once fs is parsed.
//
// Flags:
//
//	-D key=value process property (repeatable)
//	-c/-config properties file path, shorthand for -D config=<path>
//	-env active environment, shorthand for -D env=<tag>
//	-home directory the user configuration file is resolved against
//	-user-config user configuration file path relative to -home
//	-log-level log level (debug, info, warn, error)
func RegisterFlags(fs *flag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{SystemProperties: map[string]string{}}
	props := PropertiesFlag(cfg.SystemProperties)

	fs.Var(props, "D", "Process property in a form key=value (repeatable)")
	fs.Var(&propertyFlag{props: props, key: source.ConfigProperty}, "c", "Properties file path")
	fs.Var(&propertyFlag{props: props, key: source.ConfigProperty}, "config", "Properties file path (alias)")
	fs.Var(&propertyFlag{props: props, key: source.EnvProperty}, "env", "Active environment")
	fs.StringVar(&cfg.Sources.HomeDir, "home", "", "Home directory for the user configuration file")
	fs.StringVar(&cfg.Sources.UserConfigPath, "user-config", "", "User configuration file path relative to home")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")

	return cfg
}

// ParseFlags registers the bootstrap flags on a fresh flag set and parses
// args into it.
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("track", flag.ContinueOnError)
	cfg := RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
