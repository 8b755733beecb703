package source

// Well-known names used to locate external configuration.
const (
	// ConfigEnvVar names the environment variable holding a properties file path.
	ConfigEnvVar = "TRACK_CONFIG_FILE"
	// ConfigProperty names the process property holding a properties file path.
	ConfigProperty = "config"
	// EnvProperty names the process property holding the active environment tag.
	EnvProperty = "env"
	// UserConfigPath is the properties file location relative to the home directory.
	UserConfigPath = ".michr-apps/track/app.properties"
)

// DefaultProvider supplies the user-home, environment-variable and
// process-property sources, in that order.
type DefaultProvider struct {
	// HomeDir is the user's home directory. Empty disables the user-home source.
	HomeDir string
	// UserConfigPath overrides the file location under HomeDir.
	// Empty means [UserConfigPath].
	UserConfigPath string
	// LookupEnv resolves environment variables. Nil means os.LookupEnv.
	LookupEnv LookupFunc
	// SystemProperties holds the process properties.
	SystemProperties map[string]string
}

// Sources builds the ordered source list, lowest precedence first. Paths are
// resolved on every call.
func (p *DefaultProvider) Sources() []ConfigurationSource {
	userPath := p.UserConfigPath
	if userPath == "" {
		userPath = UserConfigPath
	}

	return []ConfigurationSource{
		NewUserHomeSource(p.HomeDir, userPath),
		NewEnvVarSource(ConfigEnvVar, p.LookupEnv),
		NewSystemPropertySource(ConfigProperty, p.SystemProperties),
	}
}
