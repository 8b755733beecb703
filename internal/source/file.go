package source

import (
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-track/internal/propfile"
	"github.com/MKhiriev/go-track/models"
)

// Fixed names of the source variants. A plain FileSource is named after its
// path instead.
const (
	UserHomeSourceName       = "userHomeConfig"
	EnvVarSourceName         = "environmentVarConfig"
	SystemPropertySourceName = "systemPropertyConfig"
)

// LookupFunc resolves an environment variable. It has the signature of
// os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FileSource reads properties from a file on the local filesystem.
type FileSource struct {
	path string
	name string
}

// NewFileSource returns a source reading the file at path. The source is
// named after the path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path, name: path}
}

// NewUserHomeSource returns a source reading relPath under homeDir.
// An empty homeDir makes the source permanently unavailable.
func NewUserHomeSource(homeDir, relPath string) *FileSource {
	var path string
	if homeDir != "" {
		path = filepath.Join(homeDir, relPath)
	}

	return &FileSource{path: path, name: UserHomeSourceName}
}

// NewEnvVarSource returns a source reading the file named by the environment
// variable varName. The variable is read once, here. A nil lookup uses
// os.LookupEnv.
func NewEnvVarSource(varName string, lookup LookupFunc) *FileSource {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	path, _ := lookup(varName)

	return &FileSource{path: path, name: EnvVarSourceName}
}

// NewSystemPropertySource returns a source reading the file named by the
// process property propName. The property is read once, here.
func NewSystemPropertySource(propName string, props map[string]string) *FileSource {
	return &FileSource{path: props[propName], name: SystemPropertySourceName}
}

// Path returns the file path, which is empty when it could not be resolved.
func (s *FileSource) Path() string {
	return s.path
}

// Name returns the source label.
func (s *FileSource) Name() string {
	return s.name
}

// IsAvailable reports whether the path names an existing regular file that
// can be opened for reading.
func (s *FileSource) IsAvailable() bool {
	if s.path == "" {
		return false
	}

	info, err := os.Stat(s.path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(s.path)
	if err != nil {
		return false
	}
	_ = f.Close()

	return true
}

// Load reads the file. Availability is checked again here: a missing file is
// an empty set, while a file that cannot be read after passing the check is
// a *LoadError.
func (s *FileSource) Load() (*models.PropertySet, error) {
	if !s.IsAvailable() {
		return models.EmptyPropertySet(s.path), nil
	}

	return s.read()
}

func (s *FileSource) read() (*models.PropertySet, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, &LoadError{Source: s.name, Path: s.path, Err: err}
	}
	defer f.Close()

	props, err := propfile.Decode(f)
	if err != nil {
		return nil, &LoadError{Source: s.name, Path: s.path, Err: err}
	}

	return models.NewPropertySet(props, s.path), nil
}
