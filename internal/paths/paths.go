package paths

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that overrides ConfigFile.
const EnvConfig = "JOBFILTER_CONFIG"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.jobfilter.
func Dir() string {
	return filepath.Join(home(), ".jobfilter")
}

// ConfigFile returns $JOBFILTER_CONFIG, or ~/.jobfilter/config.yaml.
func ConfigFile() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// DataFile returns ~/.jobfilter/jobs.yaml.
func DataFile() string {
	return filepath.Join(Dir(), "jobs.yaml")
}

// LogFile returns ~/.jobfilter/jobfilter.log.
func LogFile() string {
	return filepath.Join(Dir(), "jobfilter.log")
}
