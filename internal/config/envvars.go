// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	if s.Banner != nil {
		b := expandEnv(*s.Banner)
		s.Banner = &b
	}
	s.Marker = expandEnv(s.Marker)
	s.QuitKey = expandEnv(s.QuitKey)
	s.EndBound = expandEnv(s.EndBound)
	s.LogFile = expandEnv(s.LogFile)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
