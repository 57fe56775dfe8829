package util

import (
	"os"
	"strings"
)

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)
		if len(pair) != 2 {
			continue
		}

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetPrefixedEnvironmentVariables returns the variables of environment starting
// with prefix, keyed without it. Empty values are dropped.
func GetPrefixedEnvironmentVariables(environment map[string]string, prefix string) map[string]string {
	prefixed := map[string]string{}

	for key, value := range environment {
		if value == "" || !strings.HasPrefix(key, prefix) {
			continue
		}

		prefixed[strings.TrimPrefix(key, prefix)] = value
	}

	return prefixed
}
