package common

import "regexp"

// CompileOptional compiles a regex pattern, treating the empty string
// as "no pattern" and returning a nil regexp for it. A malformed
// pattern is a configuration error and is returned to the caller.
func CompileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(pattern)
}
