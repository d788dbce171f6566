package refactors

import "strings"

// simpleName returns the last dot-separated segment of an FQN.
func simpleName(fqn string) string {
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}

// packageOf returns the FQN with its last segment stripped, or "" for a
// default-package (unqualified) name.
func packageOf(fqn string) string {
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[:i]
	}
	return ""
}
