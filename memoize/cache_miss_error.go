package memoize

import "strings"

type CacheMissError struct{}

func (CacheMissError) Error() string { return "cache miss" }

func IsCacheMiss(err error) bool {
	if err == nil {
		return false
	}
	// gocache stores report misses as "value not found in store",
	// BigCache returns "Entry not found"
	errorStrings := []string{CacheMissError{}.Error(), "value not found", "Entry not found"}
	for _, s := range errorStrings {
		if strings.Contains(err.Error(), s) {
			return true
		}
	}
	return false
}
