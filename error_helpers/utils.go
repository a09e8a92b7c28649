package error_helpers

import (
	"errors"
	"fmt"
	"strings"
)

func allErrorsNil(errors ...error) bool {
	for _, e := range errors {
		if e != nil {
			return false
		}
	}
	return true
}

// CombineErrorsWithPrefix joins non-nil errors into one, prefixed. A
// single error keeps its identity when no prefix is given.
func CombineErrorsWithPrefix(prefix string, errs ...error) error {
	if len(errs) == 0 || allErrorsNil(errs...) {
		return nil
	}

	if len(errs) == 1 {
		if len(prefix) == 0 {
			return errs[0]
		}
		return fmt.Errorf("%s - %s", prefix, errs[0].Error())
	}

	combinedErrorString := []string{prefix}
	for _, e := range errs {
		if e == nil {
			continue
		}
		combinedErrorString = append(combinedErrorString, e.Error())
	}
	return errors.New(strings.Join(combinedErrorString, "\n\t"))
}

func CombineErrors(errs ...error) error {
	return CombineErrorsWithPrefix("", errs...)
}
