package errorkit

import (
	"errors"
	"strings"
)

// Merge will combine all given non nil error values into a single error value.
// If no valid error is given, nil is returned.
// If only a single non nil error value is given, the error value is returned.
// Merged errors passed to Merge are flattened into the new one.
func Merge(errs ...error) error {
	var merged mergedError
	for _, err := range errs {
		switch err := err.(type) {
		case nil:
		case mergedError:
			merged = append(merged, err...)
		default:
			merged = append(merged, err)
		}
	}
	switch len(merged) {
	case 0:
		return nil
	case 1:
		return merged[0]
	default:
		return merged
	}
}

type mergedError []error

func (errs mergedError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs mergedError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs mergedError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (errs mergedError) Unwrap() []error { return errs }
