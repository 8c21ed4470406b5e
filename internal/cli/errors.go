package cli

import (
	"fmt"
	"strconv"
	"strings"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type invalidArgError struct {
	arg    string
	reason string
}

func (e invalidArgError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.arg, e.reason)
}

// parseTaskID parses a task id argument. A leading "#" is accepted.
func parseTaskID(s string) (int64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidArgError{arg: "task id", reason: strconv.Quote(s)}
	}
	return id, nil
}
