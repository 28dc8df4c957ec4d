package schema

import (
	"fmt"
	"strings"
)

// Issue is a single constraint violation, attributed to a field.
type Issue struct {
	Field   string `json:"field"`
	Keyword string `json:"keyword"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// ValidationError reports bad input. The handler never ran.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// OutputSchemaError reports a handler returning data that violates its own
// declared output contract. This is an internal defect, not a user error.
type OutputSchemaError struct {
	Command string
	Issues  []Issue
}

func (e *OutputSchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("output of %q violates its declared schema: %s", e.Command, strings.Join(msgs, "; "))
}
