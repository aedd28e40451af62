package pipeline

import (
	"fmt"

	"github.com/forgo/arena/bot/internal/platform"
)

// describeGeneric renders the statuses every command shares. Validation
// failures explain what was wrong; unknown failures stay deliberately vague
// so internal error text never reaches the end user. Both are ephemeral.
func describeGeneric(o *Outcome) platform.Message {
	switch o.Status {
	case StatusValidationFailed:
		content := "That doesn't look right. Check your input and try again."
		if verr, ok := o.ValidationBody(); ok && verr != nil {
			content = fmt.Sprintf("Invalid value for `%s`: %s.", verr.Field, verr.Hint)
		}
		return platform.Message{Content: content, Ephemeral: true}
	default:
		return platform.Message{
			Content:   "Something went wrong. Please try again later.",
			Ephemeral: true,
		}
	}
}
