package twin

import (
	"fmt"
	"strings"
)

// ValidateTranscript checks the caller-supplied history and new message and
// returns the bounded history plus the trimmed message. On rejection the
// error is a BadRequest *GatewayError carrying the reason.
//
// Turns over maxTurns are dropped oldest-first rather than rejected:
// truncation is a safe degradation, while rejecting would break a
// long-running conversation. Order of the remainder is preserved exactly;
// nothing is deduplicated or merged.
func ValidateTranscript(history []Turn, newMessage string, maxTurns int) ([]Turn, string, error) {
	msg := strings.TrimSpace(newMessage)
	if msg == "" {
		return nil, "", badRequest("newMessage must not be empty")
	}

	for i, t := range history {
		if strings.TrimSpace(t.Text) == "" {
			return nil, "", badRequest(fmt.Sprintf("history[%d]: text must not be empty", i))
		}
		if t.Role != RoleUser && t.Role != RoleAssistant {
			return nil, "", badRequest(fmt.Sprintf("history[%d]: unknown role %q", i, t.Role))
		}
	}

	if maxTurns > 0 && len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}

	return history, msg, nil
}
