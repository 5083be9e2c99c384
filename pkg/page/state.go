// Package page carries the application state snapshot consumed by rendering
// and the deferred view type produced by it. State is always passed
// explicitly; the renderer holds no ambient state of its own.
package page

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-landing/pkg/ui"
)

// EmailStatus tracks the lifecycle of the email capture request. Transitions
// are driven by the host's request collaborator, never by rendering.
type EmailStatus int

const (
	// EmailIdle means no submission has been attempted yet.
	EmailIdle EmailStatus = iota
	// EmailSending means a submission request is in flight.
	EmailSending
	// EmailAccepted means the submission succeeded.
	EmailAccepted
	// EmailRejected means the submission failed.
	EmailRejected
)

// String renders the status label used in logs and CLI flags.
func (s EmailStatus) String() string {
	switch s {
	case EmailIdle:
		return "idle"
	case EmailSending:
		return "sending"
	case EmailAccepted:
		return "accepted"
	case EmailRejected:
		return "rejected"
	default:
		return "idle"
	}
}

// ParseEmailStatus maps a status label back onto its enum value. Unknown
// labels report false and leave the caller on EmailIdle.
func ParseEmailStatus(label string) (EmailStatus, bool) {
	switch label {
	case "idle", "":
		return EmailIdle, true
	case "sending":
		return EmailSending, true
	case "accepted":
		return EmailAccepted, true
	case "rejected":
		return EmailRejected, true
	default:
		return EmailIdle, false
	}
}

// Assignment records the variant a visitor was bucketed into for one test.
type Assignment struct {
	Test    string
	Variant string
}

// State is the immutable snapshot a view is applied to. Rendering the same
// document against the same state always yields the same element tree.
type State struct {
	Visitor     uuid.UUID
	EmailDraft  string
	EmailStatus EmailStatus
	Experiments []Assignment
}

// Variant returns the assigned variant for a test id, if any.
func (s State) Variant(test string) (string, bool) {
	for _, assignment := range s.Experiments {
		if assignment.Test == test {
			return assignment.Variant, true
		}
	}
	return "", false
}

// View is a deferred render: a pure function from state to an element.
type View func(State) ui.Element

// Static returns a view that ignores state and always yields el.
func Static(el ui.Element) View {
	return func(State) ui.Element {
		return el
	}
}

// Empty returns a view that renders nothing for any state.
func Empty() View {
	return func(State) ui.Element {
		return ui.Nothing()
	}
}

// Apply evaluates every view against the state, dropping empty results.
func Apply(views []View, st State) []ui.Element {
	out := make([]ui.Element, 0, len(views))
	for _, view := range views {
		if view == nil {
			continue
		}
		if el := view(st); !el.IsNothing() {
			out = append(out, el)
		}
	}
	return out
}
