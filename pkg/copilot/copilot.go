// Package copilot provides the conversational guidance layer of the
// onboarding wizard: a scripted per-step nudge computed from form
// state, and a ChatClient abstraction for proxying free-form messages
// to a language model backend.
package copilot

import (
	"context"
	"fmt"
)

// Message is one turn of the co-pilot conversation.
type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// ChatClient generates an assistant reply from a conversation history.
// Implementations live in the openai and ollama subpackages.
type ChatClient interface {
	Reply(ctx context.Context, messages []Message) (string, error)
}

// Welcome is the first message every session sees.
const Welcome = "Welcome to Wavo. I'll get you to value in minutes. Skips are safe; I'll fill gaps as you go."

// FormStatus summarizes which wizard steps still have required fields
// missing. The script only needs this, not the form values themselves.
type FormStatus struct {
	OrgComplete  bool
	TeamComplete bool
	UserComplete bool
}

// Script returns the scripted guidance for a wizard step given the
// current form status.
func Script(step string, st FormStatus) string {
	switch step {
	case "org":
		if !st.OrgComplete {
			return "Let's anchor your org. What's the organization name and license?"
		}
		return "Looks good. Jump to Team when ready."
	case "team":
		if !st.TeamComplete {
			return "Who are you with? Team name and department is enough for now."
		}
		return "Great. Next: your user profile."
	case "user":
		if !st.UserComplete {
			return "Give me your name, email, and role so I can personalize everything."
		}
		return "Dial in connectors next. You can skip and defer if needed."
	case "connectors":
		return "I preselected common connectors for your domain. Toggle what applies or defer."
	case "semantic":
		return "Set naming conventions + a starter glossary. Keep it lightweight - this unlocks clean joins."
	case "artists":
		return "Add the artists you work with. I suggested a few; edit freely. I'll enrich from the music graph."
	case "review":
		return "You're set. Save & seed your workspace. I'll continue enriching in the background as you work."
	default:
		return "Let's go."
	}
}

// EchoReply is the offline fallback used when no model backend is
// configured: it acknowledges the last user message.
func EchoReply(messages []Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && messages[i].Content != "" {
			return fmt.Sprintf("You said: %q. Co-Pilot is online.", messages[i].Content)
		}
	}
	return "Co-Pilot is online. Say something!"
}
