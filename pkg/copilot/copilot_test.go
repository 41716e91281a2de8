package copilot

import (
	"strings"
	"testing"
)

func TestScript(t *testing.T) {
	tests := []struct {
		name   string
		step   string
		status FormStatus
		want   string
	}{
		{
			name: "OrgIncomplete",
			step: "org",
			want: "Let's anchor your org. What's the organization name and license?",
		},
		{
			name:   "OrgComplete",
			step:   "org",
			status: FormStatus{OrgComplete: true},
			want:   "Looks good. Jump to Team when ready.",
		},
		{
			name: "TeamIncomplete",
			step: "team",
			want: "Who are you with? Team name and department is enough for now.",
		},
		{
			name:   "TeamComplete",
			step:   "team",
			status: FormStatus{TeamComplete: true},
			want:   "Great. Next: your user profile.",
		},
		{
			name: "UserIncomplete",
			step: "user",
			want: "Give me your name, email, and role so I can personalize everything.",
		},
		{
			name:   "UserComplete",
			step:   "user",
			status: FormStatus{UserComplete: true},
			want:   "Dial in connectors next. You can skip and defer if needed.",
		},
		{
			name: "Connectors",
			step: "connectors",
			want: "I preselected common connectors for your domain. Toggle what applies or defer.",
		},
		{
			name: "UnknownStep",
			step: "bogus",
			want: "Let's go.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Script(tc.step, tc.status)
			if got != tc.want {
				t.Fatalf("Script(%q, %+v) = %q, want %q", tc.step, tc.status, got, tc.want)
			}
		})
	}
}

func TestScriptCoversAllSteps(t *testing.T) {
	for _, step := range []string{"org", "team", "user", "connectors", "semantic", "artists", "review"} {
		if got := Script(step, FormStatus{}); got == "" || got == "Let's go." {
			t.Fatalf("step %q has no dedicated script line (got %q)", step, got)
		}
	}
}

func TestEchoReply(t *testing.T) {
	tests := []struct {
		name     string
		messages []Message
		want     string
	}{
		{
			name:     "NoMessages",
			messages: nil,
			want:     "Co-Pilot is online. Say something!",
		},
		{
			name: "OnlyAssistant",
			messages: []Message{
				{Role: "assistant", Content: "Hello"},
			},
			want: "Co-Pilot is online. Say something!",
		},
		{
			name: "EchoesLastUser",
			messages: []Message{
				{Role: "user", Content: "Why do you need org name?"},
				{Role: "assistant", Content: "It anchors the graph."},
				{Role: "user", Content: "Can I skip fields?"},
			},
			want: `You said: "Can I skip fields?". Co-Pilot is online.`,
		},
		{
			name: "SkipsEmptyUserTurns",
			messages: []Message{
				{Role: "user", Content: "First"},
				{Role: "user", Content: ""},
			},
			want: `You said: "First". Co-Pilot is online.`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EchoReply(tc.messages)
			if got != tc.want {
				t.Fatalf("EchoReply = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWelcomeMentionsSkips(t *testing.T) {
	if !strings.Contains(Welcome, "Skips are safe") {
		t.Fatalf("welcome message changed: %q", Welcome)
	}
}
