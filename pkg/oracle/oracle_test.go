package oracle

import (
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"found":true}`, `{"found":true}`},
		{"fenced", "```json\n{\"found\":true}\n```", "{\"found\":true}"},
		{"bare backticks", "`{\"found\":true}`", `{"found":true}`},
		{"padded", "  {\"found\":true}  ", `{"found":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := strings.TrimSpace(stripFences(tc.in))
			if got != tc.want {
				t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestKeepDigits(t *testing.T) {
	got := keepDigits("ISBN 978-2-1234-5680-3")
	if got != "9782123456803" {
		t.Errorf("keepDigits = %q, want 9782123456803", got)
	}
}

func TestAdvicePromptEmbedsData(t *testing.T) {
	prompt, err := advicePrompt(map[string]int{"globalProgress": 42})
	if err != nil {
		t.Fatalf("advicePrompt: %v", err)
	}
	if !strings.Contains(prompt, `"globalProgress":42`) {
		t.Errorf("prompt does not embed the data: %s", prompt)
	}
	if !strings.Contains(prompt, "Oracle d'Akhet") {
		t.Errorf("prompt lost its persona: %s", prompt)
	}
}
