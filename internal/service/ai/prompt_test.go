package ai

import (
	"strings"
	"testing"
)

func TestBuildPromptGoldBranchEmbedsReply(t *testing.T) {
	composed := "24K: 28000.00 PKR per gram"
	prompt := BuildPrompt("gold rate?", true, composed, "user: gold rate?")

	if !strings.Contains(prompt, composed) {
		t.Fatal("gold prompt must embed the composed reply verbatim")
	}
	if !strings.Contains(prompt, "without saying you lack data") {
		t.Fatal("gold prompt missing general-knowledge instruction")
	}
}

func TestBuildPromptNonGoldBranchOmitsReply(t *testing.T) {
	composed := "Let me check Gemini for that..."
	prompt := BuildPrompt("tell me a joke", false, composed, "")

	if strings.Contains(prompt, composed) {
		t.Fatal("non-gold prompt must not embed the composed reply")
	}
	if !strings.Contains(prompt, "Answer clearly and naturally.") {
		t.Fatal("non-gold prompt missing natural-answer instruction")
	}
}

func TestBuildPromptCarriesContextWindow(t *testing.T) {
	window := "user: hello\nbot: hi\nuser: gold rate?"
	prompt := BuildPrompt("gold rate?", true, "data", window)

	if !strings.Contains(prompt, window) {
		t.Fatal("prompt must carry the conversation window")
	}
}

func TestBuildPromptEmptyContextSkipsPreamble(t *testing.T) {
	prompt := BuildPrompt("hi", false, "", "")
	if strings.Contains(prompt, "Conversation so far") {
		t.Fatal("empty window should not produce a context preamble")
	}
}
