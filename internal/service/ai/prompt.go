package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt constructs the text sent to the model. Gold-framed messages get
// the composed price data embedded verbatim; everything else asks for a plain
// natural answer. Both variants carry the trailing conversation window.
func BuildPrompt(message string, goldFramed bool, composedReply, contextWindow string) string {
	var b strings.Builder

	if contextWindow != "" {
		fmt.Fprintf(&b, "Conversation so far:\n%s\n\n", contextWindow)
	}

	fmt.Fprintf(&b, "User asked: %s\n\n", message)

	if goldFramed {
		fmt.Fprintf(&b, "If the question is about current gold prices, use the data below:\n%s\n\n", composedReply)
		b.WriteString("But if the question is about gold in general (like mining, purity, history, or other info), " +
			"answer naturally using your own reliable knowledge without saying you lack data.")
	} else {
		b.WriteString("Answer clearly and naturally.")
	}

	return b.String()
}
