package prompt

import (
	"tanya/tanya/services/llm"
)

const (
	// preferFactsDirective precedes the injected facts block.
	preferFactsDirective = "Prefer the following live internet facts when answering questions about current events, dates, or figures; they are more up to date than your training data."
	// ownKnowledgeDirective closes the system message when no facts are available.
	ownKnowledgeDirective = "No live internet data is available for this question; answer from your own knowledge."
)

// Build assembles the message list sent to the completion gateway: one
// system message followed by the last `window` turns of history.
//
// History is read after the current user turn was persisted, so the window
// already ends with that turn; callers must not append it again.
func Build(systemBase, webContext string, history []llm.Message, window int) []llm.Message {
	system := systemBase
	if webContext != "" {
		system += "\n\n" + preferFactsDirective + "\n\n" + webContext
	} else {
		system += "\n\n" + ownKnowledgeDirective
	}

	messages := make([]llm.Message, 0, window+1)
	messages = append(messages, llm.Message{Role: "system", Content: system})

	start := 0
	if len(history) > window {
		start = len(history) - window
	}
	for _, turn := range history[start:] {
		// Anything but user/assistant is dropped rather than forwarded.
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	return messages
}
