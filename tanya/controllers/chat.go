package controllers

import (
	"context"

	"go.uber.org/zap"

	"tanya/tanya/config"
	"tanya/tanya/services/llm"
	"tanya/tanya/services/prompt"
	"tanya/tanya/services/search"
	"tanya/tanya/sources/sqlitedb/dao"
	"tanya/tanya/utils/logging"
)

type ChatController struct {
	turns   *dao.TurnDAO
	gateway llm.Client
	fetcher search.Fetcher
	cfg     config.Config
}

func NewChatController(turns *dao.TurnDAO, gateway llm.Client, fetcher search.Fetcher, cfg config.Config) *ChatController {
	return &ChatController{
		turns:   turns,
		gateway: gateway,
		fetcher: fetcher,
		cfg:     cfg,
	}
}

// Chat runs one full turn: persist the user message, enrich, assemble the
// windowed prompt, call the model, persist the reply. The message must
// already be validated non-blank by the caller.
//
// If the completion or the assistant write fails, the user turn stays in
// the store; there is no cross-turn transaction.
func (c *ChatController) Chat(ctx context.Context, sessionID, message string) (string, error) {
	defer logging.LogDuration(ctx, "chat_turn")()

	if _, err := c.turns.Append(ctx, sessionID, "user", message); err != nil {
		return "", err
	}

	// Best effort: a failed search degrades to a no-context answer.
	webContext := ""
	if c.fetcher != nil {
		result, err := c.fetcher.Search(ctx, message)
		if err != nil {
			logging.AppLogger.Warn("web search failed, continuing without enrichment",
				zap.String("session_id", sessionID), zap.Error(err))
		} else {
			webContext = result
		}
	}

	// Re-read after the user append so the window ends with it.
	history, err := c.turns.HistoryBySession(ctx, sessionID)
	if err != nil {
		return "", err
	}

	messages := prompt.Build(c.cfg.SystemPrompt, webContext, history, c.cfg.Window)

	reply, err := c.gateway.Complete(ctx, messages, c.cfg.MaxTokens)
	if err != nil {
		return "", err
	}

	if _, err := c.turns.Append(ctx, sessionID, "assistant", reply); err != nil {
		return "", err
	}
	return reply, nil
}
