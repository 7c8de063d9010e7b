package controllers

import (
	"net/http"

	"go.uber.org/zap"

	"tanya/tanya/sessions"
	"tanya/tanya/sources/sqlitedb/dao"
	"tanya/tanya/utils/logging"
	"tanya/tanya/web"
)

type PageController struct {
	turns    *dao.TurnDAO
	renderer *web.Renderer
}

func NewPageController(turns *dao.TurnDAO, renderer *web.Renderer) *PageController {
	return &PageController{turns: turns, renderer: renderer}
}

// Home serves the chat page. First-time visitors get a session cookie;
// returning ones get their transcript rendered back.
func (c *PageController) Home(w http.ResponseWriter, r *http.Request) {
	sessionID, isNew := sessions.Resolve(r)

	history, err := c.turns.HistoryBySession(r.Context(), sessionID)
	if err != nil {
		logging.ErrorLogger.Error("failed to load history for page render",
			zap.String("session_id", sessionID), zap.Error(err))
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	if isNew {
		sessions.Write(w, sessionID)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.renderer.Index(w, history); err != nil {
		logging.ErrorLogger.Error("failed to render page", zap.Error(err))
	}
}
