package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tanya/tanya/controllers"
	"tanya/tanya/middlewares"
	"tanya/tanya/services/llm"
	"tanya/tanya/utils/logging"
	"tanya/tanya/utils/types"
)

func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.RequireSession)

	// POST /api/chat : run one chat turn
	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var payload types.ChatPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondError(w, http.StatusBadRequest, "Empty message")
			return
		}
		message := strings.TrimSpace(payload.Message)
		if message == "" {
			respondError(w, http.StatusBadRequest, "Empty message")
			return
		}

		sessionID := middlewares.SessionID(r.Context())
		reply, err := ctrl.Chat(r.Context(), sessionID, message)
		if err != nil {
			// Raw upstream text goes to the logs, never to the client.
			logging.ErrorLogger.Error("chat turn failed",
				zap.String("session_id", sessionID), zap.Error(err))
			var gwErr *llm.GatewayError
			if errors.As(err, &gwErr) {
				respondError(w, http.StatusInternalServerError, "assistant unavailable")
			} else {
				respondError(w, http.StatusInternalServerError, "storage unavailable")
			}
			return
		}

		respondJSON(w, http.StatusOK, types.ChatReply{Reply: reply})
	})

	return r
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, types.APIError{Error: message})
}
