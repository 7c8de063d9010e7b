package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"tanya/tanya/services/llm"
	"tanya/tanya/sources/sqlitedb/models"
)

type TurnDAO struct {
	DB *gorm.DB
}

func NewTurnDAO(db *gorm.DB) *TurnDAO {
	return &TurnDAO{DB: db}
}

// Append persists one turn as a single atomic insert. The id and
// timestamp are assigned by the store.
func (dao *TurnDAO) Append(ctx context.Context, sessionID, role, content string) (*models.Turn, error) {
	turn := models.Turn{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}
	if err := dao.DB.WithContext(ctx).Create(&turn).Error; err != nil {
		return nil, fmt.Errorf("append turn: %w", err)
	}
	return &turn, nil
}

// HistoryBySession returns all turns for a session in insertion order.
// Unknown sessions yield an empty slice, not an error.
func (dao *TurnDAO) HistoryBySession(ctx context.Context, sessionID string) ([]llm.Message, error) {
	var turns []models.Turn
	err := dao.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&turns).Error
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	history := make([]llm.Message, 0, len(turns))
	for _, t := range turns {
		history = append(history, llm.Message{Role: t.Role, Content: t.Content})
	}
	return history, nil
}
