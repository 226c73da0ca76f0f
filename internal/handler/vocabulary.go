package handler

import (
	"fmt"
	"strings"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleVocabulary shows the user's mistake words
func (h *Handler) handleVocabulary(c tele.Context) error {
	userID := c.Sender().ID

	entries, err := h.vocabService.ListVocabulary(userID)
	if err != nil {
		h.logger.Error("Failed to load vocabulary",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return h.reply(c, errorMessage)
	}

	if len(entries) == 0 {
		return h.reply(c, "У вас пока нет слов в словаре.")
	}

	return h.reply(c, formatVocabulary(entries), trainingMarkup())
}

func formatVocabulary(entries []domain.VocabularyEntry) string {
	var sb strings.Builder
	sb.WriteString("📚 Ваш словарь:\n\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("❌ %s → ✅ %s\n📝 %s\n\n", e.Incorrect, e.Correct, e.Translation))
	}
	return strings.TrimRight(sb.String(), "\n")
}
