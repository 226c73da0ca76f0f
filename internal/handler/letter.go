package handler

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLetter runs the essay review flow for a submitted text
func (h *Handler) handleLetter(c tele.Context, text string) error {
	userID := c.Sender().ID

	status, err := h.bot.Send(c.Recipient(), "⏳ Начинаю проверку письма...")
	if err != nil {
		h.logger.Warn("Failed to send status message", zap.Error(err))
	}

	result, err := h.letterService.Review(context.Background(), userID, c.Sender().Username, text)
	if err != nil {
		h.logger.Error("Failed to review letter",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send("⚠️ Произошла ошибка при проверке письма. Попробуйте отправить текст ещё раз.")
	}

	if status != nil {
		if _, err := h.bot.Edit(status, "✅ Проверка завершена!"); err != nil {
			h.logger.Debug("Failed to edit status message", zap.Error(err))
		}
	}

	for _, msg := range result.CriterionMessages {
		if err := c.Send(msg); err != nil {
			h.logger.Warn("Failed to send criterion message", zap.Error(err))
		}
	}

	summary := fmt.Sprintf(
		"📊 Итоговый результат:\nОбщий балл: %d/%d\nПроцент выполнения: %d%%",
		result.TotalScore, result.MaxScore, result.Percentage,
	)
	if err := c.Send(summary); err != nil {
		return err
	}

	return c.Send("Хотите посмотреть свой словарь?", vocabularyMarkup())
}
