package handler

import (
	"errors"
	"fmt"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"
	"github.com/e-zhenka/letter-exam-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleTrain starts a training session
func (h *Handler) handleTrain(c tele.Context) error {
	userID := c.Sender().ID

	result, err := h.trainerService.Start(userID)
	if errors.Is(err, domain.ErrEmptyVocabulary) {
		return h.reply(c, "У вас пока нет слов в словаре для тренировки.")
	}
	if err != nil {
		h.logger.Error("Failed to start training",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return h.reply(c, errorMessage)
	}

	return h.reply(c, formatPrompt(result.Prompt))
}

// handleAnswer grades a training answer
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	userID := c.Sender().ID

	result, err := h.trainerService.SubmitAnswer(userID, text)
	if errors.Is(err, domain.ErrNoActiveSession) {
		// The session expired between routing and grading
		return c.Send("Сейчас нет активной тренировки. Отправьте /train, чтобы начать.")
	}
	if err != nil {
		h.logger.Error("Failed to grade answer",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(errorMessage)
	}

	if err := c.Send(formatVerdict(result)); err != nil {
		return err
	}

	if result.Done {
		return c.Send(formatSummary(result))
	}
	return c.Send(formatPrompt(result.NextPrompt))
}

// handleCancel handles /cancel command
func (h *Handler) handleCancel(c tele.Context) error {
	h.trainerService.Cancel(c.Sender().ID)
	return c.Send("Тренировка отменена.")
}

// reply answers a callback with a new message, or just sends for commands
func (h *Handler) reply(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Debug("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return c.Send(text, opts...)
}

func formatPrompt(translation string) string {
	return fmt.Sprintf("📝 Введите перевод слова:\n«%s»", translation)
}

func formatVerdict(result service.AnswerResult) string {
	if result.Correct {
		return fmt.Sprintf("✅ Правильно!\n«%s» → «%s»", result.Translation, result.Expected)
	}
	return fmt.Sprintf("❌ Неправильно!\nПравильный ответ: «%s»\nВаш ответ: «%s»",
		result.Expected, result.Given)
}

func formatSummary(result service.AnswerResult) string {
	return fmt.Sprintf(
		"🎉 Тренировка завершена!\nПравильных ответов: %d из %d\nПроцент успешности: %d%%",
		result.CorrectCount, result.Total, result.Percentage,
	)
}
