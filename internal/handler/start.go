package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.letterService.RegisterUser(userID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send(errorMessage)
	}

	return c.Send(
		"Привет! Отправь мне своё письмо на английском, и я помогу тебе его улучшить!",
	)
}
