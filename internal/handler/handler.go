package handler

import (
	"strings"
	"unicode"

	"github.com/e-zhenka/letter-exam-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const errorMessage = "⚠️ Произошла ошибка. Попробуйте позже."

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	letterService  *service.LetterService
	vocabService   *service.VocabularyService
	trainerService *service.TrainerService
	logger         *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	letterService *service.LetterService,
	vocabService *service.VocabularyService,
	trainerService *service.TrainerService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		letterService:  letterService,
		vocabService:   vocabService,
		trainerService: trainerService,
		logger:         logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/train", h.handleTrain)
	h.bot.Handle("/vocabulary", h.handleVocabulary)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnStartTraining, h.handleTrain)
	h.bot.Handle(&btnShowVocabulary, h.handleVocabulary)

	// Generic callback handler for clients that drop the unique marker
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// handleText routes free text: an answer while training is in
// progress, an essay submission otherwise
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if h.trainerService.HasSession(c.Sender().ID) {
		return h.handleAnswer(c, text)
	}
	return h.handleLetter(c, text)
}

// handleCallback handles callback queries that did not match a button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	data := cleanCallbackData(callback.Data)

	switch {
	case callback.Unique == "start_training" || data == "start_training":
		return h.handleTrain(c)
	case callback.Unique == "show_vocabulary" || data == "show_vocabulary":
		return h.handleVocabulary(c)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// Inline keyboard buttons
var (
	btnStartTraining = tele.Btn{
		Unique: "start_training",
		Text:   "🎯 Начать тренировку",
	}
	btnShowVocabulary = tele.Btn{
		Unique: "show_vocabulary",
		Text:   "📚 Показать словарь",
	}
)

// trainingMarkup returns a keyboard with the start-training button
func trainingMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnStartTraining))
	return menu
}

// vocabularyMarkup returns a keyboard with the show-vocabulary button
func vocabularyMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnShowVocabulary))
	return menu
}
