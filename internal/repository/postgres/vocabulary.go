package postgres

import (
	"database/sql"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"

	"go.uber.org/zap"
)

// VocabularyRepo implements repository.VocabularyRepository
type VocabularyRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB, logger *zap.Logger) *VocabularyRepo {
	return &VocabularyRepo{db: db, logger: logger}
}

// AddWords upserts a batch of mistake words in a single transaction.
// A malformed word is logged and skipped without aborting the batch.
// Any database failure rolls the whole batch back and surfaces as
// *domain.PersistenceError: a batch is either fully committed or fully absent.
func (r *VocabularyRepo) AddWords(userID int64, words []domain.MistakeWord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return &domain.PersistenceError{Op: "add words: begin", Err: err}
	}

	query := `
		INSERT INTO vocabulary (user_id, incorrect_word, correct_word, translation)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, incorrect_word)
		DO UPDATE SET correct_word = EXCLUDED.correct_word,
			translation = EXCLUDED.translation
	`

	for _, word := range words {
		if !word.Valid() {
			r.logger.Warn("Skipping malformed mistake word",
				zap.Int64("user_id", userID),
				zap.String("incorrect", word.Incorrect),
				zap.String("correct", word.Correct),
			)
			continue
		}

		if _, err := tx.Exec(query, userID, word.Incorrect, word.Correct, word.Translation); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.logger.Error("Failed to rollback vocabulary batch", zap.Error(rbErr))
			}
			return &domain.PersistenceError{Op: "add words: upsert", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &domain.PersistenceError{Op: "add words: commit", Err: err}
	}

	return nil
}

// GetVocabulary returns the user's mistake words, most recent first.
// A user with no words gets an empty slice, not an error.
func (r *VocabularyRepo) GetVocabulary(userID int64) ([]domain.VocabularyEntry, error) {
	query := `
		SELECT id, user_id, incorrect_word, correct_word, translation, created_at
		FROM vocabulary
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get vocabulary", Err: err}
	}
	defer rows.Close()

	var entries []domain.VocabularyEntry
	for rows.Next() {
		var e domain.VocabularyEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Incorrect, &e.Correct, &e.Translation, &e.CreatedAt); err != nil {
			return nil, &domain.PersistenceError{Op: "get vocabulary: scan", Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "get vocabulary: rows", Err: err}
	}

	return entries, nil
}
