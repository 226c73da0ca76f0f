package postgres

import (
	"database/sql"

	"github.com/e-zhenka/letter-exam-bot/internal/domain"
)

// LetterRepo implements repository.LetterRepository
type LetterRepo struct {
	db *sql.DB
}

// NewLetterRepo creates a new letter repository
func NewLetterRepo(db *sql.DB) *LetterRepo {
	return &LetterRepo{db: db}
}

// SaveLetter stores a submitted essay with its feedback text
func (r *LetterRepo) SaveLetter(userID int64, text, feedback string) error {
	query := `
		INSERT INTO letters (user_id, text, feedback)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, userID, text, feedback)
	return err
}

// GetLetters returns all essays submitted by the user, newest first
func (r *LetterRepo) GetLetters(userID int64) ([]domain.Letter, error) {
	query := `
		SELECT id, user_id, text, feedback, created_at
		FROM letters
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var letters []domain.Letter
	for rows.Next() {
		var l domain.Letter
		if err := rows.Scan(&l.ID, &l.UserID, &l.Text, &l.Feedback, &l.CreatedAt); err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}

	return letters, rows.Err()
}
