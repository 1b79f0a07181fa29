package submissions

import (
	"database/sql"

	"github.com/JaimeStill/suggestion-box/pkg/repository"
)

const insertSQL = `INSERT INTO submissions (kind, subject, body, contact)
VALUES ($1, $2, $3, $4)
RETURNING id, kind, subject, body, contact, created_at`

func scanSubmission(s repository.Scanner) (Submission, error) {
	var sub Submission
	var contact sql.NullString
	err := s.Scan(&sub.ID, &sub.Kind, &sub.Subject, &sub.Body, &contact, &sub.CreatedAt)
	if contact.Valid {
		sub.Contact = &contact.String
	}
	return sub, err
}
