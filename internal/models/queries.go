package models

import (
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotFound           = errors.New("not found")
)

func CreateUser(db *sql.DB, username, passwordHash string) (int64, error) {
	res, err := db.Exec(`INSERT INTO users (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return res.LastInsertId()
}

func GetUserByUsername(db *sql.DB, username string) (*User, error) {
	row := db.QueryRow(`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func CreateSession(db *sql.DB, id string, data SessionData, expires time.Time) (*Session, error) {
	blob, err := data.encode()
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`INSERT INTO sessions (id, data, expires_at) VALUES (?, ?, ?)`, id, blob, expires); err != nil {
		return nil, err
	}
	return &Session{ID: id, Data: data, ExpiresAt: expires}, nil
}

// GetSession returns the session with the given id. Expired sessions are
// reported as ErrNotFound so callers fall back to a fresh guest session.
func GetSession(db *sql.DB, id string) (*Session, error) {
	row := db.QueryRow(`SELECT id, data, expires_at FROM sessions WHERE id = ?`, id)
	var s Session
	var blob string
	if err := row.Scan(&s.ID, &blob, &s.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if s.ExpiresAt.Before(time.Now()) {
		return nil, ErrNotFound
	}
	if err := json.Unmarshal([]byte(blob), &s.Data); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateSession rewrites the session's attribute blob and refreshes its
// expiry. The lifetime counts from the last write.
func UpdateSession(db *sql.DB, s *Session, lifetime time.Duration) error {
	blob, err := s.Data.encode()
	if err != nil {
		return err
	}
	s.ExpiresAt = time.Now().Add(lifetime)
	_, err = db.Exec(`UPDATE sessions SET data = ?, expires_at = ? WHERE id = ?`, blob, s.ExpiresAt, s.ID)
	return err
}

func CreateTranslation(db *sql.DB, userID *int64, input, output, source, target string, ts time.Time) (int64, error) {
	owner := sql.NullInt64{}
	if userID != nil {
		owner = sql.NullInt64{Int64: *userID, Valid: true}
	}
	res, err := db.Exec(`INSERT INTO translations (user_id, input_text, output_text, source_language, target_language, timestamp)
        VALUES (?, ?, ?, ?, ?, ?)`, owner, input, output, source, target, ts)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func ListTranslationsByUser(db *sql.DB, userID int64) ([]Translation, error) {
	rows, err := db.Query(`SELECT id, user_id, input_text, output_text, source_language, target_language, timestamp
        FROM translations WHERE user_id = ? ORDER BY timestamp DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ts := []Translation{}
	for rows.Next() {
		var t Translation
		var owner sql.NullInt64
		if err := rows.Scan(&t.ID, &owner, &t.InputText, &t.OutputText, &t.SourceLanguage, &t.TargetLanguage, &t.Timestamp); err != nil {
			return nil, err
		}
		if owner.Valid {
			t.UserID = &owner.Int64
		}
		ts = append(ts, t)
	}
	return ts, rows.Err()
}

func DeleteTranslation(db *sql.DB, id int64) error {
	res, err := db.Exec(`DELETE FROM translations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
