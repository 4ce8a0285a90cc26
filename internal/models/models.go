package models

import (
	"encoding/json"
	"time"
)

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// SessionData is the attribute bag stored as a JSON blob per session.
// A nil UserID means a guest session.
type SessionData struct {
	UserID *int64 `json:"user_id,omitempty"`
}

type Session struct {
	ID        string
	Data      SessionData
	ExpiresAt time.Time
}

// CurrentUserID returns the signed-in user id, or nil for a guest.
func (s *Session) CurrentUserID() *int64 {
	if s == nil {
		return nil
	}
	return s.Data.UserID
}

func (d SessionData) encode() (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type Translation struct {
	ID             int64     `json:"id"`
	UserID         *int64    `json:"-"`
	InputText      string    `json:"input_text"`
	OutputText     string    `json:"output_text"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	Timestamp      time.Time `json:"timestamp"`
}
