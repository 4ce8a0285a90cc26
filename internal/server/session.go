package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"translata/internal/models"
)

// Sessions are opaque uuid ids stored server-side with a JSON attribute bag.
// The cookie carries "sid.signature" where the signature is an HMAC-SHA256
// over the sid with the configured secret, so a tampered cookie falls back
// to a fresh guest session instead of hitting the store.

func (s *Server) signSessionID(sid string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(sid))
	return sid + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Server) verifySessionCookie(value string) (string, bool) {
	i := strings.LastIndex(value, ".")
	if i < 0 {
		return "", false
	}
	sid := value[:i]
	if !hmac.Equal([]byte(s.signSessionID(sid)), []byte(value)) {
		return "", false
	}
	return sid, true
}

// session resolves the request's session, creating a fresh guest session
// (and setting the cookie) when the cookie is absent, tampered, expired, or
// references a session the store no longer has.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*models.Session, error) {
	if cookie, err := r.Cookie(s.CookieName); err == nil {
		if sid, ok := s.verifySessionCookie(cookie.Value); ok {
			sess, err := models.GetSession(s.DB, sid)
			if err == nil {
				return sess, nil
			}
			if !errors.Is(err, models.ErrNotFound) {
				return nil, err
			}
		}
	}
	sid := uuid.NewString()
	sess, err := models.CreateSession(s.DB, sid, models.SessionData{}, time.Now().Add(s.lifetime))
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.CookieName,
		Value:    s.signSessionID(sid),
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
	})
	return sess, nil
}

// setUser marks the session as authenticated for userID. Login only.
func (s *Server) setUser(sess *models.Session, userID int64) error {
	sess.Data.UserID = &userID
	return models.UpdateSession(s.DB, sess, s.lifetime)
}

// clearUser reverts the session to a guest. Logout only.
func (s *Server) clearUser(sess *models.Session) error {
	sess.Data.UserID = nil
	return models.UpdateSession(s.DB, sess, s.lifetime)
}
