package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"translata/internal/models"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func validateCredentials(c credentials) []string {
	var errs []string
	if len(c.Username) < 3 {
		errs = append(errs, "username must be at least 3 characters")
	}
	if len(c.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	return errs
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}
	if errs := validateCredentials(c); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}
	if _, err := models.CreateUser(s.DB, c.Username, string(hash)); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "username already exists"})
			return
		}
		log.Printf("register: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "registration successful"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	var c credentials
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": "invalid request body"})
		return
	}
	user, err := models.GetUserByUsername(s.DB, c.Username)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.Printf("login: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal server error"})
			return
		}
		// Same message as a wrong password so usernames cannot be probed.
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": models.ErrInvalidCredentials.Error()})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(c.Password)) != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "error": models.ErrInvalidCredentials.Error()})
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		log.Printf("login session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal server error"})
		return
	}
	if err := s.setUser(sess, user.ID); err != nil {
		log.Printf("login session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    map[string]any{"id": user.ID, "username": user.Username},
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		log.Printf("logout session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}
	if err := s.clearUser(sess); err != nil {
		log.Printf("logout session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "logged out"})
}

type translateRequest struct {
	InputText      string `json:"inputText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		log.Printf("translate session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Translation failed"})
		return
	}
	output, err := s.Translator.Translate(r.Context(), req.InputText, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		log.Printf("translate: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Translation failed"})
		return
	}
	// Timestamp marks when the external translation succeeded.
	if _, err := models.CreateTranslation(s.DB, sess.CurrentUserID(),
		req.InputText, output, req.SourceLanguage, req.TargetLanguage, time.Now().UTC()); err != nil {
		log.Printf("translate record: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Translation failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"translation": output})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	sess, err := s.session(w, r)
	if err != nil {
		log.Printf("history session: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to fetch translation history"})
		return
	}
	userID := sess.CurrentUserID()
	if userID == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "not authenticated"})
		return
	}
	history, err := models.ListTranslationsByUser(s.DB, *userID)
	if err != nil {
		log.Printf("history: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to fetch translation history"})
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
		return
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/history/"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "translation not found"})
		return
	}
	if err := models.DeleteTranslation(s.DB, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "translation not found"})
			return
		}
		log.Printf("history delete: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to delete translation"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "translation deleted"})
}
