package server

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"translata/internal/config"
	"translata/internal/translate"
)

type Server struct {
	DB         *sql.DB
	Translator translate.Translator
	CookieName string
	StaticDir  string

	secret        []byte
	lifetime      time.Duration
	allowedOrigin string
}

func New(db *sql.DB, tr translate.Translator, cfg *config.Config) *Server {
	return &Server{
		DB:            db,
		Translator:    tr,
		CookieName:    "session_id",
		StaticDir:     "web/static",
		secret:        []byte(cfg.SessionSecret),
		lifetime:      cfg.SessionLifetime,
		allowedOrigin: cfg.AllowedOrigin,
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/register", s.handleRegister)
	mux.HandleFunc("/api/login", s.handleLogin)
	mux.HandleFunc("/api/logout", s.handleLogout)
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/history/", s.handleHistoryDelete)
	mux.Handle("/", http.FileServer(http.Dir(s.StaticDir)))
	return s.cors(mux)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.routes().ServeHTTP(w, r)
}

// cors allows the configured browser origin to send credentialed requests.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}
