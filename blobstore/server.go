package blobstore

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Backend keeps the raw values for the emulated store.
type Backend interface {
	Get(key string) (value string, ok bool, err error)
	Put(key, value string) error
}

// Server answers the same GET/POST wire API as the remote store.
type Server struct {
	backend Backend
	token   string
	log     *zap.SugaredLogger
	router  chi.Router
}

func NewServer(backend Backend, token string, log *zap.SugaredLogger) *Server {
	s := &Server{
		backend: backend,
		token:   token,
		log:     log.Named("blobstore.server"),
	}

	router := chi.NewRouter()
	router.Get("/", s.getItem)
	router.Post("/", s.setItem)
	s.router = router
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) getItem(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if r.URL.Query().Get("token") != s.token {
		writeEnvelope(w, http.StatusUnauthorized, Envelope{Status: "error", Message: "Invalid token"})
		return
	}

	value, ok, err := s.backend.Get(key)
	if err != nil {
		s.log.Errorw("failed to read item", "error", err, "key", key)
		writeEnvelope(w, http.StatusInternalServerError, Envelope{Status: "error", Message: "Storage failure"})
		return
	}
	if !ok {
		writeEnvelope(w, http.StatusOK, Envelope{Status: "error", Message: "Item not found"})
		return
	}

	writeEnvelope(w, http.StatusOK, Envelope{Status: "success", Data: &Item{Key: key, Value: value}})
}

func (s *Server) setItem(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, http.StatusBadRequest, Envelope{Status: "error", Message: "Invalid body"})
		return
	}
	if req.Token != s.token {
		writeEnvelope(w, http.StatusUnauthorized, Envelope{Status: "error", Message: "Invalid token"})
		return
	}
	if req.Key == "" {
		writeEnvelope(w, http.StatusBadRequest, Envelope{Status: "error", Message: "Missing key"})
		return
	}

	if err := s.backend.Put(req.Key, req.Value); err != nil {
		s.log.Errorw("failed to write item", "error", err, "key", req.Key)
		writeEnvelope(w, http.StatusInternalServerError, Envelope{Status: "error", Message: "Storage failure"})
		return
	}

	s.log.Infow("item written", "key", req.Key, "bytes", len(req.Value))
	writeEnvelope(w, http.StatusOK, Envelope{Status: "success", Data: &Item{Key: req.Key, Value: req.Value}})
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}
