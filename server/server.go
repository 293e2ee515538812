// Package server exposes a single Othello game over HTTP: board state,
// move submission, search analysis, and a websocket feed of board
// updates.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/ejaszewski/runelore/game"
	"github.com/ejaszewski/runelore/searcher"
)

// MaxAnalyzeDepth bounds the depth a client may request, keeping a
// single request from occupying the server indefinitely.
const MaxAnalyzeDepth = 10

type boardPayload struct {
	Board string   `json:"board"`
	Side  string   `json:"side"`
	Black int      `json:"black"`
	White int      `json:"white"`
	Moves []string `json:"moves"`
	Over  bool     `json:"over"`
}

type movePayload struct {
	Square *uint8 `json:"square"`
	Pass   bool   `json:"pass"`
}

type analyzePayload struct {
	Depth uint8 `json:"depth"`
}

type analyzeResponse struct {
	Move  string `json:"move"`
	Score int32  `json:"score"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves one game at a time. All board access is serialized
// through the mutex; search analysis runs on a copy and never blocks
// play.
type Server struct {
	mu     sync.Mutex
	board  *game.Board
	hub    *Hub
	router chi.Router
}

func New() *Server {
	s := &Server{
		board: game.NewBoard(),
		hub:   NewHub(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/board", s.handleBoard)
	r.Post("/api/move", s.handleMove)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/reset", s.handleReset)
	r.Get("/ws", s.handleWS)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves the game API on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Msg("serving game API")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) payload() boardPayload {
	moves := s.board.LegalMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return boardPayload{
		Board: s.board.String(),
		Side:  s.board.State().Side().String(),
		Black: s.board.Disks(game.Black),
		White: s.board.Disks(game.White),
		Moves: names,
		Over:  s.board.Terminal(),
	}
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	payload := s.payload()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req movePayload
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || (!req.Pass && req.Square == nil) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expected a square or a pass"})
		return
	}

	move := game.Pass()
	if !req.Pass {
		if *req.Square > 63 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "square out of range"})
			return
		}
		move = game.Play(*req.Square)
	}

	s.mu.Lock()
	err = s.board.Play(move)
	payload := s.payload()
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, game.ErrInvalidMove) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.hub.Broadcast(payload)
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzePayload
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Depth == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "expected a positive depth"})
		return
	}
	if req.Depth > MaxAnalyzeDepth {
		req.Depth = MaxAnalyzeDepth
	}

	s.mu.Lock()
	board := *s.board
	s.mu.Unlock()

	move, score, ok := searcher.Negamax(&board, req.Depth)
	if !ok {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "game is over"})
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Move: move.String(), Score: score})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.board = game.NewBoard()
	payload := s.payload()
	s.mu.Unlock()

	s.hub.Broadcast(payload)
	writeJSON(w, http.StatusOK, payload)
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	s.hub.register(conn)

	// Send the current position immediately, then hold the connection
	// open for broadcasts until the client goes away.
	s.mu.Lock()
	payload := s.payload()
	s.mu.Unlock()
	if err := s.hub.Send(conn, payload); err != nil {
		s.hub.unregister(conn)
		return
	}

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.unregister(conn)
				return
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
