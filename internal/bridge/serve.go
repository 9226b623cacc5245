package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"agentdeck/internal/errors"
)

// request is the wire form of one command invocation.
type request struct {
	Command string          `json:"command"`
	Args    json.RawMessage `json:"args,omitempty"`
}

// response is the wire form of a command result. Errors cross the
// boundary as opaque strings; the shell only displays them.
type response struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error string          `json:"error,omitempty"`
}

// Server serves the bridge over localhost HTTP for the desktop shell.
type Server struct {
	bridge *Bridge
	log    *slog.Logger
}

// NewServer creates an HTTP server around a bridge.
func NewServer(b *Bridge, log *slog.Logger) *Server {
	return &Server{bridge: b, log: log}
}

// Handler returns the HTTP handler: POST /rpc plus a health endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /rpc", s.handleRPC)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, response{Error: "malformed request body"})
		return
	}

	data, err := s.bridge.Dispatch(r.Context(), req.Command, req.Args)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrUnknownCommand) {
			status = http.StatusNotFound
		}
		writeResponse(w, status, response{Error: err.Error()})
		return
	}
	writeResponse(w, http.StatusOK, response{OK: true, Data: data})
}

func writeResponse(w http.ResponseWriter, status int, resp response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// ListenAndServe serves on addr (loopback only by convention) until ctx
// is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("bridge listening", "addr", ln.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
