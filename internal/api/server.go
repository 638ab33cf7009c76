package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tabboz/internal/config"
	"tabboz/internal/game"
	"tabboz/internal/metrics"
	"tabboz/internal/shell"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	errBadIndex     = errors.New("index out of catalog range")
	errMissingIndex = errors.New("index or cancel is required")
)

type Server struct {
	cfg      config.APIConfig
	log      *slog.Logger
	sessions *sessionStore
	mux      *chi.Mux
}

func New(cfg config.APIConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		log:      logger,
		sessions: newSessionStore(cfg.MaxSessions, cfg.SessionIdleTTL),
		mux:      chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.SessionIdleTTL > 0 {
		go s.evictIdleSessions(ctx)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	s.log.Info("tabboz api listening", "addr", s.cfg.Addr, "max_sessions", s.cfg.MaxSessions)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) evictIdleSessions(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.sessions.evictIdle(); n > 0 {
				s.log.Info("idle sessions evicted", "count", n)
			}
		}
	}
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/sessions", s.handleCreateSession)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleSummary)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/calendar", s.handleCalendar)
			r.Post("/phone/buy", s.handleBuyPhone)
			r.Post("/phone/sell", s.handleSellPhone)
			r.Post("/subscription", s.handleSubscribe)
		})
	})
}

type summaryResponse struct {
	ID      string       `json:"id"`
	Summary game.Summary `json:"summary"`
	Holiday bool         `json:"holiday"`
	Funds   string       `json:"funds_display"`
	Credit  string       `json:"credit_display,omitempty"`
}

type actionResponse struct {
	Action  string                  `json:"action"`
	Outcome string                  `json:"outcome"`
	Notices []string                `json:"notices"`
	Prompts []string                `json:"prompts,omitempty"`
	Fields  map[game.FieldID]string `json:"fields"`
	Summary game.Summary            `json:"summary"`
}

type catalogRow struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Display string `json:"price_display"`
	Kind    string `json:"kind,omitempty"`
}

type selectionRequest struct {
	Index  *int `json:"index"`
	Cancel bool `json:"cancel"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	phones := game.DefaultPhones()
	plans := game.DefaultPlans()
	out := struct {
		Phones []catalogRow `json:"phones"`
		Plans  []catalogRow `json:"plans"`
	}{
		Phones: make([]catalogRow, 0, len(phones)),
		Plans:  make([]catalogRow, 0, len(plans)),
	}
	for i, p := range phones {
		out.Phones = append(out.Phones, catalogRow{Index: i, Name: p.Name, Price: p.Price, Display: game.FormatCurrency(p.Price)})
	}
	for i, p := range plans {
		out.Plans = append(out.Plans, catalogRow{Index: i, Name: p.Name, Price: p.Price, Display: game.FormatCurrency(p.Price), Kind: p.Kind.String()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	cellular := game.NewCellular(
		s.cfg.Game.NewLedger(),
		s.cfg.Game.Calendar(),
		game.WithLogger(s.log),
		game.WithRecorder(metrics.Shop{}),
	)
	id, sess, err := s.sessions.create(cellular)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	s.log.Info("session created", "session_id", id.String(), "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, http.StatusCreated, summarize(id, sess.cellular))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	id, sess, err := s.session(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	writeJSON(w, http.StatusOK, summarize(id, sess.cellular))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || !s.sessions.remove(id) {
		writeDomainError(w, errSessionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	id, sess, err := s.session(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var in struct {
		Holiday bool `json:"holiday"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.cellular.SetCalendar(game.Calendar{Holiday: in.Holiday})
	writeJSON(w, http.StatusOK, summarize(id, sess.cellular))
}

func (s *Server) handleBuyPhone(w http.ResponseWriter, r *http.Request) {
	s.handleSelection(w, r, game.MenuBuyPhone, func(c *game.Cellular) int { return len(c.Phones()) })
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	s.handleSelection(w, r, game.MenuSubscribe, func(c *game.Cellular) int { return len(c.Plans()) })
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request, action game.MenuAction, rows func(*game.Cellular) int) {
	_, sess, err := s.session(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var in selectionRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	commands := []game.Command{game.Cancel{}}
	if !in.Cancel {
		if in.Index == nil {
			writeDomainError(w, errMissingIndex)
			return
		}
		sel, ok := game.DecodeDialogCommand(game.CodeRowBase+*in.Index, rows(sess.cellular))
		if !ok {
			writeDomainError(w, errBadIndex)
			return
		}
		commands = []game.Command{sel, game.Confirm{}}
	}
	script := shell.NewScript(commands)
	sess.cellular.Do(script, action)
	writeJSON(w, http.StatusOK, actionResult(sess.cellular, script))
}

func (s *Server) handleSellPhone(w http.ResponseWriter, r *http.Request) {
	_, sess, err := s.session(r)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	var in struct {
		Accept bool `json:"accept"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	script := shell.NewScript(nil, in.Accept)
	sess.cellular.Do(script, game.MenuSellPhone)
	writeJSON(w, http.StatusOK, actionResult(sess.cellular, script))
}

func (s *Server) session(r *http.Request) (uuid.UUID, *session, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, nil, errSessionNotFound
	}
	sess, ok := s.sessions.get(id)
	if !ok {
		return id, nil, errSessionNotFound
	}
	return id, sess, nil
}

func summarize(id uuid.UUID, c *game.Cellular) summaryResponse {
	sum := c.Ledger().Summary()
	out := summaryResponse{
		ID:      id.String(),
		Summary: sum,
		Holiday: c.Calendar().Holiday,
		Funds:   game.FormatCurrency(sum.Funds),
	}
	if sum.Subscription {
		out.Credit = game.FormatCurrency(sum.PlanCredit)
	}
	return out
}

func actionResult(c *game.Cellular, script *shell.Script) actionResponse {
	last := c.LastResult()
	notices := script.Notices
	if notices == nil {
		notices = []string{}
	}
	return actionResponse{
		Action:  last.Action.String(),
		Outcome: last.Outcome,
		Notices: notices,
		Prompts: script.Prompts,
		Fields:  script.Fields,
		Summary: c.Ledger().Summary(),
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, errTooManySessions):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, errBadIndex), errors.Is(err, errMissingIndex):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
