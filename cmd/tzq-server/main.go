// Package main implements the tzq JSON API server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/maypok86/otter/v2"

	"github.com/tzq-dev/tzq/pkg/clock"
	"github.com/tzq-dev/tzq/pkg/query"
	"github.com/tzq-dev/tzq/pkg/targets"
	"github.com/tzq-dev/tzq/pkg/timezone"
	"github.com/tzq-dev/tzq/pkg/tzconvert"
)

var (
	port       = flag.String("port", "8080", "Port for the API server (or set PORT)")
	favorites  = flag.String("favorites", "", "Default comma-separated favorite zones (or set TZQ_FAVORITES)")
	twelveHour = flag.Bool("12h", false, "Format times on a 12-hour clock")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	version    = flag.Bool("version", false, "Show version")
)

const appVersion = "1.0.0"

// Conversions depend on the current date, so cached responses go stale at
// midnight in the worst case; a short TTL keeps that window negligible.
const responseTTL = time.Minute

type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{requests: make(map[string][]time.Time)}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	// Rate limit: 60 requests per minute per IP.
	if len(valid) >= 60 {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

type server struct {
	logger    *slog.Logger
	parser    *query.Parser
	resolver  *timezone.Resolver
	assembler *targets.Assembler
	converter *tzconvert.Converter
	limiter   *rateLimiter
	responses *otter.Cache[string, []byte]
	favorites string
}

func newServer(logger *slog.Logger, defaultFavorites string, use12h bool) *server {
	clk := clock.System{}
	resolver := timezone.New(clk, logger)

	var opts []tzconvert.Option
	if use12h {
		opts = append(opts, tzconvert.WithTwelveHour())
	}

	return &server{
		logger:    logger,
		parser:    query.New(resolver),
		resolver:  resolver,
		assembler: targets.New(clk, resolver),
		converter: tzconvert.New(clk, opts...),
		limiter:   newRateLimiter(),
		responses: otter.Must(&otter.Options[string, []byte]{
			MaximumSize:      10_000,
			ExpiryCalculator: otter.ExpiryWriting[string, []byte](responseTTL),
		}),
		favorites: defaultFavorites,
	}
}

type convertResponse struct {
	Query   string                    `json:"query"`
	Results []tzconvert.ConvertedTime `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleConvert(w http.ResponseWriter, r *http.Request) {
	ip := clientIP(r)
	if !s.limiter.allow(ip) {
		s.logger.Warn("rate limit exceeded", "ip", ip)
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	favs := r.URL.Query().Get("favorites")
	if favs == "" {
		favs = s.favorites
	}

	cacheKey := q + "|" + favs
	if body, ok := s.responses.GetIfPresent(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			s.logger.Debug("writing cached response", "error", err)
		}
		return
	}

	pq := s.parser.Parse(q)
	if pq.Err != "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: pq.Err})
		return
	}

	var results []tzconvert.ConvertedTime
	for _, target := range s.assembler.Assemble(pq, favs) {
		label := target.Label
		if label == "" && target.ZoneID == pq.SourceZone {
			label = s.resolver.DisambiguationLabel(target.ZoneID, pq.SourceLabel)
		}
		converted, err := s.converter.Convert(pq.Hour, pq.Minute, pq.SourceZone, target.ZoneID, label)
		if err != nil {
			// Resolver output should always load; this is a bug, not input.
			s.logger.Error("conversion failed", "zone", target.ZoneID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		results = append(results, converted)
	}

	body, err := json.Marshal(convertResponse{Query: q, Results: results})
	if err != nil {
		s.logger.Error("encoding response", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	s.responses.Set(cacheKey, body)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("writing response", "error", err)
	}
}

func (*server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/convert", s.handleConvert)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func main() {
	flag.Parse()

	if *version {
		fmt.Println("tzq-server v" + appVersion)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *favorites == "" {
		*favorites = os.Getenv("TZQ_FAVORITES")
	}
	if env := os.Getenv("PORT"); env != "" && *port == "8080" {
		*port = env
	}

	srv := newServer(logger, *favorites, *twelveHour)
	if bad := srv.assembler.InvalidFavorites(*favorites); len(bad) > 0 {
		logger.Warn("unknown favorite timezones in configuration", "entries", strings.Join(bad, ", "))
	}

	httpServer := &http.Server{
		Addr:              ":" + *port,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", *port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
