package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/A-r-j-u001/OSINT-Hive/internal/config"
	"github.com/A-r-j-u001/OSINT-Hive/internal/filter"
	"github.com/A-r-j-u001/OSINT-Hive/internal/llm"
	"github.com/A-r-j-u001/OSINT-Hive/internal/search"
	"github.com/A-r-j-u001/OSINT-Hive/internal/store"
)

// Server is the HTTP server wiring the search engine, the internal profile
// store and the optional generative-AI collaborator together.
type Server struct {
	httpServer *http.Server
	engine     *search.Engine
	store      store.Store
	llmClient  llm.Client
	limiter    *clientLimiter
}

// New creates a server instance from the service configuration.
func New(cfg config.Config) (*Server, error) {
	rules := filter.DefaultRuleset()
	if cfg.RulesPath != "" {
		var err error
		if rules, err = filter.LoadRuleset(cfg.RulesPath); err != nil {
			return nil, fmt.Errorf("failed to load classification rules: %w", err)
		}
	}

	var profileStore store.Store
	if cfg.DatabaseURL != "" {
		pg, err := store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect profile store: %w", err)
		}
		profileStore = pg
	} else {
		log.Println("DATABASE_URL not set, internal mode serves mock profiles")
		profileStore = store.NewMockStore()
	}

	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			profileStore.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		llmClient = client
	} else {
		log.Println("GEMINI_API_KEY not set, analysis endpoints are disabled")
	}

	s := &Server{
		engine: search.NewEngine(search.Config{
			GitHubPath:   cfg.GitHubDataset,
			LinkedInPath: cfg.LinkedInDataset,
			Store:        profileStore,
			Filter:       filter.NewEngine(rules, nil),
		}),
		store:     profileStore,
		llmClient: llmClient,
		limiter:   newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/profiles/{mode}/{id}", s.handleGetProfile)
	mux.HandleFunc("POST /api/gap-analysis", s.handleGapAnalysis)
	mux.HandleFunc("POST /api/roadmap/parse", s.handleParseRoadmap)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls wait on the LLM
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening and blocks until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.store.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request ID.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		log.Printf("[%s] %s %s %s", r.Method, r.URL.Path, r.RemoteAddr, requestID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v (%s)", r.Method, r.URL.Path, time.Since(start), requestID)
	})
}

// withRateLimit throttles by client IP.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientID(r)) {
			w.Header().Set("Retry-After", "1")
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// clientID extracts the client identifier (IP) from the request.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
