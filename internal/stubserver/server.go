// Package stubserver serves a deterministic stand-in for the remote sales
// prediction API, for local development and tests.
package stubserver

import (
	"context"
	"errors"
	"hash/fnv"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tinytelemetry/salesdash/internal/model"
)

const (
	defaultAddr = "127.0.0.1:8000"

	description = "Sales prediction stub. GET /sales/stores/items/ for a store/item prediction, " +
		"GET /sales/national/ for a 7-day national forecast."
	repoLink = "https://github.com/tinytelemetry/salesdash"
)

// weekday multipliers applied to the national baseline, Sunday first.
var weekdayFactor = [7]float64{1.18, 0.92, 0.88, 0.86, 0.90, 1.04, 1.22}

// Server provides the stub HTTP API.
type Server struct {
	addr      string
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
	logger    *slog.Logger
	fixture   Fixture
}

// NewServer creates a new stub server.
func NewServer(addr string, logger *slog.Logger) *Server {
	if addr == "" {
		addr = defaultAddr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:      addr,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
		logger:    logger,
		fixture:   DefaultFixture(),
	}
}

// UseFixture replaces the canned responses. Call before Run or Handler.
func (s *Server) UseFixture(f Fixture) {
	s.fixture = f
}

// Handler returns the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), s.injectFailures())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.GET("/sales/stores/items/", s.handlePredict)
	r.GET("/sales/national/", s.handleNational)
	return r
}

// Run serves until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.startTime = time.Now()
	s.logger.Info("stub server listening", "addr", listener.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

// injectFailures answers paths listed in the fixture's fail table with the
// configured status.
func (s *Server) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		if code, ok := s.fixture.Fail[c.Request.URL.Path]; ok {
			c.AbortWithStatusJSON(code, gin.H{"error": http.StatusText(code)})
			return
		}
		c.Next()
	}
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"Description":      s.fixture.Description,
		"github_repo_link": s.fixture.RepoLink,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

func (s *Server) handlePredict(c *gin.Context) {
	var req struct {
		ItemID  string `form:"item_id" binding:"required"`
		StoreID string `form:"store_id" binding:"required"`
		Date    string `form:"date" binding:"required"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id, store_id and date are required"})
		return
	}
	day, err := time.Parse(model.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	volume, ok := s.fixture.prediction(req.ItemID, req.StoreID)
	if !ok {
		volume = PredictItem(req.ItemID, req.StoreID, day)
	}
	c.JSON(http.StatusOK, gin.H{"prediction": volume})
}

func (s *Server) handleNational(c *gin.Context) {
	start, err := time.Parse(model.DateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	// ISO dates sort chronologically, so the encoder's sorted map keys
	// come out in forecast order.
	out := make(map[string]float64, model.DefaultForecastDays)
	for i := 0; i < model.DefaultForecastDays; i++ {
		day := start.AddDate(0, 0, i)
		out[day.Format(model.DateLayout)] = nationalVolume(s.fixture.NationalBaseline, day)
	}
	c.JSON(http.StatusOK, out)
}

// PredictItem returns a deterministic volume for an item/store/date.
func PredictItem(itemID, storeID string, day time.Time) float64 {
	h := fnv.New32a()
	_, _ = io.WriteString(h, strings.ToUpper(itemID)+"|"+strings.ToUpper(storeID))
	base := float64(h.Sum32()%4000)/100 + 1
	return round2(base * weekdayFactor[day.Weekday()])
}

// NationalVolume returns a deterministic national volume for day.
func NationalVolume(day time.Time) float64 {
	return nationalVolume(defaultBaseline, day)
}

func nationalVolume(baseline float64, day time.Time) float64 {
	// Slow yearly cycle on top of the weekly shape.
	season := 1 + 0.08*math.Sin(2*math.Pi*float64(day.YearDay())/365)
	return round2(baseline * season * weekdayFactor[day.Weekday()])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
