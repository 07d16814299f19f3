package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/evpulse/oem-sentiment-bot/internal/models"
	"github.com/evpulse/oem-sentiment-bot/internal/monitoring"
	"github.com/evpulse/oem-sentiment-bot/internal/sentiment"
	"github.com/evpulse/oem-sentiment-bot/internal/temporal"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	maxClassifyBody     = 5 << 20
	maxClassifyComments = 1000
	defaultTrendMonths  = 6
	maxTrendMonths      = 36
)

// monitor is the part of the monitoring service the HTTP API drives
type monitor interface {
	GetMetrics() string
	RunMonitoring(ctx context.Context) error
	RunUrgentCheck(ctx context.Context) error
	Trends(ctx context.Context, brand, query string, months int) (*monitoring.TrendReport, error)
}

type classifyRequest struct {
	Target   string           `json:"target"`
	Text     string           `json:"text"`
	Comments []models.Comment `json:"comments"`
}

type classifyResponse struct {
	LexiconVersion string                     `json:"lexicon_version"`
	Comments       []models.ClassifiedComment `json:"comments"`
	Summary        models.BatchSummary        `json:"summary"`
}

func newRouter(m monitor, classifier *sentiment.Classifier) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")
	router.HandleFunc("/metrics", metricsHandler(m)).Methods("GET")
	// Manual trigger; ?type=urgent runs the urgent check instead
	router.HandleFunc("/trigger", triggerHandler(m)).Methods("POST")
	router.HandleFunc("/classify", classifyHandler(classifier)).Methods("POST")
	router.HandleFunc("/trends", trendsHandler(m)).Methods("GET")

	return router
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func metricsHandler(m monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(m.GetMetrics()))
	}
}

func triggerHandler(m monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		urgent := r.URL.Query().Get("type") == "urgent"

		// The run outlives the request
		go func() {
			run, name := m.RunMonitoring, "monitoring"
			if urgent {
				run, name = m.RunUrgentCheck, "urgent check"
			}
			if err := run(context.Background()); err != nil {
				logrus.Errorf("Manual %s trigger failed: %v", name, err)
			}
		}()

		writeJSON(w, http.StatusAccepted, map[string]string{"message": "Monitoring triggered successfully"})
	}
}

func classifyHandler(classifier *sentiment.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxClassifyBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}

		comments := req.Comments
		if len(comments) == 0 && req.Text != "" {
			comments = []models.Comment{{ID: "text", Text: req.Text}}
		}
		if len(comments) == 0 {
			writeError(w, http.StatusBadRequest, "no comments to classify")
			return
		}
		if len(comments) > maxClassifyComments {
			writeError(w, http.StatusRequestEntityTooLarge, "too many comments, max "+strconv.Itoa(maxClassifyComments))
			return
		}

		target := classifier.ResolveBrand(req.Target)
		classified, err := classifier.ClassifyBatch(r.Context(), comments, target)
		if err != nil {
			logrus.Warnf("Classify request interrupted: %v", err)
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, classifyResponse{
			LexiconVersion: classifier.LexiconVersion(),
			Comments:       classified,
			Summary:        sentiment.Summarize(classified),
		})
	}
}

func trendsHandler(m monitor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		brand := q.Get("brand")
		if brand == "" {
			writeError(w, http.StatusBadRequest, "brand is required")
			return
		}

		months := defaultTrendMonths
		if v := q.Get("months"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxTrendMonths {
				writeError(w, http.StatusBadRequest, "months must be between 1 and "+strconv.Itoa(maxTrendMonths))
				return
			}
			months = n
		}

		report, err := m.Trends(r.Context(), brand, q.Get("query"), months)
		switch {
		case errors.Is(err, temporal.ErrNoPeriod), errors.Is(err, temporal.ErrInvalidPeriod):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case err != nil:
			logrus.Errorf("Trend query for %s failed: %v", brand, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
