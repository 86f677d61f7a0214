package activity

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type addRequest struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

func NewAPI(logger *slog.Logger, activityService *Service, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /workouts", handleAddWorkout(logger, activityService))
	mux.Handle("GET /workouts", handleListWorkouts(logger, activityService))
	mux.Handle("GET /workouts/{id}", handleGetWorkout(logger, activityService))
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}

func handleAddWorkout(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("Error decoding workout", slog.Any("error", err))
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		workout, err := activityService.Add(r.Context(), req.Type, req.Data)
		if err != nil {
			var unsupported *UnsupportedWorkoutError
			var arity *ArityError
			var count *CountError
			switch {
			case errors.As(err, &unsupported), errors.As(err, &arity), errors.As(err, &count), errors.Is(err, ErrNonFinite):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				logger.Error("Error adding workout", slog.Any("error", err))
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		writeJSON(logger, w, http.StatusCreated, workout)
	})
}

func handleListWorkouts(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workouts, err := activityService.List(r.Context())
		if err != nil {
			logger.Error("Error getting workouts", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, workouts)
	})
}

func handleGetWorkout(logger *slog.Logger, activityService *Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		workout, err := activityService.Get(r.Context(), id)
		if errors.Is(err, ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			logger.Error("Error getting workout", slog.Any("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		writeJSON(logger, w, http.StatusOK, workout)
	})
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Error encoding response", slog.Any("error", err))
	}
}
