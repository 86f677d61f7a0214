package activity

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_AddGetList(t *testing.T) {
	svc, _, registry := newTestService(t)
	mux := NewAPI(svc.logger, svc, registry)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader(`{"type":"RUN","data":[15000,1,75]}`))
	mux.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var added Stored
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &added))
	assert.Equal(t, "RUN", added.Code)
	assert.Equal(t, "Running", added.Info.TrainingType)
	assert.InDelta(t, 699.75, added.Info.Calories, 1e-9)
	assert.Contains(t, added.Message, "Потрачено ккал: 699.750.")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/workouts/"+added.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got Stored
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, added.Message, got.Message)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/workouts", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var list []Stored
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, added.ID, list[0].ID)
}

func TestAPI_AddBadRequests(t *testing.T) {
	svc, _, registry := newTestService(t)
	mux := NewAPI(svc.logger, svc, registry)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"type":`},
		{"unsupported type", `{"type":"XYZ","data":[1,1,1]}`},
		{"missing readings", `{"type":"WLK","data":[9000,1,75]}`},
		{"zero duration", `{"type":"SWM","data":[720,0,80,25,40]}`},
		{"fractional steps", `{"type":"RUN","data":[15000.5,1,75]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/workouts", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestAPI_GetMissing(t *testing.T) {
	svc, _, registry := newTestService(t)
	mux := NewAPI(svc.logger, svc, registry)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/workouts/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_Metrics(t *testing.T) {
	svc, _, registry := newTestService(t)
	mux := NewAPI(svc.logger, svc, registry)

	_, err := svc.Summarise("SWM", []float64{720, 1, 80, 25, 40})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `fittrack_workouts_computed_total{training_type="Swimming"} 1`)
}
