package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsphweid/gripdex/config"
	"github.com/jsphweid/gripdex/constants"
	"github.com/jsphweid/gripdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv(constants.TuningEnv, "")
	s, err := New(config.Config{}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func postGrips(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/grips", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:4200")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestGripsForCMajor(t *testing.T) {
	s := newTestServer(t)
	w := postGrips(t, s.Handler(), model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G"}})

	require.Equal(t, http.StatusOK, w.Code)
	assert := assert.New(t)
	assert.NotEmpty(w.Header().Get(RequestIDHeader))
	assert.NotEmpty(w.Header().Get("Access-Control-Allow-Origin"))

	var res model.GripsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(len(res.Results), res.NumGrips)

	var found bool
	for i, r := range res.Results {
		if i > 0 {
			assert.LessOrEqual(res.Results[i-1].Score, r.Score)
		}
		if r.Grip == "x|3|2|o|1|o" {
			found = true
			assert.Equal([]string{"", "C3", "E3", "G3", "C4", "E4"}, r.Notes)
			assert.Equal("root", r.Inversion)
			assert.Equal(3.5, r.Score)
		}
	}
	assert.True(found)
}

func TestGripsLimitAndCache(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()
	body := model.GripsRequestBody{Root: "F", Notes: []string{"F", "A", "C"}}

	var full model.GripsResponse
	w := postGrips(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &full))

	body.Limit = 3
	var limited model.GripsResponse
	w = postGrips(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &limited))

	assert := assert.New(t)
	assert.Equal(full.NumGrips, limited.NumGrips)
	assert.Equal(full.Results[:3], limited.Results)
	assert.Equal(1, s.cache.Len())

	body.Limit = 100000
	w = postGrips(t, h, body)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGripsWithBassAndOptions(t *testing.T) {
	s := newTestServer(t)
	inversions := false
	w := postGrips(t, s.Handler(), model.GripsRequestBody{
		Root:    "C",
		Notes:   []string{"C", "E", "G"},
		Options: &model.GripOptions{AllowInversions: &inversions},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res model.GripsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Results)
	for _, r := range res.Results {
		assert.Equal(t, "root", r.Inversion, r.Grip)
	}

	w = postGrips(t, s.Handler(), model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G"}, Bass: "G"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	for _, r := range res.Results {
		assert.Equal(t, "2nd", r.Inversion, r.Grip)
	}
}

func TestGripsRejectsBadInput(t *testing.T) {
	zero := 0
	cases := map[string]any{
		"bad root":    model.GripsRequestBody{Root: "H", Notes: []string{"C"}},
		"no notes":    model.GripsRequestBody{Root: "C"},
		"bad note":    model.GripsRequestBody{Root: "C", Notes: []string{"C", "X"}},
		"bad bass":    model.GripsRequestBody{Root: "C", Notes: []string{"C"}, Bass: "Q"},
		"bad tuning":  model.GripsRequestBody{Root: "C", Notes: []string{"C"}, Tuning: "E2 A2"},
		"bad options": model.GripsRequestBody{Root: "C", Notes: []string{"C"}, Options: &model.GripOptions{MinFret: &zero}},
		"not json":    "just a string",
		"fret too high": model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G"},
			Options: &model.GripOptions{MaxFret: ptr(3000)}},
		"window too wide": model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G", "B", "D"},
			Options: &model.GripOptions{WindowSpan: ptr(12)}},
		"too many fingers": model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G"},
			Options: &model.GripOptions{FingerBudget: ptr(7)}},
		"everything too large": model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G", "B", "D"},
			Options: &model.GripOptions{MaxFret: ptr(3000), WindowSpan: ptr(12), FingerBudget: ptr(6)}},
	}

	s := newTestServer(t)
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := postGrips(t, s.Handler(), body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.NotEmpty(t, res.Error)
		})
	}
}

func TestTuning(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/tuning", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res model.TuningResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	assert := assert.New(t)
	assert.Equal("E2 A2 D3 G3 B3 E4", res.Tuning)
	assert.Equal([]string{"E2", "A2", "D3", "G3", "B3", "E4"}, res.Pitches)
	assert.Equal([]int{40, 45, 50, 55, 59, 64}, res.MIDI)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Setenv(constants.TuningEnv, "")
	_, err := New(config.Config{Tuning: "E2"}, zap.NewNop())
	assert.Error(t, err)
}

func ptr[T any](v T) *T {
	return &v
}

func TestGripsRejectsOversizedBody(t *testing.T) {
	body := model.GripsRequestBody{Root: "C", Notes: []string{"C", "E", "G"}, Tuning: strings.Repeat(" ", maxBodyBytes)}
	w := postGrips(t, newTestServer(t).Handler(), body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
