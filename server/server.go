package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/gripdex/chord"
	"github.com/jsphweid/gripdex/config"
	"github.com/jsphweid/gripdex/grip"
	"github.com/jsphweid/gripdex/model"
	"github.com/jsphweid/gripdex/score"
	"github.com/jsphweid/gripdex/util"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

// maxBodyBytes caps the size of a request body.
const maxBodyBytes = 64 << 10

var errNoNotes = errors.New("notes are required")

type Server struct {
	logger  *zap.Logger
	tuning  model.Tuning
	opts    grip.Options
	origins []string

	mu    sync.Mutex
	cache *lru.Cache
}

func New(cfg config.Config, logger *zap.Logger) (*Server, error) {
	tuning, err := cfg.ResolvedTuning()
	if err != nil {
		return nil, err
	}
	opts := cfg.GeneratorOptions()
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("generator config: %w", err)
	}
	return &Server{
		logger:  logger,
		tuning:  tuning,
		opts:    opts,
		origins: cfg.ResolvedAllowedOrigins(),
		cache:   lru.New(cfg.ResolvedCacheSize()),
	}, nil
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.requestID)
	router.HandleFunc("/grips", s.HandleGrips).Methods(http.MethodPost)
	router.HandleFunc("/tuning", s.HandleTuning).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{RequestIDHeader},
	})
	return c.Handler(router)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		s.logger.Debug("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) HandleTuning(w http.ResponseWriter, r *http.Request) {
	res := model.TuningResponse{Tuning: s.tuning.String()}
	for _, p := range s.tuning {
		res.Pitches = append(res.Pitches, p.String())
		res.MIDI = append(res.MIDI, int(p.MIDI()))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) HandleGrips(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}

	var input model.GripsRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("could not unmarshal request body: %w", err))
		return
	}

	spec, tuning, opts, err := s.parse(input)
	if err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}

	key := fmt.Sprintf("%s|%s|%+v", chord.Key(spec), tuning, opts)
	ranked, ok := s.cached(key)
	if !ok {
		ranked, err = score.Rank(r.Context(), spec, tuning, opts)
		if err != nil {
			s.fail(w, r, http.StatusInternalServerError, err)
			return
		}
		s.store(key, ranked)
	}
	s.logger.Debug("grips",
		zap.String("chord", chord.Key(spec)),
		zap.Int("num_grips", len(ranked)),
		zap.Bool("cached", ok))

	limit := len(ranked)
	if input.Limit > 0 {
		limit = util.Clamp(input.Limit, 0, len(ranked))
	}
	res := model.GripsResponse{NumGrips: len(ranked), Results: make([]model.GripResult, 0, limit)}
	for _, tg := range ranked[:limit] {
		res.Results = append(res.Results, Result(tg))
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) parse(input model.GripsRequestBody) (model.ChordSpec, model.Tuning, grip.Options, error) {
	var spec model.ChordSpec
	tuning := s.tuning
	opts := s.opts.Override(input.Options)

	root, err := model.ParsePitchClass(input.Root)
	if err != nil {
		return spec, tuning, opts, fmt.Errorf("root: %w", err)
	}
	spec.Root = root

	if len(input.Notes) == 0 {
		return spec, tuning, opts, errNoNotes
	}
	for _, n := range input.Notes {
		pc, err := model.ParsePitchClass(n)
		if err != nil {
			return spec, tuning, opts, fmt.Errorf("notes: %w", err)
		}
		spec.Notes = append(spec.Notes, pc)
	}

	if input.Bass != "" {
		bass, err := model.ParsePitchClass(input.Bass)
		if err != nil {
			return spec, tuning, opts, fmt.Errorf("bass: %w", err)
		}
		spec.Bass = &bass
	}

	if input.Tuning != "" {
		tuning, err = model.ParseTuning(input.Tuning)
		if err != nil {
			return spec, tuning, opts, fmt.Errorf("tuning: %w", err)
		}
	}

	if err := opts.Validate(); err != nil {
		return spec, tuning, opts, err
	}
	if err := opts.WithinLimits(); err != nil {
		return spec, tuning, opts, err
	}
	return spec, tuning, opts, nil
}

func (s *Server) cached(key string) ([]model.TunedGrip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]model.TunedGrip), true
}

func (s *Server) store(key string, ranked []model.TunedGrip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(key, ranked)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Info("request failed",
		zap.String("id", w.Header().Get(RequestIDHeader)),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err))
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// Result is the wire form of a ranked grip.
func Result(tg model.TunedGrip) model.GripResult {
	return model.GripResult{
		Grip:      tg.Grip.String(),
		Notes:     tg.NoteNames(),
		Inversion: tg.Inversion.String(),
		Score:     score.Score(tg),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
