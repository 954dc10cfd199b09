package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/strrl/socialgen/internal/pipeline"
	"github.com/strrl/socialgen/internal/songs"
	"github.com/strrl/socialgen/internal/tools"
)

const maxBodyBytes = 10 << 20

// Generator executes a registered tool.
type Generator interface {
	Execute(ctx context.Context, tool *tools.Tool, values tools.Values) (*pipeline.Result, error)
}

// SongSource serves the trending-songs list with the day it belongs to.
type SongSource interface {
	Today(ctx context.Context) (string, []songs.Song)
}

type Options struct {
	Registry  *tools.Registry
	Generator Generator
	Songs     SongSource
	Logger    logrus.FieldLogger
}

type Server struct {
	registry  *tools.Registry
	generator Generator
	songs     SongSource
	log       logrus.FieldLogger
}

type errorBody struct {
	Error apiError `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type runRequest struct {
	Values map[string]string `json:"values"`
}

type toolSummary struct {
	ID           string         `json:"id"`
	Platform     tools.Platform `json:"platform"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Icon         string         `json:"icon"`
	SubmitLabel  string         `json:"submit_label"`
	Format       tools.Format   `json:"format"`
	UseGrounding bool           `json:"use_grounding"`
	Fields       []tools.Field  `json:"fields"`
}

type songsResponse struct {
	Day   string       `json:"day"`
	Songs []songs.Song `json:"songs"`
}

func New(opts Options) *Server {
	if opts.Registry == nil {
		opts.Registry = tools.Default()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return &Server{
		registry:  opts.Registry,
		generator: opts.Generator,
		songs:     opts.Songs,
		log:       opts.Logger.WithField("component", "server"),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(s.logging)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Route("/tools", func(r chi.Router) {
			r.Get("/", s.listTools)
			r.Get("/{id}", s.getTool)
			r.Post("/{id}/run", s.runTool)
		})
		api.Get("/songs", s.listSongs)
	})

	return r
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.WithFields(logrus.Fields{
			"request_id":  middleware.GetReqID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("http request")
	})
}

func (s *Server) listTools(w http.ResponseWriter, r *http.Request) {
	platform, err := tools.ParsePlatform(r.URL.Query().Get("platform"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_input", err.Error(), "platform")
		return
	}

	list := s.registry.List(tools.Filter{Platform: platform, Query: r.URL.Query().Get("q")})

	out := make([]toolSummary, 0, len(list))
	for _, tool := range list {
		out = append(out, summarize(tool))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTool(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.registry.Lookup(chi.URLParam(r, "id"))
	if !ok {
		writeErr(w, http.StatusNotFound, "tool_not_found", "tool not found", "")
		return
	}
	writeJSON(w, http.StatusOK, summarize(tool))
}

func (s *Server) runTool(w http.ResponseWriter, r *http.Request) {
	tool, ok := s.registry.Lookup(chi.URLParam(r, "id"))
	if !ok {
		writeErr(w, http.StatusNotFound, "tool_not_found", "tool not found", "")
		return
	}

	var req runRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid_json", "invalid request body", "")
		return
	}

	values := tools.NewValues(req.Values)
	result, err := s.execute(r.Context(), tool, values)
	if err != nil {
		var verr *tools.ValidationError
		if errors.As(err, &verr) {
			writeErr(w, http.StatusBadRequest, "invalid_input", verr.Error(), verr.Field)
			return
		}
		s.log.WithError(err).WithFields(logrus.Fields{
			"tool":       tool.ID,
			"request_id": middleware.GetReqID(r.Context()),
		}).Error("generation failed")
		writeErr(w, http.StatusBadGateway, "generation_failed", pipeline.FailureMessage, "")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) execute(ctx context.Context, tool *tools.Tool, values tools.Values) (*pipeline.Result, error) {
	if err := tool.Validate(values); err != nil {
		return nil, err
	}
	return s.generator.Execute(ctx, tool, values)
}

func (s *Server) listSongs(w http.ResponseWriter, r *http.Request) {
	day, list := s.songs.Today(r.Context())
	writeJSON(w, http.StatusOK, songsResponse{Day: day, Songs: list})
}

func summarize(tool *tools.Tool) toolSummary {
	fields := tool.Fields
	if fields == nil {
		fields = []tools.Field{}
	}
	return toolSummary{
		ID:           tool.ID,
		Platform:     tool.Platform,
		Title:        tool.Display.Title,
		Description:  tool.Display.Description,
		Icon:         tool.Display.Icon,
		SubmitLabel:  tool.Display.SubmitLabel,
		Format:       tool.OutputFormat(),
		UseGrounding: tool.UseGrounding,
		Fields:       fields,
	}
}

func writeJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErr(w http.ResponseWriter, code int, errCode, message, field string) {
	writeJSON(w, code, errorBody{Error: apiError{Code: errCode, Message: message, Field: field}})
}
