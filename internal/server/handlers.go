package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/microcharts/pkg/buildinfo"
	"github.com/matzehuels/microcharts/pkg/errors"
	chartio "github.com/matzehuels/microcharts/pkg/io"
	"github.com/matzehuels/microcharts/pkg/observability"
	"github.com/matzehuels/microcharts/pkg/pipeline"
)

// CacheHeader reports whether a rendered body came from the cache.
const CacheHeader = "X-Cache"

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Version:   buildinfo.Version,
		Timestamp: time.Now().UTC(),
	})
}

// handleLayout returns the chart (with overrides applied) and its geometry.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serveFormat(w, r, pipeline.FormatJSON)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(chi.URLParam(r, "format"))
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.serveFormat(w, r, format)
}

func (s *Server) serveFormat(w http.ResponseWriter, r *http.Request, format string) {
	opts, err := queryOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	def, err := s.readDefinition(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), def, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit() {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(CacheHeader, cacheStatus)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) readDefinition(w http.ResponseWriter, r *http.Request) (chartio.Definition, error) {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	defer body.Close()

	format := chartio.FormatJSON
	if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "toml") {
		format = chartio.FormatTOML
	}
	return chartio.Read(body, format)
}

// queryOptions maps query parameters onto pipeline options.
func queryOptions(q url.Values) (pipeline.Options, error) {
	var opts pipeline.Options
	var err error
	if opts.Width, err = floatParam(q, "width"); err != nil {
		return opts, err
	}
	if opts.Height, err = floatParam(q, "height"); err != nil {
		return opts, err
	}
	if opts.Scale, err = floatParam(q, "scale"); err != nil {
		return opts, err
	}
	opts.Title = q.Get("title")
	opts.Kind = q.Get("kind")
	opts.Orientation = q.Get("orientation")
	return opts, nil
}

func floatParam(q url.Values, name string) (float64, error) {
	s := q.Get(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a number", name, s)
	}
	return v, nil
}

// statusFor maps an error to an HTTP status code.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return errors.HTTPStatus(err)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	id := RequestID(ctx)
	observability.HTTP().OnError(ctx, r.Method, routePattern(r), id, err)

	status := statusFor(err)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", id, "error", err)
		msg = http.StatusText(status)
	}
	s.writeJSON(w, status, ErrorResponse{
		Error:     msg,
		Code:      string(errors.GetCode(err)),
		RequestID: id,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}
