package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/seedglyph/pkg/buildinfo"
	"github.com/matzehuels/seedglyph/pkg/errors"
	"github.com/matzehuels/seedglyph/pkg/pipeline"
	"github.com/matzehuels/seedglyph/pkg/render"
	"github.com/matzehuels/seedglyph/pkg/seed"
	"github.com/matzehuels/seedglyph/pkg/sketch"
)

// Response headers describing a render.
const (
	SeedHeader  = "X-Seed"
	CacheHeader = "X-Cache"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSketches(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sketch.Registry())
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	tok, err := seed.NewToken(s.entropy)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, map[string]string{"seed": tok.String()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	kind, err := sketch.ParseKind(chi.URLParam(r, "sketch"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	if r.Method == http.MethodGet {
		if _, err := seed.ParseToken(q.Get("seed")); err != nil {
			s.redirectFresh(w, r, q)
			return
		}
	}

	opts, err := renderOptions(kind, q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if r.Method == http.MethodPost {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxSettingsBytes+1))
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "read settings"))
			return
		}
		if len(body) > maxSettingsBytes {
			s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "settings document larger than %d bytes", maxSettingsBytes))
			return
		}
		opts.Settings = body
		opts.FallbackOnBadToken = true
	}
	opts.Entropy = s.entropy
	opts.Logger = s.logger.With("id", RequestIDFrom(r.Context()))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	h := w.Header()
	h.Set("Content-Type", format.ContentType())
	h.Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", render.Filename(string(kind), res.Token.String(), format)))
	h.Set(SeedHeader, res.Token.String())
	if res.CacheInfo.RenderHit {
		h.Set(CacheHeader, "HIT")
	} else {
		h.Set(CacheHeader, "MISS")
	}
	if r.Method == http.MethodGet {
		h.Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// redirectFresh sends the client to the same render with a fresh seed.
func (s *Server) redirectFresh(w http.ResponseWriter, r *http.Request, q url.Values) {
	tok, err := seed.NewToken(s.entropy)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	q.Set("seed", tok.String())
	target := *r.URL
	target.RawQuery = q.Encode()
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target.RequestURI(), http.StatusFound)
}

// renderOptions reads the query parameters of a render request. The seed
// is passed through unchecked; GET requests validate it before this.
func renderOptions(kind sketch.Kind, q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Sketch: string(kind),
		Token:  q.Get("seed"),
	}

	format, err := render.ParseFormat(defaultString(q.Get("format"), string(render.FormatSVG)))
	if err != nil {
		return opts, err
	}
	opts.Formats = []render.Format{format}

	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", p.name, v)
		}
		*p.dst = f
	}

	if v := q.Get("embed_font"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "embed_font must be a boolean, got %q", v)
		}
		opts.EmbedFont = b
	}
	return opts, opts.ValidateAndSetDefaults()
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// errorResponse is the JSON body of every error.
type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err, "id", RequestIDFrom(r.Context()))
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{
		Error:     string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidSketch:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidSettings,
		errors.ErrCodeInvalidFormat, errors.ErrCodeMalformedToken:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
