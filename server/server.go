// Exposes the conversion over HTTP.
//
//	POST /convert   SVG body -> vector drawable XML
//	POST /preview   SVG body -> PNG rendering
//	GET  /health
//
// Conversions are cached by content, so that repeated uploads
// of the same icon are served from memory.
package server

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/benoitkugler/svg2avd/avd"
	"github.com/benoitkugler/svg2avd/svgraster"
)

const (
	defaultMaxUploadSize = 10 << 20 // 10MB
	defaultPreviewScale  = 4

	cacheHeader     = "X-Cache"
	requestIDHeader = "X-Request-ID"
)

// Options configures a Server.
type Options struct {
	// Convert is used when the request does not
	// specify an error mode.
	Convert avd.Options

	// CacheMaxCost is the total size in bytes of the cached
	// responses. A non positive value disables the cache.
	CacheMaxCost int64

	// MaxUploadSize limits the request bodies, defaulting to 10MB.
	MaxUploadSize int64

	// PreviewScale is the default scale of the PNG previews.
	PreviewScale float64

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Server handles conversion requests.
type Server struct {
	opts   Options
	cache  *ristretto.Cache // nil when disabled
	router *mux.Router
	log    *slog.Logger
}

// New returns a server ready to be used as http.Handler.
// Close should be called to release the cache.
func New(opts Options) (*Server, error) {
	if opts.MaxUploadSize <= 0 {
		opts.MaxUploadSize = defaultMaxUploadSize
	}
	if opts.PreviewScale <= 0 {
		opts.PreviewScale = defaultPreviewScale
	}
	s := &Server{opts: opts, log: opts.Logger}
	if s.log == nil {
		s.log = slog.Default()
	}
	if opts.CacheMaxCost > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e5,
			MaxCost:     opts.CacheMaxCost,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}
		s.cache = cache
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.HandleFunc("/convert", s.Convert).Methods("POST")
	r.HandleFunc("/preview", s.Preview).Methods("POST")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	s.router = r
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases the cache.
func (s *Server) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

// readBody returns the request body, or writes the error
// response and returns false.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadSize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, fmt.Sprintf("svg too large (max %d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	if len(body) == 0 {
		http.Error(w, "empty body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// cacheKey identifies a response by its endpoint, parameters and input.
func cacheKey(endpoint, params string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(endpoint))
	h.Write([]byte{0})
	h.Write([]byte(params))
	h.Write([]byte{0})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func (s *Server) cached(key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	out, ok := v.([]byte)
	return out, ok
}

func (s *Server) store(key string, out []byte) {
	if s.cache == nil {
		return
	}
	s.cache.Set(key, out, int64(len(out)))
	s.cache.Wait()
}

func writeResult(w http.ResponseWriter, contentType string, out []byte, hit bool) {
	w.Header().Set("Content-Type", contentType)
	if hit {
		w.Header().Set(cacheHeader, "HIT")
	} else {
		w.Header().Set(cacheHeader, "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// convertOptions applies the request query on top of the server defaults.
func (s *Server) convertOptions(r *http.Request) (avd.Options, error) {
	opts := s.opts.Convert
	if mode := r.URL.Query().Get("errors"); mode != "" {
		var err error
		if opts.ErrorMode, err = avd.ParseErrorMode(mode); err != nil {
			return opts, err
		}
	}
	return opts, nil
}

// Convert handles POST /convert: the body is a SVG document,
// and the response the vector drawable.
// The optional "errors" query parameter selects the error mode.
func (s *Server) Convert(w http.ResponseWriter, r *http.Request) {
	opts, err := s.convertOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	key := cacheKey("convert", fmt.Sprintf("%s/%t", opts.ErrorMode, opts.OmitDeclaration), body)
	if out, ok := s.cached(key); ok {
		writeResult(w, "application/xml; charset=utf-8", out, true)
		return
	}

	out, err := avd.ConvertBytes(body, opts)
	if err != nil {
		http.Error(w, "conversion failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.store(key, out)
	writeResult(w, "application/xml; charset=utf-8", out, false)
}

// Preview handles POST /preview: the body is a SVG document,
// and the response its PNG rendering.
// The optional "scale" query parameter overrides the default scale.
func (s *Server) Preview(w http.ResponseWriter, r *http.Request) {
	scale := s.opts.PreviewScale
	if v := r.URL.Query().Get("scale"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			http.Error(w, "invalid scale", http.StatusBadRequest)
			return
		}
		scale = f
	}
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	key := cacheKey("preview", strconv.FormatFloat(scale, 'g', -1, 64), body)
	if out, ok := s.cached(key); ok {
		writeResult(w, "image/png", out, true)
		return
	}

	var buf bytes.Buffer
	if err := svgraster.WritePNG(&buf, bytes.NewReader(body), scale); err != nil {
		http.Error(w, "rendering failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	out := buf.Bytes()
	s.store(key, out)
	writeResult(w, "image/png", out, false)
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// logRequests tags each request with an ID and logs its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
