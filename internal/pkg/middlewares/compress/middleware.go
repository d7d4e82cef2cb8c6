package compress

import (
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
)

// Middleware сжимает JSON-ответы на GET в brotli, если клиент это поддерживает.
// Ответ с собственным Content-Encoding (например, gzip от promhttp) и не-JSON ответы проходят без изменений.
func Middleware(level int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || !acceptsBrotli(r.Header.Get("Accept-Encoding")) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Accept-Encoding")

			bw := &brotliResponseWriter{ResponseWriter: w, level: level}
			defer bw.close()

			next.ServeHTTP(bw, r)
		})
	}
}

// acceptsBrotli учитывает явный отказ вида "br;q=0".
func acceptsBrotli(header string) bool {
	for _, part := range strings.Split(header, ",") {
		params := strings.Split(part, ";")
		if strings.TrimSpace(params[0]) != "br" {
			continue
		}
		for _, p := range params[1:] {
			if q, ok := strings.CutPrefix(strings.TrimSpace(p), "q="); ok {
				if v, err := strconv.ParseFloat(q, 64); err == nil && v == 0 {
					return false
				}
			}
		}
		return true
	}
	return false
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// brotliResponseWriter решает, сжимать ли ответ, на первом WriteHeader или Write,
// когда заголовки обработчика уже выставлены.
type brotliResponseWriter struct {
	http.ResponseWriter
	level   int
	decided bool
	writer  *brotli.Writer
}

func (w *brotliResponseWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true

	h := w.ResponseWriter.Header()
	if h.Get("Content-Encoding") != "" || !isJSON(h.Get("Content-Type")) {
		return
	}

	h.Set("Content-Encoding", "br")
	h.Del("Content-Length")
	w.writer = brotli.NewWriterLevel(w.ResponseWriter, w.level)
}

func (w *brotliResponseWriter) WriteHeader(code int) {
	w.decide()
	w.ResponseWriter.WriteHeader(code)
}

func (w *brotliResponseWriter) Write(b []byte) (int, error) {
	w.decide()
	if w.writer == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.writer.Write(b)
}

func (w *brotliResponseWriter) close() {
	if w.writer != nil {
		_ = w.writer.Close()
	}
}
