package router

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// acceptsBrotli reports whether the response may be brotli encoded.
// Upgrade requests are never compressed.
func acceptsBrotli(req *http.Request) bool {
	if req.Header.Get("Upgrade") != "" {
		return false
	}
	for _, enc := range strings.Split(req.Header.Get("Accept-Encoding"), ",") {
		name, _, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(name, "br") {
			return true
		}
	}
	return false
}

// brotliResponseWriter compresses the body once the handler writes its first byte.
// Responses with a body-less status or an error status pass through unencoded.
type brotliResponseWriter struct {
	http.ResponseWriter
	bw          *brotli.Writer
	wroteHeader bool
	compress    bool
}

func newBrotliResponseWriter(w http.ResponseWriter) *brotliResponseWriter {
	return &brotliResponseWriter{ResponseWriter: w}
}

func (b *brotliResponseWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.wroteHeader = true

	h := b.Header()
	b.compress = code >= 200 && code < 300 && code != http.StatusNoContent && h.Get("Content-Encoding") == ""
	if b.compress {
		h.Del("Content-Length")
		h.Set("Content-Encoding", "br")
		h.Add("Vary", "Accept-Encoding")
		b.bw = brotli.NewWriterLevel(b.ResponseWriter, brotli.DefaultCompression)
	}
	b.ResponseWriter.WriteHeader(code)
}

func (b *brotliResponseWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		if b.Header().Get("Content-Type") == "" {
			b.Header().Set("Content-Type", http.DetectContentType(p))
		}
		b.WriteHeader(http.StatusOK)
	}
	if b.compress {
		return b.bw.Write(p)
	}
	return b.ResponseWriter.Write(p)
}

func (b *brotliResponseWriter) Flush() {
	if b.bw != nil {
		b.bw.Flush()
	}
	if f, ok := b.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Close flushes the remaining compressed bytes
func (b *brotliResponseWriter) Close() error {
	if b.bw == nil {
		return nil
	}
	return b.bw.Close()
}
