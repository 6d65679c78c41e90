package middleware

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"net"
	"strings"

	"podinfo/internal/config"

	"github.com/gin-gonic/gin"
)

// Media types that are already compressed
var excludedContentTypes = []string{
	"image/",
	"video/",
	"audio/",
	"application/gzip",
	"application/zip",
}

// shouldCompress checks if the response should be compressed based on content type
func shouldCompress(contentType string) bool {
	for _, excluded := range excludedContentTypes {
		if strings.HasPrefix(contentType, excluded) {
			return false
		}
	}
	return true
}

// acceptsGzip reports whether the Accept-Encoding header lists gzip with a non-zero quality
func acceptsGzip(header string) bool {
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		q := strings.ReplaceAll(params, " ", "")
		return q != "q=0" && q != "q=0.0" && q != "q=0.00" && q != "q=0.000"
	}
	return false
}

// Compression buffers the response body and gzips it when the client accepts
// gzip and the body reaches cfg.MinLength
func Compression(cfg config.CompressionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !acceptsGzip(c.GetHeader("Accept-Encoding")) {
			c.Next()
			return
		}

		gw := &gzipResponseWriter{
			ResponseWriter: c.Writer,
			minLength:      cfg.MinLength,
			level:          cfg.Level,
			buf:            new(bytes.Buffer),
		}
		c.Writer = gw
		c.Header("Vary", "Accept-Encoding")

		c.Next()

		if err := gw.finish(); err != nil {
			_ = c.Error(err)
		}
		c.Writer = gw.ResponseWriter
	}
}

type gzipResponseWriter struct {
	gin.ResponseWriter
	minLength int
	level     int
	buf       *bytes.Buffer
	hijacked  bool
}

func (g *gzipResponseWriter) Write(data []byte) (int, error) {
	return g.buf.Write(data)
}

func (g *gzipResponseWriter) WriteString(s string) (int, error) {
	return g.buf.WriteString(s)
}

// Size reports the uncompressed bytes written so far
func (g *gzipResponseWriter) Size() int {
	return g.buf.Len()
}

// Written is true once the handler produced a body or a header was flushed
func (g *gzipResponseWriter) Written() bool {
	return g.buf.Len() > 0 || g.ResponseWriter.Written()
}

// Flush is a no-op while buffering; the body goes out in finish
func (g *gzipResponseWriter) Flush() {}

func (g *gzipResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	g.hijacked = true
	return g.ResponseWriter.Hijack()
}

func (g *gzipResponseWriter) finish() error {
	if g.hijacked {
		return nil
	}
	content := g.buf.Bytes()
	if len(content) == 0 {
		return nil
	}

	if len(content) < g.minLength || !shouldCompress(g.Header().Get("Content-Type")) {
		_, err := g.ResponseWriter.Write(content)
		return err
	}

	gz, err := gzip.NewWriterLevel(g.ResponseWriter, g.level)
	if err != nil {
		return err
	}
	g.Header().Set("Content-Encoding", "gzip")
	g.Header().Del("Content-Length")

	if _, err := gz.Write(content); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
