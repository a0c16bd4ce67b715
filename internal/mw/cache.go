package mw

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type bodyCacheWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	maxAge string
}

// stampFreshness advertises cacheability for the response about to go out.
// Only responses the middleware would store may carry it: a 500 with a
// freshness header would let shared caches make a transient failure sticky.
func (w *bodyCacheWriter) stampFreshness(status int) {
	if status >= 200 && status < 300 {
		w.ResponseWriter.Header().Set("Cache-Control", w.maxAge)
	}
}

func (w *bodyCacheWriter) WriteHeader(code int) {
	w.stampFreshness(code)
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	if !w.Written() {
		w.stampFreshness(w.Status())
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCacheWriter) WriteString(s string) (int, error) {
	if !w.Written() {
		w.stampFreshness(w.Status())
	}
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Cache is a middleware for in-memory caching of GET responses, keyed by
// request URI. Cached responses carry a public Cache-Control header so
// intermediaries may reuse them for the same duration.
func Cache(store *cache.Cache, duration time.Duration) gin.HandlerFunc {
	maxAge := fmt.Sprintf("public, max-age=%d", int(duration.Seconds()))

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if resp, found := store.Get(key); found {
			cached := resp.(cachedResponse)
			for k, v := range cached.headers {
				c.Writer.Header()[k] = v
			}
			c.Writer.WriteHeader(cached.status)
			c.Writer.Write(cached.body)
			c.Abort()
			return
		}

		blw := &bodyCacheWriter{body: bytes.NewBuffer(nil), maxAge: maxAge, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		// Only cache successful responses.
		if blw.Status() >= 200 && blw.Status() < 300 {
			response := cachedResponse{
				status:  blw.Status(),
				headers: blw.Header().Clone(),
				body:    blw.body.Bytes(),
			}
			store.Set(key, response, duration)
		}
	}
}
