package security

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func hit(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiterBlocksAndRecoversOnReload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var maxRequests atomic.Int64
	maxRequests.Store(2)

	router := gin.New()
	router.Use(RateLimiter(func() (int, time.Duration) {
		return int(maxRequests.Load()), time.Minute
	}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		if rec := hit(router, ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200 within the limit, got %d", i+1, rec.Code)
		}
	}
	if rec := hit(router, ""); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 past the limit, got %d", rec.Code)
	}

	// 热更新放宽限额后，限流器重建，被限的IP立刻恢复
	maxRequests.Store(100)
	if rec := hit(router, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after raising the limit, got %d", rec.Code)
	}
}

func TestRateLimiterUnlimitedWhenUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimiter(func() (int, time.Duration) { return 0, 0 }))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		if rec := hit(router, ""); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with limiter unset, got %d", rec.Code)
		}
	}
}

func TestCORSReadsCurrentOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var origins atomic.Value
	origins.Store([]string{"http://a.example"})

	router := gin.New()
	router.Use(CORS(func() []string {
		return origins.Load().([]string)
	}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := hit(router, "http://b.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for unlisted origin, got %q", got)
	}

	// 白名单热更新后同一Origin立即放行
	origins.Store([]string{"http://a.example", "http://b.example"})
	rec = hit(router, "http://b.example")
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://b.example" {
		t.Fatalf("expected allow-origin for newly listed origin, got %q", got)
	}
	if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatal("expected allow-credentials header for allowed origin")
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS(func() []string { return []string{"http://a.example"} }))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://a.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
}
