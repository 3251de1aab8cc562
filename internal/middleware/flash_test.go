package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newFlashRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/set", func(c *gin.Context) {
		SetFlash(c, "Company not found with ID: 12")
		c.Status(http.StatusOK)
	})
	router.GET("/take", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", TakeFlash(c))
	})
	return router
}

func flashCookie(w *httptest.ResponseRecorder) *http.Cookie {
	res := w.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == flashCookieName {
			return cookie
		}
	}
	return nil
}

func TestFlash_SetThenTake(t *testing.T) {
	router := newFlashRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/set", nil))
	cookie := flashCookie(w)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("SetFlash did not set the flash cookie")
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/take", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: cookie.Value})
	router.ServeHTTP(w, req)

	if got := w.Body.String(); got != "Company not found with ID: 12" {
		t.Fatalf("flash message = %q", got)
	}
	// Read-once: taking the flash clears the cookie in the same response.
	cleared := flashCookie(w)
	if cleared == nil || cleared.Value != "" || cleared.MaxAge >= 0 {
		t.Fatalf("flash cookie not cleared: %+v", cleared)
	}
}

func TestFlash_TakeWithoutPendingMessage(t *testing.T) {
	router := newFlashRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/take", nil))

	if got := w.Body.String(); got != "" {
		t.Fatalf("flash message = %q, want empty", got)
	}
	if flashCookie(w) != nil {
		t.Fatal("TakeFlash should not touch the cookie when none is pending")
	}
}
