package middleware

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookieName holds the one-shot user-visible message. The value is
// displayed exactly once: TakeFlash clears the cookie in the same request
// that reads it.
const flashCookieName = "clinic_flash"

// SetFlash stores a one-shot message for the next rendered page.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookieName, url.QueryEscape(message), 300, "/", "", false, true)
}

// TakeFlash returns the pending flash message, if any, and clears it so it
// cannot be shown again.
func TakeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
