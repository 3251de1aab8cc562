package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageData is the envelope every rendered page receives: the template's own
// fields plus shared chrome fields such as the logged-in user id.
type PageData map[string]interface{}

// RenderPage renders an HTML template with the shared page fields merged in.
// Handler-supplied keys win over the defaults.
func RenderPage(c *gin.Context, status int, template string, data PageData) {
	merged := PageData{}
	if userID, ok := c.Get("userID"); ok {
		merged["userID"] = userID
	}
	for k, v := range data {
		merged[k] = v
	}
	c.HTML(status, template, merged)
}

// Redirect issues a 302 to a logical route.
func Redirect(c *gin.Context, routeName string) {
	c.Redirect(http.StatusFound, RoutePath(routeName))
}
