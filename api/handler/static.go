package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Static serves files from dir for any GET or HEAD that matched no route.
// "/" resolves to dir/index.html.
func Static(dir string) gin.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.Status(http.StatusNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}
