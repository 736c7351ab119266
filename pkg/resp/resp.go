package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Invalid reports per-field validation errors.
func Invalid(c *gin.Context, status int, msg string, fields map[string]string) {
	c.JSON(status, gin.H{"ok": false, "error": msg, "fields": fields})
}

// WantsJSON reports whether the client asked for JSON over HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) == binding.MIMEJSON
}

// Context keys read by Page so every template can draw the navigation bar.
const (
	StaffKey = "staff"
	NavKey   = "nav"
)

// Page renders an HTML template for browsers.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Staff"]; !ok {
		data["Staff"], _ = c.Get(StaffKey)
	}
	if _, ok := data["Nav"]; !ok {
		data["Nav"], _ = c.Get(NavKey)
	}
	c.HTML(status, name, data)
}

// Fail answers an error in the format the client asked for.
func Fail(c *gin.Context, status int, msg string) {
	if WantsJSON(c) {
		c.JSON(status, gin.H{"ok": false, "error": msg})
		return
	}
	Page(c, status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": msg,
	})
}
