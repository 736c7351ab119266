package resp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestWantsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := map[string]bool{
		"":                                  false,
		"text/html,application/xhtml+xml":   false,
		"application/json":                  true,
		"application/json, text/plain, */*": true,
		"*/*":                               false,
	}
	for accept, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if accept != "" {
			c.Request.Header.Set("Accept", accept)
		}
		if got := WantsJSON(c); got != want {
			t.Errorf("Accept %q: WantsJSON = %v, want %v", accept, got, want)
		}
	}
}

func TestFailJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Accept", "application/json")

	Fail(c, http.StatusNotFound, "gone")
	if w.Code != http.StatusNotFound || w.Body.String() != `{"error":"gone","ok":false}` {
		t.Errorf("Fail = %d %s", w.Code, w.Body.String())
	}
}
