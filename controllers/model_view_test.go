package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestDropBlankValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/staff/food/new/",
		strings.NewReader("name=Roll&stock=&price=+&is_done=true&is_done=false"))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	dropBlankValues(c)

	for _, k := range []string{"stock", "price"} {
		if _, ok := c.Request.PostForm[k]; ok {
			t.Errorf("%s still present", k)
		}
	}
	if c.Request.PostForm.Get("name") != "Roll" || len(c.Request.Form["is_done"]) != 2 {
		t.Errorf("non-blank values changed: %v", c.Request.Form)
	}

	var form FoodForm
	if err := c.ShouldBind(&form); err == nil {
		t.Fatal("blank stock and price bound without error")
	}
	if form.Stock != nil || form.Price != nil {
		t.Errorf("stock=%v price=%v, want nil", form.Stock, form.Price)
	}
}
