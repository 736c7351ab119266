package utils

import (
	"cafestaff/entity"
	"cafestaff/pkg/resp"

	"github.com/gin-gonic/gin"
)

const (
	StaffKey     = resp.StaffKey
	RequestIDKey = "requestId"
)

// CurrentStaff returns the signed-in staff member, or nil for anonymous requests.
func CurrentStaff(c *gin.Context) *entity.Staff {
	if v, ok := c.Get(StaffKey); ok {
		if s, ok := v.(*entity.Staff); ok {
			return s
		}
	}
	return nil
}

func CurrentStaffID(c *gin.Context) uint {
	if s := CurrentStaff(c); s != nil {
		return s.ID
	}
	return 0
}

func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
