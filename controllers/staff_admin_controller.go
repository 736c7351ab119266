package controllers

import (
	"errors"
	"net/http"
	"time"

	"cafestaff/entity"
	"cafestaff/pkg/resp"
	"cafestaff/services"
	"cafestaff/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginForm struct {
	Login    string `form:"login" json:"login" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// SessionCookie controls how the session token is stored in the browser.
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// StaffAdminController serves the admin index, login and logout.
type StaffAdminController struct {
	Auth      *services.AuthService
	Dashboard *services.DashboardService
	Audit     Auditor
	Cookie    SessionCookie
	Log       *zap.Logger
}

// GET /staff/
func (a *StaffAdminController) Index(c *gin.Context) {
	staff := utils.CurrentStaff(c)
	if staff == nil {
		if resp.WantsJSON(c) {
			resp.Unauthorized(c, "login required")
			return
		}
		c.Redirect(http.StatusFound, "/staff/login/")
		return
	}

	stats, err := a.Dashboard.Stats(c.Request.Context())
	if err != nil {
		a.Log.Error("dashboard stats failed", zap.String("request_id", utils.RequestID(c)), zap.Error(err))
		if resp.WantsJSON(c) {
			resp.ServerError(c, err)
		} else {
			resp.Fail(c, http.StatusInternalServerError, "Something went wrong.")
		}
		return
	}

	if resp.WantsJSON(c) {
		nav, _ := c.Get(resp.NavKey)
		resp.OK(c, gin.H{"staff": staff, "stats": stats, "views": nav})
		return
	}
	resp.Page(c, http.StatusOK, "admin_index.html", gin.H{"Stats": stats})
}

// GET /staff/login/
func (a *StaffAdminController) LoginPage(c *gin.Context) {
	if utils.CurrentStaff(c) != nil {
		c.Redirect(http.StatusFound, "/staff/")
		return
	}
	a.renderLogin(c, http.StatusOK, LoginForm{}, nil)
}

// POST /staff/login/
func (a *StaffAdminController) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		fields, ok := utils.FieldErrors(err, &form)
		if !ok {
			if resp.WantsJSON(c) {
				resp.BadRequest(c, err.Error())
			} else {
				resp.Fail(c, http.StatusBadRequest, "The submitted form could not be read.")
			}
			return
		}
		if resp.WantsJSON(c) {
			resp.Invalid(c, http.StatusBadRequest, "validation failed", fields)
			return
		}
		a.renderLogin(c, http.StatusOK, form, fields)
		return
	}

	ctx := c.Request.Context()
	staff, err := a.Auth.Authenticate(ctx, form.Login, form.Password)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, services.ErrInvalidUser):
			msg = "Invalid user"
		case errors.Is(err, services.ErrInvalidPassword):
			msg = "Invalid password"
		default:
			a.Log.Error("authenticate failed", zap.String("request_id", utils.RequestID(c)), zap.Error(err))
			resp.ServerError(c, err)
			return
		}

		entry := auditEntry(c, entity.AuditLoginFailed, "staff", nil)
		entry.Login = form.Login
		entry.Detail = msg
		a.Audit.Record(ctx, entry)

		fields := map[string]string{"login": msg}
		if resp.WantsJSON(c) {
			resp.Invalid(c, http.StatusUnauthorized, "invalid credentials", fields)
			return
		}
		form.Password = ""
		a.renderLogin(c, http.StatusOK, form, fields)
		return
	}

	token, err := a.Auth.IssueSession(staff)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.Cookie.Name, token, int(a.Cookie.TTL.Seconds()), "/", "", a.Cookie.Secure, true)

	c.Set(utils.StaffKey, staff)
	a.Audit.Record(ctx, auditEntry(c, entity.AuditLogin, "staff", &staff.ID))

	if resp.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "staff": staff})
		return
	}
	c.Redirect(http.StatusFound, "/staff/")
}

// GET /staff/logout/
func (a *StaffAdminController) Logout(c *gin.Context) {
	if staff := utils.CurrentStaff(c); staff != nil {
		a.Audit.Record(c.Request.Context(), auditEntry(c, entity.AuditLogout, "staff", &staff.ID))
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.Cookie.Name, "", -1, "/", "", a.Cookie.Secure, true)

	if resp.WantsJSON(c) {
		resp.OK(c, gin.H{"loggedOut": true})
		return
	}
	c.Redirect(http.StatusFound, "/staff/")
}

func (a *StaffAdminController) renderLogin(c *gin.Context, status int, form LoginForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	resp.Page(c, status, "admin_index.html", gin.H{
		"Title":  "Sign in",
		"Form":   form,
		"Errors": errs,
	})
}

// GET /
func Home(c *gin.Context) {
	resp.Page(c, http.StatusOK, "index.html", gin.H{})
}
