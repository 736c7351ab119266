package routes

import (
	"net/http"

	"cafestaff/configs"
	"cafestaff/controllers"
	"cafestaff/middlewares"
	"cafestaff/pkg/resp"
	"cafestaff/repository"
	"cafestaff/services"
	"cafestaff/templates"
	"cafestaff/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Dependencies are the long-lived objects the router is built from. Hub must
// be running; Audit defaults to the audit_log table.
type Dependencies struct {
	DB     *gorm.DB
	Config *configs.Config
	Log    *zap.Logger
	Hub    *ws.FulfillmentHub
	Audit  *services.AuditService
}

// NewRouter assembles the gin engine: middleware, the public pages, the
// staff admin and every model view.
func NewRouter(d Dependencies) (*gin.Engine, error) {
	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	if d.Audit == nil {
		d.Audit = services.NewAuditService(d.Log, repository.NewAuditRepository(d.DB))
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(d.Log))
	r.Use(middlewares.CORSMiddleware(d.Config.CORSOrigins))

	staffRepo := repository.NewStaffRepository(d.DB)
	orderRepo := repository.NewOrderRepository(d.DB)

	authSvc := services.NewAuthService(staffRepo, d.Config.SessionSecret, d.Config.SessionTTL, d.Log)
	orderSvc := services.NewOrderService(orderRepo, d.Hub)
	fulfillmentSvc := services.NewFulfillmentService(d.DB, orderRepo, staffRepo, d.Hub)

	views := adminViews(d.DB, orderSvc, fulfillmentSvc, d.Audit, d.Config.PageSize, d.Log)
	nav := make([]controllers.NavItem, 0, len(views))
	for _, v := range views {
		nav = append(nav, v.Nav())
	}

	r.Use(middlewares.LoadSession(authSvc, d.Config.SessionCookie))
	r.Use(func(c *gin.Context) { c.Set(resp.NavKey, nav); c.Next() })

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.GET("/", controllers.Home)

	adminCtrl := &controllers.StaffAdminController{
		Auth:      authSvc,
		Dashboard: services.NewDashboardService(d.DB),
		Audit:     d.Audit,
		Cookie: controllers.SessionCookie{
			Name:   d.Config.SessionCookie,
			Secure: d.Config.CookieSecure,
			TTL:    d.Config.SessionTTL,
		},
		Log: d.Log.Named("admin"),
	}

	staff := r.Group("/staff")
	{
		staff.GET("/", adminCtrl.Index)
		staff.GET("/login/", adminCtrl.LoginPage)
		staff.POST("/login/", adminCtrl.Login)
		staff.GET("/logout/", adminCtrl.Logout)
	}

	// everything below requires a signed-in staff member
	guarded := staff.Group("", middlewares.RequireStaff())
	guarded.GET("/ws/fulfillment", d.Hub.HandleWebSocket)
	for _, v := range views {
		v.Register(guarded)
	}

	r.NoRoute(func(c *gin.Context) { resp.Fail(c, http.StatusNotFound, "Page not found.") })
	return r, nil
}
