package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"apartment-booking/internal/handler/api"
	"apartment-booking/internal/handler/middleware"
	"apartment-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Apartment      *api.ApartmentHandler
	Coupon         *api.CouponHandler
	BookingSession *api.BookingSessionHandler
}

func NewHandlers(apartment *api.ApartmentHandler, coupon *api.CouponHandler, bookingSession *api.BookingSessionHandler) Handlers {
	return Handlers{Apartment: apartment, Coupon: coupon, BookingSession: bookingSession}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/apartments"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Apartment.List},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Apartment.Availability},
		})

		addRoutes(apiGroup.Group("/coupons"), []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Coupon.Validate},
		})

		sessions := apiGroup.Group("/booking-sessions")
		addRoutes(sessions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.BookingSession.Open},
			{Method: http.MethodGet, Path: "/:id", Handler: h.BookingSession.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.BookingSession.Close},
			{Method: http.MethodPut, Path: "/:id/apartment", Handler: h.BookingSession.ChangeApartment},
			{Method: http.MethodPut, Path: "/:id/check-in", Handler: h.BookingSession.SelectCheckIn},
			{Method: http.MethodPut, Path: "/:id/check-out", Handler: h.BookingSession.SelectCheckOut},
			{Method: http.MethodPut, Path: "/:id/guest", Handler: h.BookingSession.UpdateGuest},
			{Method: http.MethodPost, Path: "/:id/coupon", Handler: h.BookingSession.ApplyCoupon},
			{Method: http.MethodDelete, Path: "/:id/coupon", Handler: h.BookingSession.RemoveCoupon},
			{Method: http.MethodPost, Path: "/:id/availability/refresh", Handler: h.BookingSession.RefreshAvailability},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.BookingSession.Submit},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
