package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"commonhub/internal/auth"
	"commonhub/internal/booking"
	"commonhub/internal/config"
	"commonhub/internal/facility"

	"github.com/gin-gonic/gin"
)

// Deps are the services the HTTP surface is built on.
type Deps struct {
	Facilities facility.Service
	Bookings   booking.Service
	Database   Pinger
	Events     QueueStats
}

type Server struct {
	router   *gin.Engine
	http     *http.Server
	config   *config.Config
	stop     chan struct{}
	stopOnce sync.Once
}

func New(cfg *config.Config, deps Deps) *Server {
	stop := make(chan struct{})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	if cfg.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(stop, cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	facilityHandler := facility.NewHandler(deps.Facilities)
	bookingHandler := booking.NewHandler(deps.Bookings)

	router.GET("/health", Health(deps.Database, deps.Events))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/facilities", facilityHandler.ListFacilities)
		protected.GET("/facilities/:facilityID", facilityHandler.GetFacility)
		protected.GET("/facilities/:facilityID/availability", bookingHandler.GetAvailability)
		protected.GET("/facilities/:facilityID/calendar", bookingHandler.GetCalendar)
		protected.POST("/facilities/:facilityID/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
	}

	adminMiddleware := auth.RequireRole(auth.RoleAdmin)
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/facilities", facilityHandler.CreateFacility)
		admin.PUT("/facilities/:facilityID/config", facilityHandler.UpdateConfig)
		admin.GET("/facilities/:facilityID/bookings", bookingHandler.ListFacilityBookings)
		admin.POST("/bookings/:bookingID/approve", bookingHandler.ApproveBooking)
		admin.POST("/bookings/:bookingID/reject", bookingHandler.RejectBooking)
		admin.POST("/bookings/:bookingID/cancel", bookingHandler.CancelBooking)
		admin.PUT("/bookings/:bookingID/payment", bookingHandler.UpdatePayment)
		admin.GET("/analytics/bookings", bookingHandler.GetBookingAnalytics)
	}

	return &Server{
		router: router,
		config: cfg,
		stop:   stop,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	defer s.Close()
	return s.http.Shutdown(ctx)
}

// Close stops the server's background goroutines. It is safe to call more
// than once.
func (s *Server) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
