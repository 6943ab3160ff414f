// main.go
package main

import (
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ticket-office/controllers"
	"ticket-office/logger"
	"ticket-office/middleware"
	"ticket-office/services"
	"ticket-office/session"
	"ticket-office/websocket"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	appEnv := envOr("APP_ENV", "development")
	logger.SetLogLevel(appEnv)
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Read configuration from environment variables
	backendURL := envOr("BACKEND_URL", "http://localhost:3001")
	applicationURL := envOr("APPLICATION_URL", "http://localhost:8080")
	clockURL := envOr("CLOCK_URL", "ws://localhost:8080/clock")
	port := envOr("PORT", "8080")

	session.ConfigureFromEnv()
	controllers.SetConfig(applicationURL, clockURL)

	// Wire the backend services
	client := services.NewBackendClient(backendURL)
	controllers.SetServices(
		services.NewAuthService(client),
		services.NewEventService(client),
		services.NewTicketService(client),
		services.NewStatisticsService(client),
	)

	router := gin.Default()

	// Initialize session store
	store := cookie.NewStore([]byte(envOr("SESSION_SECRET", "secret")))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   appEnv == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("ticketoffice", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	router.LoadHTMLGlob(filepath.Join(basepath, "templates", "*.html"))

	// Serve static files under /static
	router.Static("/static", "./static")

	// Health checks and metrics are unguarded
	router.GET("/health", controllers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes; signed-in visitors are bounced home
	public := router.Group("/", middleware.RedirectIfAuthenticated)
	{
		public.GET("/login", controllers.ShowLoginPage)
		public.POST("/login", controllers.PerformLogin)
		public.GET("/register", controllers.ShowRegisterPage)
		public.POST("/register", controllers.PerformRegister)
	}

	// Live clock feed for the dashboard layout
	hub := websocket.NewHub()
	stopClock := make(chan struct{})
	defer close(stopClock)
	go hub.RunClock(websocket.ClockInterval, stopClock)

	// Shared protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/", controllers.Home)
		protected.GET("/logout", controllers.Logout)
		protected.GET("/events", controllers.EventList)
		protected.GET("/events/:id", controllers.EventDetail)
		protected.GET("/clock", hub.Serve)
		protected.POST("/prefs/theme", controllers.ToggleTheme)
		protected.POST("/prefs/lang", controllers.SetLanguage)
	}

	// Attendee-only routes; admins are bounced home
	user := router.Group("/", middleware.AuthRequired, middleware.UserOnly())
	{
		user.GET("/tickets", controllers.TicketList)
		user.GET("/tickets/:id", controllers.TicketDetail)
		user.GET("/tickets/:id/qrcode", controllers.TicketQRCode)
		user.POST("/events/:id/buy", controllers.BuyTicket)
	}

	// Staff-only routes; ordinary users are bounced home
	admin := router.Group("/", middleware.AuthRequired, middleware.AdminOnly())
	{
		admin.GET("/validate", controllers.ShowValidationPage)
		admin.POST("/validate", controllers.PerformValidation)
		admin.GET("/statistics", controllers.StatisticsPage)
		admin.GET("/events/new", controllers.ShowEventForm)
		admin.POST("/events/new", controllers.CreateEvent)
		admin.GET("/events/:id/edit", controllers.ShowEventForm)
		admin.POST("/events/:id/edit", controllers.UpdateEvent)
		admin.POST("/events/:id/delete", controllers.DeleteEvent)
	}

	// Unmatched paths go home
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})

	logger.Info.Printf("main: serving on :%s (backend=%s)", port, backendURL)
	if err := router.Run(":" + port); err != nil {
		logger.Error.Printf("main: server stopped: %v", err)
		os.Exit(1)
	}
}
