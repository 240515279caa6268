package server

import (
	"fmt"
	"os"

	"clubhub/config"
	"clubhub/internal/handlers"
	"clubhub/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()
	r.Use(cors.Default())

	setupRoutes(r, db, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.ConfigMiddleware(cfg))

	public := r.Group("/")
	public.Use(middleware.OptionalAuthMiddleware())
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)

		public.GET("/", handlers.Home)

		public.GET("/venues", handlers.ListVenues)
		public.GET("/venues/pdf", handlers.VenuePDF)
		public.GET("/venues/csv", handlers.VenueCSV)
		public.GET("/venues/text", handlers.VenueText)
		public.GET("/venues/:id", handlers.ShowVenue)
		public.POST("/venues/search", handlers.SearchVenues)

		// Venue update and delete carry no enforced ownership check
		// unless ENFORCE_VENUE_OWNER_CHECK is set.
		public.GET("/venues/:id/update", handlers.UpdateVenue)
		public.POST("/venues/:id/update", handlers.UpdateVenue)
		public.POST("/venues/:id/delete", handlers.DeleteVenue)

		public.GET("/events", handlers.ListEvents)
		public.POST("/events/search", handlers.SearchEvents)

		public.GET("/my_events", handlers.MyEvents)
	}

	protected := r.Group("/")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.GET("/add_venue", handlers.AddVenue)
		protected.POST("/add_venue", handlers.AddVenue)

		protected.GET("/add_event", handlers.AddEvent)
		protected.POST("/add_event", handlers.AddEvent)
		protected.GET("/events/:id/update", handlers.UpdateEvent)
		protected.POST("/events/:id/update", handlers.UpdateEvent)
		protected.POST("/events/:id/delete", handlers.DeleteEvent)
	}
}
