package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tour-booking/config"
	"tour-booking/controllers"
	"tour-booking/metrics"
	"tour-booking/middleware"
	"tour-booking/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every page of the application onto a gin engine.
func SetupRouter(
	cfg config.Config,
	pc *controllers.PublicController,
	auth *controllers.AuthController,
	admin *controllers.AdminController,
	sessions *services.SessionStore,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/uploads/img_tour", cfg.UploadDir)

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	metrics.Register()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public pages
	r.GET("/", pc.Welcome)
	r.GET("/views/tours/", pc.ListTours)
	r.GET("/current_tour/:id", pc.ShowTour)
	r.POST("/current_tour/:id", pc.BookTour)
	r.GET("/success/:email/:title/:date/:duration/:number_of_people/:price", pc.Success)

	// Admin login
	r.GET("/admin", auth.ShowLogin)
	r.POST("/admin", auth.Login)

	// Admin pages, session-guarded
	guard := middleware.RequireAdmin(sessions)

	r.GET("/profile/:username", guard, admin.Profile)
	r.POST("/profile/:username", guard, admin.Profile)

	r.GET("/clients/:username", guard, admin.Clients)
	r.GET("/clients/:username/export", guard, admin.ExportClients)
	r.GET("/clients/delete/:user_id/:tour_id", guard, admin.ShowDeleteBooking)
	r.POST("/clients/delete/:user_id/:tour_id", guard, admin.DeleteBooking)

	r.GET("/up_del_tour_page/:username", guard, admin.TourList)
	r.POST("/up_del_tour_page/:username", guard, admin.TourList)
	r.GET("/up_del_tour_page/update/:id", guard, admin.ShowUpdateTour)
	r.POST("/up_del_tour_page/update/:id", guard, admin.UpdateTour)
	r.GET("/up_del_tour_page/delete/:id", guard, admin.ShowDeleteTour)
	r.POST("/up_del_tour_page/delete/:id", guard, admin.DeleteTour)

	r.GET("/add_tour_page/:username", guard, admin.ShowAddTour)
	r.POST("/add_tour_page/:username", guard, admin.AddTour)

	r.NoRoute(pc.NotFound)

	return r
}
