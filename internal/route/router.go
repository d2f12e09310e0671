package route

import (
	appcontext "github.com/SeakMengs/FontCatalog/internal/app_context"
	"github.com/SeakMengs/FontCatalog/internal/controller"
	"github.com/SeakMengs/FontCatalog/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(app *appcontext.Application) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = app.Config.CORS.ALLOW_ORIGINS
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	_middleware := middleware.NewMiddleware(app)
	r.Use(_middleware.RequestLogger)

	_controller := controller.NewController(app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	Latest_Fonts(rApi, _controller.Font)

	return r
}
