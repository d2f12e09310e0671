package route

import (
	"github.com/SeakMengs/FontCatalog/internal/controller"
	"github.com/gin-gonic/gin"
)

func Latest_Fonts(r *gin.RouterGroup, fontController *controller.FontController) {
	latest := r.Group("/latest/fonts")
	{
		latest.GET("", fontController.List)
	}
}
