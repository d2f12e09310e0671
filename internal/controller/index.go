package controller

import (
	"github.com/SeakMengs/FontCatalog/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "Welcome to the " + util.GetAppName() + " api",
		"fonts":   "/api/latest/fonts",
	})
}
