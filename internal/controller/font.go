package controller

import (
	"net/http"

	"github.com/SeakMengs/FontCatalog/internal/util"
	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
	"github.com/gin-gonic/gin"
)

type FontController struct {
	*baseController
}

type FontListQuery struct {
	Ext string `form:"ext" binding:"omitempty,oneof=woff woff2 ttf otf eot"`
	Q   string `form:"q" binding:"omitempty,strNotEmpty,max=100"`
}

// Responds with a bare JSON array of font metadata. Scan failures are logged
// and answered with an empty array so the font picker can fall back to its defaults.
func (fc FontController) List(ctx *gin.Context) {
	var query FontListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid query", err, map[string]string{"Ext": "ext", "Q": "q"})
		return
	}

	fonts, err := fc.app.Catalog.Fonts()
	if err != nil {
		fc.app.Logger.Errorw("Error reading fonts directory", "dir", fc.app.Catalog.Dir(), "error", err)
		ctx.JSON(http.StatusOK, []fontcatalog.FontMetadata{})
		return
	}

	fonts = fontcatalog.FilterByExtension(fonts, query.Ext)
	fonts = fontcatalog.SearchByLabel(fonts, query.Q)

	ctx.JSON(http.StatusOK, fonts)
}
