package appcontext

import (
	"github.com/SeakMengs/FontCatalog/internal/catalog"
	"github.com/SeakMengs/FontCatalog/internal/config"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Catalog lists the fonts of the configured fonts directory.
	Catalog *catalog.Catalog
}
