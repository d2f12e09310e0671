package config

import (
	"strings"
	"time"

	"github.com/SeakMengs/FontCatalog/internal/env"
	"github.com/SeakMengs/FontCatalog/pkg/fontcatalog"
)

type Config struct {
	Port string
	ENV  string
	// How long in-flight requests get to finish on SIGINT/SIGTERM
	SHUTDOWN_TIMEOUT time.Duration
	Fonts            FontsConfig
	CORS             CORSConfig
	Minio            MinioConfig
}

type FontsConfig struct {
	// Directory scanned for font files
	DIR string
	// URL path the fonts are served from, used to build the "file" field
	PUBLIC_PREFIX string
	// Where `scan_font json` writes and the loader reads the metadata file
	METADATA_PATH string
	// Rescan only when the directory changes instead of on every request
	WATCH bool
}

type CORSConfig struct {
	ALLOW_ORIGINS []string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),

		SHUTDOWN_TIMEOUT: time.Duration(env.GetInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,

		Fonts: FontsConfig{
			DIR:           env.GetString("FONTS_DIR", "public/fonts"),
			PUBLIC_PREFIX: env.GetString("FONTS_PUBLIC_PREFIX", fontcatalog.DefaultPublicPrefix),
			METADATA_PATH: env.GetString("FONT_METADATA_PATH", fontcatalog.DefaultMetadataPath),
			WATCH:         env.GetBool("FONTS_WATCH", false),
		},
		CORS: CORSConfig{
			ALLOW_ORIGINS: splitList(env.GetString("CORS_ALLOW_ORIGINS", "*")),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", "127.0.0.1:9000"),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", "fontcatalog"),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
	}
}

// "a, b,,c" -> [a b c]
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
