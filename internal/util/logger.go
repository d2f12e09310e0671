package util

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLogger(env string) *zap.SugaredLogger {
	if env == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}

	return zap.Must(zap.NewDevelopment()).Sugar()
}

// Logger for command line tools. Output goes to stderr so stdout stays free for generated content.
func NewCLILogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = ""
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	return zap.Must(cfg.Build()).Sugar()
}
