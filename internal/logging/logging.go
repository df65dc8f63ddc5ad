package logging

import (
	"go.uber.org/zap"
)

// Logger is the shared process logger. It is a no-op until Init runs, so
// library code and tests can log without setup.
var Logger *zap.SugaredLogger = zap.NewNop().Sugar()

// Init configures the logger. Debug enables development output; otherwise
// only warnings and above reach the console.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("initializing logger: " + err.Error())
	}
	Logger = logger.Sugar()
}
