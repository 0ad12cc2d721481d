package hosted

import (
	"github.com/ejohnstown/blackmagic/core"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the hosted logger; verbose enables debug level
func NewLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// RouteCoreDebug sends core debug output to logger at debug level
func RouteCoreDebug(logger *zap.SugaredLogger, enabled bool) {
	core.SetDebugWriter(func(s string) {
		logger.Debug(s)
	})
	core.SetDebugEnabled(enabled)
}
