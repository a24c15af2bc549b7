package testtool

import (
	"net/http"
	_ "net/http/pprof" // 匯入後會自動註冊 pprof endpoint

	"chatlog_service/pkg/config"
	"chatlog_service/pkg/logger"

	"go.uber.org/zap"
)

// StartPprof start pprof server on port, disabled in production
func StartPprof(port string) {
	if config.IsProduction() {
		logger.Log.Info("Production environment detected, pprof is disabled.")
		return
	}

	go func() {
		logger.Log.Info("Starting pprof server", zap.String("port", port))
		if err := http.ListenAndServe(":"+port, nil); err != nil {
			logger.Log.Warn("pprof server failed", zap.Error(err))
		}
	}()
}
