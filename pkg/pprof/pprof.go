package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Start serves the runtime profiles under /debug/pprof on addr in the
// background. An empty addr disables it.
func Start(addr string) {
	if addr == "" {
		return
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	pprof.Register(router)

	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof on %s: %v", addr, err)
		}
	}()
}
