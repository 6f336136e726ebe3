package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/Snkumar21/Rentor-Website/internal/auth"
	"github.com/Snkumar21/Rentor-Website/internal/config"
	"github.com/Snkumar21/Rentor-Website/internal/metrics"
	"github.com/Snkumar21/Rentor-Website/internal/mw"
	"github.com/Snkumar21/Rentor-Website/internal/service"
	"github.com/Snkumar21/Rentor-Website/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// pages 是固定的页面路由及其对应文件。
var pages = map[string]string{
	"/index":    "index.html",
	"/login":    "login.html",
	"/service":  "services.html",
	"/register": "register.html",
}

// SetupRouter 统一初始化 Gin 中间件、业务接口以及静态页面。
func SetupRouter(cfg config.Config, st store.Store) *gin.Engine {
	issuer := auth.NewIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	h := NewHandler(
		service.NewAccountService(st, issuer),
		service.NewPropertyService(st),
		service.NewContactService(st),
	)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mw.RequestID())
	r.Use(mw.AccessLog())
	r.Use(metrics.GinMiddleware())
	r.Use(mw.CORS(cfg.Env))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/registerform", h.Register)
	r.POST("/loginform", h.Login)
	r.POST("/contact", h.Contact)
	r.POST("/postProperty", h.PostProperty)
	r.GET("/getPropertyPosts", h.GetPropertyPosts)
	r.GET("/searchProperties", h.SearchProperties)

	for route, file := range pages {
		target := filepath.Join(cfg.StaticDir, file)
		r.GET(route, func(c *gin.Context) { c.File(target) })
	}

	r.NoRoute(staticFiles(cfg.StaticDir))
	return r
}

// staticFiles 在静态目录中查找未匹配路由对应的文件，目录返回其 index.html。
func staticFiles(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			// path.Clean 以 / 开头时会吃掉所有 ..，结果不会越出静态目录。
			rel := path.Clean("/" + c.Request.URL.Path)
			target := filepath.Join(dir, filepath.FromSlash(rel))
			if fi, err := os.Stat(target); err == nil && fi.IsDir() {
				target = filepath.Join(target, "index.html")
			}
			if fi, err := os.Stat(target); err == nil && !fi.IsDir() {
				c.File(target)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	}
}
