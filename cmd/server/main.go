package main

import (
	"github.com/Snkumar21/Rentor-Website/internal/config"
	"github.com/Snkumar21/Rentor-Website/internal/db"
	clog "github.com/Snkumar21/Rentor-Website/internal/log"
	"github.com/Snkumar21/Rentor-Website/internal/server"
	"github.com/Snkumar21/Rentor-Website/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	// main 函数负责加载配置、初始化日志、连接数据库并启动 Gin 服务。
	cfg := config.Load()
	clog.Init(cfg.Env, cfg.LogLevel)
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := db.Connect(cfg.DBDriver, db.DSN(cfg))
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("db connect")
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal().Err(err).Msg("db migrate")
	}

	r := server.SetupRouter(cfg, store.New(gdb))
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server run")
	}
}
