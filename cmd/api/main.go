package main

import (
	"go.uber.org/zap"

	"club-hub/internal/pkg"
	"club-hub/internal/repository/mysql"
	"club-hub/internal/repository/redis"
	"club-hub/internal/router"
	"club-hub/internal/service"
	"club-hub/pkg/config"
	"club-hub/pkg/logger"
)

func main() {
	if err := config.Init(); err != nil {
		panic(err)
	}
	cfg := config.GlobalConfig

	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.ProductionMode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 启动时注入密钥，避免环境查找
	pkg.InitJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret)

	if err := mysql.InitDB(cfg.Database.DSN); err != nil {
		logger.L.Fatal("database init failed", zap.Error(err))
	}
	if err := mysql.AutoMigrate(mysql.DB); err != nil {
		logger.L.Fatal("database migrate failed", zap.Error(err))
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		logger.L.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	storage, err := service.NewStorageService(cfg.Storage.BasePath)
	if err != nil {
		logger.L.Fatal("storage init failed", zap.Error(err))
	}

	// 事件发布可选
	var producer *pkg.EventProducer
	if cfg.Kafka.Enabled {
		producer, err = pkg.NewEventProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			logger.L.Fatal("kafka init failed", zap.Error(err))
		}
		defer producer.Close()
	}

	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}

	r := router.InitRouter(storage, producer, smtpCfg)
	if err := r.Run(cfg.Server.Addr); err != nil {
		logger.L.Fatal("server exited", zap.Error(err))
	}
}
