package main

import (
	"context"

	"Asamblea_Hub/internal/config"
	"Asamblea_Hub/internal/pkg"
	"Asamblea_Hub/internal/repository/mysql"
	"Asamblea_Hub/internal/repository/redis"
	"Asamblea_Hub/internal/router"
	"Asamblea_Hub/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	log, err := pkg.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := mysql.InitDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Fatal("database open failed", zap.Error(err))
	}
	if err := mysql.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	if err := mysql.Seed(db); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}
	defer redisClient.Close()
	sessions := &redis.SessionRepository{Client: redisClient}

	jwtManager := pkg.NewJWTManager(cfg.AccessSecret, cfg.RefreshSecret)

	var notifier *service.Notifier
	if cfg.SMTP.Enabled() {
		notifier = service.NewNotifier(cfg.SMTP)
	}

	// sin broker configurado los eventos del outbox solo se registran en el log
	sender := service.LogSender(log)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			log.Fatal("kafka producer failed", zap.Error(err))
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(db, sender, log).Run(ctx)

	r := router.InitRouter(router.Deps{
		Auth:       service.NewAuthService(db, sessions, jwtManager),
		Users:      service.NewUserService(db),
		Positions:  service.NewPositionService(db),
		Assemblies: service.NewAssemblyService(db),
		Shifts:     service.NewShiftService(db, notifier, log),
		Chat:       service.NewChatService(db),
		JWT:        jwtManager,
		Sessions:   sessions,
	})

	log.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
