package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"moodtunes/internal/catalog"
	"moodtunes/internal/config"
	"moodtunes/internal/identity"
	"moodtunes/internal/model"
	mysqlClient "moodtunes/internal/platform/mysql"
	rabbitmqClient "moodtunes/internal/platform/rabbitmq"
	redisClient "moodtunes/internal/platform/redis"
	"moodtunes/internal/repository"
	"moodtunes/internal/vision"
	"moodtunes/internal/worker"
)

// App holds every constructed-once dependency. All of it is built before
// serving begins and torn down on shutdown; nothing is a lazy singleton.
type App struct {
	Config          *config.Config
	MySQL           *gorm.DB
	Redis           *redis.Client
	MQConn          *amqp.Connection
	Classifier      *vision.Classifier // nil when the model artifact failed to load
	Catalog         *catalog.Client
	Identity        *identity.Client
	DetectionWorker *worker.DetectionPersistWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(&model.Detection{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	// A broken model artifact keeps the rest of the service up; detection
	// requests are refused until the artifact is fixed and the process
	// restarted.
	classifier, err := vision.LoadClassifier(cfg.Vision.ModelPath, cfg.Vision.ONNXSharedLibPath)
	if err != nil {
		log.Printf("load emotion model failed, /detect will be unavailable: %v", err)
		classifier = nil
	}

	detectionRepo := repository.NewDetectionRepository(mysqlDB)
	detectionWorker := worker.NewDetectionPersistWorker(mqConn, detectionRepo, cfg.RabbitMQ.DetectionQueue)
	if err := detectionWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start detection worker failed: %w", err)
	}

	return &App{
		Config:     cfg,
		MySQL:      mysqlDB,
		Redis:      redisCli,
		MQConn:     mqConn,
		Classifier: classifier,
		Catalog: catalog.NewClient(catalog.Config{
			BaseURL:      cfg.Spotify.BaseURL,
			TokenURL:     cfg.Spotify.TokenURL,
			ClientID:     cfg.Spotify.ClientID,
			ClientSecret: cfg.Spotify.ClientSecret,
		}),
		Identity: identity.NewClient(identity.Config{
			BaseURL: cfg.Firebase.BaseURL,
			APIKey:  cfg.Firebase.APIKey,
		}),
		DetectionWorker: detectionWorker,
		StartedAt:       time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.DetectionWorker != nil {
		a.DetectionWorker.Close()
	}
	if a.Classifier != nil {
		a.Classifier.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
