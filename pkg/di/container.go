package di

import (
	"taskhub/application/serviceimpl"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/infrastructure/messaging"
	natspkg "taskhub/infrastructure/nats"
	"taskhub/infrastructure/postgres"
	redispkg "taskhub/infrastructure/redis"
	"taskhub/interfaces/api/handlers"
	"taskhub/interfaces/api/middleware"
	"taskhub/pkg/config"
	"taskhub/pkg/logger"
	"taskhub/pkg/scheduler"

	"gorm.io/gorm"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // cache สำหรับ dashboard stats (optional)
	NATSClient     *natspkg.Client  // NATS connection + JetStream (optional)
	EventPublisher ports.EventPublisher
	EventScheduler scheduler.EventScheduler

	// Repositories
	EmployeeRepository repositories.EmployeeRepository
	TaskRepository     repositories.TaskRepository

	// Services
	AuthService      services.AuthService
	EmployeeService  services.EmployeeService
	TaskService      services.TaskService
	DashboardService services.DashboardService

	// Middleware
	AuthMiddleware *middleware.AuthMiddleware
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	c.AuthMiddleware = middleware.NewAuthMiddleware(c.EmployeeRepository, c.Config.JWT.Secret)

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (stats cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	// Initialize NATS Client + JetStream (optional - graceful degradation)
	c.EventPublisher = messaging.NewNoopPublisher()
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewPublisher(natsClient)
			logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
		}
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.EmployeeRepository = postgres.NewEmployeeRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	// a typed nil must not reach the interface-valued cache params
	var cache serviceimpl.StatsCache
	if c.RedisClient != nil {
		cache = c.RedisClient
	}

	c.AuthService = serviceimpl.NewAuthService(c.EmployeeRepository, c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)
	c.EmployeeService = serviceimpl.NewEmployeeService(c.EmployeeRepository, cache)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.EmployeeRepository, c.EventPublisher, cache)
	c.DashboardService = serviceimpl.NewDashboardService(c.TaskRepository, c.EmployeeRepository, cache)

	logger.Info("Services initialized", "stats_cache", c.RedisClient != nil)
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")

	// Daily sweep reporting overdue tasks
	sweeper := serviceimpl.NewOverdueSweeper(c.TaskRepository)
	if err := c.EventScheduler.AddJob("overdue-task-sweep", "0 6 * * *", sweeper.Sweep); err != nil {
		logger.Warn("Failed to register overdue task sweep", "error", err)
	} else {
		logger.Info("Overdue task sweep registered", "cron", "0 6 * * *")
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	// Close NATS connection
	if c.NATSClient != nil {
		c.NATSClient.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		EmployeeService:  c.EmployeeService,
		TaskService:      c.TaskService,
		DashboardService: c.DashboardService,
	}
}
