package http

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/opsportal/opsportal/internal/infrastructure/auth"
	"github.com/opsportal/opsportal/internal/infrastructure/cache"
	"github.com/opsportal/opsportal/internal/infrastructure/config"
	"github.com/opsportal/opsportal/internal/infrastructure/database"
	"github.com/opsportal/opsportal/internal/infrastructure/email"
	"github.com/opsportal/opsportal/internal/infrastructure/permission"
	"github.com/opsportal/opsportal/internal/infrastructure/ratelimit"
	"github.com/opsportal/opsportal/internal/infrastructure/storage"
	"github.com/opsportal/opsportal/internal/interfaces/http/middleware"
	"github.com/opsportal/opsportal/internal/shared/db"
	"github.com/opsportal/opsportal/internal/shared/logger"
	"github.com/opsportal/opsportal/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and handlers,
// and is responsible for wiring everything together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Shared services
	txMgr      *db.TransactionManager
	roomLocker cache.RoomLocker
	notifier   email.Notifier
	fileStore  storage.FileStore
	markdown   markdown.MarkdownService
	jwtSvc     *auth.JWTService
	enforcer   *permission.Enforcer
	limiter    ratelimit.Limiter

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(ctx context.Context, gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, storage, email, permissions
	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}

	// Section 2: Repositories, use cases, handlers
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	// Section 3: Middlewares
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	return c, nil
}

func (c *Container) initInfrastructure(ctx context.Context) error {
	c.txMgr = db.NewTransactionManager(c.db)
	c.markdown = markdown.NewMarkdownService()
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.Issuer, c.cfg.Auth.JWT.AccessExpMinutes)

	c.roomLocker = cache.NoopRoomLocker{}
	if c.cfg.Redis.Enabled {
		client, err := database.OpenRedis(ctx, &c.cfg.Redis)
		if err != nil {
			return err
		}
		c.redis = client
		ttl := time.Duration(c.cfg.Redis.RoomLockTTLSeconds) * time.Second
		c.roomLocker = cache.NewRedisRoomLocker(client, ttl, c.log)
		c.log.Infow("room booking lock enabled", "addr", c.cfg.Redis.GetAddr(), "ttl", ttl)
		c.limiter = ratelimit.NewRedisRateLimiter(client)
	} else {
		c.log.Warnw("redis disabled, concurrent bookings of the same room are not serialized")
	}

	if c.cfg.Email.Enabled {
		c.notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
			BaseURL:     strings.TrimRight(c.cfg.Server.BaseURL, "/"),
		})
	} else {
		c.notifier = email.NewDisabledEmailService(c.log)
	}

	store, err := storage.New(ctx, &c.cfg.Storage, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize file storage: %w", err)
	}
	c.fileStore = store

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return err
	}
	if err := permission.InitPolicies(enforcer, c.cfg.Permission.Policies, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer

	return nil
}

// Engine returns the Gin engine with routes registered by SetupRoutes.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases connections the container opened.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
