package container

import (
	"context"
	"fmt"
	"time"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/config"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/database"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/email"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/session"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/infrastructure/storage"
	"github.com/chrisakin/Katherine-Akintade-Website/pkg/logger"

	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics"
	analyticsHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics/handler"
	analyticsRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics/repository"
	analyticsService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/analytics/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth"
	authHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth/handler"
	authRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth/repository"
	authService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/auth/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog"
	blogHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog/handler"
	blogRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog/repository"
	blogService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/blog/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout"
	checkoutHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout/handler"
	checkoutRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout/repository"
	checkoutService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/checkout/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement"
	engagementHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement/handler"
	engagementService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/engagement/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos"
	photosHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos/handler"
	photosRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos/repository"
	photosService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/photos/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast"
	podcastHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast/handler"
	podcastRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast/repository"
	podcastService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/podcast/service"
	"github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop"
	shopHandler "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop/handler"
	shopRepo "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop/repository"
	shopService "github.com/chrisakin/Katherine-Akintade-Website/internal/domains/shop/service"
)

// Container is the root of the dependency graph, built once at startup
// in dependency order: config, infrastructure, repositories, services,
// handlers.
type Container struct {
	Config   *config.Config
	DB       *database.PostgresDB
	Sessions *session.Store
	Storage  *storage.MinIOStorage
	Email    email.Sender

	AuthService      auth.Service
	PhotoService     photos.Service
	BlogService      blog.Service
	ShopService      shop.Service
	PodcastService   podcast.Service
	CheckoutService  checkout.Service
	AnalyticsService analytics.Service
	Engagement       engagement.Service

	AuthHandler       *authHandler.AuthHandler
	PhotoHandler      *photosHandler.PhotoHandler
	BlogHandler       *blogHandler.BlogHandler
	ShopHandler       *shopHandler.ShopHandler
	PodcastHandler    *podcastHandler.PodcastHandler
	CheckoutHandler   *checkoutHandler.CheckoutHandler
	AnalyticsHandler  *analyticsHandler.AnalyticsHandler
	EngagementHandler *engagementHandler.EngagementHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db
	logger.Info("database connected", map[string]interface{}{"host": cfg.Database.Host})

	sessions := session.NewStore(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	if err := sessions.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.Sessions = sessions

	store, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		sessions.Close()
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = store

	c.Email = email.NewEmailJSClient(cfg.Email)

	// Repositories.
	authRepository := authRepo.NewPostgresRepository(db.Pool)
	photoRepository := photosRepo.NewPostgresRepository(db.Pool)
	blogRepository := blogRepo.NewPostgresRepository(db)
	shopRepository := shopRepo.NewPostgresRepository(db)
	podcastRepository := podcastRepo.NewPostgresRepository(db)
	salesRepository := checkoutRepo.NewPostgresRepository(db)
	analyticsRepository := analyticsRepo.NewPostgresRepository(db)

	// Services.
	c.AuthService = authService.NewAuthService(authRepository, sessions)
	c.PhotoService = photosService.NewPhotoService(photoRepository, store)
	c.BlogService = blogService.NewBlogService(blogRepository)
	c.ShopService = shopService.NewShopService(shopRepository, store)
	c.PodcastService = podcastService.NewPodcastService(podcastRepository, store)
	c.CheckoutService = checkoutService.NewCheckoutService(
		c.ShopService, salesRepository, c.Email, cfg.Email.OrderTemplate, cfg.Email.ToEmail)
	c.AnalyticsService = analyticsService.NewAnalyticsService(analyticsRepository)
	c.Engagement = engagementService.NewEngagementService(c.Email, cfg.Email.ContactTemplate)

	// Admin sign-ins and sign-outs feed the dashboard activity feed.
	go c.AnalyticsService.ConsumeAuthEvents(c.AuthService.Subscribe())

	// Handlers.
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
	c.PhotoHandler = photosHandler.NewPhotoHandler(c.PhotoService)
	c.BlogHandler = blogHandler.NewBlogHandler(c.BlogService)
	c.ShopHandler = shopHandler.NewShopHandler(c.ShopService)
	c.PodcastHandler = podcastHandler.NewPodcastHandler(c.PodcastService)
	c.CheckoutHandler = checkoutHandler.NewCheckoutHandler(c.CheckoutService)
	c.AnalyticsHandler = analyticsHandler.NewAnalyticsHandler(c.AnalyticsService)
	c.EngagementHandler = engagementHandler.NewEngagementHandler(c.Engagement)

	return c, nil
}

// Cleanup releases infrastructure connections in reverse order.
func (c *Container) Cleanup() {
	if c.Sessions != nil {
		if err := c.Sessions.Close(); err != nil {
			logger.Warn("failed to close session store", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
