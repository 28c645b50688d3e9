package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"RBCDigital/database/postgres"
	blogHandler "RBCDigital/internal/api/blog/handler"
	blogRepository "RBCDigital/internal/api/blog/repository"
	blogService "RBCDigital/internal/api/blog/service"
	leadsHandler "RBCDigital/internal/api/leads/handler"
	leadsRepository "RBCDigital/internal/api/leads/repository"
	leadsService "RBCDigital/internal/api/leads/service"
	"RBCDigital/internal/middleware"
	"RBCDigital/internal/seed"
	"RBCDigital/pkg/cms"
	"RBCDigital/pkg/hubspot"
	"RBCDigital/pkg/redis"
	"RBCDigital/pkg/s3"
	"RBCDigital/pkg/smtp"
	"RBCDigital/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine        *fiber.App
	db            *sqlx.DB
	log           *logrus.Logger
	middleware    middleware.Middleware
	validator     *validator.Validate
	utils         utils.IUtils
	handlers      []handler
	contentSource cms.Source
	seedProvider  seed.Provider
	cache         redis.ICache
	hubspotClient hubspot.ItfHubspot
	smtpMailer    smtp.ItfSmtp
	s3Client      s3.ItfS3
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects when DATABASE_URL is set. Without one the server
// still boots and blog reads resolve from the CMS and the built-in catalog.
func WithDatabase() ServerOption {
	return func(s *Server) error {
		if !postgres.Configured() {
			if s.log != nil {
				s.log.Warn("DATABASE_URL not set, running without a persistent store")
			}
			return nil
		}

		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithContentSource(source cms.Source) ServerOption {
	return func(s *Server) error {
		s.contentSource = source
		return nil
	}
}

func WithSeedCatalog() ServerOption {
	return func(s *Server) error {
		s.seedProvider = seed.New()
		return nil
	}
}

func WithRedisCache(cache redis.ICache) ServerOption {
	return func(s *Server) error {
		s.cache = cache
		return nil
	}
}

func WithHubspotClient(client hubspot.ItfHubspot) ServerOption {
	return func(s *Server) error {
		s.hubspotClient = client
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithS3Client presigns private bucket assets. Skipped when no AWS
// credentials are configured; asset paths then pass through unchanged.
func WithS3Client() ServerOption {
	return func(s *Server) error {
		if os.Getenv("AWS_ACCESS_KEY_ID") == "" {
			if s.log != nil {
				s.log.Warn("AWS credentials not set, serving asset paths as-is")
			}
			return nil
		}

		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogService(s.log, blogRepo, s.contentSource, s.seedProvider, s.cache, s.s3Client, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	// Leads Domain
	leadsRepo := leadsRepository.New(s.db, s.log)
	leadsServices := leadsService.NewLeadsService(s.log, leadsRepo, s.hubspotClient, s.smtpMailer, s.utils)
	leadsHandlers := leadsHandler.New(s.log, s.validator, s.middleware, leadsServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, blogHandlers, leadsHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
