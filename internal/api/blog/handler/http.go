package blogHandler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	blogService "RBCDigital/internal/api/blog/service"
	"RBCDigital/internal/middleware"
)

type BlogHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	blogService blogService.IBlogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogService.IBlogService,
) *BlogHandler {
	return &BlogHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		blogService: bs,
	}
}

func (h *BlogHandler) Start(srv fiber.Router) {
	posts := srv.Group("/blog")

	posts.Get("/posts", h.GetAllPosts)
	posts.Get("/posts/:slug", h.GetPostBySlug)
	posts.Post("/posts", h.CreatePost)
	posts.Patch("/posts/:slug", h.UpdatePost)
	posts.Delete("/posts/:id", h.DeletePost)
}
