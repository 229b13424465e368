// Package server exposes the development API over the in-memory stores. It
// speaks the same wire contract the network-backed repositories consume, so
// the client can be pointed at it instead of the production backend.
package server

import (
	"context"
	"time"

	"foodcourt/internal/bootstrap"
	"foodcourt/internal/config"
	"foodcourt/internal/middleware"
	"foodcourt/internal/models"
	"foodcourt/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// tokenTTL is how long dev-server bearer tokens stay valid.
const tokenTTL = 24 * time.Hour

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	redis          *redis.Client

	postService       *service.PostService
	commentService    *service.CommentService
	userService       *service.UserService
	engagementService *service.EngagementService
	moderationService *service.ModerationService
}

// NewServer wires a server over an initialized runtime.
func NewServer(cfg *config.Config, rt *bootstrap.Runtime) *Server {
	middleware.InitMiddleware(cfg)

	roleOf := func(ctx context.Context, userID string) (models.Role, error) {
		user, err := rt.Users.Get(ctx, userID, userID)
		if err != nil {
			return "", err
		}
		return user.Role, nil
	}
	isAdmin := func(ctx context.Context, userID string) (bool, error) {
		role, err := roleOf(ctx, userID)
		if err != nil {
			return false, err
		}
		return role.AtLeast(models.RoleAdmin), nil
	}

	s := &Server{
		config:            cfg,
		promMiddleware:    fiberprometheus.New("foodcourt-dev"),
		redis:             rt.Sessions.Client(),
		postService:       service.NewPostService(rt.Posts, rt.Sessions, isAdmin),
		commentService:    service.NewCommentService(rt.Comments, isAdmin),
		userService:       service.NewUserService(rt.Users, rt.Sessions),
		engagementService: service.NewEngagementService(rt.Posts, rt.Comments, rt.Users),
		moderationService: service.NewModerationService(rt.Admin, roleOf),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "foodcourt-dev",
		DisableStartupMessage: cfg.Env == "test",
	})
	s.setupMiddleware(s.app)
	s.setupRoutes(s.app)
	return s
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the configured port and blocks.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) setupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(s.promMiddleware.Middleware)
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

func (s *Server) setupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	s.promMiddleware.RegisterAt(app, "/metrics")

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(s.redis, 10, time.Minute, "auth_register"), s.Register)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, time.Minute, "auth_login"), s.Login)
	auth.Post("/logout", s.Logout)

	// Public reads resolve the viewer when a token is present so the
	// is_liked/is_favorited/is_following flags come back scoped.
	posts := api.Group("/posts")
	posts.Get("/", middleware.OptionalAuth, s.GetPosts)
	posts.Get("/favorites", middleware.AuthRequired, s.GetFavorites)
	posts.Get("/:id/comments", middleware.OptionalAuth, s.GetComments)
	posts.Get("/:id", middleware.OptionalAuth, s.GetPost)

	posts.Post("/", middleware.AuthRequired, s.CreatePost)
	posts.Put("/:id", middleware.AuthRequired, s.UpdatePost)
	posts.Delete("/:id", middleware.AuthRequired, s.DeletePost)

	posts.Post("/:id/like", middleware.AuthRequired, s.LikePost)
	posts.Delete("/:id/like", middleware.AuthRequired, s.UnlikePost)
	posts.Post("/:id/favorite", middleware.AuthRequired, s.FavoritePost)
	posts.Delete("/:id/favorite", middleware.AuthRequired, s.UnfavoritePost)
	posts.Post("/:id/comments", middleware.AuthRequired, s.CreateComment)

	comments := api.Group("/comments")
	comments.Get("/:id", middleware.OptionalAuth, s.GetComment)
	comments.Delete("/:id", middleware.AuthRequired, s.DeleteComment)
	comments.Post("/:id/like", middleware.AuthRequired, s.LikeComment)
	comments.Delete("/:id/like", middleware.AuthRequired, s.UnlikeComment)

	users := api.Group("/users")
	users.Get("/:id/followers", middleware.OptionalAuth, s.GetFollowers)
	users.Get("/:id/following", middleware.OptionalAuth, s.GetFollowing)
	users.Post("/:id/follow", middleware.AuthRequired, s.FollowUser)
	users.Delete("/:id/follow", middleware.AuthRequired, s.UnfollowUser)
	users.Get("/:id", middleware.OptionalAuth, s.GetUser)
	users.Put("/:id", middleware.AuthRequired, s.UpdateUser)

	admin := api.Group("/admin", middleware.AuthRequired)
	admin.Get("/posts/pending", s.AdminGetPendingPosts)
	admin.Get("/posts", s.AdminGetPosts)
	admin.Post("/posts/:id/review", s.AdminReviewPost)
	admin.Delete("/posts/:id", s.AdminDeletePost)
	admin.Get("/users", s.AdminGetUsers)
	admin.Put("/users/:id/role", s.AdminUpdateUserRole)
}

// HealthCheck reports liveness and the active backend mode.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"mock":   s.config.UseMockAPI,
		"time":   time.Now(),
	})
}
