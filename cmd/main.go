package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	ailogapp "github.com/globalremedies/backend/application/ailog"
	authapp "github.com/globalremedies/backend/application/auth"
	categoryapp "github.com/globalremedies/backend/application/category"
	communityapp "github.com/globalremedies/backend/application/community"
	notificationapp "github.com/globalremedies/backend/application/notification"
	reactionapp "github.com/globalremedies/backend/application/reaction"
	remedyapp "github.com/globalremedies/backend/application/remedy"
	reviewapp "github.com/globalremedies/backend/application/review"
	"github.com/globalremedies/backend/cmd/config"
	redisclient "github.com/globalremedies/backend/cmd/redis"
	_ "github.com/globalremedies/backend/docs"
	ailogRepo "github.com/globalremedies/backend/repository/ailog"
	cacheRepo "github.com/globalremedies/backend/repository/cache"
	categoryRepo "github.com/globalremedies/backend/repository/category"
	commentRepo "github.com/globalremedies/backend/repository/comment"
	notificationRepo "github.com/globalremedies/backend/repository/notification"
	postRepo "github.com/globalremedies/backend/repository/post"
	reactionRepo "github.com/globalremedies/backend/repository/reaction"
	remedyRepo "github.com/globalremedies/backend/repository/remedy"
	reviewRepo "github.com/globalremedies/backend/repository/review"
	txRepo "github.com/globalremedies/backend/repository/tx"
	userRepo "github.com/globalremedies/backend/repository/user"
	"github.com/globalremedies/backend/thirdparty/google"
	"github.com/globalremedies/backend/thirdparty/mailer"
	"github.com/globalremedies/backend/thirdparty/storage"
	"github.com/globalremedies/backend/transport"
	"github.com/globalremedies/backend/utils/logger"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// @title Global Home Remedies API
// @version 1.0
// @description Community home remedies platform API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// External services
	mail := mailer.New(cfg)
	store, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		logger.Fatal("err init s3", zap.Error(err))
	}
	googleProvider := google.NewProvider(cfg)

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	CacheRepo := cacheRepo.NewRepository()
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	RemedyRepo := remedyRepo.NewRemedyRepository(db)
	PostRepo := postRepo.NewPostRepository(db)
	CommentRepo := commentRepo.NewCommentRepository(db)
	ReviewRepo := reviewRepo.NewReviewRepository(db)
	NotificationRepo := notificationRepo.NewNotificationRepository(db)
	AILogRepo := ailogRepo.NewAILogRepository(db)
	ReactionRepo := reactionRepo.NewReactionRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, UserRepo, CacheRepo, mail)
	CategoryApp := categoryapp.NewCategoryApp(CategoryRepo)
	RemedyApp := remedyapp.NewRemedyApp(RemedyRepo, CategoryRepo)
	CommunityApp := communityapp.NewCommunityApp(PostRepo, CommentRepo)
	ReviewApp := reviewapp.NewReviewApp(ReviewRepo, RemedyRepo)
	NotificationApp := notificationapp.NewNotificationApp(NotificationRepo)
	AILogApp := ailogapp.NewAILogApp(AILogRepo)
	ReactionApp := reactionapp.NewReactionApp(ReactionRepo, TxRepo)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		Config:          cfg,
		AuthApp:         AuthApp,
		CategoryApp:     CategoryApp,
		RemedyApp:       RemedyApp,
		CommunityApp:    CommunityApp,
		ReviewApp:       ReviewApp,
		NotificationApp: NotificationApp,
		AILogApp:        AILogApp,
		ReactionApp:     ReactionApp,
		Storage:         store,
		Google:          googleProvider,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
