package transport

import (
	"net/http"

	ailogapp "github.com/globalremedies/backend/application/ailog"
	authapp "github.com/globalremedies/backend/application/auth"
	categoryapp "github.com/globalremedies/backend/application/category"
	communityapp "github.com/globalremedies/backend/application/community"
	notificationapp "github.com/globalremedies/backend/application/notification"
	reactionapp "github.com/globalremedies/backend/application/reaction"
	remedyapp "github.com/globalremedies/backend/application/remedy"
	reviewapp "github.com/globalremedies/backend/application/review"
	"github.com/globalremedies/backend/cmd/config"
	"github.com/globalremedies/backend/thirdparty/google"
	"github.com/globalremedies/backend/thirdparty/storage"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	Config          *config.Config
	AuthApp         authapp.AuthApp
	CategoryApp     categoryapp.CategoryApp
	RemedyApp       remedyapp.RemedyApp
	CommunityApp    communityapp.CommunityApp
	ReviewApp       reviewapp.ReviewApp
	NotificationApp notificationapp.NotificationApp
	AILogApp        ailogapp.AILogApp
	ReactionApp     reactionapp.ReactionApp
	Storage         storage.Store
	Google          google.Provider
}

func NewTransport(rh *RestHandler) http.Handler {
	root := mux.NewRouter()

	// Swagger UI
	root.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r := root.PathPrefix("/api/user").Subrouter()

	// Public routes
	r.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)
	r.HandleFunc("/verify-otp", rh.VerifyOTP).Methods(http.MethodPost)
	r.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	r.HandleFunc("/googleAuth", rh.GoogleAuth).Methods(http.MethodGet)
	r.HandleFunc("/googleAuth/callback", rh.GoogleAuthCallback).Methods(http.MethodGet)
	r.HandleFunc("/forgot-password", rh.ForgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/reset-password", rh.ResetPassword).Methods(http.MethodPost)

	// Profile
	r.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPut)
	r.HandleFunc("/delete-account", rh.DeleteAccount).Methods(http.MethodDelete)

	// Categories
	r.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	r.HandleFunc("/categories/{id:[0-9]+}", rh.GetCategory).Methods(http.MethodGet)
	r.HandleFunc("/categories", rh.CreateCategory).Methods(http.MethodPost)
	r.HandleFunc("/categories/{id:[0-9]+}", rh.UpdateCategory).Methods(http.MethodPut)
	r.HandleFunc("/categories/{id:[0-9]+}", rh.DeleteCategory).Methods(http.MethodDelete)

	// Remedies
	r.HandleFunc("/remedies", rh.ListRemedies).Methods(http.MethodGet)
	r.HandleFunc("/remedies/bookmarked", rh.ListBookmarkedRemedies).Methods(http.MethodGet)
	r.HandleFunc("/remedies/{id:[0-9]+}", rh.GetRemedy).Methods(http.MethodGet)
	r.HandleFunc("/remedies", rh.CreateRemedy).Methods(http.MethodPost)
	r.HandleFunc("/remedies/{id:[0-9]+}", rh.UpdateRemedy).Methods(http.MethodPut)
	r.HandleFunc("/remedies/{id:[0-9]+}", rh.DeleteRemedy).Methods(http.MethodDelete)
	r.HandleFunc("/remedies/{id:[0-9]+}/like", rh.LikeRemedy).Methods(http.MethodPost)
	r.HandleFunc("/remedies/{id:[0-9]+}/dislike", rh.DislikeRemedy).Methods(http.MethodPost)
	r.HandleFunc("/remedies/{id:[0-9]+}/bookmark", rh.BookmarkRemedy).Methods(http.MethodPost)

	// Reviews
	r.HandleFunc("/remedies/{id:[0-9]+}/reviews", rh.ListReviews).Methods(http.MethodGet)
	r.HandleFunc("/reviews", rh.CreateReview).Methods(http.MethodPost)
	r.HandleFunc("/reviews/{id:[0-9]+}", rh.UpdateReview).Methods(http.MethodPut)
	r.HandleFunc("/reviews/{id:[0-9]+}", rh.DeleteReview).Methods(http.MethodDelete)

	// Community
	r.HandleFunc("/community/posts", rh.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/community/posts/{id:[0-9]+}", rh.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/community/posts", rh.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/community/posts/{id:[0-9]+}", rh.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/community/posts/{id:[0-9]+}", rh.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/community/posts/{id:[0-9]+}/like", rh.LikePost).Methods(http.MethodPost)
	r.HandleFunc("/community/posts/{id:[0-9]+}/dislike", rh.DislikePost).Methods(http.MethodPost)
	r.HandleFunc("/community/comments", rh.CreateComment).Methods(http.MethodPost)
	r.HandleFunc("/community/comments/{id:[0-9]+}", rh.GetComment).Methods(http.MethodGet)
	r.HandleFunc("/community/comments/{id:[0-9]+}", rh.UpdateComment).Methods(http.MethodPut)
	r.HandleFunc("/community/comments/{id:[0-9]+}", rh.DeleteComment).Methods(http.MethodDelete)
	r.HandleFunc("/community/comments/{id:[0-9]+}/like", rh.LikeComment).Methods(http.MethodPost)
	r.HandleFunc("/community/comments/{id:[0-9]+}/dislike", rh.DislikeComment).Methods(http.MethodPost)

	// Notifications
	r.HandleFunc("/notifications", rh.ListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications", rh.CreateNotification).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{id:[0-9]+}/read", rh.MarkNotificationRead).Methods(http.MethodPut)
	r.HandleFunc("/notifications/{id:[0-9]+}", rh.DeleteNotification).Methods(http.MethodDelete)

	// AI filter logs (admin)
	r.HandleFunc("/ai-logs", rh.ListAILogs).Methods(http.MethodGet)
	r.HandleFunc("/ai-logs/{id:[0-9]+}", rh.GetAILog).Methods(http.MethodGet)
	r.HandleFunc("/ai-logs", rh.CreateAILog).Methods(http.MethodPost)
	r.HandleFunc("/ai-logs/{id:[0-9]+}", rh.UpdateAILog).Methods(http.MethodPut)
	r.HandleFunc("/ai-logs/{id:[0-9]+}", rh.DeleteAILog).Methods(http.MethodDelete)

	// Upload
	r.HandleFunc("/upload", rh.Upload).Methods(http.MethodPost)

	// middleware
	root.Use(LoggingMiddleware())
	root.Use(AuthMiddleware(rh.AuthApp))

	return root
}
