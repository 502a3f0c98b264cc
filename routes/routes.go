package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Jahnavi-74/e-learning/config"
	"github.com/Jahnavi-74/e-learning/controllers"
	"github.com/Jahnavi-74/e-learning/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	requireAuth := middleware.RequireAuth(cfg)
	requireTeacher := middleware.RequireTeacher(cfg)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/register", authController.Register)
	app.Post("/login", authController.Login)
	app.Post("/logout", authController.Logout)

	api := app.Group("/api")

	// Classes
	classController := controllers.NewClassController(db, cfg)
	api.Post("/create_class", requireTeacher, classController.CreateClass)
	api.Post("/join_class", requireAuth, classController.JoinClass)
	api.Get("/classes/:id", requireAuth, classController.GetClass)
	api.Post("/attendance", requireAuth, classController.MarkAttendance)

	// Quizzes
	quizController := controllers.NewQuizController(db, cfg)
	api.Post("/create_quiz", requireTeacher, quizController.CreateQuiz)
	api.Get("/quiz/:id", requireAuth, quizController.GetQuiz)
	api.Post("/submit_quiz", requireAuth, quizController.SubmitQuiz)

	// Polls
	pollController := controllers.NewPollController(db, cfg)
	api.Post("/create_poll", requireTeacher, pollController.CreatePoll)
	api.Get("/poll/:id", requireAuth, pollController.GetPoll)
	api.Post("/submit_poll", requireAuth, pollController.SubmitPoll)

	// Challenges
	challengeController := controllers.NewChallengeController(db, cfg)
	api.Post("/create_challenge", requireTeacher, challengeController.CreateChallenge)
	api.Get("/challenge/:id", requireAuth, challengeController.GetChallenge)
	api.Post("/submit_challenge", requireAuth, challengeController.SubmitChallenge)

	// Discussion
	discussionController := controllers.NewDiscussionController(db, cfg)
	api.Post("/discussion", requireAuth, discussionController.CreatePost)
	api.Get("/discussion/:class_id", requireAuth, discussionController.GetPosts)

	// Gamification
	gamifyController := controllers.NewGamifyController(db, cfg)
	api.Get("/leaderboard", gamifyController.GetLeaderboard)
	api.Get("/badges", requireAuth, gamifyController.GetUserBadges)
	api.Get("/user/points", requireAuth, gamifyController.GetUserPoints)

	// Analytics
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	api.Get("/analytics/:class_id", requireTeacher, analyticsController.GetClassAnalytics)
	api.Get("/recommendations", requireAuth, analyticsController.GetRecommendations)
}
