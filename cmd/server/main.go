package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"collegepath/internal/advisor"
	"collegepath/internal/config"
	"collegepath/internal/database"
	"collegepath/internal/handlers"
	"collegepath/internal/repository"
	"collegepath/internal/security"
	"collegepath/internal/service"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Seed the university catalog from the bundled dataset
	if err := db.SeedUniversities(cfg.UniversityData); err != nil {
		log.Printf("Warning: Failed to seed university catalog: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, invitationRepo, settingsRepo, cfg.SessionDuration)
	courseService := service.NewCourseService(courseRepo)
	scoreService := service.NewScoreService(scoreRepo)
	transcriptService := service.NewTranscriptService(courseService, settingsRepo)
	targetService := service.NewTargetService(targetRepo, universityRepo, courseService, scoreService, settingsRepo)
	portfolioService := service.NewPortfolioService(portfolioRepo)
	backupService := service.NewBackupService(db)

	emailService, err := service.NewEmailService(cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, cfg.EmailDebug)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	advisorClient := advisor.NewClient(cfg.AdvisorAPIKey, cfg.AdvisorBaseURL, cfg.AdvisorModel)
	advisorService := service.NewAdvisorService(advisorClient, transcriptService, scoreService, portfolioService, targetService)

	oauthProviders := map[string]handlers.OAuthProvider{
		"google": {
			Name:  "google",
			Label: "Google",
			Config: &oauth2.Config{
				ClientID:     cfg.GoogleClientID,
				ClientSecret: cfg.GoogleClientSecret,
				Endpoint:     google.Endpoint,
				Scopes:       []string{"openid", "email", "profile"},
			},
			UserInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		},
		"facebook": {
			Name:  "facebook",
			Label: "Facebook",
			Config: &oauth2.Config{
				ClientID:     cfg.FacebookClientID,
				ClientSecret: cfg.FacebookClientSecret,
				Endpoint:     facebook.Endpoint,
				Scopes:       []string{"email", "public_profile"},
			},
			UserInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		},
		"apple": {
			Name:  "apple",
			Label: "Apple",
			Config: &oauth2.Config{
				ClientID:     cfg.AppleClientID,
				ClientSecret: cfg.AppleClientSecret,
				Endpoint: oauth2.Endpoint{
					AuthURL:  "https://appleid.apple.com/auth/authorize",
					TokenURL: "https://appleid.apple.com/auth/token",
				},
				Scopes: []string{"name", "email"},
			},
			AuthParams: map[string]string{
				"response_mode": "query",
			},
		},
	}

	// Initialize handlers
	csrf := security.NewCSRFGenerator(cfg.CSRFSecret)
	limiter := security.NewRateLimiter(20, time.Minute)
	middleware := handlers.NewMiddleware(authService, csrf, limiter)

	authHandler := handlers.NewAuthHandler(authService, emailService, userRepo, csrf)
	oauthHandler := handlers.NewOAuthHandler(authService, oauthProviders, cfg.OAuthRedirectBaseURL)
	courseHandler := handlers.NewCourseHandler(courseService)
	transcriptHandler := handlers.NewTranscriptHandler(transcriptService)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	universityHandler := handlers.NewUniversityHandler(universityRepo)
	targetHandler := handlers.NewTargetHandler(targetService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, portfolioService)
	adminHandler := handlers.NewAdminHandler(userRepo, invitationRepo, settingsRepo, universityRepo, backupService, emailService, db, cfg.UniversityData)

	// Setup routes
	mux := http.NewServeMux()

	// Public auth routes
	mux.HandleFunc("POST /api/auth/register", middleware.RateLimit(authHandler.Register))
	mux.HandleFunc("POST /api/auth/login", middleware.RateLimit(authHandler.Login))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)
	mux.HandleFunc("POST /api/auth/forgot-password", middleware.RateLimit(authHandler.ForgotPassword))
	mux.HandleFunc("POST /api/auth/reset-password", middleware.RateLimit(authHandler.ResetPassword))
	mux.HandleFunc("GET /api/auth/providers", oauthHandler.Providers)
	mux.HandleFunc("GET /auth/{provider}/start", oauthHandler.StartOAuth)
	mux.HandleFunc("GET /auth/{provider}/callback", oauthHandler.OAuthCallback)

	// Account routes
	mux.HandleFunc("GET /api/auth/me", middleware.RequireAuth(authHandler.Me))
	mux.HandleFunc("GET /api/auth/csrf-token", middleware.RequireAuth(authHandler.CSRFToken))
	mux.HandleFunc("PUT /api/auth/profile", middleware.RequireAuth(middleware.CSRFProtect(authHandler.UpdateProfile)))
	mux.HandleFunc("POST /api/auth/change-password", middleware.RequireAuth(middleware.CSRFProtect(authHandler.ChangePassword)))

	// Course and assignment routes
	mux.HandleFunc("GET /api/courses", middleware.RequireAuth(courseHandler.ListCourses))
	mux.HandleFunc("POST /api/courses", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.CreateCourse)))
	mux.HandleFunc("GET /api/courses/{id}", middleware.RequireAuth(courseHandler.GetCourse))
	mux.HandleFunc("PUT /api/courses/{id}", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.UpdateCourse)))
	mux.HandleFunc("DELETE /api/courses/{id}", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.DeleteCourse)))
	mux.HandleFunc("POST /api/courses/{id}/assignments", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.CreateAssignment)))
	mux.HandleFunc("GET /api/courses/{id}/history", middleware.RequireAuth(courseHandler.GradeHistory))
	mux.HandleFunc("POST /api/courses/{id}/finalize", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.FinalizeCourse)))
	mux.HandleFunc("PUT /api/assignments/{id}", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.UpdateAssignment)))
	mux.HandleFunc("DELETE /api/assignments/{id}", middleware.RequireAuth(middleware.CSRFProtect(courseHandler.DeleteAssignment)))

	// Transcript and scores
	mux.HandleFunc("GET /api/transcript", middleware.RequireAuth(transcriptHandler.GetTranscript))
	mux.HandleFunc("GET /api/scores", middleware.RequireAuth(scoreHandler.ListScores))
	mux.HandleFunc("POST /api/scores", middleware.RequireAuth(middleware.CSRFProtect(scoreHandler.CreateScore)))
	mux.HandleFunc("DELETE /api/scores/{id}", middleware.RequireAuth(middleware.CSRFProtect(scoreHandler.DeleteScore)))
	mux.HandleFunc("GET /api/scores/best", middleware.RequireAuth(scoreHandler.BestScores))

	// University catalog
	mux.HandleFunc("GET /api/universities", middleware.RequireAuth(universityHandler.SearchUniversities))
	mux.HandleFunc("GET /api/universities/{id}", middleware.RequireAuth(universityHandler.GetUniversity))

	// University targets and risk assessment
	mux.HandleFunc("GET /api/targets", middleware.RequireAuth(targetHandler.ListTargets))
	mux.HandleFunc("POST /api/targets", middleware.RequireAuth(middleware.CSRFProtect(targetHandler.AddTarget)))
	mux.HandleFunc("PUT /api/targets/{id}", middleware.RequireAuth(middleware.CSRFProtect(targetHandler.UpdateTarget)))
	mux.HandleFunc("DELETE /api/targets/{id}", middleware.RequireAuth(middleware.CSRFProtect(targetHandler.RemoveTarget)))
	mux.HandleFunc("POST /api/targets/{id}/assess", middleware.RequireAuth(middleware.CSRFProtect(targetHandler.AssessTarget)))
	mux.HandleFunc("POST /api/targets/assess", middleware.RequireAuth(middleware.CSRFProtect(targetHandler.AssessAllTargets)))

	// Portfolio
	mux.HandleFunc("GET /api/portfolio", middleware.RequireAuth(portfolioHandler.GetPortfolio))
	mux.HandleFunc("POST /api/portfolio/extracurriculars", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.CreateExtracurricular)))
	mux.HandleFunc("PUT /api/portfolio/extracurriculars/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.UpdateExtracurricular)))
	mux.HandleFunc("DELETE /api/portfolio/extracurriculars/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.DeleteExtracurricular)))
	mux.HandleFunc("POST /api/portfolio/achievements", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.CreateAchievement)))
	mux.HandleFunc("PUT /api/portfolio/achievements/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.UpdateAchievement)))
	mux.HandleFunc("DELETE /api/portfolio/achievements/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.DeleteAchievement)))
	mux.HandleFunc("POST /api/portfolio/personality", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.CreatePersonalityInput)))
	mux.HandleFunc("PUT /api/portfolio/personality/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.UpdatePersonalityInput)))
	mux.HandleFunc("DELETE /api/portfolio/personality/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.DeletePersonalityInput)))
	mux.HandleFunc("POST /api/portfolio/essays", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.CreateEssay)))
	mux.HandleFunc("PUT /api/portfolio/essays/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.UpdateEssay)))
	mux.HandleFunc("DELETE /api/portfolio/essays/{id}", middleware.RequireAuth(middleware.CSRFProtect(portfolioHandler.DeleteEssay)))

	// Advisor
	mux.HandleFunc("GET /api/advisor/status", middleware.RequireAuth(advisorHandler.Status))
	mux.HandleFunc("POST /api/advisor/course-suggestions", middleware.RequireAuth(middleware.CSRFProtect(advisorHandler.CourseSuggestions)))
	mux.HandleFunc("POST /api/advisor/grade-analysis", middleware.RequireAuth(middleware.CSRFProtect(advisorHandler.GradeAnalysis)))
	mux.HandleFunc("POST /api/advisor/portfolio-advice", middleware.RequireAuth(middleware.CSRFProtect(advisorHandler.PortfolioAdvice)))
	mux.HandleFunc("POST /api/advisor/chances/{id}", middleware.RequireAuth(middleware.CSRFProtect(advisorHandler.Chances)))
	mux.HandleFunc("POST /api/advisor/essays/{id}/feedback", middleware.RequireAuth(middleware.CSRFProtect(advisorHandler.EssayFeedback)))

	// Admin routes
	mux.HandleFunc("GET /api/admin/users", middleware.RequireAdmin(adminHandler.ListUsers))
	mux.HandleFunc("PUT /api/admin/users/{id}/admin", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetAdmin)))
	mux.HandleFunc("DELETE /api/admin/users/{id}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.DeleteUser)))
	mux.HandleFunc("GET /api/admin/invitations", middleware.RequireAdmin(adminHandler.ListInvitations))
	mux.HandleFunc("POST /api/admin/invitations", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.CreateInvitation)))
	mux.HandleFunc("DELETE /api/admin/invitations/{id}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.DeleteInvitation)))
	mux.HandleFunc("GET /api/admin/settings", middleware.RequireAdmin(adminHandler.GetSettings))
	mux.HandleFunc("PUT /api/admin/settings/invite-only", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetInviteOnlyMode)))
	mux.HandleFunc("PUT /api/admin/settings/gpa-policy", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetGPAPolicy)))
	mux.HandleFunc("PUT /api/admin/settings/risk-policy", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.SetRiskPolicy)))
	mux.HandleFunc("POST /api/admin/universities", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.CreateUniversity)))
	mux.HandleFunc("PUT /api/admin/universities/{id}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.UpdateUniversity)))
	mux.HandleFunc("DELETE /api/admin/universities/{id}", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.DeleteUniversity)))
	mux.HandleFunc("POST /api/admin/universities/reseed", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.ReseedUniversities)))
	mux.HandleFunc("GET /api/admin/backup", middleware.RequireAdmin(adminHandler.ExportBackup))
	mux.HandleFunc("POST /api/admin/backup", middleware.RequireAdmin(middleware.CSRFProtect(adminHandler.ImportBackup)))

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	// WriteTimeout must outlast the advisor's upstream call
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session cleanup
	go cleanupExpiredSessions(authService)

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// cleanupExpiredSessions periodically removes expired sessions
func cleanupExpiredSessions(authService *service.AuthService) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := authService.CleanupExpiredSessions(); err != nil {
			log.Printf("Error cleaning up expired sessions: %v", err)
		} else {
			log.Println("Expired sessions cleaned up")
		}
	}
}
