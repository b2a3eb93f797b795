package server

import (
	"context"
	"net/http"
	"time"

	"health-server/confs"
	"health-server/db"
	httpHandler "health-server/handlers/http"
	"health-server/repositories"
	"health-server/services"
	"health-server/sessions"
	"health-server/storage"
	"health-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Server struct {
	app   *gin.Engine
	db    db.Database
	redis *redis.Client
	cfg   *confs.Config
	log   *zap.Logger
}

func NewServer(cfg *confs.Config, database db.Database, redisClient *redis.Client, log *zap.Logger) (*Server, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s := &Server{
		app:   gin.New(),
		db:    database,
		redis: redisClient,
		cfg:   cfg,
		log:   log,
	}
	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.app }

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if len(s.cfg.CORSOrigins) > 0 {
		config.AllowOrigins = s.cfg.CORSOrigins
		config.AllowCredentials = true
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return config
}

func (s *Server) routes() error {
	maxBody := s.cfg.MaxUploadMB << 20
	s.app.MaxMultipartMemory = maxBody
	s.app.Use(gin.Recovery())
	s.app.Use(httpHandler.RequestLogger(s.log))
	s.app.Use(cors.New(s.corsConfig()))
	s.app.Use(httpHandler.BodyLimit(maxBody))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			s.log.Warn("health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	store, err := storage.NewLocalStore(s.cfg.UploadDir)
	if err != nil {
		return err
	}

	// Initialize repositories
	repos := usecases.Repos{
		Users:             repositories.NewUserPgRepository(s.db),
		Profiles:          repositories.NewProfilePgRepository(s.db),
		MedicalHistories:  repositories.NewMedicalHistoryPgRepository(s.db),
		Medicines:         repositories.NewMedicinePgRepository(s.db),
		Habits:            repositories.NewHabitPgRepository(s.db),
		Uploads:           repositories.NewUploadPgRepository(s.db),
		PlannerEntries:    repositories.NewPlannerEntryPgRepository(s.db),
		BMIEntries:        repositories.NewBMIEntryPgRepository(s.db),
		EmergencyContacts: repositories.NewEmergencyContactPgRepository(s.db),
		ExerciseLogs:      repositories.NewExerciseLogPgRepository(s.db),
		MealPlanEntries:   repositories.NewMealPlanEntryPgRepository(s.db),
	}

	// Initialize use cases
	manager := sessions.NewManager(s.cfg.Session.Secret, s.cfg.Session.TTL, sessions.NewRedisRegistry(s.redis))
	authUseCase := usecases.NewAuthUseCase(repos.Users, s.log)
	historyUseCase := usecases.NewMedicalHistoryUseCase(repos.MedicalHistories, store, s.log)
	medicineUseCase := usecases.NewMedicineUseCase(repos.Medicines, s.log)
	habitUseCase := usecases.NewHabitUseCase(repos.Habits, s.log)
	uploadUseCase := usecases.NewUploadUseCase(repos.Uploads, repos.MedicalHistories, store, s.log)
	profileUseCase := usecases.NewProfileUseCase(repos.Profiles, store, s.log)
	fileUseCase := usecases.NewFileUseCase(repos.Uploads, repos.MedicalHistories, repos.Profiles, store)
	reportUseCase := usecases.NewReportUseCase(repos, s.log)

	// Initialize handlers
	cookie := httpHandler.CookieConfig{Name: s.cfg.Session.CookieName, Secure: s.cfg.Session.CookieSecure}
	authHandler := httpHandler.NewAuthHandler(authUseCase, manager, cookie, s.log)
	historyHandler := httpHandler.NewMedicalHistoryHandler(historyUseCase, s.log)
	medicineHandler := httpHandler.NewMedicineHandler(medicineUseCase, s.log)
	habitHandler := httpHandler.NewHabitHandler(habitUseCase, s.log)
	uploadHandler := httpHandler.NewUploadHandler(uploadUseCase, s.log)
	profileHandler := httpHandler.NewProfileHandler(profileUseCase, s.log)
	fileHandler := httpHandler.NewFileHandler(fileUseCase, s.log)
	reportHandler := httpHandler.NewReportHandler(reportUseCase, services.DefaultTips(), s.log)
	plannerHandler := httpHandler.NewRecordHandler(usecases.NewPlannerUseCase(repos.PlannerEntries, s.log), "Planner entry", s.log)
	bmiHandler := httpHandler.NewRecordHandler(usecases.NewBMIUseCase(repos.BMIEntries, s.log), "BMI entry", s.log)
	contactHandler := httpHandler.NewRecordHandler(usecases.NewEmergencyContactUseCase(repos.EmergencyContacts, s.log), "Emergency contact", s.log)
	exerciseHandler := httpHandler.NewRecordHandler(usecases.NewExerciseUseCase(repos.ExerciseLogs, s.log), "Exercise log", s.log)
	mealHandler := httpHandler.NewRecordHandler(usecases.NewMealUseCase(repos.MealPlanEntries, s.log), "Meal plan entry", s.log)

	requireSession := httpHandler.RequireSession(manager, s.cfg.Session.CookieName, s.log)

	api := s.app.Group("/api/v1")
	{
		// Public auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	private := api.Group("", requireSession)
	{
		private.POST("/auth/logout", authHandler.Logout)
		private.GET("/dashboard", reportHandler.Dashboard)

		private.GET("/profile", profileHandler.Get)
		private.PUT("/profile", profileHandler.Update)

		settings := private.Group("/settings")
		{
			settings.GET("", authHandler.GetSettings)
			settings.PUT("", authHandler.UpdateSettings)
			settings.POST("/password", authHandler.ChangePassword)
		}

		history := private.Group("/medical-history")
		{
			history.GET("", historyHandler.List)
			history.POST("", historyHandler.Create)
			history.PUT("/:id", historyHandler.Update)
			history.DELETE("/:id", historyHandler.Delete)
			history.POST("/:id/remove-document", historyHandler.RemoveDocument)
		}

		medicines := private.Group("/medicines")
		{
			medicines.GET("", medicineHandler.List)
			medicines.POST("", medicineHandler.Create)
			medicines.PUT("/:id", medicineHandler.Update)
			medicines.DELETE("/:id", medicineHandler.Delete)
			medicines.POST("/:id/taken", medicineHandler.MarkTaken)
		}

		habits := private.Group("/habits")
		{
			habits.GET("", habitHandler.List)
			habits.POST("", habitHandler.Create)
			habits.PUT("/:id", habitHandler.Update)
			habits.DELETE("/:id", habitHandler.Delete)
			habits.POST("/:id/done", habitHandler.MarkDone)
		}

		uploads := private.Group("/uploads")
		{
			uploads.GET("", uploadHandler.List)
			uploads.POST("", uploadHandler.Create)
			uploads.DELETE("/:id", uploadHandler.Delete)
		}
		private.GET("/documents", uploadHandler.Documents)

		planner := private.Group("/planner")
		{
			planner.GET("", plannerHandler.List)
			planner.POST("", plannerHandler.Create)
			planner.PUT("/:id", plannerHandler.Update)
			planner.DELETE("/:id", plannerHandler.Delete)
		}

		bmi := private.Group("/bmi")
		{
			bmi.GET("", bmiHandler.List)
			bmi.POST("", bmiHandler.Create)
			bmi.DELETE("/:id", bmiHandler.Delete)
		}

		contacts := private.Group("/emergency-contacts")
		{
			contacts.GET("", contactHandler.List)
			contacts.POST("", contactHandler.Create)
			contacts.PUT("/:id", contactHandler.Update)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		exercise := private.Group("/exercise")
		{
			exercise.GET("", exerciseHandler.List)
			exercise.POST("", exerciseHandler.Create)
			exercise.PUT("/:id", exerciseHandler.Update)
			exercise.DELETE("/:id", exerciseHandler.Delete)
		}

		meals := private.Group("/meals")
		{
			meals.GET("", mealHandler.List)
			meals.POST("", mealHandler.Create)
			meals.PUT("/:id", mealHandler.Update)
			meals.DELETE("/:id", mealHandler.Delete)
		}

		private.GET("/reports", reportHandler.Report)
		private.GET("/reports/export", reportHandler.Export)
		private.GET("/health-tips/today", reportHandler.TipOfTheDay)
	}

	s.app.GET("/uploads/:filename", requireSession, fileHandler.Serve)
	return nil
}

func (s *Server) Start() error {
	s.log.Info("http server listening", zap.String("addr", s.cfg.HTTPAddr))
	return s.app.Run(s.cfg.HTTPAddr)
}
