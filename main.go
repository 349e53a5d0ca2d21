package main

import (
	"log"
	"time"

	"quizhub/internal/ai"
	"quizhub/internal/auth"
	"quizhub/internal/config"
	"quizhub/internal/db"
	"quizhub/internal/event"
	"quizhub/internal/handlers"
	"quizhub/internal/models"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, quiz events will not be published")
	}

	quizRepo := repository.NewQuizRepository(database)
	resultRepo := repository.NewResultRepository(database)

	quizService := service.NewQuizService(quizRepo, resultRepo)
	resultService := service.NewResultService(quizRepo, resultRepo)
	generator := ai.NewGenerator(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	quizHandler := handlers.NewQuizHandler(quizService, generator)
	resultHandler := handlers.NewResultHandler(resultService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Quiz App Backend Running")
	})

	authn := auth.Middleware(cfg.JWTSecret)
	teacherOnly := auth.RequireRole(models.RoleTeacher)

	quizzes := r.Group("/api/quizzes", authn)
	{
		quizzes.GET("/", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.POST("/", teacherOnly, func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			if c.Writer.Status() == 201 {
				publisher.Publish("quiz.created", gin.H{"user_id": auth.CurrentUser(c).ID})
			}
		})
		quizzes.POST("/generate-questions", teacherOnly, quizHandler.GenerateQuestions)
		quizzes.GET("/:id/analytics", teacherOnly, quizHandler.GetQuizAnalytics)
		quizzes.DELETE("/:id", teacherOnly, func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			if c.Writer.Status() == 200 {
				publisher.Publish("quiz.deleted", gin.H{"quiz_id": c.Param("id")})
			}
		})
	}

	results := r.Group("/api/results", authn)
	{
		results.POST("/", func(c *gin.Context) {
			resultHandler.SubmitQuiz(c)
			if c.Writer.Status() == 201 {
				publisher.Publish("result.submitted", gin.H{"user_id": auth.CurrentUser(c).ID})
			}
		})
		results.GET("/", resultHandler.GetMyResults)
		results.GET("/:id", resultHandler.GetResultByID)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
