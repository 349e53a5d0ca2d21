package handlers

import (
	"errors"
	"log"
	"net/http"

	"quizhub/internal/ai"
	"quizhub/internal/auth"
	"quizhub/internal/models"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	Service   *service.QuizService
	Generator *ai.Generator
}

func NewQuizHandler(s *service.QuizService, g *ai.Generator) *QuizHandler {
	return &QuizHandler{Service: s, Generator: g}
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.Service.ListQuizzes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	c.JSON(http.StatusOK, quizzes)
}

func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.Service.GetQuiz(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var quiz models.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user := auth.CurrentUser(c)
	if err := h.Service.CreateQuiz(c.Request.Context(), &quiz, user); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	user := auth.CurrentUser(c)
	if err := h.Service.DeleteQuiz(c.Request.Context(), c.Param("id"), user); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quiz and all associated results removed"})
}

func (h *QuizHandler) GetQuizAnalytics(c *gin.Context) {
	stats, err := h.Service.QuizAnalytics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

type generateRequest struct {
	Request string `json:"request"`
}

// GenerateQuestions drafts questions from a prompt. The raw upstream
// failure is logged for diagnosis; the caller only sees a generic message.
func (h *QuizHandler) GenerateQuestions(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Request == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A prompt request is required"})
		return
	}

	questions, err := h.Generator.GenerateQuestions(c.Request.Context(), req.Request)
	if err != nil {
		log.Printf("AI question generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error while generating questions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
