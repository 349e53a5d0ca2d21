package handlers

import (
	"net/http"

	"quizhub/internal/auth"
	"quizhub/internal/models"
	"quizhub/internal/scoring"
	"quizhub/internal/service"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	Service *service.ResultService
}

func NewResultHandler(s *service.ResultService) *ResultHandler {
	return &ResultHandler{Service: s}
}

type submitRequest struct {
	QuizID  string                    `json:"quizId"`
	Answers []scoring.SubmittedAnswer `json:"answers"`
}

func (h *ResultHandler) SubmitQuiz(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := auth.CurrentUser(c)
	result, err := h.Service.SubmitQuiz(c.Request.Context(), req.QuizID, req.Answers, user)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Quiz submitted successfully!",
		"resultId":       result.ID,
		"score":          result.Score,
		"correctAnswers": result.CorrectAnswers,
		"totalQuestions": result.TotalQuestions,
	})
}

func (h *ResultHandler) GetMyResults(c *gin.Context) {
	user := auth.CurrentUser(c)
	results, err := h.Service.ResultsForUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if results == nil {
		results = []models.Result{}
	}
	c.JSON(http.StatusOK, results)
}

func (h *ResultHandler) GetResultByID(c *gin.Context) {
	user := auth.CurrentUser(c)
	result, err := h.Service.GetResult(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
