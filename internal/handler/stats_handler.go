package handler

import (
	"net/http"

	"go-gin-attendance-log/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StatsHandler struct {
	service service.EventService
	auth    service.AuthService
}

func NewStatsHandler(service service.EventService, auth service.AuthService) *StatsHandler {
	return &StatsHandler{service: service, auth: auth}
}

func (h *StatsHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("stats/me", RequireSession(h.auth), h.Mine)
		router.GET("stats/:uid", h.ByUser)
		router.GET("leaderboard", h.Leaderboard)
	}
}

func (h *StatsHandler) Mine(c *gin.Context) {
	stats, err := h.service.Stats(c, sessionFrom(c).User.ID)
	if err != nil {
		handleError(c, err, "Mine")
		return
	}

	handleSuccess(c, stats, http.StatusOK)
}

func (h *StatsHandler) ByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	stats, err := h.service.Stats(c, userID)
	if err != nil {
		handleError(c, err, "ByUser")
		return
	}

	handleSuccess(c, stats, http.StatusOK)
}

func (h *StatsHandler) Leaderboard(c *gin.Context) {
	board, err := h.service.Leaderboard(c)
	if err != nil {
		handleError(c, err, "Leaderboard")
		return
	}

	handleSuccess(c, board, http.StatusOK)
}
