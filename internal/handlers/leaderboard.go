package handlers

import (
	"log"
	"net/http"

	"github.com/Seokzzoo/bonoclicker/internal/gameday"
	"github.com/Seokzzoo/bonoclicker/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// Daily godoc
// @Summary      Daily leaderboard
// @Description  Top users and all team totals for a day (defaults to today in the reference timezone)
// @Tags         leaderboard
// @Produce      json
// @Param        day query string false "Day (YYYY-MM-DD)"
// @Success      200 {object} services.Board
// @Failure      400 {object} ErrorResponse
// @Router       /api/leaderboard/daily [get]
func (h *LeaderboardHandler) Daily(c *gin.Context) {
	day := c.Query("day")
	if day == "" {
		day = h.leaderboardService.Today()
	} else if !gameday.Valid(day) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid day"})
		return
	}

	board, err := h.leaderboardService.Daily(day)
	if err != nil {
		log.Printf("daily leaderboard failed for %s: %v", day, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lb_failed"})
		return
	}

	c.JSON(http.StatusOK, board)
}

// Weekly godoc
// @Summary      Weekly leaderboard
// @Description  Valid clicks summed over the current ISO week, by user (top N) and by team
// @Tags         leaderboard
// @Produce      json
// @Success      200 {object} services.Board
// @Router       /api/leaderboard/weekly [get]
func (h *LeaderboardHandler) Weekly(c *gin.Context) {
	board, err := h.leaderboardService.Weekly()
	if err != nil {
		log.Printf("weekly leaderboard failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "lb_failed"})
		return
	}

	c.JSON(http.StatusOK, board)
}
