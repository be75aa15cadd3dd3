package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Seokzzoo/bonoclicker/internal/services"
	"github.com/Seokzzoo/bonoclicker/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService        *services.GameService
	authService        *services.AuthService
	leaderboardService *services.LeaderboardService
	hub                *ws.Hub
}

func NewGameHandler(gameService *services.GameService, authService *services.AuthService, leaderboardService *services.LeaderboardService, hub *ws.Hub) *GameHandler {
	return &GameHandler{
		gameService:        gameService,
		authService:        authService,
		leaderboardService: leaderboardService,
		hub:                hub,
	}
}

type SubmitRequest struct {
	SessionToken string `json:"sessionToken" binding:"required"`
	Clicks       int    `json:"clicks"`
	DurationMs   int    `json:"durationMs"`
}

type SubmitResponse struct {
	OK    bool `json:"ok"`
	Valid bool `json:"valid"`
}

// Start godoc
// @Summary      Start a play session
// @Description  Check the daily limit and mint a short-lived single-play session token
// @Tags         game
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.SessionGrant
// @Failure      401 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Router       /api/game/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	userID := c.GetUint("user_id")

	grant, err := h.gameService.StartSession(userID)
	if err != nil {
		if errors.Is(err, services.ErrDailyLimit) {
			c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "DAILY_LIMIT"})
			return
		}
		log.Printf("start session failed for user %d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "start_failed"})
		return
	}

	c.JSON(http.StatusOK, grant)
}

// Submit godoc
// @Summary      Submit a completed play
// @Description  Validate the session token and score envelope, record the play and update daily aggregates; an out-of-bounds score is accepted with valid=false
// @Tags         game
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitRequest true "Play result"
// @Success      200 {object} SubmitResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/game/submit [post]
func (h *GameHandler) Submit(c *gin.Context) {
	userID := c.GetUint("user_id")
	team := c.GetString("team")

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "submit_failed"})
		return
	}

	sessionID, sessionUserID, err := h.authService.ValidateSessionToken(req.SessionToken)
	if err != nil || sessionUserID != userID {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	valid, err := h.gameService.Submit(userID, team, sessionID, req.Clicks, req.DurationMs)
	if err != nil {
		if errors.Is(err, services.ErrAlreadySubmitted) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "ALREADY_SUBMITTED"})
			return
		}
		log.Printf("submit failed for user %d: %v", userID, err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "submit_failed"})
		return
	}

	h.broadcastTeamTotals()

	c.JSON(http.StatusOK, SubmitResponse{OK: true, Valid: valid})
}

func (h *GameHandler) broadcastTeamTotals() {
	board, err := h.leaderboardService.Daily(h.leaderboardService.Today())
	if err != nil {
		log.Printf("team totals broadcast skipped: %v", err)
		return
	}
	h.hub.Broadcast(ws.WSMessage{Type: "team_totals", Data: board.Teams})
}
