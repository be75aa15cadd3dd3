package handlers

import (
	"log"
	"net/http"

	"github.com/Seokzzoo/bonoclicker/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Nickname string `json:"nickname" example:"Alice"`
	UUID     string `json:"uuid" binding:"required" example:"k3j2h1g0f9e8d7c6b5a4z"`
}

type SignupUser struct {
	Nickname string `json:"nickname"`
	Team     string `json:"team"`
}

type SignupResponse struct {
	Token string     `json:"token"`
	User  SignupUser `json:"user"`
}

// Signup godoc
// @Summary      Register or recognize a player
// @Description  Create a user for a new client uuid (team assigned deterministically) or return the existing one; responds with an identity token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup data"
// @Success      200 {object} SignupResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "nickname and uuid required"})
		return
	}

	user, token, err := h.authService.Identify(req.Nickname, req.UUID)
	if err != nil {
		log.Printf("signup failed for uuid %s: %v", req.UUID, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "signup_failed"})
		return
	}

	c.JSON(http.StatusOK, SignupResponse{
		Token: token,
		User:  SignupUser{Nickname: user.Nickname, Team: user.Team},
	})
}
