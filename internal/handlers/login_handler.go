package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Alllfr/snap-journal/internal/middleware"
	loginmodels "github.com/Alllfr/snap-journal/internal/models/login"
	"github.com/Alllfr/snap-journal/internal/session"
)

type AuthHandler struct {
	postgres *pgxpool.Pool
	sessions *session.Manager
	logger   *zap.SugaredLogger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(postgres *pgxpool.Pool, sessions *session.Manager, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{
		postgres: postgres,
		sessions: sessions,
		logger:   logger,
	}
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Email": "",
	})
}

// Login verifies credentials and issues a session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid request format")
		return
	}

	// Same answer for unknown email and wrong password
	fail := func() {
		c.HTML(http.StatusUnprocessableEntity, "login.html", gin.H{
			"Error": "Invalid email or password.",
			"Email": req.Email,
		})
	}

	if req.Email == "" || req.Password == "" {
		fail()
		return
	}

	ctx := c.Request.Context()
	var userID, passwordHash string
	err := h.postgres.QueryRow(ctx,
		`SELECT id, password_hash FROM users WHERE email = $1`,
		req.Email,
	).Scan(&userID, &passwordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		fail()
		return
	}
	if err != nil {
		h.logger.Errorw("failed to look up user", "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)) != nil {
		fail()
		return
	}

	token, err := h.sessions.Create(ctx, userID)
	if err != nil {
		h.logger.Errorw("failed to create session", "error", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(session.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/journals")
}
