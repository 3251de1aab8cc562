package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"clinicsuite-server/internal/config"
	"clinicsuite-server/internal/middleware"
	"clinicsuite-server/internal/models"
	"clinicsuite-server/internal/utils"
)

// AuthHandler handles the login and logout pages.
type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

// LoginForm represents the login form fields.
type LoginForm struct {
	Email    string `form:"email" binding:"required" validate:"required,email"`
	Password string `form:"password" binding:"required" validate:"required"`
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	utils.RenderPage(c, http.StatusOK, "login.html", utils.PageData{
		"flash": middleware.TakeFlash(c),
	})
}

// Login authenticates a staff user and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if msg, ok := utils.BindFormAndValidate(c, &form); !ok {
		utils.RenderPage(c, http.StatusBadRequest, "login.html", utils.PageData{"error": msg})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", form.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("login user lookup failed")
		}
		utils.RenderPage(c, http.StatusUnauthorized, "login.html", utils.PageData{
			"error": "Invalid email or password",
		})
		return
	}

	if !user.CheckPassword(form.Password) {
		utils.RenderPage(c, http.StatusUnauthorized, "login.html", utils.PageData{
			"error": "Invalid email or password",
		})
		return
	}

	token, err := utils.GenerateSessionToken(&user, h.Cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to sign session token")
		utils.RenderPage(c, http.StatusInternalServerError, "login.html", utils.PageData{
			"error": "Could not start a session, please try again",
		})
		return
	}

	// Session token in an HTTP-only cookie
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		h.Cfg.SessionTTLHours*3600,
		"/",
		"",
		h.Cfg.Environment == "production",
		true,
	)
	utils.Redirect(c, "patients")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.Cfg.Environment == "production", true)
	utils.Redirect(c, "login")
}
