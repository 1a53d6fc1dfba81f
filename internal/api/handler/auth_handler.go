package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

type registerForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"Title": "Register"})
}

func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "register.html", gin.H{
			"Title":      "Register",
			"FormErrors": formErrors(err),
			"FormData":   map[string]string{"name": form.Name, "email": form.Email},
		})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), form.Email, form.Password, form.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			h.render(c, http.StatusOK, "register.html", gin.H{
				"Title":      "Register",
				"FormErrors": map[string]string{"email": "That email is already registered. Log in instead."},
				"FormData":   map[string]string{"name": form.Name, "email": form.Email},
			})
			return
		}
		response.InternalError(c, err)
		return
	}

	if err := middleware.BindSession(c, user); err != nil {
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Log In"})
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "login.html", gin.H{
			"Title":      "Log In",
			"FormErrors": formErrors(err),
			"FormData":   map[string]string{"email": form.Email},
		})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), form.Email, form.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		h.flash(c, "No user found! Please try again.")
	case errors.Is(err, service.ErrInvalidPassword):
		h.flash(c, "Invalid Password! Please try again.")
	case err != nil:
		response.InternalError(c, err)
		return
	default:
		if err := middleware.BindSession(c, user); err != nil {
			response.InternalError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.render(c, http.StatusOK, "login.html", gin.H{
		"Title":    "Log In",
		"FormData": map[string]string{"email": form.Email},
	})
}

// Logout 无条件清会话，与此前是否已认证无关
func (h *Handler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		h.log.Warn("clear session", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/")
}
