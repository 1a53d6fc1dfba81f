package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

const (
	// SessionUserKey 会话里存的不透明用户标识
	SessionUserKey = "user_id"
	ctxUserKey     = "current_user"
)

// CurrentUser 每个请求解析一次“当前用户”；
// 会话里的 id 解析不到用户时按匿名处理，绝不报错。
func CurrentUser(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		if id, ok := s.Get(SessionUserKey).(uint); ok {
			if user, err := auth.UserByID(c.Request.Context(), id); err == nil {
				c.Set(ctxUserKey, user)
			}
		}
		c.Next()
	}
}

// UserFromContext 取当前用户，匿名时返回 nil
func UserFromContext(c *gin.Context) *model.User {
	if v, ok := c.Get(ctxUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// RequireAuth 未认证跳登录页；必须排在 AdminOnly 之前
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFromContext(c) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminOnly 已认证但非哨兵管理员时渲染 403
func AdminOnly(policy service.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.IsAdmin(UserFromContext(c)) {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// BindSession 登录 / 注册成功后把会话绑定到用户
func BindSession(c *gin.Context, user *model.User) error {
	s := sessions.Default(c)
	s.Set(SessionUserKey, user.ID)
	return s.Save()
}

// ClearSession 无条件清除会话绑定
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}
