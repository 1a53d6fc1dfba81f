package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
)

// Handler 路由处理器集合，依赖全部显式注入
type Handler struct {
	auth     service.AuthService
	posts    service.PostService
	comments service.CommentService
	policy   service.AdminPolicy
	log      *zap.Logger
}

func New(auth service.AuthService, posts service.PostService, comments service.CommentService, policy service.AdminPolicy, log *zap.Logger) *Handler {
	return &Handler{auth: auth, posts: posts, comments: comments, policy: policy, log: log}
}

// render 统一出口：补齐当前用户、管理员标记与本次请求的 flash 消息
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	user := middleware.UserFromContext(c)
	data["CurrentUser"] = user
	data["IsAdmin"] = h.policy.IsAdmin(user)
	if _, ok := data["FormErrors"]; !ok {
		data["FormErrors"] = map[string]string{}
	}
	if _, ok := data["FormData"]; !ok {
		data["FormData"] = map[string]string{}
	}

	s := sessions.Default(c)
	flashes := s.Flashes()
	if len(flashes) > 0 {
		_ = s.Save()
	}
	data["Flashes"] = flashes

	c.HTML(status, name, data)
}

func (h *Handler) flash(c *gin.Context, msg string) {
	s := sessions.Default(c)
	s.AddFlash(msg)
	if err := s.Save(); err != nil {
		h.log.Warn("save flash", zap.Error(err))
	}
}

// paramID 解析路径里的数字 id，0 表示非法
func paramID(c *gin.Context) uint {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0
	}
	return uint(id)
}

// formErrors 把 validator 的校验结果摊平成 字段名 -> 提示语
func formErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["form"] = "Invalid form submission."
		return out
	}
	for _, fe := range verrs {
		out[snakeCase(fe.Field())] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	default:
		return "Invalid value."
	}
}

// snakeCase 结构体字段名转表单字段名（ImgURL -> img_url）
func snakeCase(field string) string {
	var b strings.Builder
	prevUpper := false
	for i, r := range field {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 && !prevUpper {
			b.WriteByte('_')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
		prevUpper = upper
	}
	return b.String()
}
