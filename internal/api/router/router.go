package router

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/d60-Lab/gin-blog/config"
	"github.com/d60-Lab/gin-blog/internal/api/handler"
	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/web"
)

// New 组装全部中间件与路由。守卫按“先认证后管理员”的顺序显式挂在路由上。
func New(cfg *config.Config, log *zap.Logger, h *handler.Handler, auth service.AuthService, policy service.AdminPolicy) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	if cfg.Telemetry.Enabled {
		r.Use(otelgin.Middleware("gin-blog"))
	}

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.Session.CookieName, store))
	r.Use(middleware.CurrentUser(auth))

	r.GET("/", h.Index)
	r.GET("/about", h.About)
	r.GET("/contact", h.Contact)

	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	r.GET("/post/:id", h.Show)
	// 评论由处理器自行区分匿名与已认证，匿名只 flash 不落库
	r.POST("/post/:id", h.CreateComment)

	admin := []gin.HandlerFunc{middleware.RequireAuth(), middleware.AdminOnly(policy)}
	r.GET("/new-post", append(admin, h.NewPost)...)
	r.POST("/new-post", append(admin, h.CreatePost)...)
	r.GET("/edit-post/:id", append(admin, h.EditPost)...)
	r.POST("/edit-post/:id", append(admin, h.UpdatePost)...)
	r.GET("/delete/:id", append(admin, h.DeletePost)...)

	return r
}
