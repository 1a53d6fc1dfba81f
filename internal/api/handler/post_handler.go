package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/gin-blog/internal/api/middleware"
	"github.com/d60-Lab/gin-blog/internal/model"
	"github.com/d60-Lab/gin-blog/internal/service"
	"github.com/d60-Lab/gin-blog/pkg/response"
)

type postForm struct {
	Title    string `form:"title" binding:"required"`
	Subtitle string `form:"subtitle" binding:"required"`
	ImgURL   string `form:"img_url" binding:"required,url"`
	Body     string `form:"body" binding:"required"`
}

type commentForm struct {
	CommentText string `form:"comment_text" binding:"required"`
}

func (f postForm) input() service.PostInput {
	return service.PostInput{Title: f.Title, Subtitle: f.Subtitle, ImgURL: f.ImgURL, Body: f.Body}
}

func (f postForm) data() map[string]string {
	return map[string]string{"title": f.Title, "subtitle": f.Subtitle, "img_url": f.ImgURL, "body": f.Body}
}

// Index 首页：全部文章，新的在前
func (h *Handler) Index(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Title": "Home", "Posts": posts})
}

// Show 文章详情；id 不存在渲染 404 页而非空页
func (h *Handler) Show(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}
	h.renderPost(c, post, nil, "")
}

// CreateComment 评论提交：匿名提交只留 flash，不落库
func (h *Handler) CreateComment(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}

	var form commentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderPost(c, post, formErrors(err), form.CommentText)
		return
	}

	user := middleware.UserFromContext(c)
	if user == nil {
		h.flash(c, "You need to login or register to comment.")
		h.renderPost(c, post, nil, form.CommentText)
		return
	}

	if _, err := h.comments.Add(c.Request.Context(), user, post.ID, form.CommentText); err != nil {
		response.InternalError(c, err)
		return
	}

	// 重取一次，让新评论出现在渲染结果里
	post, err := h.posts.Get(c.Request.Context(), post.ID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.renderPost(c, post, nil, "")
}

// NewPost 建帖表单（auth + admin 守卫在路由层）
func (h *Handler) NewPost(c *gin.Context) {
	h.render(c, http.StatusOK, "make-post.html", gin.H{
		"Title":  "New Post",
		"Action": "/new-post",
	})
}

func (h *Handler) CreatePost(c *gin.Context) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "make-post.html", gin.H{
			"Title":      "New Post",
			"Action":     "/new-post",
			"FormErrors": formErrors(err),
			"FormData":   form.data(),
		})
		return
	}

	author := middleware.UserFromContext(c)
	if _, err := h.posts.Create(c.Request.Context(), author, form.input()); err != nil {
		if errors.Is(err, service.ErrTitleTaken) {
			h.render(c, http.StatusOK, "make-post.html", gin.H{
				"Title":      "New Post",
				"Action":     "/new-post",
				"FormErrors": map[string]string{"title": "A post with that title already exists."},
				"FormData":   form.data(),
			})
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// EditPost 编辑表单，字段预填当前值
func (h *Handler) EditPost(c *gin.Context) {
	post, ok := h.lookupPost(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, "make-post.html", gin.H{
		"Title":  "Edit Post",
		"IsEdit": true,
		"Action": fmt.Sprintf("/edit-post/%d", post.ID),
		"FormData": map[string]string{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"img_url":  post.ImgURL,
			"body":     post.Body,
		},
	})
}

func (h *Handler) UpdatePost(c *gin.Context) {
	id := paramID(c)
	if id == 0 {
		response.NotFound(c)
		return
	}
	action := fmt.Sprintf("/edit-post/%d", id)

	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusOK, "make-post.html", gin.H{
			"Title":      "Edit Post",
			"IsEdit":     true,
			"Action":     action,
			"FormErrors": formErrors(err),
			"FormData":   form.data(),
		})
		return
	}

	editor := middleware.UserFromContext(c)
	_, err := h.posts.Update(c.Request.Context(), id, editor, form.input())
	switch {
	case errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c)
	case errors.Is(err, service.ErrTitleTaken):
		h.render(c, http.StatusOK, "make-post.html", gin.H{
			"Title":      "Edit Post",
			"IsEdit":     true,
			"Action":     action,
			"FormErrors": map[string]string{"title": "A post with that title already exists."},
			"FormData":   form.data(),
		})
	case err != nil:
		response.InternalError(c, err)
	default:
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/post/%d", id))
	}
}

// DeletePost 删除文章，评论级联移除
func (h *Handler) DeletePost(c *gin.Context) {
	id := paramID(c)
	if id == 0 {
		response.NotFound(c)
		return
	}
	if err := h.posts.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c)
			return
		}
		response.InternalError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) lookupPost(c *gin.Context) (*model.Post, bool) {
	id := paramID(c)
	if id == 0 {
		response.NotFound(c)
		return nil, false
	}
	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c)
		} else {
			response.InternalError(c, err)
		}
		return nil, false
	}
	return post, true
}

func (h *Handler) renderPost(c *gin.Context, post *model.Post, errs map[string]string, draft string) {
	data := gin.H{
		"Title":    post.Title,
		"Post":     post,
		"FormData": map[string]string{"comment_text": draft},
	}
	if errs != nil {
		data["FormErrors"] = errs
	}
	h.render(c, http.StatusOK, "post.html", data)
}
