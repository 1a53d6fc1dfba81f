// Package web 内嵌 HTML 模板与模板函数
package web

import (
	"crypto/md5"
	"embed"
	"fmt"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var files embed.FS

// Templates 解析全部内嵌模板，名字为文件基名（index.html 等）
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html"))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"gravatar": Gravatar,
		// 文章正文是富文本 HTML，按原样输出
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	}
}

// Gravatar 按邮箱生成头像地址（retro 兜底，g 分级）
func Gravatar(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", sum, size)
}
