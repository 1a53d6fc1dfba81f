package service

import "github.com/d60-Lab/gin-blog/internal/model"

// AdminPolicy 唯一的授权规则：当前用户是否为哨兵管理员账号
// （默认 id=1，即最早注册的账号；身份是推导出来的，不落库）。
type AdminPolicy struct {
	AdminID uint
}

func NewAdminPolicy(adminID uint) AdminPolicy {
	if adminID == 0 {
		adminID = 1
	}
	return AdminPolicy{AdminID: adminID}
}

func (p AdminPolicy) IsAdmin(user *model.User) bool {
	return user != nil && user.ID == p.AdminID
}
