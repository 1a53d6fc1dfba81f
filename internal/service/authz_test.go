package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/d60-Lab/gin-blog/internal/model"
)

func TestAdminPolicy(t *testing.T) {
	policy := NewAdminPolicy(1)

	assert.True(t, policy.IsAdmin(&model.User{ID: 1}))
	assert.False(t, policy.IsAdmin(&model.User{ID: 2}))
	assert.False(t, policy.IsAdmin(nil))

	// 0 回落到默认哨兵
	assert.Equal(t, uint(1), NewAdminPolicy(0).AdminID)
	assert.True(t, NewAdminPolicy(7).IsAdmin(&model.User{ID: 7}))
}
