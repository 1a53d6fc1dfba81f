// Package password 口令的加盐单向哈希与校验。
// 编码格式与 werkzeug 兼容：pbkdf2:sha256:<iterations>$<salt>$<hex digest>
package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	method = "pbkdf2:sha256"
	keyLen = 32
)

var ErrMalformedHash = errors.New("password: malformed hash string")

// Hasher PBKDF2-SHA256 哈希器，迭代次数与盐长度可配置
type Hasher struct {
	Iterations int
	SaltLength int // 随机盐字节数，hex 编码后落库
}

func NewHasher(iterations, saltLength int) *Hasher {
	if iterations <= 0 {
		iterations = 600000
	}
	if saltLength <= 0 {
		saltLength = 8
	}
	return &Hasher{Iterations: iterations, SaltLength: saltLength}
}

// Hash 生成随机盐并返回编码后的哈希串
func (h *Hasher) Hash(plain string) (string, error) {
	raw := make([]byte, h.SaltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("password: generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(plain), []byte(salt), h.Iterations, keyLen, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", method, h.Iterations, salt, hex.EncodeToString(key)), nil
}

// Verify 校验明文口令与编码哈希串是否匹配，格式错误一律视为不匹配
func Verify(encoded, plain string) bool {
	parts := strings.SplitN(encoded, "$", 3)
	if len(parts) != 3 {
		return false
	}
	spec, salt, digest := parts[0], parts[1], parts[2]

	iterations, err := parseSpec(spec)
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	got := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// parseSpec 解析 "pbkdf2:sha256:<iterations>" 前缀
func parseSpec(spec string) (int, error) {
	if !strings.HasPrefix(spec, method+":") {
		return 0, ErrMalformedHash
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(spec, method+":"))
	if err != nil || iterations <= 0 {
		return 0, ErrMalformedHash
	}
	return iterations, nil
}
