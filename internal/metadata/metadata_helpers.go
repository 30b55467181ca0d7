// Package metadata 解析网关透传的身份与条件请求头，并在 Context 中传递解析结果。
//
// 身份来自 API Gateway 注入的 x-apigateway-api-userinfo 头：base64 编码的 JWT claims。
// 头缺失表示匿名调用；头存在但无法解析、或主体不是 UUID 时，调用者视为未认证。
package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// 入站请求头名称。
const (
	HeaderUserInfo       = "x-apigateway-api-userinfo"
	HeaderIdempotencyKey = "x-md-idempotency-key"
	HeaderIfMatch        = "x-md-if-match"
	HeaderIfNoneMatch    = "x-md-if-none-match"
)

var (
	// ErrMalformedUserInfo 表示身份头无法解码为 claims。
	ErrMalformedUserInfo = errors.New("metadata: malformed userinfo header")
	// ErrInvalidActor 表示身份头存在但无法得到合法的用户 UUID。
	ErrInvalidActor = errors.New("metadata: invalid actor identity")
)

// HeaderGetter 抽象请求头读取，kratos transport.Header 与 net/http.Header 均满足。
type HeaderGetter interface {
	Get(key string) string
}

// UserInfo 是身份头中本服务关心的 claims。
type UserInfo struct {
	Subject string `json:"sub"`
	UserID  string `json:"user_id"`
	UID     string `json:"uid"`
	Email   string `json:"email"`
	Role    string `json:"role"`
}

// Identifier 按 sub → user_id → uid 的顺序返回第一个非空标识。
func (u UserInfo) Identifier() string {
	for _, candidate := range []string{u.Subject, u.UserID, u.UID} {
		if v := strings.TrimSpace(candidate); v != "" {
			return v
		}
	}
	return ""
}

// HandlerMetadata 描述一次请求的调用者身份与条件请求头。
type HandlerMetadata struct {
	IdempotencyKey  string
	IfMatch         string
	IfNoneMatch     string
	UserID          string
	Email           string
	RawUserInfo     string
	InvalidUserInfo bool
}

// Parse 从请求头构造 HandlerMetadata；身份头解析失败时仅打标记，由调用方决定如何响应。
func Parse(header HeaderGetter) HandlerMetadata {
	if header == nil {
		return HandlerMetadata{}
	}
	meta := HandlerMetadata{
		IdempotencyKey: strings.TrimSpace(header.Get(HeaderIdempotencyKey)),
		IfMatch:        strings.TrimSpace(header.Get(HeaderIfMatch)),
		IfNoneMatch:    strings.TrimSpace(header.Get(HeaderIfNoneMatch)),
		RawUserInfo:    strings.TrimSpace(header.Get(HeaderUserInfo)),
	}
	if meta.RawUserInfo == "" {
		return meta
	}
	info, err := ParseUserInfo(meta.RawUserInfo)
	if err != nil || info.Identifier() == "" {
		meta.InvalidUserInfo = true
		return meta
	}
	meta.UserID = info.Identifier()
	meta.Email = info.Email
	return meta
}

// Anonymous 报告请求是否未携带身份头。
func (m HandlerMetadata) Anonymous() bool {
	return m.RawUserInfo == ""
}

// UserUUID 尝试解析 user_id 为 UUID。
func (m HandlerMetadata) UserUUID() (uuid.UUID, bool) {
	if strings.TrimSpace(m.UserID) == "" {
		return uuid.Nil, false
	}
	value, err := uuid.Parse(m.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return value, true
}

// Actor 返回调用者 ID：匿名请求返回 nil；身份头非法或主体不是 UUID 时返回 ErrInvalidActor。
func (m HandlerMetadata) Actor() (*uuid.UUID, error) {
	if m.Anonymous() {
		return nil, nil
	}
	if m.InvalidUserInfo {
		return nil, ErrInvalidActor
	}
	id, ok := m.UserUUID()
	if !ok {
		return nil, ErrInvalidActor
	}
	return &id, nil
}

func (m HandlerMetadata) isZero() bool {
	return m == HandlerMetadata{}
}

type ctxKey struct{}

// Inject 将 HandlerMetadata 注入 Context，空值不注入。
func Inject(ctx context.Context, meta HandlerMetadata) context.Context {
	if meta.isZero() {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, meta)
}

// FromContext 读取上游注入的 HandlerMetadata。
func FromContext(ctx context.Context) (HandlerMetadata, bool) {
	if ctx == nil {
		return HandlerMetadata{}, false
	}
	meta, ok := ctx.Value(ctxKey{}).(HandlerMetadata)
	return meta, ok
}

// ParseUserInfo 解码身份头；网关可能使用 RawURL、URL 或 Std 三种 base64 变体。
func ParseUserInfo(raw string) (UserInfo, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UserInfo{}, nil
	}
	payload, err := decodeUserInfo(raw)
	if err != nil {
		return UserInfo{}, err
	}
	var info UserInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return UserInfo{}, errors.Join(ErrMalformedUserInfo, err)
	}
	return info, nil
}

func decodeUserInfo(raw string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	}
	for _, enc := range encodings {
		if payload, err := enc.DecodeString(raw); err == nil {
			return payload, nil
		}
	}
	return nil, ErrMalformedUserInfo
}
