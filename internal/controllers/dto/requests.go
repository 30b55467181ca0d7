// Package dto 定义 HTTP 请求体与查询参数结构，并负责字段级校验。
package dto

// ListVideosQuery 对应 GET /v1/videos 的查询参数。
type ListVideosQuery struct {
	Query    string `json:"query" validate:"max=200"`
	Owner    string `json:"owner" validate:"omitempty,uuid"`
	SortBy   string `json:"sortBy" validate:"omitempty,oneof=createdAt views duration title"`
	SortType string `json:"sortType" validate:"omitempty,oneof=asc desc ASC DESC"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// PageQuery 对应只包含分页参数的列表查询；越界值由服务层归一化，不在此拒绝。
type PageQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// PublishVideoForm 是发布视频 multipart 表单中的文本字段。
type PublishVideoForm struct {
	Title       string  `validate:"required,max=200"`
	Description string  `validate:"required,max=5000"`
	Duration    float64 `validate:"gte=0"`
}

// UpdateVideoRequest 支持 JSON 与 multipart 两种写法，nil 字段保持原值。
type UpdateVideoRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

// ContentRequest 是评论与动态共用的请求体。
type ContentRequest struct {
	Content string `json:"content" validate:"required,max=5000"`
}

// PlaylistRequest 是创建与修改播放列表的请求体。
type PlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"required,max=1000"`
}
