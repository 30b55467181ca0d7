package services

import "math"

// 分页参数边界。
const (
	DefaultPageSize      = 10
	DefaultLikedPageSize = 20
	MaxPageSize          = 100
)

// PageRequest 表示归一化后的分页参数。
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest 归一化分页参数：page 至少为 1；pageSize 为 0 时取默认值，其余情况夹在 [1, MaxPageSize]。
func NewPageRequest(page, pageSize, defaultSize int) PageRequest {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize == 0:
		pageSize = defaultSize
	case pageSize < 1:
		pageSize = 1
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Limit 返回查询 LIMIT。
func (p PageRequest) Limit() int32 {
	return int32(p.PageSize)
}

// Offset 返回查询 OFFSET；超出 int32 的页码夹到 math.MaxInt32，查询结果为空页。
func (p PageRequest) Offset() int32 {
	if p.PageSize < 1 || p.Page <= 1 {
		return 0
	}
	skip := int64(p.Page - 1)
	if skip > math.MaxInt32/int64(p.PageSize) {
		return math.MaxInt32
	}
	return int32(skip * int64(p.PageSize))
}
