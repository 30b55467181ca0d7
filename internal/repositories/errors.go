package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrVideoNotFound 表示请求的视频不存在。
	ErrVideoNotFound = errors.New("video not found")
	// ErrCommentNotFound 表示评论不存在。
	ErrCommentNotFound = errors.New("comment not found")
	// ErrTweetNotFound 表示动态不存在，或条件写入时不属于调用者。
	ErrTweetNotFound = errors.New("tweet not found")
	// ErrPlaylistNotFound 表示播放列表不存在，或条件写入时不属于调用者。
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrLikeNotFound 表示用户尚未点赞该目标。
	ErrLikeNotFound = errors.New("like not found")
	// ErrLikeExists 表示唯一索引拒绝了重复点赞。
	ErrLikeExists = errors.New("like already exists")
	// ErrConstraintViolation 表示写入违反 CHECK 或外键约束。
	ErrConstraintViolation = errors.New("constraint violation")
)

// Postgres SQLSTATE 错误码。
const (
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgForeignKeyViolation = "23503"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isConstraintViolation(err error) bool {
	switch pgErrorCode(err) {
	case pgCheckViolation, pgForeignKeyViolation:
		return true
	default:
		return false
	}
}
