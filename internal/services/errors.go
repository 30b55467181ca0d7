package services

import (
	"context"
	stdErrors "errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// 对外稳定的错误原因，随 HTTP 响应的 reason 字段返回。
const (
	ReasonUnauthenticated             = "UNAUTHENTICATED"
	ReasonInvalidID                   = "INVALID_ID"
	ReasonInvalidArgument             = "INVALID_ARGUMENT"
	ReasonInvalidLikeTarget           = "INVALID_LIKE_TARGET"
	ReasonVideoNotFound               = "VIDEO_NOT_FOUND"
	ReasonCommentNotFound             = "COMMENT_NOT_FOUND"
	ReasonTweetNotFound               = "TWEET_NOT_FOUND"
	ReasonTargetNotFound              = "TARGET_NOT_FOUND"
	ReasonPlaylistNotFoundOrForbidden = "PLAYLIST_NOT_FOUND_OR_FORBIDDEN"
	ReasonVideoForbidden              = "VIDEO_FORBIDDEN"
	ReasonNotOwner                    = "NOT_OWNER"
	ReasonStorageUnavailable          = "STORAGE_UNAVAILABLE"
	ReasonMediaUnavailable            = "MEDIA_UNAVAILABLE"
	ReasonTimeout                     = "TIMEOUT"
	ReasonInternal                    = "INTERNAL"
	ReasonInvalidLikeRow              = "INVALID_LIKE_ROW"
)

var (
	// ErrUnauthenticated 表示调用需要登录身份。
	ErrUnauthenticated = errors.Unauthorized(ReasonUnauthenticated, "authentication required")
	// ErrVideoNotFound 表示视频不存在。
	ErrVideoNotFound = errors.NotFound(ReasonVideoNotFound, "video not found")
	// ErrCommentNotFound 表示评论不存在。
	ErrCommentNotFound = errors.NotFound(ReasonCommentNotFound, "comment not found")
	// ErrVideoForbidden 表示视频未发布且调用者不是作者。
	ErrVideoForbidden = errors.Forbidden(ReasonVideoForbidden, "video is not published")
	// ErrPlaylistNotFoundOrForbidden 不区分播放列表不存在、非本人或成员已存在。
	ErrPlaylistNotFoundOrForbidden = errors.NotFound(ReasonPlaylistNotFoundOrForbidden, "playlist not found or not authorized")
	// ErrTweetNotFoundOrForbidden 表示动态不存在或不属于调用者。
	ErrTweetNotFoundOrForbidden = errors.NotFound(ReasonTweetNotFound, "tweet not found or not authorized")
)

// ParseID 解析路径或查询参数中的标识符。
func ParseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.BadRequest(ReasonInvalidID, fmt.Sprintf("invalid %s", field))
	}
	return id, nil
}

func invalidArgument(format string, args ...any) *errors.Error {
	return errors.BadRequest(ReasonInvalidArgument, fmt.Sprintf(format, args...))
}

func requireID(id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return errors.BadRequest(ReasonInvalidID, fmt.Sprintf("%s is required", field))
	}
	return nil
}

// storageError 将存储层失败转换为对外错误：超时 504，连接失败 503，其余 500。
func storageError(op string, err error) *errors.Error {
	cause := fmt.Errorf("%s: %w", op, err)
	if stdErrors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return errors.GatewayTimeout(ReasonTimeout, op+" timeout").WithCause(cause)
	}
	var connectErr *pgconn.ConnectError
	if stdErrors.As(err, &connectErr) {
		return errors.ServiceUnavailable(ReasonStorageUnavailable, "storage unavailable").WithCause(cause)
	}
	return errors.InternalServer(ReasonInternal, op+" failed").WithCause(cause)
}

// mediaError 将媒体存储失败转换为对外错误。
func mediaError(op string, err error) *errors.Error {
	cause := fmt.Errorf("%s: %w", op, err)
	if stdErrors.Is(err, context.DeadlineExceeded) {
		return errors.GatewayTimeout(ReasonTimeout, op+" timeout").WithCause(cause)
	}
	return errors.ServiceUnavailable(ReasonMediaUnavailable, "media storage unavailable").WithCause(cause)
}
