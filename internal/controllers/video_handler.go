package controllers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"math"
	"mime"
	"mime/multipart"
	stdhttp "net/http"
	"strconv"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers/dto"
	metadata "github.com/bionicotaku/lingo-services-engagement/internal/metadata"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
)

const (
	// multipart 表单在内存中保留的上限，超出部分落临时文件。
	multipartMemory = 32 << 20

	formVideoFile   = "videoFile"
	formThumbnail   = "thumbnail"
	formTitle       = "title"
	formDescription = "description"
	formDuration    = "duration"
)

// VideoHandler 处理视频列表、详情、发布与维护路由。
type VideoHandler struct {
	*BaseHandler
	query   services.VideoQueryServiceInterface
	command services.VideoCommandServiceInterface
}

// NewVideoHandler 构造视频 Handler。
func NewVideoHandler(query services.VideoQueryServiceInterface, command services.VideoCommandServiceInterface, base *BaseHandler) *VideoHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &VideoHandler{BaseHandler: base, query: query, command: command}
}

// RegisterRoutes 实现 RouteRegistrar。
func (h *VideoHandler) RegisterRoutes(r *khttp.Router) {
	r.GET("/videos", h.ListVideos)
	r.POST("/videos", h.PublishVideo)
	r.GET("/videos/{videoId}", h.GetVideo)
	r.PATCH("/videos/{videoId}", h.UpdateVideo)
	r.DELETE("/videos/{videoId}", h.DeleteVideo)
	r.PATCH("/videos/{videoId}/publish", h.TogglePublish)
}

// ListVideos 处理 GET /v1/videos。
func (h *VideoHandler) ListVideos(ctx khttp.Context) error {
	return h.serve(ctx, OperationListVideos, HandlerTypeQuery, stdhttp.StatusOK, "Videos fetched successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			viewer, err := OptionalActor(meta)
			if err != nil {
				return nil, err
			}
			var q dto.ListVideosQuery
			if err := ctx.BindQuery(&q); err != nil {
				return nil, dto.InvalidBody(err)
			}
			if err := dto.Validate(&q); err != nil {
				return nil, err
			}
			input := services.ListVideosInput{
				Query:    q.Query,
				ViewerID: viewer,
				SortBy:   q.SortBy,
				SortType: q.SortType,
				Page:     q.Page,
				PageSize: q.PageSize,
			}
			if q.Owner != "" {
				owner, err := services.ParseID(q.Owner, "owner")
				if err != nil {
					return nil, err
				}
				input.OwnerID = &owner
			}
			return h.query.ListVideos(c, input)
		})
}

// PublishVideo 处理 POST /v1/videos，表单必须包含视频文件与封面。
func (h *VideoHandler) PublishVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationPublishVideo, HandlerTypeCommand, stdhttp.StatusOK, "Video published successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			req := ctx.Request()
			if err := req.ParseMultipartForm(multipartMemory); err != nil {
				return nil, dto.InvalidBody(err)
			}
			defer cleanupMultipart(req)

			form := dto.PublishVideoForm{
				Title:       req.FormValue(formTitle),
				Description: req.FormValue(formDescription),
			}
			if raw := strings.TrimSpace(req.FormValue(formDuration)); raw != "" {
				d, err := strconv.ParseFloat(raw, 64)
				if err != nil || math.IsInf(d, 0) || math.IsNaN(d) {
					return nil, errors.BadRequest(services.ReasonInvalidArgument, "duration must be a finite number")
				}
				form.Duration = d
			}
			if err := dto.Validate(&form); err != nil {
				return nil, err
			}

			video, closeVideo, err := openUpload(req, formVideoFile)
			if err != nil {
				return nil, err
			}
			defer closeVideo()
			thumb, closeThumb, err := openUpload(req, formThumbnail)
			if err != nil {
				return nil, err
			}
			defer closeThumb()
			if video == nil || thumb == nil {
				return nil, errors.BadRequest(services.ReasonInvalidArgument, "videoFile and thumbnail are required")
			}

			return h.command.PublishVideo(c, services.PublishVideoInput{
				ActorID:         actor,
				Title:           form.Title,
				Description:     form.Description,
				DurationSeconds: form.Duration,
				Video:           video,
				Thumbnail:       thumb,
			})
		})
}

// GetVideo 处理 GET /v1/videos/{videoId}，每次成功读取都会累加播放量。
func (h *VideoHandler) GetVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationGetVideo, HandlerTypeQuery, stdhttp.StatusOK, "Video fetched successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			videoID, err := pathID(ctx, "videoId")
			if err != nil {
				return nil, err
			}
			viewer, err := OptionalActor(meta)
			if err != nil {
				return nil, err
			}
			return h.query.GetVideoDetail(c, videoID, viewer)
		})
}

// UpdateVideo 处理 PATCH /v1/videos/{videoId}。multipart 请求可附带新封面。
func (h *VideoHandler) UpdateVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationUpdateVideo, HandlerTypeCommand, stdhttp.StatusOK, "Video updated successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			videoID, err := pathID(ctx, "videoId")
			if err != nil {
				return nil, err
			}
			actor, err := RequireActor(meta)
			if err != nil {
				return nil, err
			}
			input := services.UpdateVideoInput{VideoID: videoID, ActorID: actor}
			req := ctx.Request()

			if isMultipart(req) {
				if err := req.ParseMultipartForm(multipartMemory); err != nil {
					return nil, dto.InvalidBody(err)
				}
				defer cleanupMultipart(req)
				body := dto.UpdateVideoRequest{
					Title:       optionalFormValue(req, formTitle),
					Description: optionalFormValue(req, formDescription),
				}
				if err := dto.Validate(&body); err != nil {
					return nil, err
				}
				input.Title, input.Description = body.Title, body.Description
				thumb, closeThumb, err := openUpload(req, formThumbnail)
				if err != nil {
					return nil, err
				}
				defer closeThumb()
				input.Thumbnail = thumb
				return h.command.UpdateVideo(c, input)
			}

			var body dto.UpdateVideoRequest
			if err := decodeJSON(req, &body); err != nil {
				return nil, err
			}
			if err := dto.Validate(&body); err != nil {
				return nil, err
			}
			input.Title, input.Description = body.Title, body.Description
			return h.command.UpdateVideo(c, input)
		})
}

// DeleteVideo 处理 DELETE /v1/videos/{videoId}。
func (h *VideoHandler) DeleteVideo(ctx khttp.Context) error {
	return h.serve(ctx, OperationDeleteVideo, HandlerTypeCommand, stdhttp.StatusOK, "Video deleted successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			videoID, actor, err := h.ownerCall(ctx, meta)
			if err != nil {
				return nil, err
			}
			return h.command.DeleteVideo(c, videoID, actor)
		})
}

// TogglePublish 处理 PATCH /v1/videos/{videoId}/publish。
func (h *VideoHandler) TogglePublish(ctx khttp.Context) error {
	return h.serve(ctx, OperationTogglePublish, HandlerTypeCommand, stdhttp.StatusOK, "Publish status toggled successfully",
		func(c context.Context, meta metadata.HandlerMetadata) (any, error) {
			videoID, actor, err := h.ownerCall(ctx, meta)
			if err != nil {
				return nil, err
			}
			return h.command.TogglePublishStatus(c, videoID, actor)
		})
}

func (h *VideoHandler) ownerCall(ctx khttp.Context, meta metadata.HandlerMetadata) (uuid.UUID, uuid.UUID, error) {
	videoID, err := pathID(ctx, "videoId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	actor, err := RequireActor(meta)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return videoID, actor, nil
}

// openUpload 打开表单文件字段；字段缺失时返回 nil。
func openUpload(req *stdhttp.Request, field string) (*services.MediaUpload, func(), error) {
	noop := func() {}
	if req.MultipartForm == nil || len(req.MultipartForm.File[field]) == 0 {
		return nil, noop, nil
	}
	header := req.MultipartForm.File[field][0]
	file, err := header.Open()
	if err != nil {
		return nil, noop, dto.InvalidBody(err)
	}
	return &services.MediaUpload{
		Name:        header.Filename,
		Reader:      file,
		Size:        header.Size,
		ContentType: uploadContentType(header),
	}, func() { _ = file.Close() }, nil
}

func uploadContentType(header *multipart.FileHeader) string {
	if ct := header.Header.Get("Content-Type"); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func optionalFormValue(req *stdhttp.Request, key string) *string {
	if req.MultipartForm == nil {
		return nil
	}
	values, ok := req.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

func isMultipart(req *stdhttp.Request) bool {
	mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

func cleanupMultipart(req *stdhttp.Request) {
	if req.MultipartForm != nil {
		_ = req.MultipartForm.RemoveAll()
	}
}

// decodeJSON 解码 JSON 请求体，空请求体按空对象处理。
func decodeJSON(req *stdhttp.Request, v any) error {
	if req.Body == nil || req.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(req.Body).Decode(v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return dto.InvalidBody(err)
	}
	return nil
}
