package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-engagement/internal/controllers"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/services"
	"github.com/bionicotaku/lingo-services-engagement/internal/services/mocks"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/golang/mock/gomock"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- stubs ----

type stubVideoQuery struct {
	listInput  services.ListVideosInput
	detailID   uuid.UUID
	detailView *uuid.UUID
	detailErr  error
}

func (s *stubVideoQuery) ListVideos(_ context.Context, input services.ListVideosInput) (*vo.Page[*vo.VideoSummary], error) {
	s.listInput = input
	return vo.NewPage([]*vo.VideoSummary{{ID: uuid.New(), Title: "hello"}}, max(input.Page, 1), 10, 1), nil
}

func (s *stubVideoQuery) GetVideoDetail(_ context.Context, videoID uuid.UUID, viewerID *uuid.UUID) (*vo.VideoDetail, error) {
	s.detailID, s.detailView = videoID, viewerID
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	return &vo.VideoDetail{VideoSummary: vo.VideoSummary{ID: videoID, Views: 1}}, nil
}

type stubVideoCommand struct {
	publish      services.PublishVideoInput
	videoBytes   []byte
	update       services.UpdateVideoInput
	deleteCalled bool
}

func (s *stubVideoCommand) PublishVideo(_ context.Context, input services.PublishVideoInput) (*vo.VideoSummary, error) {
	s.publish = input
	if input.Video != nil {
		s.videoBytes, _ = io.ReadAll(input.Video.Reader)
	}
	return &vo.VideoSummary{ID: uuid.New(), Title: input.Title, Owner: vo.Owner{ID: input.ActorID}}, nil
}

func (s *stubVideoCommand) UpdateVideo(_ context.Context, input services.UpdateVideoInput) (*vo.VideoSummary, error) {
	s.update = input
	return &vo.VideoSummary{ID: input.VideoID}, nil
}

func (s *stubVideoCommand) TogglePublishStatus(_ context.Context, videoID, _ uuid.UUID) (*vo.PublishStatus, error) {
	return &vo.PublishStatus{VideoID: videoID, IsPublished: true}, nil
}

func (s *stubVideoCommand) DeleteVideo(_ context.Context, videoID, _ uuid.UUID) (*vo.VideoDeleted, error) {
	s.deleteCalled = true
	return &vo.VideoDeleted{VideoID: videoID}, nil
}

type stubEngagement struct {
	toggle services.ToggleLikeInput
}

func (s *stubEngagement) ToggleLike(_ context.Context, input services.ToggleLikeInput) (*vo.ToggleLikeResult, error) {
	s.toggle = input
	return &vo.ToggleLikeResult{Kind: input.Kind, TargetID: input.TargetID, Liked: true}, nil
}

func (s *stubEngagement) ListLikedVideos(_ context.Context, _ uuid.UUID, page, pageSize int) (*vo.Page[*vo.LikedVideo], error) {
	return vo.NewPage([]*vo.LikedVideo{}, page, pageSize, 0), nil
}

type stubComments struct {
	page, pageSize int
	added          services.AddCommentInput
}

func (s *stubComments) ListVideoComments(_ context.Context, _ uuid.UUID, page, pageSize int) (*vo.Page[*vo.Comment], error) {
	s.page, s.pageSize = page, pageSize
	return vo.NewPage([]*vo.Comment{}, page, pageSize, 0), nil
}

func (s *stubComments) AddComment(_ context.Context, input services.AddCommentInput) (*vo.Comment, error) {
	s.added = input
	return &vo.Comment{ID: uuid.New(), VideoID: input.VideoID, Content: input.Content, CreatedAt: time.Now()}, nil
}

func (s *stubComments) UpdateComment(_ context.Context, input services.UpdateCommentInput) (*vo.Comment, error) {
	return &vo.Comment{ID: input.CommentID, Content: input.Content}, nil
}

func (s *stubComments) DeleteComment(context.Context, uuid.UUID, uuid.UUID) error {
	return services.ErrCommentNotFound
}

type stubTweets struct{}

func (stubTweets) CreateTweet(_ context.Context, actorID uuid.UUID, content string) (*vo.Tweet, error) {
	return &vo.Tweet{ID: uuid.New(), Content: content, Owner: vo.Owner{ID: actorID}}, nil
}
func (stubTweets) ListUserTweets(context.Context, uuid.UUID) ([]*vo.Tweet, error) {
	return []*vo.Tweet{}, nil
}
func (stubTweets) UpdateTweet(_ context.Context, tweetID, _ uuid.UUID, content string) (*vo.Tweet, error) {
	return &vo.Tweet{ID: tweetID, Content: content}, nil
}
func (stubTweets) DeleteTweet(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type stubPlaylists struct {
	addErr error
}

func (s *stubPlaylists) CreatePlaylist(_ context.Context, input services.CreatePlaylistInput) (*vo.Playlist, error) {
	return &vo.Playlist{ID: uuid.New(), OwnerID: input.ActorID, Name: input.Name, Description: input.Description, VideoIDs: []uuid.UUID{}}, nil
}
func (s *stubPlaylists) GetPlaylist(_ context.Context, playlistID uuid.UUID, _ *uuid.UUID) (*vo.Playlist, error) {
	return &vo.Playlist{ID: playlistID}, nil
}
func (s *stubPlaylists) ListUserPlaylists(context.Context, uuid.UUID) ([]*vo.Playlist, error) {
	return []*vo.Playlist{}, nil
}
func (s *stubPlaylists) UpdatePlaylist(_ context.Context, input services.UpdatePlaylistInput) (*vo.Playlist, error) {
	return &vo.Playlist{ID: input.PlaylistID, Name: input.Name}, nil
}
func (s *stubPlaylists) DeletePlaylist(context.Context, uuid.UUID, uuid.UUID) error { return nil }
func (s *stubPlaylists) AddVideo(_ context.Context, playlistID, videoID, _ uuid.UUID) (*vo.Playlist, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	return &vo.Playlist{ID: playlistID, VideoIDs: []uuid.UUID{videoID}, TotalVideos: 1}, nil
}
func (s *stubPlaylists) RemoveVideo(_ context.Context, playlistID, _, _ uuid.UUID) (*vo.Playlist, error) {
	return &vo.Playlist{ID: playlistID, VideoIDs: []uuid.UUID{}}, nil
}

// ---- harness ----

type harness struct {
	srv       *khttp.Server
	query     *stubVideoQuery
	command   *stubVideoCommand
	likes     *stubEngagement
	comments  *stubComments
	playlists *stubPlaylists
}

func newHarness() *harness {
	return newHarnessWithComments(nil)
}

// newHarnessWithComments 允许以真实 CommentService 替换评论桩，用于验证服务层归一化结果。
func newHarnessWithComments(comments services.CommentServiceInterface) *harness {
	h := &harness{
		query:     &stubVideoQuery{},
		command:   &stubVideoCommand{},
		likes:     &stubEngagement{},
		comments:  &stubComments{},
		playlists: &stubPlaylists{},
	}
	if comments == nil {
		comments = h.comments
	}
	base := controllers.NewBaseHandler(controllers.HandlerTimeouts{})
	handlers := controllers.NewHandlers(
		controllers.NewVideoHandler(h.query, h.command, base),
		controllers.NewCommentHandler(comments, base),
		controllers.NewLikeHandler(h.likes, base),
		controllers.NewTweetHandler(stubTweets{}, base),
		controllers.NewPlaylistHandler(h.playlists, base),
	)
	h.srv = khttp.NewServer(
		khttp.ErrorEncoder(controllers.NewErrorEncoder(log.DefaultLogger)),
		khttp.ResponseEncoder(controllers.EncodeResponse),
	)
	controllers.RegisterHTTPRoutes(h.srv, handlers.Registrars()...)
	return h
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Reason  string          `json:"reason"`
	Data    json.RawMessage `json:"data"`
}

func (h *harness) do(t *testing.T, req *stdhttp.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.srv.ServeHTTP(rec, req)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec, env
}

func jsonRequest(method, target string, body any, user string) *stdhttp.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("x-apigateway-api-userinfo", user)
	}
	return req
}

func userHeader(t *testing.T, id uuid.UUID) string {
	return encodeUserInfo(t, map[string]any{"sub": id.String()})
}

// ---- tests ----

func TestGetVideoAnonymous(t *testing.T) {
	h := newHarness()
	videoID := uuid.New()

	rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/"+videoID.String(), nil, ""))

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, 200, env.Code)
	assert.Equal(t, videoID, h.query.detailID)
	assert.Nil(t, h.query.detailView)
	var detail vo.VideoDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, int64(1), detail.Views)
}

func TestGetVideoErrorsMapToEnvelope(t *testing.T) {
	h := newHarness()
	h.query.detailErr = services.ErrVideoForbidden

	rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/"+uuid.NewString(), nil, ""))
	assert.Equal(t, stdhttp.StatusForbidden, rec.Code)
	assert.Equal(t, services.ReasonVideoForbidden, env.Reason)
	assert.Equal(t, "null", string(env.Data))

	rec, env = h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/not-a-uuid", nil, ""))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ReasonInvalidID, env.Reason)
}

func TestInvalidUserInfoIsUnauthenticated(t *testing.T) {
	h := newHarness()
	rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/"+uuid.NewString(), nil, "%%%garbage"))
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	assert.Equal(t, services.ReasonUnauthenticated, env.Reason)
}

func TestInternalErrorsHideCause(t *testing.T) {
	h := newHarness()
	h.query.detailErr = assert.AnError

	rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/"+uuid.NewString(), nil, ""))
	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", env.Message)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestListVideosQueryBinding(t *testing.T) {
	h := newHarness()
	owner := uuid.New()
	viewer := uuid.New()

	req := jsonRequest(stdhttp.MethodGet, "/v1/videos?query=go&owner="+owner.String()+"&sortBy=views&sortType=asc&page=2&pageSize=5", nil, userHeader(t, viewer))
	rec, env := h.do(t, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "go", h.query.listInput.Query)
	require.NotNil(t, h.query.listInput.OwnerID)
	assert.Equal(t, owner, *h.query.listInput.OwnerID)
	require.NotNil(t, h.query.listInput.ViewerID)
	assert.Equal(t, viewer, *h.query.listInput.ViewerID)
	assert.Equal(t, 2, h.query.listInput.Page)
	assert.Equal(t, 5, h.query.listInput.PageSize)

	var page vo.Page[*vo.VideoSummary]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)

	rec, env = h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos?sortBy=likes", nil, ""))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ReasonInvalidArgument, env.Reason)
}

func TestPublishVideoMultipart(t *testing.T) {
	h := newHarness()
	actor := uuid.New()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "My video"))
	require.NoError(t, mw.WriteField("description", "desc"))
	require.NoError(t, mw.WriteField("duration", "12.5"))
	fw, err := mw.CreateFormFile("videoFile", "clip.mp4")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("video-bytes"))
	tw, err := mw.CreateFormFile("thumbnail", "thumb.png")
	require.NoError(t, err)
	_, _ = tw.Write([]byte("png"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(stdhttp.MethodPost, "/v1/videos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-apigateway-api-userinfo", userHeader(t, actor))

	rec, env := h.do(t, req)
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Video published successfully", env.Message)
	assert.Equal(t, actor, h.command.publish.ActorID)
	assert.Equal(t, "My video", h.command.publish.Title)
	assert.InDelta(t, 12.5, h.command.publish.DurationSeconds, 0.0001)
	require.NotNil(t, h.command.publish.Thumbnail)
	assert.Equal(t, "thumb.png", h.command.publish.Thumbnail.Name)
	assert.Equal(t, "video-bytes", string(h.command.videoBytes))
}

func TestPublishVideoRequiresFilesAndAuth(t *testing.T) {
	h := newHarness()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "x"))
	require.NoError(t, mw.WriteField("description", "y"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(stdhttp.MethodPost, "/v1/videos", bytes.NewReader(body.Bytes()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec, _ := h.do(t, req)
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(stdhttp.MethodPost, "/v1/videos", bytes.NewReader(body.Bytes()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-apigateway-api-userinfo", userHeader(t, uuid.New()))
	rec, env := h.do(t, req)
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.Equal(t, services.ReasonInvalidArgument, env.Reason)
}

func TestUpdateVideoJSONKeepsNilFields(t *testing.T) {
	h := newHarness()
	videoID := uuid.New()

	req := jsonRequest(stdhttp.MethodPatch, "/v1/videos/"+videoID.String(), map[string]string{"title": "new"}, userHeader(t, uuid.New()))
	rec, _ := h.do(t, req)

	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, h.command.update.Title)
	assert.Equal(t, "new", *h.command.update.Title)
	assert.Nil(t, h.command.update.Description)
	assert.Nil(t, h.command.update.Thumbnail)
}

func TestDeleteVideoRequiresActor(t *testing.T) {
	h := newHarness()
	rec, _ := h.do(t, jsonRequest(stdhttp.MethodDelete, "/v1/videos/"+uuid.NewString(), nil, ""))
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
	assert.False(t, h.command.deleteCalled)
}

func TestToggleLikeRoute(t *testing.T) {
	h := newHarness()
	actor := uuid.New()
	target := uuid.New()

	rec, env := h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/likes/Comment/"+target.String(), nil, userHeader(t, actor)))
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "comment", h.likes.toggle.Kind)
	assert.Equal(t, target, h.likes.toggle.TargetID)
	assert.Equal(t, actor, h.likes.toggle.ActorID)

	var result vo.ToggleLikeResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, result.Liked)
}

func TestCommentRoutes(t *testing.T) {
	h := newHarness()
	videoID := uuid.New()
	actor := uuid.New()

	rec, _ := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/videos/"+videoID.String()+"/comments?page=3&pageSize=10", nil, ""))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, 3, h.comments.page)
	assert.Equal(t, 10, h.comments.pageSize)

	rec, _ = h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/videos/"+videoID.String()+"/comments", map[string]string{"content": "nice"}, userHeader(t, actor)))
	require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "nice", h.comments.added.Content)
	assert.Equal(t, videoID, h.comments.added.VideoID)

	rec, env := h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/videos/"+videoID.String()+"/comments", map[string]string{"content": ""}, userHeader(t, actor)))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
	assert.True(t, strings.Contains(env.Message, "content"), env.Message)

	rec, env = h.do(t, jsonRequest(stdhttp.MethodDelete, "/v1/comments/"+uuid.NewString(), nil, userHeader(t, actor)))
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, services.ReasonCommentNotFound, env.Reason)
}

func TestCreateRoutesReturnCreated(t *testing.T) {
	h := newHarness()
	actor := userHeader(t, uuid.New())

	rec, env := h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/tweets", map[string]string{"content": "hi"}, actor))
	assert.Equal(t, stdhttp.StatusCreated, rec.Code)
	assert.Equal(t, 201, env.Code)

	rec, env = h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/playlists", map[string]string{"name": "Fav", "description": "best"}, actor))
	assert.Equal(t, stdhttp.StatusCreated, rec.Code)
	var pl vo.Playlist
	require.NoError(t, json.Unmarshal(env.Data, &pl))
	assert.Equal(t, "Fav", pl.Name)

	rec, _ = h.do(t, jsonRequest(stdhttp.MethodPost, "/v1/playlists", map[string]string{"name": "Fav"}, actor))
	assert.Equal(t, stdhttp.StatusBadRequest, rec.Code)
}

func TestPlaylistAddVideoNotFoundOrForbidden(t *testing.T) {
	h := newHarness()
	actor := userHeader(t, uuid.New())
	path := "/v1/playlists/" + uuid.NewString() + "/videos/" + uuid.NewString()

	rec, env := h.do(t, jsonRequest(stdhttp.MethodPost, path, nil, actor))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var pl vo.Playlist
	require.NoError(t, json.Unmarshal(env.Data, &pl))
	assert.Equal(t, 1, pl.TotalVideos)

	h.playlists.addErr = services.ErrPlaylistNotFoundOrForbidden
	rec, env = h.do(t, jsonRequest(stdhttp.MethodPost, path, nil, actor))
	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Equal(t, services.ReasonPlaylistNotFoundOrForbidden, env.Reason)
}

func TestUserScopedListings(t *testing.T) {
	h := newHarness()
	userID := uuid.NewString()

	rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/users/"+userID+"/tweets", nil, ""))
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.Equal(t, "[]", string(env.Data))

	rec, _ = h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/users/"+userID+"/playlists", nil, ""))
	require.Equal(t, stdhttp.StatusOK, rec.Code)

	rec, _ = h.do(t, jsonRequest(stdhttp.MethodGet, "/v1/likes/videos", nil, ""))
	assert.Equal(t, stdhttp.StatusUnauthorized, rec.Code)
}

func TestListCommentsNormalizesPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	commentRepo := mocks.NewMockCommentRepository(ctrl)
	videoRepo := mocks.NewMockVideoRepository(ctrl)
	likeRepo := mocks.NewMockLikeRepository(ctrl)
	h := newHarnessWithComments(services.NewCommentService(commentRepo, videoRepo, likeRepo, log.DefaultLogger))
	videoID := uuid.New()
	path := "/v1/videos/" + videoID.String() + "/comments"

	videoRepo.EXPECT().Exists(gomock.Any(), gomock.Nil(), videoID).Return(true, nil).Times(3)
	commentRepo.EXPECT().CountByVideo(gomock.Any(), gomock.Nil(), videoID).Return(int64(5), nil).Times(3)
	commentRepo.EXPECT().ListByVideo(gomock.Any(), gomock.Nil(), videoID, int32(100), int32(0)).Return(nil, nil)
	commentRepo.EXPECT().ListByVideo(gomock.Any(), gomock.Nil(), videoID, int32(1), int32(0)).Return(nil, nil)
	commentRepo.EXPECT().ListByVideo(gomock.Any(), gomock.Nil(), videoID, int32(100), int32(math.MaxInt32)).Return(nil, nil)

	cases := []struct {
		query            string
		wantPage, wantSz int
	}{
		{query: "?page=-1&pageSize=500", wantPage: 1, wantSz: 100},
		{query: "?pageSize=-5", wantPage: 1, wantSz: 1},
		{query: "?page=42949674&pageSize=100", wantPage: 42949674, wantSz: 100},
	}
	for _, tc := range cases {
		rec, env := h.do(t, jsonRequest(stdhttp.MethodGet, path+tc.query, nil, ""))
		require.Equal(t, stdhttp.StatusOK, rec.Code, rec.Body.String())

		var page vo.Page[*vo.Comment]
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Equal(t, tc.wantPage, page.Page, tc.query)
		assert.Equal(t, tc.wantSz, page.PageSize, tc.query)
		assert.Empty(t, page.Items, tc.query)
	}
}

func TestPublishVideoRejectsNonFiniteDuration(t *testing.T) {
	h := newHarness()
	actor := userHeader(t, uuid.New())

	for _, raw := range []string{"Inf", "+Inf", "-Inf", "NaN", "abc"} {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("title", "My video"))
		require.NoError(t, mw.WriteField("description", "desc"))
		require.NoError(t, mw.WriteField("duration", raw))
		fw, err := mw.CreateFormFile("videoFile", "clip.mp4")
		require.NoError(t, err)
		_, _ = fw.Write([]byte("video-bytes"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(stdhttp.MethodPost, "/v1/videos", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("x-apigateway-api-userinfo", actor)

		rec, env := h.do(t, req)
		assert.Equal(t, stdhttp.StatusBadRequest, rec.Code, raw)
		assert.Equal(t, services.ReasonInvalidArgument, env.Reason, raw)
	}
	assert.Empty(t, h.command.publish.Title)
}
