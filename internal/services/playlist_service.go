package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// PlaylistService 管理播放列表及其视频成员集合。
// 所有写操作都是带 owner 条件的单条写入，未命中时统一返回 NotFoundOrForbidden。
type PlaylistService struct {
	playlists PlaylistRepository
	videos    VideoRepository
	log       *log.Helper
}

// NewPlaylistService 构造 PlaylistService。
func NewPlaylistService(playlists PlaylistRepository, videos VideoRepository, logger log.Logger) *PlaylistService {
	return &PlaylistService{
		playlists: playlists,
		videos:    videos,
		log:       log.NewHelper(logger),
	}
}

// CreatePlaylistInput 描述新建播放列表参数。
type CreatePlaylistInput struct {
	ActorID     uuid.UUID
	Name        string
	Description string
}

// UpdatePlaylistInput 描述修改播放列表参数，名称与描述均为必填。
type UpdatePlaylistInput struct {
	PlaylistID  uuid.UUID
	ActorID     uuid.UUID
	Name        string
	Description string
}

// CreatePlaylist 新建空播放列表。
func (s *PlaylistService) CreatePlaylist(ctx context.Context, input CreatePlaylistInput) (*vo.Playlist, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	name, desc, err := normalizePlaylistFields(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	playlist, err := s.playlists.Create(ctx, nil, input.ActorID, name, desc)
	if err != nil {
		return nil, storageError("create playlist", err)
	}
	s.log.WithContext(ctx).Infof("CreatePlaylist: playlist=%s user=%s", playlist.ID, playlist.OwnerID)
	return vo.NewPlaylist(playlist), nil
}

// GetPlaylist 返回播放列表及其中对查看者可见的视频。
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistID uuid.UUID, viewerID *uuid.UUID) (*vo.Playlist, error) {
	if err := requireID(playlistID, "playlistId"); err != nil {
		return nil, err
	}
	playlist, err := s.playlists.Get(ctx, nil, playlistID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlaylistNotFound) {
			return nil, ErrPlaylistNotFoundOrForbidden
		}
		return nil, storageError("get playlist", err)
	}
	result := vo.NewPlaylist(playlist)
	result.Videos = []*vo.VideoSummary{}
	if len(playlist.Videos) == 0 {
		return result, nil
	}
	videos, err := s.videos.ListByIDs(ctx, nil, playlist.Videos, viewerID)
	if err != nil {
		return nil, storageError("list playlist videos", err)
	}
	result.Videos = vo.NewVideoSummaries(videos)
	return result, nil
}

// ListUserPlaylists 返回用户的全部播放列表。
func (s *PlaylistService) ListUserPlaylists(ctx context.Context, userID uuid.UUID) ([]*vo.Playlist, error) {
	if err := requireID(userID, "userId"); err != nil {
		return nil, err
	}
	rows, err := s.playlists.ListByOwner(ctx, nil, userID)
	if err != nil {
		return nil, storageError("list playlists", err)
	}
	items := make([]*vo.Playlist, 0, len(rows))
	for _, row := range rows {
		items = append(items, vo.NewPlaylist(row))
	}
	return items, nil
}

// UpdatePlaylist 修改名称与描述。
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, input UpdatePlaylistInput) (*vo.Playlist, error) {
	if err := requireActor(input.ActorID); err != nil {
		return nil, err
	}
	if err := requireID(input.PlaylistID, "playlistId"); err != nil {
		return nil, err
	}
	name, desc, err := normalizePlaylistFields(input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	updated, err := s.playlists.Update(ctx, nil, input.PlaylistID, input.ActorID, &name, &desc)
	if err != nil {
		return nil, s.mapWriteError("update playlist", err)
	}
	return vo.NewPlaylist(updated), nil
}

// DeletePlaylist 删除播放列表。
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if err := requireID(playlistID, "playlistId"); err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, nil, playlistID, actorID); err != nil {
		return s.mapWriteError("delete playlist", err)
	}
	s.log.WithContext(ctx).Infof("DeletePlaylist: playlist=%s user=%s", playlistID, actorID)
	return nil
}

// AddVideo 将视频加入播放列表。视频不存在返回 NotFound；
// 条件写入未命中（列表不存在、非本人或已包含该视频）返回 NotFoundOrForbidden。
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*vo.Playlist, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID(playlistID, "playlistId"); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	exists, err := s.videos.Exists(ctx, nil, videoID)
	if err != nil {
		return nil, storageError("check video", err)
	}
	if !exists {
		return nil, ErrVideoNotFound
	}

	added, err := s.playlists.AddVideo(ctx, nil, playlistID, actorID, videoID)
	if err != nil {
		return nil, storageError("add playlist video", err)
	}
	if !added {
		return nil, ErrPlaylistNotFoundOrForbidden
	}
	return s.reload(ctx, playlistID)
}

// RemoveVideo 从播放列表移除视频。成员本就不存在时视为成功。
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, actorID uuid.UUID) (*vo.Playlist, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID(playlistID, "playlistId"); err != nil {
		return nil, err
	}
	if err := requireID(videoID, "videoId"); err != nil {
		return nil, err
	}
	if err := s.playlists.RemoveVideo(ctx, nil, playlistID, actorID, videoID); err != nil {
		return nil, s.mapWriteError("remove playlist video", err)
	}
	return s.reload(ctx, playlistID)
}

func (s *PlaylistService) reload(ctx context.Context, playlistID uuid.UUID) (*vo.Playlist, error) {
	playlist, err := s.playlists.Get(ctx, nil, playlistID)
	if err != nil {
		return nil, s.mapWriteError("get playlist", err)
	}
	return vo.NewPlaylist(playlist), nil
}

func (s *PlaylistService) mapWriteError(op string, err error) error {
	if errors.Is(err, repositories.ErrPlaylistNotFound) {
		return ErrPlaylistNotFoundOrForbidden
	}
	if errors.Is(err, repositories.ErrConstraintViolation) {
		return invalidArgument("name and description must not be blank")
	}
	return storageError(op, err)
}

func normalizePlaylistFields(name, description string) (string, string, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return "", "", invalidArgument("name is required")
	}
	if description == "" {
		return "", "", invalidArgument("description is required")
	}
	return name, description, nil
}
