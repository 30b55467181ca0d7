package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mappers"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories/mediadb"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlaylistRepository 维护播放列表及其视频集合。
// 所有写操作都以 (id, owner) 作为条件，由单条语句完成授权与修改。
type PlaylistRepository struct {
	db      *pgxpool.Pool
	queries *mediadb.Queries
	log     *log.Helper
}

// NewPlaylistRepository 构造仓储实例。
func NewPlaylistRepository(db *pgxpool.Pool, logger log.Logger) *PlaylistRepository {
	return &PlaylistRepository{
		db:      db,
		queries: mediadb.New(db),
		log:     log.NewHelper(logger),
	}
}

// Create 新建播放列表。
func (r *PlaylistRepository) Create(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID, name, description string) (*po.Playlist, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.CreatePlaylist(ctx, mediadb.CreatePlaylistParams{OwnerID: ownerID, Name: name, Description: description})
	if err != nil {
		r.log.WithContext(ctx).Errorf("create playlist failed: owner=%s err=%v", ownerID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("create playlist: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	return mappers.PlaylistFromRow(row), nil
}

// Get 查询播放列表。
func (r *PlaylistRepository) Get(ctx context.Context, sess txmanager.Session, playlistID uuid.UUID) (*po.Playlist, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.GetPlaylist(ctx, playlistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return mappers.PlaylistFromRow(row), nil
}

// ListByOwner 返回用户的全部播放列表。
func (r *PlaylistRepository) ListByOwner(ctx context.Context, sess txmanager.Session, ownerID uuid.UUID) ([]*po.Playlist, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	rows, err := queries.ListPlaylistsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	items := make([]*po.Playlist, 0, len(rows))
	for _, row := range rows {
		items = append(items, mappers.PlaylistFromRow(row))
	}
	return items, nil
}

// Update 更新名称与描述；零行命中返回 ErrPlaylistNotFound。
func (r *PlaylistRepository) Update(ctx context.Context, sess txmanager.Session, playlistID, ownerID uuid.UUID, name, description *string) (*po.Playlist, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	row, err := queries.UpdatePlaylist(ctx, mediadb.UpdatePlaylistParams{
		Name:        mappers.ToPgText(name),
		Description: mappers.ToPgText(description),
		ID:          playlistID,
		OwnerID:     ownerID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaylistNotFound
		}
		r.log.WithContext(ctx).Errorf("update playlist failed: playlist=%s err=%v", playlistID, err)
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("update playlist: %w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("update playlist: %w", err)
	}
	return mappers.PlaylistFromRow(row), nil
}

// Delete 删除播放列表；零行命中返回 ErrPlaylistNotFound。
func (r *PlaylistRepository) Delete(ctx context.Context, sess txmanager.Session, playlistID, ownerID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.DeletePlaylist(ctx, mediadb.DeletePlaylistParams{ID: playlistID, OwnerID: ownerID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("delete playlist failed: playlist=%s err=%v", playlistID, err)
		return fmt.Errorf("delete playlist: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// AddVideo 以单条条件写入追加视频。零行表示列表不存在、调用者非作者，或视频已在列表中；
// 返回值 added 为 false 时由调用方区分后两种情况。
func (r *PlaylistRepository) AddVideo(ctx context.Context, sess txmanager.Session, playlistID, ownerID, videoID uuid.UUID) (bool, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.AddVideoToPlaylist(ctx, mediadb.AddVideoToPlaylistParams{VideoID: videoID, ID: playlistID, OwnerID: ownerID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("add video to playlist failed: playlist=%s video=%s err=%v", playlistID, videoID, err)
		return false, fmt.Errorf("add video to playlist: %w", err)
	}
	return affected > 0, nil
}

// RemoveVideo 从列表移除视频；成员不存在也视为成功，列表不存在或非作者返回 ErrPlaylistNotFound。
func (r *PlaylistRepository) RemoveVideo(ctx context.Context, sess txmanager.Session, playlistID, ownerID, videoID uuid.UUID) error {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.RemoveVideoFromPlaylist(ctx, mediadb.RemoveVideoFromPlaylistParams{VideoID: videoID, ID: playlistID, OwnerID: ownerID})
	if err != nil {
		r.log.WithContext(ctx).Errorf("remove video from playlist failed: playlist=%s video=%s err=%v", playlistID, videoID, err)
		return fmt.Errorf("remove video from playlist: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// RemoveVideoEverywhere 从所有播放列表中移除视频，返回受影响的列表数。
func (r *PlaylistRepository) RemoveVideoEverywhere(ctx context.Context, sess txmanager.Session, videoID uuid.UUID) (int64, error) {
	queries := r.queries
	if sess != nil {
		queries = queries.WithTx(sess.Tx())
	}
	affected, err := queries.RemoveVideoFromAllPlaylists(ctx, videoID)
	if err != nil {
		r.log.WithContext(ctx).Errorf("remove video from all playlists failed: video=%s err=%v", videoID, err)
		return 0, fmt.Errorf("remove video from all playlists: %w", err)
	}
	return affected, nil
}
