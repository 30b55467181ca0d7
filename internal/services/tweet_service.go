package services

import (
	"context"
	"errors"
	"strings"

	"github.com/bionicotaku/lingo-services-engagement/internal/models/po"
	"github.com/bionicotaku/lingo-services-engagement/internal/models/vo"
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
)

// TweetService 管理用户动态。
type TweetService struct {
	tweets TweetRepository
	likes  LikeRepository
	log    *log.Helper
}

// NewTweetService 构造 TweetService。
func NewTweetService(tweets TweetRepository, likes LikeRepository, logger log.Logger) *TweetService {
	return &TweetService{tweets: tweets, likes: likes, log: log.NewHelper(logger)}
}

// CreateTweet 发布动态。
func (s *TweetService) CreateTweet(ctx context.Context, actorID uuid.UUID, content string) (*vo.Tweet, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidArgument("content is required")
	}
	tweet, err := s.tweets.Create(ctx, nil, actorID, content)
	if err != nil {
		return nil, storageError("create tweet", err)
	}
	return plainTweet(tweet), nil
}

// ListUserTweets 按创建时间倒序返回用户动态。
func (s *TweetService) ListUserTweets(ctx context.Context, userID uuid.UUID) ([]*vo.Tweet, error) {
	if err := requireID(userID, "userId"); err != nil {
		return nil, err
	}
	rows, err := s.tweets.ListByOwner(ctx, nil, userID)
	if err != nil {
		return nil, storageError("list tweets", err)
	}
	items := make([]*vo.Tweet, 0, len(rows))
	for _, row := range rows {
		items = append(items, vo.NewTweet(row))
	}
	return items, nil
}

// UpdateTweet 修改动态内容。
func (s *TweetService) UpdateTweet(ctx context.Context, tweetID, actorID uuid.UUID, content string) (*vo.Tweet, error) {
	if err := requireActor(actorID); err != nil {
		return nil, err
	}
	if err := requireID(tweetID, "tweetId"); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, invalidArgument("content is required")
	}
	tweet, err := s.tweets.Update(ctx, nil, tweetID, actorID, content)
	if err != nil {
		if errors.Is(err, repositories.ErrTweetNotFound) {
			return nil, ErrTweetNotFoundOrForbidden
		}
		return nil, storageError("update tweet", err)
	}
	return plainTweet(tweet), nil
}

// DeleteTweet 删除动态，并尽力清理其点赞。
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID, actorID uuid.UUID) error {
	if err := requireActor(actorID); err != nil {
		return err
	}
	if err := requireID(tweetID, "tweetId"); err != nil {
		return err
	}
	if err := s.tweets.Delete(ctx, nil, tweetID, actorID); err != nil {
		if errors.Is(err, repositories.ErrTweetNotFound) {
			return ErrTweetNotFoundOrForbidden
		}
		return storageError("delete tweet", err)
	}
	if _, err := s.likes.DeleteByTweet(ctx, nil, tweetID); err != nil {
		s.log.WithContext(ctx).Warnf("delete tweet likes failed: tweet=%s err=%v", tweetID, err)
	}
	return nil
}

func plainTweet(tweet *po.Tweet) *vo.Tweet {
	return vo.NewTweet(&po.TweetWithOwner{Tweet: *tweet})
}
