package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_video_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services VideoRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_like_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services LikeRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_comment_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services CommentRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_playlist_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services PlaylistRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_tweet_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services TweetRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_subscription_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services SubscriptionRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_watch_history_repository.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services WatchHistoryRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services OutboxEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_media_store.go -package=mocks github.com/bionicotaku/lingo-services-engagement/internal/services MediaStore
