// Package services 包含应用业务用例的编排逻辑。
// 该层负责协调 Repository 和 Clients，实现核心业务规则，不直接依赖传输层或基础设施细节。
package services

import (
	"github.com/bionicotaku/lingo-services-engagement/internal/repositories"
	"github.com/google/wire"
)

// ProviderSet 暴露 Services 层的构造函数供 Wire 依赖注入使用。
// 仓储接口在此绑定到具体实现，MediaStore 由 clients 层绑定。
var ProviderSet = wire.NewSet(
	NewEngagementService,
	NewCommentService,
	NewVideoQueryService,
	NewVideoCommandService,
	NewPlaylistService,
	NewTweetService,
	NewCascadeService,
	wire.Bind(new(VideoRepository), new(*repositories.VideoRepository)),
	wire.Bind(new(LikeRepository), new(*repositories.LikeRepository)),
	wire.Bind(new(CommentRepository), new(*repositories.CommentRepository)),
	wire.Bind(new(PlaylistRepository), new(*repositories.PlaylistRepository)),
	wire.Bind(new(TweetRepository), new(*repositories.TweetRepository)),
	wire.Bind(new(SubscriptionRepository), new(*repositories.SubscriptionRepository)),
	wire.Bind(new(WatchHistoryRepository), new(*repositories.WatchHistoryRepository)),
	wire.Bind(new(OutboxEnqueuer), new(*repositories.OutboxRepository)),
	wire.Bind(new(EngagementServiceInterface), new(*EngagementService)),
	wire.Bind(new(CommentServiceInterface), new(*CommentService)),
	wire.Bind(new(VideoQueryServiceInterface), new(*VideoQueryService)),
	wire.Bind(new(VideoCommandServiceInterface), new(*VideoCommandService)),
	wire.Bind(new(PlaylistServiceInterface), new(*PlaylistService)),
	wire.Bind(new(TweetServiceInterface), new(*TweetService)),
)
