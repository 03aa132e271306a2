package repository

import (
	"context"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
)

// CommunityRepository exposes the community activity queries. The list
// queries return positional rows in the column order the projection
// constructors document; posts are keyed by nickname, everything else by the
// internal user id. All lists are ordered most-recent first.
type CommunityRepository interface {
	FindRecentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error)
	FindPostsPaged(ctx context.Context, nickname string, page, size int) ([]projection.Row, int64, error)

	FindRecentComments(ctx context.Context, userID string, limit int) ([]projection.Row, error)
	FindCommentsPaged(ctx context.Context, userID string, page, size int) ([]projection.Row, int64, error)

	FindRecentBookmarks(ctx context.Context, userID string, limit int) ([]projection.Row, error)
	FindRecentLikes(ctx context.Context, userID string, limit int) ([]projection.Row, error)

	FindRecentQnAByInterest(ctx context.Context, interest string, limit int) ([]entity.QnAPostRecord, error)
	FindTalentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error)
}
