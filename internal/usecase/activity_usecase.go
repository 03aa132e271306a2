package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
	"linkup/internal/domain/repository"
	"linkup/pkg/errors"
	"linkup/pkg/logger"
)

// Preview caps per activity category. Each category is queried and capped
// independently.
const (
	previewPostLimit     = 2
	previewCommentLimit  = 2
	previewBookmarkLimit = 1
	previewLikeLimit     = 1
)

type ActivityUseCase struct {
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository

	// strictResolution controls what happens when a nickname resolves to no
	// user: false keeps the tolerant behavior of returning an empty summary
	// so the activity view still renders; true surfaces NOT_FOUND instead.
	strictResolution bool
}

func NewActivityUseCase(userRepo repository.UserRepository, communityRepo repository.CommunityRepository, strictResolution bool) *ActivityUseCase {
	return &ActivityUseCase{
		userRepo:         userRepo,
		communityRepo:    communityRepo,
		strictResolution: strictResolution,
	}
}

func emptyActivitySummary(nickname string) *entity.ActivitySummary {
	return &entity.ActivitySummary{
		Nickname:  nickname,
		Posts:     []entity.PostSummary{},
		Comments:  []entity.CommentSummary{},
		Bookmarks: []entity.BookmarkSummary{},
		Likes:     []entity.LikeSummary{},
	}
}

// GetActivitySummary builds the activity preview for a user: the most recent
// 2 posts, 2 comments, 1 bookmark and 1 like. The four queries are
// independent; a retrieval failure in one category degrades that category to
// empty without touching the others. Projection failures are defects and
// abort the call.
func (uc *ActivityUseCase) GetActivitySummary(ctx context.Context, nickname string) (*entity.ActivitySummary, error) {
	userID, err := uc.userRepo.FindUserIDByNickname(ctx, nickname)
	if err != nil {
		return nil, errors.Internal("Failed to resolve nickname", err)
	}
	if userID == "" {
		if uc.strictResolution {
			return nil, errors.NotFound("User", nil)
		}
		logger.Warn("nickname %q resolved to no user, returning empty activity summary", nickname)
		return emptyActivitySummary(nickname), nil
	}

	summary := emptyActivitySummary(nickname)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := uc.communityRepo.FindRecentPosts(gctx, nickname, previewPostLimit)
		if err != nil {
			logger.Warn("recent posts query failed for %q: %v", nickname, err)
			return nil
		}
		posts, err := mapPosts(rows)
		if err != nil {
			return err
		}
		summary.Posts = posts
		return nil
	})

	g.Go(func() error {
		rows, err := uc.communityRepo.FindRecentComments(gctx, userID, previewCommentLimit)
		if err != nil {
			logger.Warn("recent comments query failed for %q: %v", nickname, err)
			return nil
		}
		comments, err := mapComments(rows)
		if err != nil {
			return err
		}
		summary.Comments = comments
		return nil
	})

	g.Go(func() error {
		rows, err := uc.communityRepo.FindRecentBookmarks(gctx, userID, previewBookmarkLimit)
		if err != nil {
			logger.Warn("recent bookmarks query failed for %q: %v", nickname, err)
			return nil
		}
		bookmarks := make([]entity.BookmarkSummary, 0, len(rows))
		for _, row := range rows {
			b, err := projection.NewBookmarkSummary(row)
			if err != nil {
				return errors.Projection("Failed to map bookmark row", err)
			}
			bookmarks = append(bookmarks, b)
		}
		summary.Bookmarks = bookmarks
		return nil
	})

	g.Go(func() error {
		rows, err := uc.communityRepo.FindRecentLikes(gctx, userID, previewLikeLimit)
		if err != nil {
			logger.Warn("recent likes query failed for %q: %v", nickname, err)
			return nil
		}
		likes := make([]entity.LikeSummary, 0, len(rows))
		for _, row := range rows {
			l, err := projection.NewLikeSummary(row)
			if err != nil {
				return errors.Projection("Failed to map like row", err)
			}
			likes = append(likes, l)
		}
		summary.Likes = likes
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetPostsPaged returns one page of the user's posts plus the total count.
// Page is zero-based; each activity category paginates independently.
func (uc *ActivityUseCase) GetPostsPaged(ctx context.Context, nickname string, page, size int) ([]entity.PostSummary, int64, error) {
	rows, total, err := uc.communityRepo.FindPostsPaged(ctx, nickname, page, size)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list posts", err)
	}

	posts, err := mapPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetCommentsPaged returns one page of the user's comments plus the total
// count. The comment query is keyed by user id, so the nickname is resolved
// first; an unresolvable nickname follows the same policy as the summary.
func (uc *ActivityUseCase) GetCommentsPaged(ctx context.Context, nickname string, page, size int) ([]entity.CommentSummary, int64, error) {
	userID, err := uc.userRepo.FindUserIDByNickname(ctx, nickname)
	if err != nil {
		return nil, 0, errors.Internal("Failed to resolve nickname", err)
	}
	if userID == "" {
		if uc.strictResolution {
			return nil, 0, errors.NotFound("User", nil)
		}
		return []entity.CommentSummary{}, 0, nil
	}

	rows, total, err := uc.communityRepo.FindCommentsPaged(ctx, userID, page, size)
	if err != nil {
		return nil, 0, errors.Internal("Failed to list comments", err)
	}

	comments, err := mapComments(rows)
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func mapPosts(rows []projection.Row) ([]entity.PostSummary, error) {
	posts := make([]entity.PostSummary, 0, len(rows))
	for _, row := range rows {
		p, err := projection.NewPostSummary(row)
		if err != nil {
			return nil, errors.Projection("Failed to map post row", err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func mapComments(rows []projection.Row) ([]entity.CommentSummary, error) {
	comments := make([]entity.CommentSummary, 0, len(rows))
	for _, row := range rows {
		c, err := projection.NewCommentSummary(row)
		if err != nil {
			return nil, errors.Projection("Failed to map comment row", err)
		}
		comments = append(comments, c)
	}
	return comments, nil
}
