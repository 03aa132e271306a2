package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
	"linkup/pkg/errors"
)

// fakeUserRepo resolves users from an in-memory set.
type fakeUserRepo struct {
	users []*entity.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByNickname(ctx context.Context, nickname string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) GetByProvider(ctx context.Context, provider, providerID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Provider == provider && u.ProviderID == providerID {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (f *fakeUserRepo) FindUserIDByNickname(ctx context.Context, nickname string) (string, error) {
	for _, u := range f.users {
		if u.Nickname == nickname {
			return u.ID, nil
		}
	}
	return "", nil
}

// fakeAreaRepo serves region lookups from maps; missing keys yield (nil, nil).
type fakeAreaRepo struct {
	areas    map[int]*entity.Area
	sigungus map[string]*entity.Sigungu // key: "<areaCode>/<sigunguCode>"
}

func (f *fakeAreaRepo) GetByID(ctx context.Context, areaID int) (*entity.Area, error) {
	return f.areas[areaID], nil
}

func (f *fakeAreaRepo) GetSigungu(ctx context.Context, areaCode int, sigunguCode string) (*entity.Sigungu, error) {
	return f.sigungus[fmt.Sprintf("%d/%s", areaCode, sigunguCode)], nil
}

// fakeCommunityRepo keeps raw rows per owner and applies recency ordering
// and limits the way the real queries do. Err knobs force per-query
// failures.
type fakeCommunityRepo struct {
	postsByNickname map[string][]projection.Row // row[1] is updated_at
	commentsByUser  map[string][]projection.Row
	bookmarksByUser map[string][]projection.Row
	likesByUser     map[string][]projection.Row
	qnaByInterest   map[string][]entity.QnAPostRecord
	talents         map[string][]projection.Row

	postsErr    error
	commentsErr error
}

func sortRowsByTimeDesc(rows []projection.Row, timeIndex int) []projection.Row {
	sorted := append([]projection.Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, iok := sorted[i][timeIndex].(time.Time)
		tj, jok := sorted[j][timeIndex].(time.Time)
		if !iok || !jok {
			return jok
		}
		return ti.After(tj)
	})
	return sorted
}

func capRows(rows []projection.Row, limit int) []projection.Row {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

func (f *fakeCommunityRepo) FindRecentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error) {
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return capRows(sortRowsByTimeDesc(f.postsByNickname[nickname], 1), limit), nil
}

func (f *fakeCommunityRepo) FindPostsPaged(ctx context.Context, nickname string, page, size int) ([]projection.Row, int64, error) {
	if f.postsErr != nil {
		return nil, 0, f.postsErr
	}
	rows := sortRowsByTimeDesc(f.postsByNickname[nickname], 1)
	total := int64(len(rows))
	start := page * size
	if start >= len(rows) {
		return nil, total, nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

func (f *fakeCommunityRepo) FindRecentComments(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	if f.commentsErr != nil {
		return nil, f.commentsErr
	}
	return capRows(sortRowsByTimeDesc(f.commentsByUser[userID], 0), limit), nil
}

func (f *fakeCommunityRepo) FindCommentsPaged(ctx context.Context, userID string, page, size int) ([]projection.Row, int64, error) {
	if f.commentsErr != nil {
		return nil, 0, f.commentsErr
	}
	rows := sortRowsByTimeDesc(f.commentsByUser[userID], 0)
	total := int64(len(rows))
	start := page * size
	if start >= len(rows) {
		return nil, total, nil
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end], total, nil
}

func (f *fakeCommunityRepo) FindRecentBookmarks(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	return capRows(sortRowsByTimeDesc(f.bookmarksByUser[userID], 0), limit), nil
}

func (f *fakeCommunityRepo) FindRecentLikes(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	return capRows(sortRowsByTimeDesc(f.likesByUser[userID], 0), limit), nil
}

func (f *fakeCommunityRepo) FindRecentQnAByInterest(ctx context.Context, interest string, limit int) ([]entity.QnAPostRecord, error) {
	records := f.qnaByInterest[interest]
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (f *fakeCommunityRepo) FindTalentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error) {
	return capRows(f.talents[nickname], limit), nil
}

type fakeReviewRepo struct {
	rows []projection.Row
	err  error
}

func (f *fakeReviewRepo) FindReceivedReviews(ctx context.Context, mentorID string, limit int) ([]projection.Row, error) {
	if f.err != nil {
		return nil, f.err
	}
	return capRows(f.rows, limit), nil
}

type fakeMentoringRepo struct {
	stats     map[string]*entity.MentorStatisticsView
	countRows []projection.Row
	statsErr  error
	countErr  error
}

func (f *fakeMentoringRepo) GetStatistics(ctx context.Context, mentorUserID string) (*entity.MentorStatisticsView, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats[mentorUserID], nil
}

func (f *fakeMentoringRepo) CountByInterest(ctx context.Context, mentorUserID string) ([]projection.Row, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	return f.countRows, nil
}

type fakeMatchingRepo struct {
	matchings []entity.OngoingMatching
	err       error
}

func (f *fakeMatchingRepo) FindOngoing(ctx context.Context, mentorID string, limit int) ([]entity.OngoingMatching, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.matchings) > limit {
		return f.matchings[:limit], nil
	}
	return f.matchings, nil
}
