package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"linkup/internal/domain/auth"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
	"linkup/internal/domain/repository"
	"linkup/pkg/errors"
	"linkup/pkg/logger"
)

// Caps for the supplementary slices on the matching page.
const (
	matchingReviewLimit  = 2
	matchingQnALimit     = 2
	matchingOngoingLimit = 2
)

type MentorUseCase struct {
	userRepo      repository.UserRepository
	communityRepo repository.CommunityRepository
	reviewRepo    repository.ReviewRepository
	mentoringRepo repository.MentoringRepository
	matchingRepo  repository.MatchingRepository
}

func NewMentorUseCase(
	userRepo repository.UserRepository,
	communityRepo repository.CommunityRepository,
	reviewRepo repository.ReviewRepository,
	mentoringRepo repository.MentoringRepository,
	matchingRepo repository.MatchingRepository,
) *MentorUseCase {
	return &MentorUseCase{
		userRepo:      userRepo,
		communityRepo: communityRepo,
		reviewRepo:    reviewRepo,
		mentoringRepo: mentoringRepo,
		matchingRepo:  matchingRepo,
	}
}

// GetMentoringStats returns a mentor's aggregate statistics. The statistics
// record is load-bearing: absence means inconsistent data and fails with
// STATS_NOT_FOUND. The per-interest counts are supplementary and degrade to
// an empty slice.
func (uc *MentorUseCase) GetMentoringStats(ctx context.Context, mentorID string) (*entity.MentorStats, error) {
	if _, err := uuid.Parse(mentorID); err != nil {
		return nil, errors.BadRequest("Invalid mentor id", err)
	}

	view, err := uc.mentoringRepo.GetStatistics(ctx, mentorID)
	if err != nil {
		return nil, errors.Internal("Failed to load mentoring statistics", err)
	}
	if view == nil {
		return nil, errors.StatsNotFound(mentorID, nil)
	}

	categories := []entity.InterestCount{}
	rows, err := uc.mentoringRepo.CountByInterest(ctx, mentorID)
	if err != nil {
		logger.Warn("interest count query failed for mentor %s: %v", mentorID, err)
	} else {
		for _, row := range rows {
			ic, err := projection.NewInterestCount(row)
			if err != nil {
				return nil, errors.Projection("Failed to map interest count row", err)
			}
			categories = append(categories, ic)
		}
	}

	return &entity.MentorStats{
		TotalMentoringCount:   view.TotalSessions,
		OngoingMentoringCount: view.OngoingSessions,
		AverageRating:         view.AverageRating,
		MentoringCategories:   categories,
	}, nil
}

// GetReviewsForMentor returns the mentor's most recent received reviews.
func (uc *MentorUseCase) GetReviewsForMentor(ctx context.Context, mentorID string, limit int) ([]entity.ReceivedReview, error) {
	rows, err := uc.reviewRepo.FindReceivedReviews(ctx, mentorID, limit)
	if err != nil {
		return nil, err
	}

	reviews := make([]entity.ReceivedReview, 0, len(rows))
	for _, row := range rows {
		rv, err := projection.NewReceivedReview(row)
		if err != nil {
			return nil, errors.Projection("Failed to map review row", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

// GetRecentQnAByInterest returns recent Q&A posts matching an interest, with
// the delimited tag field parsed into a list.
func (uc *MentorUseCase) GetRecentQnAByInterest(ctx context.Context, interest string, limit int) ([]entity.QnAPost, error) {
	records, err := uc.communityRepo.FindRecentQnAByInterest(ctx, interest, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]entity.QnAPost, 0, len(records))
	for _, rec := range records {
		posts = append(posts, entity.QnAPost{
			PostID:          rec.PostID,
			Nickname:        rec.Nickname,
			ProfileImageURL: rec.ProfileImageURL,
			CreatedAt:       rec.CreatedAt,
			Title:           rec.Title,
			Content:         rec.Content,
			Tags:            ParseTags(rec.TagName),
			CommentCount:    rec.CommentCount,
		})
	}
	return posts, nil
}

// GetCommunityTalents returns category-matched talent post summaries for a
// user.
func (uc *MentorUseCase) GetCommunityTalents(ctx context.Context, nickname string, limit int) ([]entity.TalentSummary, error) {
	rows, err := uc.communityRepo.FindTalentPosts(ctx, nickname, limit)
	if err != nil {
		return nil, errors.Internal("Failed to list talent posts", err)
	}

	talents := make([]entity.TalentSummary, 0, len(rows))
	for _, row := range rows {
		t, err := projection.NewTalentSummary(row)
		if err != nil {
			return nil, errors.Projection("Failed to map talent row", err)
		}
		talents = append(talents, t)
	}
	return talents, nil
}

// GetMatchingPageData composes the mentor matching page. Reviews, Q&A posts
// and ongoing matchings are supplementary and degrade to empty slices on
// retrieval failure; the statistics lookup is load-bearing and aborts the
// whole composite when it fails.
func (uc *MentorUseCase) GetMatchingPageData(ctx context.Context, mentor *entity.User) (*entity.MatchingPage, error) {
	if mentor == nil {
		return nil, errors.NotFound("Mentor", nil)
	}

	page := &entity.MatchingPage{
		Reviews:          []entity.ReceivedReview{},
		CommunityQnAs:    []entity.QnAPost{},
		OngoingMatchings: []entity.OngoingMatching{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		reviews, err := uc.GetReviewsForMentor(gctx, mentor.ID, matchingReviewLimit)
		if err != nil {
			logger.Warn("received reviews query failed for mentor %s: %v", mentor.ID, err)
			return nil
		}
		page.Reviews = reviews
		return nil
	})

	g.Go(func() error {
		qnas, err := uc.GetRecentQnAByInterest(gctx, string(mentor.Interest), matchingQnALimit)
		if err != nil {
			logger.Warn("recent QnA query failed for interest %s: %v", mentor.Interest, err)
			return nil
		}
		page.CommunityQnAs = qnas
		return nil
	})

	g.Go(func() error {
		matchings, err := uc.matchingRepo.FindOngoing(gctx, mentor.ID, matchingOngoingLimit)
		if err != nil {
			logger.Warn("ongoing matchings query failed for mentor %s: %v", mentor.ID, err)
			return nil
		}
		page.OngoingMatchings = matchings
		return nil
	})

	g.Go(func() error {
		stats, err := uc.GetMentoringStats(gctx, mentor.ID)
		if err != nil {
			return err
		}
		page.Stats = stats
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return page, nil
}

// GetMatchingPageByPrincipal resolves the caller to a user and composes
// their matching page.
func (uc *MentorUseCase) GetMatchingPageByPrincipal(ctx context.Context, principal *auth.Principal) (*entity.MatchingPage, error) {
	if principal == nil {
		return nil, errors.Unauthorized("Authentication required", nil)
	}

	mentor, err := uc.userRepo.GetByProvider(ctx, principal.Provider, principal.ProviderID)
	if err != nil {
		return nil, err
	}
	return uc.GetMatchingPageData(ctx, mentor)
}
