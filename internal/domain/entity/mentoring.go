package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MentorStatisticsView is the pre-aggregated statistics record kept by the
// persistence layer (a DB view). A mentor with zero sessions has a row with
// zero values; a missing row means inconsistent data.
type MentorStatisticsView struct {
	MentorUserID    string          `json:"mentor_user_id"`
	TotalSessions   int             `json:"total_sessions"`
	OngoingSessions int             `json:"ongoing_sessions"`
	AverageRating   decimal.Decimal `json:"average_rating"`
}

type InterestCount struct {
	Interest string `json:"interest"`
	Count    int64  `json:"count"`
}

type MentorStats struct {
	TotalMentoringCount   int             `json:"total_mentoring_count"`
	OngoingMentoringCount int             `json:"ongoing_mentoring_count"`
	AverageRating         decimal.Decimal `json:"average_rating"`
	MentoringCategories   []InterestCount `json:"mentoring_categories"`
}

// ReceivedReview is one review a mentor received. ReviewDate is the calendar
// date ("2006-01-02") obtained by truncating the review timestamp.
type ReceivedReview struct {
	ReviewerName            string          `json:"reviewer_name"`
	ReviewerProfileImageURL string          `json:"reviewer_profile_image_url"`
	ReviewDate              string          `json:"review_date"`
	Star                    decimal.Decimal `json:"star"`
	Content                 string          `json:"content"`
}

// QnAPostRecord is the typed row the community collaborator returns for
// interest-matched Q&A posts. TagName is the raw comma-delimited tag field,
// parsed downstream.
type QnAPostRecord struct {
	PostID          string    `json:"post_id"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	TagName         string    `json:"tag_name"`
	CommentCount    int       `json:"comment_count"`
}

// QnAPost is the presentable Q&A post with tags parsed into a list.
type QnAPost struct {
	PostID          string    `json:"post_id"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	Tags            []string  `json:"tags"`
	CommentCount    int       `json:"comment_count"`
}

// OngoingMatching is an in-progress mentoring match, supplied by the matching
// collaborator and passed through unchanged.
type OngoingMatching struct {
	MatchingID            string    `json:"matching_id"`
	MenteeNickname        string    `json:"mentee_nickname"`
	MenteeProfileImageURL string    `json:"mentee_profile_image_url"`
	Interest              string    `json:"interest"`
	StartedAt             time.Time `json:"started_at"`
	Status                string    `json:"status"`
}

// MatchingPage composes everything the mentor matching page shows.
type MatchingPage struct {
	Reviews          []ReceivedReview  `json:"reviews"`
	CommunityQnAs    []QnAPost         `json:"community_qnas"`
	OngoingMatchings []OngoingMatching `json:"ongoing_matchings"`
	Stats            *MentorStats      `json:"stats"`
}

// TalentSummary is a category-matched talent post summary.
type TalentSummary struct {
	Title   string `json:"title"`
	TagID   string `json:"tag_id"`
	Content string `json:"content"`
}
