package entity

import (
	"time"
)

// ProfilePage is the assembled profile view for one user, including the
// resolved region names and whether the viewer is looking at their own page.
type ProfilePage struct {
	ID              string `json:"id"`
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
	Role            string `json:"role"`
	Tag             string `json:"tag,omitempty"`
	Interest        string `json:"interest,omitempty"`
	Area            string `json:"area,omitempty"`
	Sigungu         string `json:"sigungu,omitempty"`
	Introduction    string `json:"introduction,omitempty"`
	Me              bool   `json:"me"`
}

// PostSummary is one community post as shown in an activity listing. Counts
// arrive from aggregation queries as wider integer types and are narrowed by
// the projection layer.
type PostSummary struct {
	ID           string    `json:"id"`
	UpdatedAt    time.Time `json:"updated_at"`
	Category     string    `json:"category"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ViewCount    int       `json:"view_count"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
}

// CommentSummary is one comment the user wrote. UpdatedAt is nil when the
// source row carries no timestamp.
type CommentSummary struct {
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
}

type BookmarkSummary struct {
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
}

type LikeSummary struct {
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
}

// ActivitySummary is the per-user activity preview. Each slice is capped and
// queried independently; a shortfall in one category never affects another.
// Nickname is carried so the frontend can label "my activity" vs
// "<nickname>'s activity".
type ActivitySummary struct {
	Nickname  string            `json:"nickname"`
	Posts     []PostSummary     `json:"posts"`
	Comments  []CommentSummary  `json:"comments"`
	Bookmarks []BookmarkSummary `json:"bookmarks"`
	Likes     []LikeSummary     `json:"likes"`
}
