package projection

import (
	"linkup/internal/domain/entity"
)

// NewPostSummary maps a post row:
// [0] id, [1] updated_at, [2] category, [3] title, [4] content,
// [5] view_count, [6] like_count, [7] comment_count.
func NewPostSummary(row Row) (entity.PostSummary, error) {
	var p entity.PostSummary
	if err := row.checkArity(8); err != nil {
		return p, err
	}

	var err error
	if p.ID, err = row.stringAt(0); err != nil {
		return p, err
	}
	if p.UpdatedAt, err = row.requiredTimeAt(1); err != nil {
		return p, err
	}
	if p.Category, err = row.stringAt(2); err != nil {
		return p, err
	}
	if p.Title, err = row.stringAt(3); err != nil {
		return p, err
	}
	if p.Content, err = row.stringAt(4); err != nil {
		return p, err
	}
	if p.ViewCount, err = row.intAt(5); err != nil {
		return p, err
	}
	if p.LikeCount, err = row.intAt(6); err != nil {
		return p, err
	}
	if p.CommentCount, err = row.intAt(7); err != nil {
		return p, err
	}
	return p, nil
}

// NewCommentSummary maps a comment row:
// [0] updated_at (nullable), [1] description, [2] content.
func NewCommentSummary(row Row) (entity.CommentSummary, error) {
	var c entity.CommentSummary
	if err := row.checkArity(3); err != nil {
		return c, err
	}

	var err error
	if c.UpdatedAt, err = row.timeAt(0); err != nil {
		return c, err
	}
	if c.Description, err = row.stringAt(1); err != nil {
		return c, err
	}
	if c.Content, err = row.stringAt(2); err != nil {
		return c, err
	}
	return c, nil
}

// NewBookmarkSummary maps a bookmark row:
// [0] updated_at (nullable), [1] title, [2] content.
func NewBookmarkSummary(row Row) (entity.BookmarkSummary, error) {
	var b entity.BookmarkSummary
	if err := row.checkArity(3); err != nil {
		return b, err
	}

	var err error
	if b.UpdatedAt, err = row.timeAt(0); err != nil {
		return b, err
	}
	if b.Title, err = row.stringAt(1); err != nil {
		return b, err
	}
	if b.Content, err = row.stringAt(2); err != nil {
		return b, err
	}
	return b, nil
}

// NewLikeSummary maps a liked-post row:
// [0] updated_at (nullable), [1] title, [2] content.
func NewLikeSummary(row Row) (entity.LikeSummary, error) {
	var l entity.LikeSummary
	if err := row.checkArity(3); err != nil {
		return l, err
	}

	var err error
	if l.UpdatedAt, err = row.timeAt(0); err != nil {
		return l, err
	}
	if l.Title, err = row.stringAt(1); err != nil {
		return l, err
	}
	if l.Content, err = row.stringAt(2); err != nil {
		return l, err
	}
	return l, nil
}

// NewReceivedReview maps a review row:
// [0] reviewer_name, [1] reviewer_profile_image_url, [2] created_at,
// [3] star, [4] content. The timestamp is truncated to its calendar date.
func NewReceivedReview(row Row) (entity.ReceivedReview, error) {
	var rv entity.ReceivedReview
	if err := row.checkArity(5); err != nil {
		return rv, err
	}

	var err error
	if rv.ReviewerName, err = row.stringAt(0); err != nil {
		return rv, err
	}
	if rv.ReviewerProfileImageURL, err = row.stringAt(1); err != nil {
		return rv, err
	}
	reviewedAt, err := row.requiredTimeAt(2)
	if err != nil {
		return rv, err
	}
	rv.ReviewDate = reviewedAt.Format("2006-01-02")
	if rv.Star, err = row.decimalAt(3); err != nil {
		return rv, err
	}
	if rv.Content, err = row.stringAt(4); err != nil {
		return rv, err
	}
	return rv, nil
}

// NewInterestCount maps a per-interest session count row:
// [0] interest, [1] count.
func NewInterestCount(row Row) (entity.InterestCount, error) {
	var ic entity.InterestCount
	if err := row.checkArity(2); err != nil {
		return ic, err
	}

	var err error
	if ic.Interest, err = row.stringAt(0); err != nil {
		return ic, err
	}
	if ic.Count, err = row.int64At(1); err != nil {
		return ic, err
	}
	return ic, nil
}

// NewTalentSummary maps a talent-post row: [0] title, [1] tag_id, [2] content.
func NewTalentSummary(row Row) (entity.TalentSummary, error) {
	var t entity.TalentSummary
	if err := row.checkArity(3); err != nil {
		return t, err
	}

	var err error
	if t.Title, err = row.stringAt(0); err != nil {
		return t, err
	}
	if t.TagID, err = row.stringAt(1); err != nil {
		return t, err
	}
	if t.Content, err = row.stringAt(2); err != nil {
		return t, err
	}
	return t, nil
}
