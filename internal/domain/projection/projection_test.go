package projection

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostSummary(t *testing.T) {
	updated := time.Date(2024, 1, 1, 12, 30, 0, 0, time.Local)
	row := Row{"post-1", updated, "FREE", "Hello", "body", int64(120), int64(5), int64(3)}

	p, err := NewPostSummary(row)
	require.NoError(t, err)

	assert.Equal(t, "post-1", p.ID)
	assert.Equal(t, updated, p.UpdatedAt)
	assert.Equal(t, "FREE", p.Category)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "body", p.Content)
	assert.Equal(t, 120, p.ViewCount)
	assert.Equal(t, 5, p.LikeCount)
	assert.Equal(t, 3, p.CommentCount)
}

func TestNewPostSummaryNumericWidths(t *testing.T) {
	updated := time.Now()

	// Drivers hand counts back in several integer widths.
	row := Row{"id", updated, "QNA", "t", "c", int32(1), int(2), float64(3)}
	p, err := NewPostSummary(row)
	require.NoError(t, err)

	assert.Equal(t, 1, p.ViewCount)
	assert.Equal(t, 2, p.LikeCount)
	assert.Equal(t, 3, p.CommentCount)
}

func TestNewPostSummaryFractionalCount(t *testing.T) {
	row := Row{"id", time.Now(), "QNA", "t", "c", 2.9, int64(0), int64(0)}

	_, err := NewPostSummary(row)

	var projErr *Error
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, 5, projErr.Index)
	assert.Equal(t, KindInt, projErr.Expected)
}

func TestNewPostSummaryWrongArity(t *testing.T) {
	_, err := NewPostSummary(Row{"id", time.Now(), "QNA"})

	var arityErr *ArityError
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, 8, arityErr.Expected)
	assert.Equal(t, 3, arityErr.Actual)
}

func TestNewPostSummaryWrongKind(t *testing.T) {
	row := Row{"id", time.Now(), "QNA", "t", "c", "not-a-number", int64(0), int64(0)}

	_, err := NewPostSummary(row)

	var projErr *Error
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, 5, projErr.Index)
	assert.Equal(t, KindInt, projErr.Expected)
	assert.Equal(t, "string", projErr.Actual)
}

func TestNewPostSummaryNullTimestamp(t *testing.T) {
	row := Row{"id", nil, "QNA", "t", "c", int64(0), int64(0), int64(0)}

	_, err := NewPostSummary(row)

	var projErr *Error
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, 1, projErr.Index)
	assert.Equal(t, KindTime, projErr.Expected)
	assert.Equal(t, "null", projErr.Actual)
}

func TestNewCommentSummaryNullTimestamp(t *testing.T) {
	c, err := NewCommentSummary(Row{nil, "Some post", "my comment"})
	require.NoError(t, err)

	assert.Nil(t, c.UpdatedAt)
	assert.Equal(t, "Some post", c.Description)
	assert.Equal(t, "my comment", c.Content)
}

func TestNewCommentSummaryWithTimestamp(t *testing.T) {
	updated := time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local)

	c, err := NewCommentSummary(Row{updated, "Post title", "content"})
	require.NoError(t, err)

	require.NotNil(t, c.UpdatedAt)
	assert.Equal(t, updated, *c.UpdatedAt)
}

func TestNewBookmarkSummaryEmptyStringsPassThrough(t *testing.T) {
	b, err := NewBookmarkSummary(Row{nil, "", ""})
	require.NoError(t, err)

	assert.Equal(t, "", b.Title)
	assert.Equal(t, "", b.Content)
}

func TestNewLikeSummary(t *testing.T) {
	updated := time.Now()

	l, err := NewLikeSummary(Row{updated, "Liked post", "snippet"})
	require.NoError(t, err)

	assert.Equal(t, "Liked post", l.Title)
	assert.Equal(t, "snippet", l.Content)
	require.NotNil(t, l.UpdatedAt)
}

func TestNewReceivedReviewTruncatesDate(t *testing.T) {
	reviewedAt := time.Date(2024, 5, 20, 18, 45, 12, 0, time.Local)
	row := Row{"Bob", "https://img.example/bob.png", reviewedAt, 4.5, "great session"}

	rv, err := NewReceivedReview(row)
	require.NoError(t, err)

	assert.Equal(t, "Bob", rv.ReviewerName)
	assert.Equal(t, "https://img.example/bob.png", rv.ReviewerProfileImageURL)
	assert.Equal(t, "2024-05-20", rv.ReviewDate)
	assert.True(t, rv.Star.Equal(decimal.NewFromFloat(4.5)))
	assert.Equal(t, "great session", rv.Content)
}

func TestNewReceivedReviewStarKinds(t *testing.T) {
	reviewedAt := time.Now()

	tests := []struct {
		name string
		star any
		want decimal.Decimal
	}{
		{"float64", 5.0, decimal.NewFromInt(5)},
		{"int64", int64(3), decimal.NewFromInt(3)},
		{"int32", int32(4), decimal.NewFromInt(4)},
		{"int", 2, decimal.NewFromInt(2)},
		{"string", "4.25", decimal.RequireFromString("4.25")},
		{"decimal", decimal.RequireFromString("2.5"), decimal.RequireFromString("2.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rv, err := NewReceivedReview(Row{"n", "img", reviewedAt, tt.star, "c"})
			require.NoError(t, err)
			assert.True(t, rv.Star.Equal(tt.want))
		})
	}
}

func TestNewInterestCount(t *testing.T) {
	ic, err := NewInterestCount(Row{"DEVELOPMENT", int64(7)})
	require.NoError(t, err)

	assert.Equal(t, "DEVELOPMENT", ic.Interest)
	assert.Equal(t, int64(7), ic.Count)
}

func TestNewTalentSummary(t *testing.T) {
	ts, err := NewTalentSummary(Row{"Guitar lessons", "tag-9", "I teach guitar"})
	require.NoError(t, err)

	assert.Equal(t, "Guitar lessons", ts.Title)
	assert.Equal(t, "tag-9", ts.TagID)
	assert.Equal(t, "I teach guitar", ts.Content)
}

func TestNullTextIsNotEmptyString(t *testing.T) {
	// An empty string column maps verbatim; a null column is malformed.
	c, err := NewCommentSummary(Row{nil, "", "content"})
	require.NoError(t, err)
	assert.Equal(t, "", c.Description)

	_, err = NewCommentSummary(Row{nil, nil, "content"})

	var projErr *Error
	require.ErrorAs(t, err, &projErr)
	assert.Equal(t, 1, projErr.Index)
	assert.Equal(t, KindString, projErr.Expected)
	assert.Equal(t, "null", projErr.Actual)
}
