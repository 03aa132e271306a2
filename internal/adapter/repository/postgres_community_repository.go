package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/projection"
	"linkup/internal/domain/repository"
)

type postgresCommunityRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCommunityRepository(db *pgxpool.Pool) repository.CommunityRepository {
	return &postgresCommunityRepository{db: db}
}

// Post rows: id, updated_at, category, title, content, view_count,
// like_count, comment_count. The counts are aggregates and come back as
// bigint.
const postSelect = `
	SELECT p.id, p.updated_at, p.category, p.title, p.content,
	       p.view_count::bigint,
	       COUNT(DISTINCT pl.user_id)::bigint,
	       COUNT(DISTINCT c.id)::bigint
	FROM community_posts p
	JOIN users u ON u.id = p.user_id
	LEFT JOIN post_likes pl ON pl.post_id = p.id
	LEFT JOIN community_comments c ON c.post_id = p.id
	WHERE u.nickname = $1
	GROUP BY p.id, p.updated_at, p.category, p.title, p.content, p.view_count
	ORDER BY p.updated_at DESC
`

func (r *postgresCommunityRepository) FindRecentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, postSelect+` LIMIT $2`, nickname, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *postgresCommunityRepository) FindPostsPaged(ctx context.Context, nickname string, page, size int) ([]projection.Row, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM community_posts p JOIN users u ON u.id = p.user_id WHERE u.nickname = $1`,
		nickname).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, postSelect+` LIMIT $2 OFFSET $3`, nickname, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	collected, err := collectRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return collected, total, nil
}

// Comment rows: updated_at (nullable), post title, comment content.
const commentSelect = `
	SELECT c.updated_at, p.title, c.content
	FROM community_comments c
	JOIN community_posts p ON p.id = c.post_id
	WHERE c.user_id = $1
	ORDER BY c.updated_at DESC NULLS LAST
`

func (r *postgresCommunityRepository) FindRecentComments(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, commentSelect+` LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *postgresCommunityRepository) FindCommentsPaged(ctx context.Context, userID string, page, size int) ([]projection.Row, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM community_comments WHERE user_id = $1`,
		userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, commentSelect+` LIMIT $2 OFFSET $3`, userID, size, page*size)
	if err != nil {
		return nil, 0, err
	}
	collected, err := collectRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return collected, total, nil
}

func (r *postgresCommunityRepository) FindRecentBookmarks(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.updated_at, p.title, p.content
		FROM bookmarks b
		JOIN community_posts p ON p.id = b.post_id
		WHERE b.user_id = $1
		ORDER BY b.updated_at DESC NULLS LAST
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *postgresCommunityRepository) FindRecentLikes(ctx context.Context, userID string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pl.updated_at, p.title, p.content
		FROM post_likes pl
		JOIN community_posts p ON p.id = pl.post_id
		WHERE pl.user_id = $1
		ORDER BY pl.updated_at DESC NULLS LAST
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}

func (r *postgresCommunityRepository) FindRecentQnAByInterest(ctx context.Context, interest string, limit int) ([]entity.QnAPostRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.id, u.nickname, u.profile_image_url, p.created_at, p.title,
		       p.content, COALESCE(string_agg(t.name, ','), ''),
		       COUNT(DISTINCT c.id)::bigint
		FROM community_posts p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN post_tags pt ON pt.post_id = p.id
		LEFT JOIN tags t ON t.id = pt.tag_id
		LEFT JOIN community_comments c ON c.post_id = p.id
		WHERE p.category = 'QNA' AND p.interest = $1
		GROUP BY p.id, u.nickname, u.profile_image_url, p.created_at, p.title, p.content
		ORDER BY p.created_at DESC
		LIMIT $2
	`, interest, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.QnAPostRecord
	for rows.Next() {
		var rec entity.QnAPostRecord
		var commentCount int64
		if err := rows.Scan(
			&rec.PostID,
			&rec.Nickname,
			&rec.ProfileImageURL,
			&rec.CreatedAt,
			&rec.Title,
			&rec.Content,
			&rec.TagName,
			&commentCount,
		); err != nil {
			return nil, err
		}
		rec.CommentCount = int(commentCount)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *postgresCommunityRepository) FindTalentPosts(ctx context.Context, nickname string, limit int) ([]projection.Row, error) {
	rows, err := r.db.Query(ctx, `
		SELECT p.title, p.tag_id, p.content
		FROM community_posts p
		JOIN users u ON u.id = p.user_id
		WHERE u.nickname = $1 AND p.category = 'TALENT'
		ORDER BY p.updated_at DESC
		LIMIT $2
	`, nickname, limit)
	if err != nil {
		return nil, err
	}
	return collectRows(rows)
}
