package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"blog-platform/internal/model"
	repo "blog-platform/internal/post/repository"
)

// postColumns is the SELECT list shared by all post queries. Tags are
// flattened to a comma-joined string so scanning works through database/sql.
const postColumns = `id, title, content, author_id, array_to_string(tags, ','), is_featured, status, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (model.Post, error) {
	var p model.Post
	var tags string
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &tags, &p.IsFeatured, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Post{}, err
	}
	if tags != "" {
		p.Tags = strings.Split(tags, ",")
	}
	return p, nil
}

// CreatePost inserts a new Post row and returns the created entity.
func (r *implRepository) CreatePost(ctx context.Context, opt repo.CreatePostOptions) (model.Post, error) {
	query := fmt.Sprintf(`
		INSERT INTO posts (id, title, content, author_id, tags, is_featured, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, string_to_array($5, ','), $6, $7, NOW(), NOW())
		RETURNING %s`, postColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		opt.Title,
		opt.Content,
		opt.AuthorID,
		strings.Join(opt.Tags, ","),
		opt.IsFeatured,
		opt.Status,
	)

	p, err := scanPost(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreatePost"), err)
		return model.Post{}, repo.ErrFailedToInsert
	}
	return p, nil
}

// GetOnePost retrieves a single Post by ID.
// Returns zero-value Post (ID == "") when not found — do NOT return error
// for not-found.
func (r *implRepository) GetOnePost(ctx context.Context, opt repo.GetOnePostOptions) (model.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM posts WHERE id = $1 LIMIT 1`, postColumns)

	p, err := scanPost(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Post{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOnePost"), err)
		return model.Post{}, repo.ErrFailedToGet
	}
	return p, nil
}

// ListPosts returns a page of Posts matching the filter plus the total
// count for the same filter without pagination.
func (r *implRepository) ListPosts(ctx context.Context, opt repo.ListPostsOptions) ([]model.Post, int, error) {
	// 1. Count total (without pagination)
	countMods, countArgs := r.buildCountQuery(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM posts WHERE %s", countMods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListPosts"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM posts %s", postColumns, mods)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListPosts"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListPosts"), err)
			return nil, 0, repo.ErrFailedToList
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return posts, total, nil
}
