package postgre

import (
	"fmt"
	"strings"

	repo "blog-platform/internal/post/repository"
)

// sortColumns whitelists the API-level sort fields against real columns.
// Unknown fields fall back to created_at so user input never reaches the
// ORDER BY clause directly.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

// buildFilterConditions builds the WHERE conditions shared by the count
// and page queries. All present filters are applied as AND conditions.
func (r *implRepository) buildFilterConditions(opt repo.ListPostsOptions) ([]string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", idx, idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}
	if len(opt.Tags) > 0 {
		// ANY semantics: overlap between the post's tags and the filter list.
		conditions = append(conditions, fmt.Sprintf("tags && string_to_array($%d, ',')", idx))
		args = append(args, strings.Join(opt.Tags, ","))
		idx++
	}
	if opt.IsFeatured != nil {
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", idx))
		args = append(args, *opt.IsFeatured)
		idx++
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("author_id = $%d", idx))
		args = append(args, opt.AuthorID)
	}

	return conditions, args
}

// buildCountQuery builds WHERE clause + args for counting Posts.
func (r *implRepository) buildCountQuery(opt repo.ListPostsOptions) (string, []any) {
	conditions, args := r.buildFilterConditions(opt)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for
// ListPosts.
func (r *implRepository) buildListQuery(opt repo.ListPostsOptions) (string, []any) {
	var parts []string

	conditions, args := r.buildFilterConditions(opt)
	idx := len(args) + 1

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	// Sorting: whitelisted column, validated direction.
	column, ok := sortColumns[opt.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if opt.SortOrder == "asc" {
		direction = "ASC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s %s", column, direction))

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Skip > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Skip)
	}

	return strings.Join(parts, " "), args
}
