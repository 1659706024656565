package http

import (
	"strings"
	"time"

	"blog-platform/internal/model"
	"blog-platform/internal/post"
	"blog-platform/pkg/paginator"
	"blog-platform/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title      string   `json:"title"      binding:"required,min=1,max=255"`
	Content    string   `json:"content"    binding:"required"`
	Tags       []string `json:"tags"`
	Status     string   `json:"status"     binding:"omitempty,oneof=DRAFT PUBLISHED ARCHIVED"`
	IsFeatured bool     `json:"isFeatured"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() post.CreatePostInput {
	return post.CreatePostInput{
		Title:      r.Title,
		Content:    r.Content,
		Tags:       r.Tags,
		Status:     model.PostStatus(r.Status),
		IsFeatured: r.IsFeatured,
	}
}

// ---

type listReq struct {
	Search     string `form:"search"`
	Tags       string `form:"tags"`
	IsFeatured string `form:"isFeatured"`
	Status     string `form:"status"`
	AuthorID   string `form:"authorId"`
	Page       string `form:"page"`
	Limit      string `form:"limit"`
	SortBy     string `form:"sortBy"`
	SortOrder  string `form:"sortOrder"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() post.ListPostsInput {
	return post.ListPostsInput{
		Search:     r.Search,
		Tags:       splitTags(r.Tags),
		IsFeatured: parseFeatured(r.IsFeatured),
		Status:     r.Status,
		AuthorID:   r.AuthorID,
		Pagination: paginator.New(paginator.Query{
			Page:      r.Page,
			Limit:     r.Limit,
			SortBy:    r.SortBy,
			SortOrder: r.SortOrder,
		}),
	}
}

// splitTags splits a comma-separated tag string into ordered non-empty
// tokens. Absent input yields nil: no tag filter, not "posts with zero
// tags".
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseFeatured maps the literal "true"/"false" to a filter value and
// everything else, including absence, to nil (no filter). A three-way
// mapping, not a boolean cast: an unrecognized value must not silently
// become false.
func parseFeatured(raw string) *bool {
	switch raw {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// --- Response DTOs ---

type postResp struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	Tags       []string  `json:"tags"`
	IsFeatured bool      `json:"isFeatured"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newPostResp(p model.Post) postResp {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return postResp{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		Tags:       tags,
		IsFeatured: p.IsFeatured,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

type listResp struct {
	Data []postResp    `json:"data"`
	Meta response.Meta `json:"meta"`
}

func (h *handler) newListResp(out post.ListPostsOutput) listResp {
	data := make([]postResp, len(out.Posts))
	for i, p := range out.Posts {
		data[i] = newPostResp(p)
	}
	return listResp{
		Data: data,
		Meta: response.Meta{
			Page:       out.Pagination.Page,
			Limit:      out.Pagination.Limit,
			Total:      out.Total,
			TotalPages: out.TotalPages,
		},
	}
}

type createResp struct {
	Post postResp `json:"post"`
}

func (h *handler) newCreateResp(out post.CreatePostOutput) createResp {
	return createResp{Post: newPostResp(out.Post)}
}

type detailResp struct {
	Post postResp `json:"post"`
}

func (h *handler) newDetailResp(out post.DetailPostOutput) detailResp {
	return detailResp{Post: newPostResp(out.Post)}
}
