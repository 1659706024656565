package repository

// CreatePostOptions holds parameters for inserting a new Post.
type CreatePostOptions struct {
	Title      string
	Content    string
	AuthorID   string
	Tags       []string
	IsFeatured bool
	Status     string
}

// GetOnePostOptions holds filter parameters for fetching a single Post.
type GetOnePostOptions struct {
	ID string
}

// ListPostsOptions holds filter, sort and pagination parameters for
// listing Posts. Nil IsFeatured means no feature filter. Tags match ANY:
// a post qualifies when it carries at least one of the listed tags.
type ListPostsOptions struct {
	Search     string
	Tags       []string
	IsFeatured *bool
	Status     string
	AuthorID   string
	Limit      int
	Skip       int
	SortBy     string
	SortOrder  string
}
