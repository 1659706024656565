package http

import (
	"github.com/gin-gonic/gin"

	"blog-platform/internal/middleware"
	"blog-platform/pkg/response"
)

// List godoc
// @Summary     List posts
// @Description Returns a paginated, filtered, sorted page of posts.
// @Tags        Post
// @Accept      json
// @Produce     json
// @Param       search     query string false "Free-text match against title/content"
// @Param       tags       query string false "Comma-separated tags (matches posts with at least one)"
// @Param       isFeatured query string false "Literal true/false; anything else means no filter"
// @Param       status     query string false "Post status (DRAFT/PUBLISHED/ARCHIVED)"
// @Param       authorId   query string false "Filter by author"
// @Param       page       query string false "Page number (default 1)"
// @Param       limit      query string false "Page size (default 10)"
// @Param       sortBy     query string false "Sort field (default createdAt)"
// @Param       sortOrder  query string false "asc or desc (default desc)"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/posts [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.InternalError(c, "Failed to fetch posts", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get post detail
// @Description Returns a single post by its ID.
// @Tags        Post
// @Accept      json
// @Produce     json
// @Param       id path string true "Post ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/posts/{id} [GET]
// @Security    BearerAuth
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err, "Failed to fetch post")
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a post
// @Description Creates a post attributed to the authenticated caller.
// @Tags        Post
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Post payload"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/posts [POST]
// @Security    BearerAuth
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err, "Post creation failed")
		return
	}

	response.Created(c, h.newCreateResp(output))
}
