package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emilythestrangee/like-me/backend/internal/database"
	"github.com/emilythestrangee/like-me/backend/internal/metrics"
	"github.com/emilythestrangee/like-me/backend/internal/models"
)

const (
	listPostsQuery  = `SELECT * FROM posts ORDER BY id DESC`
	insertPostQuery = `INSERT INTO posts (titulo, img, descripcion, likes) VALUES ($1, $2, $3, 0) RETURNING *`
	// the increment happens inside the statement so concurrent likes cannot overwrite each other
	likePostQuery   = `UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING *`
	deletePostQuery = `DELETE FROM posts WHERE id = $1 RETURNING *`
)

type PostHandler struct {
	db database.Querier
}

func NewPostHandler(db database.Querier) *PostHandler {
	return &PostHandler{db: db}
}

// GetPosts returns every post, newest first
func (h *PostHandler) GetPosts(c *gin.Context) {
	posts, err := h.queryPosts(c.Request.Context(), listPostsQuery)
	if err != nil {
		respondError(c, err, "Error fetching posts")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreatePost inserts a post with zero likes
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, &ValidationError{Err: ErrMissingFields}, "Error creating post")
		return
	}

	post, err := h.queryPost(c.Request.Context(), insertPostQuery, input.Titulo, input.Img, input.Descripcion)
	if err != nil {
		respondError(c, err, "Error creating post")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// LikePost adds one like and returns the updated post
func (h *PostHandler) LikePost(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		respondError(c, err, "Error liking post")
		return
	}

	post, err := h.queryPost(c.Request.Context(), likePostQuery, id)
	if err != nil {
		respondError(c, err, "Error liking post")
		return
	}
	metrics.PostLikes.Inc()

	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post and echoes what was removed
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		respondError(c, err, "Error deleting post")
		return
	}

	post, err := h.queryPost(c.Request.Context(), deletePostQuery, id)
	if err != nil {
		respondError(c, err, "Error deleting post")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post eliminado", "post": post})
}

func postID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, &ValidationError{Err: ErrInvalidID}
	}
	return id, nil
}

func (h *PostHandler) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := h.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	// empty array rather than null
	posts := make([]models.Post, 0, len(rows))
	for _, row := range rows {
		post, err := models.PostFromRow(row)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// queryPost runs a statement expected to touch at most one row; no row means not found.
func (h *PostHandler) queryPost(ctx context.Context, query string, args ...any) (models.Post, error) {
	posts, err := h.queryPosts(ctx, query, args...)
	if err != nil {
		return models.Post{}, err
	}

	switch len(posts) {
	case 0:
		return models.Post{}, ErrPostNotFound
	case 1:
		return posts[0], nil
	default:
		return models.Post{}, fmt.Errorf("%w: %d", errUnexpectedRows, len(posts))
	}
}
