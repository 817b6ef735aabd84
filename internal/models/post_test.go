package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFromRow(t *testing.T) {
	post, err := PostFromRow(map[string]any{
		"id":          int64(7),
		"titulo":      "Sunset",
		"img":         "http://x/y.jpg",
		"descripcion": "nice",
		"likes":       int32(3),
	})
	require.NoError(t, err)

	assert.Equal(t, Post{ID: 7, Titulo: "Sunset", Img: "http://x/y.jpg", Descripcion: "nice", Likes: 3}, post)
}

func TestPostFromRowNullLikes(t *testing.T) {
	post, err := PostFromRow(map[string]any{
		"id": int64(1), "titulo": "a", "img": "b", "descripcion": "c", "likes": nil,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, post.Likes)
}

func TestPostFromRowErrors(t *testing.T) {
	_, err := PostFromRow(map[string]any{"titulo": "a", "img": "b", "descripcion": "c", "likes": int64(0)})
	assert.ErrorContains(t, err, `"id" missing`)

	_, err = PostFromRow(map[string]any{"id": "1", "titulo": "a", "img": "b", "descripcion": "c", "likes": int64(0)})
	assert.ErrorContains(t, err, "unexpected type string")

	_, err = PostFromRow(map[string]any{"id": int64(1), "img": "b", "descripcion": "c", "likes": int64(0)})
	assert.ErrorContains(t, err, `"titulo" missing`)
}
