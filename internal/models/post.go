package models

import "fmt"

// Post is the only persisted entity. Likes only ever grows; the row is removed on delete.
type Post struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Titulo      string `gorm:"type:text;not null" json:"titulo"`
	Img         string `gorm:"type:text;not null" json:"img"`
	Descripcion string `gorm:"type:text;not null" json:"descripcion"`
	Likes       int    `gorm:"not null;default:0;check:likes >= 0" json:"likes"`
}

type CreatePostRequest struct {
	Titulo      string `json:"titulo" binding:"required"`
	Img         string `json:"img" binding:"required"`
	Descripcion string `json:"descripcion" binding:"required"`
}

// PostFromRow converts a column->value row returned by the store into a Post.
func PostFromRow(row map[string]any) (Post, error) {
	var (
		post Post
		err  error
	)

	if post.ID, err = intColumn(row, "id"); err != nil {
		return Post{}, err
	}
	if post.Likes, err = intColumn(row, "likes"); err != nil {
		return Post{}, err
	}
	if post.Titulo, err = textColumn(row, "titulo"); err != nil {
		return Post{}, err
	}
	if post.Img, err = textColumn(row, "img"); err != nil {
		return Post{}, err
	}
	if post.Descripcion, err = textColumn(row, "descripcion"); err != nil {
		return Post{}, err
	}

	return post, nil
}

func intColumn(row map[string]any, name string) (int, error) {
	switch v := row[name].(type) {
	case int:
		return v, nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case nil:
		if _, ok := row[name]; !ok {
			return 0, fmt.Errorf("column %q missing", name)
		}
		// NULL likes on rows written outside this service
		return 0, nil
	default:
		return 0, fmt.Errorf("column %q: unexpected type %T", name, v)
	}
}

func textColumn(row map[string]any, name string) (string, error) {
	switch v := row[name].(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		if _, ok := row[name]; !ok {
			return "", fmt.Errorf("column %q missing", name)
		}
		return "", nil
	default:
		return "", fmt.Errorf("column %q: unexpected type %T", name, v)
	}
}
