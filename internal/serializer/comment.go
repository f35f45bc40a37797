package serializer

import (
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

type AuthorRecord struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Image *string   `json:"image,omitempty"`
}

type CommentRecord struct {
	ID        uuid.UUID    `json:"id"`
	Content   string       `json:"content"`
	VizID     uuid.UUID    `json:"vizId"`
	CreatedAt string       `json:"createdAt"`
	Author    AuthorRecord `json:"author"`
}

func Comment(c *model.Comment) CommentRecord {
	record := CommentRecord{
		ID:        c.ID,
		Content:   c.Content,
		VizID:     c.VizID,
		CreatedAt: isoTime(c.CreatedAt),
		Author:    AuthorRecord{ID: c.AuthorID},
	}
	if c.Author != nil {
		record.Author.Name = c.Author.Name
		record.Author.Image = c.Author.Image
	}
	return record
}
