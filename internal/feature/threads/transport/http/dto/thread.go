// Package dto defines request and response bodies for the forum endpoints.
package dto

import (
	"time"

	"ccps_backend/internal/feature/threads/domain/entity"
	"ccps_backend/internal/feature/threads/usecase"
)

// ThreadReq is the body of POST /threads.
type ThreadReq struct {
	Title   string `json:"title" binding:"required,max=255"`
	Text    string `json:"text" binding:"required"`
	FileURL string `json:"fileUrl" binding:"omitempty,max=1024"`
}

func (r ThreadReq) ToInput() usecase.PostInput {
	return usecase.PostInput{Title: r.Title, Text: r.Text, FileURL: r.FileURL}
}

// CommentReq is the body of POST /threads/:id/comments.
type CommentReq struct {
	Text    string `json:"text" binding:"required"`
	FileURL string `json:"fileUrl" binding:"omitempty,max=1024"`
}

func (r CommentReq) ToInput() usecase.PostInput {
	return usecase.PostInput{Text: r.Text, FileURL: r.FileURL}
}

type CommentResponse struct {
	ID         uint      `json:"id"`
	ThreadID   uint      `json:"threadId"`
	Text       string    `json:"text"`
	FileURL    string    `json:"fileUrl,omitempty"`
	AuthorID   uint      `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ThreadResponse struct {
	ID         uint              `json:"id"`
	Title      string            `json:"title"`
	Text       string            `json:"text"`
	FileURL    string            `json:"fileUrl,omitempty"`
	AuthorID   uint              `json:"authorId"`
	AuthorName string            `json:"authorName"`
	Comments   []CommentResponse `json:"comments"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func ToCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		ThreadID:   c.ThreadID,
		Text:       c.Text,
		FileURL:    c.FileURL,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
	}
}

func ToThreadResponse(t entity.Thread) ThreadResponse {
	comments := make([]CommentResponse, len(t.Comments))
	for i, c := range t.Comments {
		comments[i] = ToCommentResponse(c)
	}
	return ThreadResponse{
		ID:         t.ID,
		Title:      t.Title,
		Text:       t.Text,
		FileURL:    t.FileURL,
		AuthorID:   t.AuthorID,
		AuthorName: t.AuthorName,
		Comments:   comments,
		CreatedAt:  t.CreatedAt,
	}
}

func ToThreadList(threads []entity.Thread) []ThreadResponse {
	out := make([]ThreadResponse, len(threads))
	for i, t := range threads {
		out[i] = ToThreadResponse(t)
	}
	return out
}
