package model

import "time"

type BookSummary struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Isbn   *string `json:"isbn"`
	Status string  `json:"status"`
}

type ReviewView struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookWithReviews struct {
	BookSummary
	Reviews []ReviewView `json:"reviews"`
}

type RegisterBookRequest struct {
	Title  string  `json:"title" validate:"required,notblank,max=255"`
	Author string  `json:"author" validate:"required,notblank,max=100"`
	Isbn   *string `json:"isbn" validate:"omitempty,len=13"`
}

type AddReviewRequest struct {
	Content string `json:"content" validate:"required,notblank"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
