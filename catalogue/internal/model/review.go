package model

import "time"

// Review is owned by exactly one book; bookID is a lookup key only.
type Review struct {
	id        int64
	bookID    int64
	content   string
	rating    int
	createdAt time.Time
}

// NewReview builds an unsaved review; createdAt is assigned when it is stored.
func NewReview(bookID int64, content string, rating int) *Review {
	return &Review{
		bookID:  bookID,
		content: content,
		rating:  rating,
	}
}

func RestoreReview(id, bookID int64, content string, rating int, createdAt time.Time) Review {
	return Review{
		id:        id,
		bookID:    bookID,
		content:   content,
		rating:    rating,
		createdAt: createdAt,
	}
}

func (r *Review) ID() int64 { return r.id }
func (r *Review) BookID() int64 { return r.bookID }
func (r *Review) Content() string { return r.content }
func (r *Review) Rating() int { return r.rating }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

func (r *Review) View() ReviewView {
	return ReviewView{
		ID:        r.id,
		Content:   r.content,
		Rating:    r.rating,
		CreatedAt: r.createdAt,
	}
}
