package model

import (
	"fmt"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBorrowed  Status = "BORROWED"
)

func (s Status) Valid() bool {
	return s == StatusAvailable || s == StatusBorrowed
}

func (s Status) String() string { return string(s) }

// Book is the catalogue aggregate. Its status changes only through Borrow and ReturnBook.
type Book struct {
	id      int64
	title   string
	author  string
	isbn    *string
	status  Status
	reviews []Review
}

// NewBook builds an unsaved book, always AVAILABLE.
func NewBook(title, author string, isbn *string) *Book {
	return &Book{
		title:  title,
		author: author,
		isbn:   copyString(isbn),
		status: StatusAvailable,
	}
}

// RestoreBook rebuilds a persisted book. Reviews must be in creation order.
func RestoreBook(id int64, title, author string, isbn *string, status Status, reviews []Review) (*Book, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("book %d: unknown status %q", id, status)
	}
	for i := range reviews {
		if reviews[i].bookID != id {
			return nil, fmt.Errorf("book %d: review %d belongs to book %d", id, reviews[i].id, reviews[i].bookID)
		}
	}
	return &Book{
		id:      id,
		title:   title,
		author:  author,
		isbn:    copyString(isbn),
		status:  status,
		reviews: append([]Review(nil), reviews...),
	}, nil
}

func (b *Book) ID() int64 { return b.id }
func (b *Book) Title() string { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Isbn() *string { return copyString(b.isbn) }
func (b *Book) Status() Status { return b.status }
func (b *Book) IsNew() bool { return b.id == 0 }
func (b *Book) Reviews() []Review { return append([]Review(nil), b.reviews...) }

func (b *Book) Borrow() error {
	if b.status != StatusAvailable {
		return &errs.ConflictError{BookID: b.id, Reason: "book already borrowed"}
	}
	b.status = StatusBorrowed
	return nil
}

func (b *Book) ReturnBook() error {
	if b.status != StatusBorrowed {
		return &errs.ConflictError{BookID: b.id, Reason: "book already returned"}
	}
	b.status = StatusAvailable
	return nil
}

func (b *Book) Summary() BookSummary {
	return BookSummary{
		ID:     b.id,
		Title:  b.title,
		Author: b.author,
		Isbn:   copyString(b.isbn),
		Status: b.status.String(),
	}
}

func (b *Book) WithReviews() BookWithReviews {
	items := make([]ReviewView, 0, len(b.reviews))
	for i := range b.reviews {
		items = append(items, b.reviews[i].View())
	}
	return BookWithReviews{
		BookSummary: b.Summary(),
		Reviews:     items,
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
