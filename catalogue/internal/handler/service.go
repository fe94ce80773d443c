package handler

import (
	"context"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CatalogueService interface {
	ListBooks(ctx context.Context) ([]model.BookSummary, error)
	RegisterBook(ctx context.Context, title, author string, isbn *string) (model.BookSummary, error)
	BorrowBook(ctx context.Context, id int64) (model.BookSummary, error)
	ReturnBook(ctx context.Context, id int64) (model.BookSummary, error)
	AddReview(ctx context.Context, bookID int64, content string, rating int) error
	GetBookWithReviews(ctx context.Context, id int64) (model.BookWithReviews, error)
}

// LoanService is the part of the catalogue driven by loan messages.
type LoanService interface {
	BorrowBook(ctx context.Context, id int64) (model.BookSummary, error)
	ReturnBook(ctx context.Context, id int64) (model.BookSummary, error)
}

var (
	_ CatalogueService = (*service.Service)(nil)
	_ LoanService      = (*service.Service)(nil)
)
