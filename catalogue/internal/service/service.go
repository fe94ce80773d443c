package service

import (
	"context"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	readOnly  = repository.TxOptions{ReadOnly: true}
	readWrite = repository.TxOptions{}
)

// Service runs every use case as one unit of work. It keeps no state between calls.
type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

func (s *Service) ListBooks(ctx context.Context) ([]model.BookSummary, error) {
	items := make([]model.BookSummary, 0)
	err := s.repo.Transaction(ctx, readOnly, func(st repository.Store) error {
		books, err := st.FindAllBooks(ctx)
		if err != nil {
			return err
		}
		for _, b := range books {
			items = append(items, b.Summary())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RegisterBook stores a new AVAILABLE book. A nil isbn skips the uniqueness check.
func (s *Service) RegisterBook(ctx context.Context, title, author string, isbn *string) (model.BookSummary, error) {
	var summary model.BookSummary
	err := s.repo.Transaction(ctx, readWrite, func(st repository.Store) error {
		if isbn != nil {
			exists, err := st.ExistsBookWithIsbn(ctx, *isbn)
			if err != nil {
				return err
			}
			if exists {
				return &errs.DuplicateIsbnError{Isbn: *isbn}
			}
		}
		saved, err := st.SaveBook(ctx, model.NewBook(title, author, isbn))
		if err != nil {
			return err
		}
		summary = saved.Summary()
		return nil
	})
	if err != nil {
		return model.BookSummary{}, err
	}
	s.log.Debug("book registered", zap.Int64("id", summary.ID))
	return summary, nil
}

func (s *Service) BorrowBook(ctx context.Context, id int64) (model.BookSummary, error) {
	return s.transition(ctx, id, (*model.Book).Borrow)
}

func (s *Service) ReturnBook(ctx context.Context, id int64) (model.BookSummary, error) {
	return s.transition(ctx, id, (*model.Book).ReturnBook)
}

// transition loads the book, applies a lifecycle step and persists it only when the step succeeds.
func (s *Service) transition(ctx context.Context, id int64, step func(*model.Book) error) (model.BookSummary, error) {
	var summary model.BookSummary
	err := s.repo.Transaction(ctx, readWrite, func(st repository.Store) error {
		book, err := s.findBook(ctx, st, id)
		if err != nil {
			return err
		}
		if err := step(book); err != nil {
			return err
		}
		saved, err := st.SaveBook(ctx, book)
		if err != nil {
			return notFound(err, id)
		}
		summary = saved.Summary()
		return nil
	})
	if err != nil {
		return model.BookSummary{}, err
	}
	return summary, nil
}

// AddReview attaches a review to an existing book. Nothing is returned, callers re-read the book.
func (s *Service) AddReview(ctx context.Context, bookID int64, content string, rating int) error {
	return s.repo.Transaction(ctx, readWrite, func(st repository.Store) error {
		book, err := s.findBook(ctx, st, bookID)
		if err != nil {
			return err
		}
		if _, err := st.SaveReview(ctx, model.NewReview(book.ID(), content, rating)); err != nil {
			return notFound(err, bookID)
		}
		return nil
	})
}

func (s *Service) GetBookWithReviews(ctx context.Context, id int64) (model.BookWithReviews, error) {
	var resp model.BookWithReviews
	err := s.repo.Transaction(ctx, readOnly, func(st repository.Store) error {
		book, err := s.findBook(ctx, st, id)
		if err != nil {
			return err
		}
		resp = book.WithReviews()
		return nil
	})
	if err != nil {
		return model.BookWithReviews{}, err
	}
	return resp, nil
}

func (s *Service) findBook(ctx context.Context, st repository.Store, id int64) (*model.Book, error) {
	book, err := st.FindBookByID(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return book, nil
}

// notFound gives a bare storage ErrNotFound the offending id, other errors pass through.
func notFound(err error, id int64) error {
	var nf *errs.NotFoundError
	if errors.Is(err, errs.ErrNotFound) && !errors.As(err, &nf) {
		return &errs.NotFoundError{BookID: id}
	}
	return err
}
