package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/repository"
	repo_mocks "github.com/Astemirdum/book-catalogue/catalogue/internal/repository/mocks"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

type mocks struct {
	repo  *repo_mocks.MockRepository
	store *repo_mocks.MockStore
}

func newService(t *testing.T) (*service.Service, mocks) {
	c := gomock.NewController(t)
	m := mocks{
		repo:  repo_mocks.NewMockRepository(c),
		store: repo_mocks.NewMockStore(c),
	}
	return service.NewService(m.repo, zap.NewNop()), m
}

// expectTx runs the unit of work against the mocked store and hands back whatever fn returned.
func (m mocks) expectTx(opts repository.TxOptions) {
	m.repo.EXPECT().
		Transaction(gomock.Any(), opts, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ repository.TxOptions, fn func(repository.Store) error) error {
			return fn(m.store)
		})
}

func mustBook(t *testing.T, id int64, status model.Status, reviews ...model.Review) *model.Book {
	t.Helper()
	b, err := model.RestoreBook(id, "Java入門", "著者A", strPtr("1111111111111"), status, reviews)
	require.NoError(t, err)
	return b
}

func TestService_ListBooks(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		svc, m := newService(t)
		m.expectTx(repository.TxOptions{ReadOnly: true})
		b2, err := model.RestoreBook(2, "Spring Boot解説", "著者B", nil, model.StatusBorrowed, nil)
		require.NoError(t, err)
		m.store.EXPECT().FindAllBooks(ctx).Return([]*model.Book{mustBook(t, 1, model.StatusAvailable), b2}, nil)

		got, err := svc.ListBooks(ctx)
		require.NoError(t, err)
		require.Equal(t, []model.BookSummary{
			{ID: 1, Title: "Java入門", Author: "著者A", Isbn: strPtr("1111111111111"), Status: "AVAILABLE"},
			{ID: 2, Title: "Spring Boot解説", Author: "著者B", Status: "BORROWED"},
		}, got)
	})

	t.Run("empty", func(t *testing.T) {
		svc, m := newService(t)
		m.expectTx(repository.TxOptions{ReadOnly: true})
		m.store.EXPECT().FindAllBooks(ctx).Return(nil, nil)

		got, err := svc.ListBooks(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("storage fault", func(t *testing.T) {
		svc, m := newService(t)
		fault := errors.New("connection reset")
		m.expectTx(repository.TxOptions{ReadOnly: true})
		m.store.EXPECT().FindAllBooks(ctx).Return(nil, fault)

		_, err := svc.ListBooks(ctx)
		require.ErrorIs(t, err, fault)
	})
}

func TestService_RegisterBook(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("forces AVAILABLE", func(t *testing.T) {
		svc, m := newService(t)
		m.expectTx(repository.TxOptions{})
		m.store.EXPECT().ExistsBookWithIsbn(ctx, "1111111111111").Return(false, nil)
		m.store.EXPECT().SaveBook(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Book) (*model.Book, error) {
				require.True(t, b.IsNew())
				require.Equal(t, model.StatusAvailable, b.Status())
				return model.RestoreBook(10, b.Title(), b.Author(), b.Isbn(), b.Status(), nil)
			})

		got, err := svc.RegisterBook(ctx, "Java入門", "著者A", strPtr("1111111111111"))
		require.NoError(t, err)
		require.Equal(t, model.BookSummary{
			ID: 10, Title: "Java入門", Author: "著者A", Isbn: strPtr("1111111111111"), Status: "AVAILABLE",
		}, got)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		svc, m := newService(t)
		m.expectTx(repository.TxOptions{})
		m.store.EXPECT().ExistsBookWithIsbn(ctx, "dup").Return(true, nil)
		m.store.EXPECT().SaveBook(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.RegisterBook(ctx, "t", "a", strPtr("dup"))
		require.ErrorIs(t, err, errs.ErrDuplicateIsbn)
		require.Contains(t, err.Error(), "dup")
	})

	t.Run("nil isbn skips check", func(t *testing.T) {
		svc, m := newService(t)
		m.expectTx(repository.TxOptions{})
		m.store.EXPECT().ExistsBookWithIsbn(gomock.Any(), gomock.Any()).Times(0)
		m.store.EXPECT().SaveBook(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Book) (*model.Book, error) {
				require.Nil(t, b.Isbn())
				return model.RestoreBook(11, b.Title(), b.Author(), nil, b.Status(), nil)
			})

		got, err := svc.RegisterBook(ctx, "t", "a", nil)
		require.NoError(t, err)
		require.Nil(t, got.Isbn)
	})
}

func TestService_Transitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	type call func(svc *service.Service, id int64) (model.BookSummary, error)
	borrow := func(svc *service.Service, id int64) (model.BookSummary, error) { return svc.BorrowBook(ctx, id) }
	giveBack := func(svc *service.Service, id int64) (model.BookSummary, error) { return svc.ReturnBook(ctx, id) }

	tests := []struct {
		name       string
		call       call
		stored     model.Status
		wantStatus string
		wantErr    error
		wantMsg    string
	}{
		{name: "borrow", call: borrow, stored: model.StatusAvailable, wantStatus: "BORROWED"},
		{name: "borrow twice", call: borrow, stored: model.StatusBorrowed, wantErr: errs.ErrConflict, wantMsg: "book already borrowed: id=1"},
		{name: "return", call: giveBack, stored: model.StatusBorrowed, wantStatus: "AVAILABLE"},
		{name: "return twice", call: giveBack, stored: model.StatusAvailable, wantErr: errs.ErrConflict, wantMsg: "book already returned: id=1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, m := newService(t)
			m.expectTx(repository.TxOptions{})
			m.store.EXPECT().FindBookByID(ctx, int64(1)).Return(mustBook(t, 1, tt.stored), nil)
			if tt.wantErr == nil {
				m.store.EXPECT().SaveBook(ctx, gomock.Any()).Times(1).
					DoAndReturn(func(_ context.Context, b *model.Book) (*model.Book, error) { return b, nil })
			} else {
				m.store.EXPECT().SaveBook(gomock.Any(), gomock.Any()).Times(0)
			}

			got, err := tt.call(svc, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.EqualError(t, err, tt.wantMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ops := map[string]func(svc *service.Service) error{
		"borrow": func(svc *service.Service) error { _, err := svc.BorrowBook(ctx, 42); return err },
		"return": func(svc *service.Service) error { _, err := svc.ReturnBook(ctx, 42); return err },
		"review": func(svc *service.Service) error { return svc.AddReview(ctx, 42, "c", 3) },
		"get":    func(svc *service.Service) error { _, err := svc.GetBookWithReviews(ctx, 42); return err },
	}
	for name, op := range ops {
		op := op
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc, m := newService(t)
			m.repo.EXPECT().
				Transaction(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ repository.TxOptions, fn func(repository.Store) error) error {
					return fn(m.store)
				})
			m.store.EXPECT().FindBookByID(ctx, int64(42)).Return(nil, errs.ErrNotFound)
			m.store.EXPECT().SaveBook(gomock.Any(), gomock.Any()).Times(0)
			m.store.EXPECT().SaveReview(gomock.Any(), gomock.Any()).Times(0)

			err := op(svc)
			require.ErrorIs(t, err, errs.ErrNotFound)
			require.EqualError(t, err, "book not found: id=42")
		})
	}
}

func TestService_BorrowBook_SaveFault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newService(t)
	fault := errors.New("write failed")

	m.expectTx(repository.TxOptions{})
	m.store.EXPECT().FindBookByID(ctx, int64(1)).Return(mustBook(t, 1, model.StatusAvailable), nil)
	m.store.EXPECT().SaveBook(ctx, gomock.Any()).Return(nil, fault)

	_, err := svc.BorrowBook(ctx, 1)
	require.ErrorIs(t, err, fault)
}

func TestService_AddReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newService(t)

	m.expectTx(repository.TxOptions{})
	m.store.EXPECT().FindBookByID(ctx, int64(5)).Return(mustBook(t, 5, model.StatusAvailable), nil)
	m.store.EXPECT().SaveReview(ctx, gomock.Any()).Times(1).
		DoAndReturn(func(_ context.Context, r *model.Review) (*model.Review, error) {
			require.Equal(t, int64(5), r.BookID())
			require.Equal(t, "素晴らしい本です", r.Content())
			require.Equal(t, 5, r.Rating())
			stored := model.RestoreReview(1, r.BookID(), r.Content(), r.Rating(), time.Now())
			return &stored, nil
		})

	require.NoError(t, svc.AddReview(ctx, 5, "素晴らしい本です", 5))
}

func TestService_GetBookWithReviews(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, m := newService(t)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	m.expectTx(repository.TxOptions{ReadOnly: true})
	m.store.EXPECT().FindBookByID(ctx, int64(5)).Return(mustBook(t, 5, model.StatusBorrowed,
		model.RestoreReview(1, 5, "素晴らしい本です", 5, created),
		model.RestoreReview(2, 5, "まあまあ", 3, created.Add(time.Minute)),
	), nil)

	got, err := svc.GetBookWithReviews(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "BORROWED", got.Status)
	require.Equal(t, []model.ReviewView{
		{ID: 1, Content: "素晴らしい本です", Rating: 5, CreatedAt: created},
		{ID: 2, Content: "まあまあ", Rating: 3, CreatedAt: created.Add(time.Minute)},
	}, got.Reviews)
}
