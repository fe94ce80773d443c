package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	booksTableName   = `books`
	reviewsTableName = `reviews`
)

var (
	qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	bookColumns   = []string{"id", "title", "author", "isbn", "status"}
	reviewColumns = []string{"id", "book_id", "content", "rating", "created_at"}
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type store struct {
	q   querier
	log *zap.Logger
}

type bookRow struct {
	ID     int64   `db:"id"`
	Title  string  `db:"title"`
	Author string  `db:"author"`
	Isbn   *string `db:"isbn"`
	Status string  `db:"status"`
}

func (r bookRow) toModel(reviews []model.Review) (*model.Book, error) {
	return model.RestoreBook(r.ID, r.Title, r.Author, r.Isbn, model.Status(r.Status), reviews)
}

type reviewRow struct {
	ID        int64     `db:"id"`
	BookID    int64     `db:"book_id"`
	Content   string    `db:"content"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`
}

func (r reviewRow) toModel() model.Review {
	return model.RestoreReview(r.ID, r.BookID, r.Content, r.Rating, r.CreatedAt)
}

func (s *store) FindBookByID(ctx context.Context, id int64) (*model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewsOf(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	return row.toModel(reviews[row.ID])
}

func (s *store) ExistsBookWithIsbn(ctx context.Context, isbn string) (bool, error) {
	const q = `select exists(select 1 from books where isbn = $1)`
	var exists bool
	if err := s.q.QueryRow(ctx, q, isbn).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *store) SaveBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book.IsNew() {
		return s.insertBook(ctx, book)
	}

	query, args, err := qb.Update(booksTableName).
		Set("status", book.Status().String()).
		Where(sq.Eq{"id": book.ID()}).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return row.toModel(book.Reviews())
}

func (s *store) insertBook(ctx context.Context, book *model.Book) (*model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "status").
		Values(book.Title(), book.Author(), book.Isbn(), book.Status().String()).
		Suffix("returning " + strings.Join(bookColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		if pgErrCode(err) == pgerrcode.UniqueViolation && book.Isbn() != nil {
			return nil, &errs.DuplicateIsbnError{Isbn: *book.Isbn()}
		}
		s.log.Error("insertBook", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	return row.toModel(nil)
}

func (s *store) FindAllBooks(ctx context.Context) ([]*model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	bookRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[bookRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}

	ids := make([]int64, 0, len(bookRows))
	for _, row := range bookRows {
		ids = append(ids, row.ID)
	}
	reviews, err := s.reviewsOf(ctx, ids...)
	if err != nil {
		return nil, err
	}

	books := make([]*model.Book, 0, len(bookRows))
	for _, row := range bookRows {
		book, err := row.toModel(reviews[row.ID])
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

func (s *store) SaveReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if review.ID() != 0 {
		return nil, errors.Errorf("review %d is already stored", review.ID())
	}
	query, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "content", "rating", "created_at").
		Values(review.BookID(), review.Content(), review.Rating(), time.Now().UTC()).
		Suffix("returning " + strings.Join(reviewColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		if pgErrCode(err) == pgerrcode.ForeignKeyViolation {
			return nil, errs.ErrNotFound
		}
		s.log.Error("SaveReview", zap.String("q", query), zap.Error(err))
		return nil, err
	}
	stored := row.toModel()
	return &stored, nil
}

// reviewsOf loads reviews grouped by book in creation order.
func (s *store) reviewsOf(ctx context.Context, bookIDs ...int64) (map[int64][]model.Review, error) {
	out := make(map[int64][]model.Review, len(bookIDs))
	if len(bookIDs) == 0 {
		return out, nil
	}
	query, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookIDs}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	reviewRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	for _, row := range reviewRows {
		out[row.BookID] = append(out[row.BookID], row.toModel())
	}
	return out, nil
}

func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
