package repository

import (
	"context"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type TxOptions struct {
	ReadOnly bool
}

// Repository opens units of work. Every Store obtained inside fn shares one transaction,
// committed when fn returns nil and rolled back otherwise.
type Repository interface {
	Transaction(ctx context.Context, opts TxOptions, fn func(st Store) error) error
}

type Store interface {
	// FindBookByID returns the book with its reviews or errs.ErrNotFound.
	FindBookByID(ctx context.Context, id int64) (*model.Book, error)
	ExistsBookWithIsbn(ctx context.Context, isbn string) (bool, error)
	// SaveBook inserts a new book or updates the status of a stored one.
	SaveBook(ctx context.Context, book *model.Book) (*model.Book, error)
	FindAllBooks(ctx context.Context) ([]*model.Book, error)
	SaveReview(ctx context.Context, review *model.Review) (*model.Review, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (r *repository) Transaction(ctx context.Context, opts TxOptions, fn func(st Store) error) (err error) {
	txOpts := pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	}
	if opts.ReadOnly {
		txOpts.AccessMode = pgx.ReadOnly
	}
	tx, err := r.db.BeginTx(ctx, txOpts)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}

	defer func() {
		if p := recover(); p != nil {
			r.rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			r.rollback(ctx, tx)
			return
		}
		if err = tx.Commit(ctx); err != nil {
			err = errors.Wrap(err, "commit tx")
		}
	}()

	return fn(&store{q: tx, log: r.log})
}

func (r *repository) rollback(ctx context.Context, tx pgx.Tx) {
	// the request context may already be canceled, the rollback must still reach the server
	if err := tx.Rollback(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		r.log.Error("rollback", zap.Error(err))
	}
}
