package handler

import (
	"context"
	"testing"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/book-catalogue/catalogue/internal/handler/mocks"
)

func TestConsumer_handle(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLoanService)

	tests := []struct {
		name         string
		value        string
		mockBehavior mockBehavior
		wantMark     bool
	}{
		{
			name:  "borrow",
			value: `{"bookId":1,"isReturn":false}`,
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().BorrowBook(gomock.Any(), int64(1)).Return(model.BookSummary{ID: 1, Status: "BORROWED"}, nil)
			},
			wantMark: true,
		},
		{
			name:  "return",
			value: `{"bookId":2,"isReturn":true}`,
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().ReturnBook(gomock.Any(), int64(2)).Return(model.BookSummary{ID: 2, Status: "AVAILABLE"}, nil)
			},
			wantMark: true,
		},
		{
			name:         "malformed message is skipped",
			value:        `{"bookId":`,
			mockBehavior: func(r *service_mocks.MockLoanService) {},
			wantMark:     true,
		},
		{
			name:  "conflict is skipped",
			value: `{"bookId":3}`,
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().BorrowBook(gomock.Any(), int64(3)).
					Return(model.BookSummary{}, &errs.ConflictError{BookID: 3, Reason: "book already borrowed"})
			},
			wantMark: true,
		},
		{
			name:  "not found is skipped",
			value: `{"bookId":4,"isReturn":true}`,
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().ReturnBook(gomock.Any(), int64(4)).Return(model.BookSummary{}, &errs.NotFoundError{BookID: 4})
			},
			wantMark: true,
		},
		{
			name:  "storage fault is not marked",
			value: `{"bookId":5}`,
			mockBehavior: func(r *service_mocks.MockLoanService) {
				r.EXPECT().BorrowBook(gomock.Any(), int64(5)).Return(model.BookSummary{}, errors.New("connection reset"))
			},
			wantMark: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			svc := service_mocks.NewMockLoanService(c)
			tt.mockBehavior(svc)

			consumer := NewConsumer(svc, zap.NewNop())
			require.Equal(t, tt.wantMark, consumer.handle(context.Background(), []byte(tt.value)))
		})
	}
}
