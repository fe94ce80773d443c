package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/book-catalogue/catalogue/internal/errs"
	"github.com/Astemirdum/book-catalogue/catalogue/internal/model"
	"github.com/Astemirdum/book-catalogue/pkg/kafka"
	md "github.com/Astemirdum/book-catalogue/pkg/middleware"
	"github.com/Astemirdum/book-catalogue/pkg/serializer"
	"github.com/Astemirdum/book-catalogue/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/book-catalogue/swagger"
)

type Handler struct {
	catalogueSvc CatalogueService
	events       EventLog
	log          *zap.Logger
}

func New(catalogueSvc CatalogueService, events EventLog, log *zap.Logger) *Handler {
	if events == nil {
		events = NopEventLog()
	}
	return &Handler{
		catalogueSvc: catalogueSvc,
		events:       events,
		log:          log.Named("handler"),
	}
}

// @title Book Catalogue API
// @version 1.0
// @BasePath /api/v1
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodPost},
	}))
	e.Validator = validate.NewCustomValidator()
	e.JSONSerializer = serializer.JSON{}

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.POST("/books", h.RegisterBook)
	api.PATCH("/books/:id/borrow", h.BorrowBook)
	api.PATCH("/books/:id/return", h.ReturnBook)
	api.POST("/books/:id/reviews", h.AddReview)
	api.GET("/books/:id/bookWithReviews", h.GetBookWithReviews)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// ListBooks godoc
// @Summary List all books
// @Tags books
// @Produce json
// @Success 200 {array} model.BookSummary
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.catalogueSvc.ListBooks(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// RegisterBook godoc
// @Summary Register a new book
// @Tags books
// @Accept json
// @Produce json
// @Param book body model.RegisterBookRequest true "book"
// @Success 201 {object} model.BookSummary
// @Failure 400 {object} errs.ValidationErrorResponse
// @Router /books [post]
func (h *Handler) RegisterBook(c echo.Context) error {
	var req model.RegisterBookRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(err)
	}
	if err := c.Validate(req); err != nil {
		return validationError(err)
	}
	book, err := h.catalogueSvc.RegisterBook(c.Request().Context(), req.Title, req.Author, req.Isbn)
	if err != nil {
		return h.httpError(err)
	}
	h.publish(kafka.EventBookRegistered, book.ID, book.Status)
	return c.JSON(http.StatusCreated, book)
}

// BorrowBook godoc
// @Summary Borrow an available book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookSummary
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /books/{id}/borrow [patch]
func (h *Handler) BorrowBook(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogueSvc.BorrowBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	h.publish(kafka.EventBookBorrowed, book.ID, book.Status)
	return c.JSON(http.StatusOK, book)
}

// ReturnBook godoc
// @Summary Return a borrowed book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookSummary
// @Failure 404 {object} echo.HTTPError
// @Failure 409 {object} echo.HTTPError
// @Router /books/{id}/return [patch]
func (h *Handler) ReturnBook(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogueSvc.ReturnBook(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	h.publish(kafka.EventBookReturned, book.ID, book.Status)
	return c.JSON(http.StatusOK, book)
}

// AddReview godoc
// @Summary Attach a review to a book
// @Tags reviews
// @Accept json
// @Param id path int true "book id"
// @Param review body model.AddReviewRequest true "review"
// @Success 201
// @Failure 400 {object} errs.ValidationErrorResponse
// @Failure 404 {object} echo.HTTPError
// @Router /books/{id}/reviews [post]
func (h *Handler) AddReview(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	var req model.AddReviewRequest
	if err = c.Bind(&req); err != nil {
		return h.bindError(err)
	}
	if err = c.Validate(req); err != nil {
		return validationError(err)
	}
	if err = h.catalogueSvc.AddReview(c.Request().Context(), id, req.Content, req.Rating); err != nil {
		return h.httpError(err)
	}
	h.publish(kafka.EventReviewAdded, id, "")
	return c.NoContent(http.StatusCreated)
}

// GetBookWithReviews godoc
// @Summary Get a book with its reviews
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookWithReviews
// @Failure 404 {object} echo.HTTPError
// @Router /books/{id}/bookWithReviews [get]
func (h *Handler) GetBookWithReviews(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := h.catalogueSvc.GetBookWithReviews(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrDuplicateIsbn):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	h.log.Error("catalogue", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func validationError(err error) error {
	fields := validate.Fields(err)
	if fields == nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
		Message: errs.ErrValidation.Error(),
		Errors:  fields,
	})
}

func (h *Handler) bindError(err error) error {
	h.log.Debug("bind", zap.Error(err))
	return echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
		Message: errs.ErrValidation.Error(),
		Errors:  map[string]string{"body": "malformed json"},
	})
}

func bookID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errs.ValidationErrorResponse{
			Message: errs.ErrValidation.Error(),
			Errors:  map[string]string{"id": "must be a positive integer"},
		})
	}
	return id, nil
}
