package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/internal/model"
)

const availableCountExpr = `(select count(*) from book_copies c where c.book_id = b.id and c.status = 'AVAILABLE') as available_count`

func (s store) CreateBook(ctx context.Context, title, author string, categoryID *int) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("book_uid", "title", "author", "category_id").
		Values(uuid.New(), title, author, categoryID).
		Suffix("returning id, book_uid, title, author, category_id, 0 as available_count").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, s.ext, &book, q, args...); err != nil {
		s.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (s store) GetBook(ctx context.Context, bookUid string) (model.Book, error) {
	q, args, err := qb.Select("b.id", "b.book_uid", "b.title", "b.author", "b.category_id", availableCountExpr).
		From(booksTableName + " b").
		Where(sq.Eq{"b.book_uid": bookUid}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, s.ext, &book, q, args...); err != nil {
		return model.Book{}, wrapNoRows(err)
	}
	return book, nil
}

func (s store) GetBookByID(ctx context.Context, id int) (model.Book, error) {
	q, args, err := qb.Select("b.id", "b.book_uid", "b.title", "b.author", "b.category_id", availableCountExpr).
		From(booksTableName + " b").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, s.ext, &book, q, args...); err != nil {
		return model.Book{}, wrapNoRows(err)
	}
	return book, nil
}

func (s store) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	q := qb.Select("b.id", "b.book_uid", "b.title", "b.author", "b.category_id", availableCountExpr).
		From(booksTableName + " b").
		OrderBy("b.id")

	if filter.Search != "" {
		pattern := fmt.Sprint("%", filter.Search, "%")
		q = q.Where(sq.Or{
			sq.ILike{"b.title": pattern},
			sq.ILike{"b.author": pattern},
		})
	}
	if filter.CategoryID != nil {
		q = q.Where(sq.Eq{"b.category_id": *filter.CategoryID})
	}
	switch filter.Availability {
	case model.AvailabilityAvailable:
		q = q.Where(`exists (select 1 from book_copies c where c.book_id = b.id and c.status = 'AVAILABLE')`)
	case model.AvailabilityBorrowed:
		q = q.Where(`exists (select 1 from book_copies c where c.book_id = b.id and c.status = 'BORROWED')`)
	}
	if filter.Page != 0 && filter.Size != 0 {
		q = q.Limit(uint64(filter.Size)).Offset(uint64((filter.Page - 1) * filter.Size))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return model.ListBooks{}, err
	}
	s.log.Debug("ListBooks", zap.String("query", query), zap.Any("args", args))

	var books []model.Book
	if err := sqlx.SelectContext(ctx, s.ext, &books, query, args...); err != nil {
		return model.ListBooks{}, err
	}

	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: len(books),
		},
		Items: books,
	}, nil
}
