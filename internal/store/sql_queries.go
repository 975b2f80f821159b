package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-books-api/models"
)

var (
	bookColumns = []string{"id", "title", "author", "category", "publication_year", "price"}
	userColumns = []string{"user_id", "username", "email", "password", "enabled", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildListBooksQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(bookColumns...).
		From(models.Book{}.TableName()).
		OrderBy("id").
		ToSql()
}

func buildGetBookQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(bookColumns...).
		From(models.Book{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return b.Insert(models.Book{}.TableName()).
		Columns("title", "author", "category", "publication_year", "price").
		Values(book.Title, book.Author, book.Category, book.Year, book.Price).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildUpdateBookQuery(b sq.StatementBuilderType, book models.Book) (string, []any, error) {
	return b.Update(models.Book{}.TableName()).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("category", book.Category).
		Set("publication_year", book.Year).
		Set("price", book.Price).
		Where(sq.Eq{"id": book.ID}).
		Suffix(returning(bookColumns)).
		ToSql()
}

func buildDeleteBookQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(models.Book{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "email", "password", "enabled").
		Values(user.Username, user.Email, user.Password, user.Enabled).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildUserExistsQuery selects a constant row when column equals value.
func buildUserExistsQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}
