package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when a user cannot be created because the
	// username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when a user cannot be created because the
	// email address is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by username matches no row.
	ErrUserNotFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a read, update or delete targets a
	// book id that does not exist.
	ErrBookNotFound = errors.New("book was not found")

	// ErrUnsupportedDriver is returned when the configured driver is neither
	// postgres nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
