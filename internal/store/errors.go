package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPhoneAlreadyExists is returned when a new user is rejected because
	// another account already uses the same normalized phone number.
	ErrPhoneAlreadyExists = errors.New("phone already exists")

	// ErrUnknownUser is returned when a record references a user that does
	// not exist.
	ErrUnknownUser = errors.New("user does not exist")

	// ErrGuestNotFound is returned when an update or delete targets a guest
	// that does not exist.
	ErrGuestNotFound = errors.New("guest was not found")

	// ErrTaskNotFound is returned when a completion update targets a task
	// that does not exist.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrCorruptSession is returned by a session store whose persisted record
	// cannot be decoded into a usable session.
	ErrCorruptSession = errors.New("persisted session is corrupt")
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

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
