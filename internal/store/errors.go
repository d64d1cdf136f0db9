package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert violates the uniqueness
	// of id, email or spotify_id.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a lookup or update matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrUnsupportedDSN is returned by NewStorages for a connection string
	// whose scheme selects no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database URI scheme")
)

// Low-level database operation errors. These wrap driver errors that occur
// before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
