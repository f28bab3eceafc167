package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrArtifactNotFound is returned when no artifact with the requested ID
	// exists, either in the database or on disk.
	ErrArtifactNotFound = errors.New("artifact was not found")

	// ErrArtifactAlreadyExists is returned when an artifact ID collides with
	// an existing row.
	ErrArtifactAlreadyExists = errors.New("artifact already exists")

	// ErrArtifactNotSaved is returned when an INSERT completes without error
	// but affects no rows.
	ErrArtifactNotSaved = errors.New("artifact was not saved")

	// ErrInvalidArtifactID is returned by the file storage for IDs that are
	// not UUIDs, so no caller can escape the artifact directory.
	ErrInvalidArtifactID = errors.New("invalid artifact id")

	// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver name.
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
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan artifact row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan artifact rows")
)
