package timeblock

import "errors"

var (
	// ErrBlockNotFound is returned when no time block matches the id
	ErrBlockNotFound = errors.New("timeblock.repository: time block not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("timeblock.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("timeblock.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("timeblock.repository: failed to scan row")
)
