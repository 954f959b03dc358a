package database

import "context"

// Connector is the central contract for ODBC operations.
// All layers above this package talk only to this interface —
// they never import the odbc driver package directly.
//
// A Connector is not safe for concurrent use: the underlying native
// handles are not reentrant, so callers must serialise operations
// (at most one in flight per instance).
type Connector interface {
	// Connect allocates the native handle chain and opens a session
	// using the given driver-native connection string. The string is
	// opaque to the connector — it is forwarded to the driver verbatim.
	// On success it returns a human-readable status message.
	//
	// Connect after a Disconnect is supported (fresh handles each time);
	// calling Connect while already connected is a caller error.
	Connect(ctx context.Context, connectionString string) (string, error)

	// Query executes a SQL statement directly (no parameter binding)
	// and materialises the full result set in driver fetch order.
	// Statements without a tabular result (DML, DDL) return an empty
	// slice, not an error.
	Query(ctx context.Context, sql string) ([]Row, error)

	// Select builds a bracket-quoted SELECT for the table and forwards
	// it to Query. With no columns it selects *.
	Select(ctx context.Context, table string, columns ...string) ([]Row, error)

	// Disconnect tears the handle chain down in reverse order,
	// attempting every step even if an earlier one fails. It reports
	// false if any performed step did not succeed. Safe to call
	// repeatedly; succeeds vacuously when nothing is allocated.
	Disconnect(ctx context.Context) bool
}
