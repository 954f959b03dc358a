// Package odbc implements database.Connector on top of the native ODBC
// driver manager, loaded at runtime through purego. Each Connector
// resolves its own function table — there is no process-wide state.
package odbc

import (
	"context"

	"github.com/google/uuid"

	"github.com/datbridge/odbcgo/internal/database"
	"github.com/datbridge/odbcgo/internal/errs"
	"github.com/datbridge/odbcgo/internal/logger"
)

// Connector owns the three-tier ODBC handle chain: environment →
// connection → statement. It is the sole owner of all three handles;
// callers never see raw handles. Not safe for concurrent use — at most
// one in-flight operation per instance.
type Connector struct {
	cfg   *database.Config
	log   *logger.Logger
	funcs *funcTable

	// Handle slots. Zero means not allocated. A child slot is never
	// populated while its parent slot is zero.
	henv  uintptr
	hdbc  uintptr
	hstmt uintptr
}

var _ database.Connector = (*Connector)(nil)

// New resolves the driver-manager function table and returns a
// disconnected Connector. Resolution failure is fatal and surfaced
// immediately.
func New(cfg *database.Config) (*Connector, error) {
	if cfg == nil {
		cfg = database.DefaultConfig()
	}

	funcs, err := loadFuncTable(cfg.LibraryPath)
	if err != nil {
		return nil, err
	}

	log := logger.New(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}).
		With().Str("connector_id", uuid.NewString()).Logger()

	return &Connector{cfg: cfg, log: log, funcs: funcs}, nil
}

// Connect allocates the handle chain and opens a driver session. Any
// failing step triggers a best-effort teardown of everything allocated
// so far, so no partially allocated handles remain reachable.
func (c *Connector) Connect(ctx context.Context, connectionString string) (string, error) {
	if connectionString == "" {
		connectionString = c.cfg.DSN
	}
	if connectionString == "" {
		return "", errs.New(errs.ErrKindInvalidInput, "no connection string supplied")
	}

	if err := c.allocChain(connectionString); err != nil {
		c.Disconnect(ctx)
		return "", err
	}

	c.log.Info("connection established")
	return "connection established", nil
}

// allocChain performs the five-step connect sequence in order.
func (c *Connector) allocChain(connectionString string) error {
	if err := check(c.funcs.allocHandle(sqlHandleEnv, 0, &c.henv), "SQLAllocHandle(env)"); err != nil {
		return errConnect("cannot allocate environment handle", err)
	}

	ret := c.funcs.setEnvAttr(c.henv, sqlAttrODBCVersion, uintptr(sqlOVODBC3), 0)
	if err := check(ret, "SQLSetEnvAttr"); err != nil {
		return errConnect("cannot set ODBC version attribute", err)
	}

	if err := check(c.funcs.allocHandle(sqlHandleDbc, c.henv, &c.hdbc), "SQLAllocHandle(dbc)"); err != nil {
		return errConnect("cannot allocate connection handle", err)
	}

	// The completed connection string the driver hands back is required
	// by the call but not used; the buffer lives only for this call.
	in := append([]byte(connectionString), 0)
	out := make([]byte, 1024)
	var outLen int16
	ret = c.funcs.driverConnect(c.hdbc, 0, &in[0], sqlNTS, &out[0], int16(len(out)), &outLen, sqlDriverNoPrompt)
	if err := check(ret, "SQLDriverConnect"); err != nil {
		return errConnect("driver connect failed", err)
	}

	if err := check(c.funcs.allocHandle(sqlHandleStmt, c.hdbc, &c.hstmt), "SQLAllocHandle(stmt)"); err != nil {
		return errConnect("cannot allocate statement handle", err)
	}

	return nil
}

// Disconnect tears the handle chain down in reverse order: statement,
// then connection (disconnect + free), then environment. Every step is
// attempted even if an earlier one fails; failures are logged, not
// raised. Idempotent — with nothing allocated it succeeds vacuously.
func (c *Connector) Disconnect(_ context.Context) bool {
	ok := true

	if c.hstmt != 0 {
		if err := check(c.funcs.freeHandle(sqlHandleStmt, c.hstmt), "SQLFreeHandle(stmt)"); err != nil {
			c.log.Warnf("freeing statement handle: %v", err)
			ok = false
		}
		c.hstmt = 0
	}

	if c.hdbc != 0 {
		if err := check(c.funcs.disconnect(c.hdbc), "SQLDisconnect"); err != nil {
			c.log.Warnf("disconnecting: %v", err)
			ok = false
		}
		if err := check(c.funcs.freeHandle(sqlHandleDbc, c.hdbc), "SQLFreeHandle(dbc)"); err != nil {
			c.log.Warnf("freeing connection handle: %v", err)
			ok = false
		}
		c.hdbc = 0
	}

	if c.henv != 0 {
		if err := check(c.funcs.freeHandle(sqlHandleEnv, c.henv), "SQLFreeHandle(env)"); err != nil {
			c.log.Warnf("freeing environment handle: %v", err)
			ok = false
		}
		c.henv = 0
	}

	return ok
}

// Select builds a bracket-quoted SELECT and forwards it to Query.
func (c *Connector) Select(ctx context.Context, table string, columns ...string) ([]database.Row, error) {
	return c.Query(ctx, database.BuildSelect(table, columns...))
}
