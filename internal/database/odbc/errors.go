package odbc

import "github.com/datbridge/odbcgo/internal/errs"

// Native failures are translated into the unified error kinds before
// leaving this package, mirroring how callers consume them.

func errConnect(msg string, cause error) error {
	return errs.Wrap(errs.ErrKindConnectionFailed, msg, cause)
}

func errQuery(msg string, cause error) error {
	return errs.Wrap(errs.ErrKindQueryFailed, msg, cause)
}

func errNotConnected() error {
	return errs.New(errs.ErrKindInvalidInput, "connector is not connected")
}
