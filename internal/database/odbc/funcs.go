package odbc

import (
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/datbridge/odbcgo/internal/errs"
)

// funcTable holds the typed entry points into the platform ODBC driver
// manager. All fields are resolved at construction and never change —
// the table is stateless after loadFuncTable returns. Keeping the native
// layer behind a plain struct of funcs also lets tests substitute an
// in-process fake driver.
type funcTable struct {
	allocHandle   func(handleType int16, parent uintptr, out *uintptr) sqlReturn
	freeHandle    func(handleType int16, handle uintptr) sqlReturn
	setEnvAttr    func(env uintptr, attr int32, value uintptr, strLen int32) sqlReturn
	driverConnect func(dbc uintptr, hwnd uintptr, inConn *byte, inLen int16, outConn *byte, outMax int16, outLen *int16, completion uint16) sqlReturn
	disconnect    func(dbc uintptr) sqlReturn
	execDirect    func(stmt uintptr, sql *byte, sqlLen int32) sqlReturn
	numResultCols func(stmt uintptr, count *int16) sqlReturn
	describeCol   func(stmt uintptr, col uint16, name *byte, nameMax int16, nameLen *int16, dataType *int16, colSize *uint64, decDigits *int16, nullable *int16) sqlReturn
	fetch         func(stmt uintptr) sqlReturn
	getData       func(stmt uintptr, col uint16, targetType int16, value unsafe.Pointer, bufLen int64, indicator *int64) sqlReturn
	freeStmt      func(stmt uintptr, option uint16) sqlReturn
}

// loadFuncTable opens the driver-manager library and resolves every
// required entry point. A missing library or symbol is fatal — there is
// no partial or degraded mode.
func loadFuncTable(path string) (*funcTable, error) {
	if path == "" {
		path = defaultLibrary()
	}

	lib, err := openLibrary(path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindLoadFailed,
			fmt.Sprintf("cannot open driver manager %q", path), err)
	}

	t := &funcTable{}
	if err := t.register(lib); err != nil {
		return nil, err
	}
	return t, nil
}

// register resolves all entry points from an already-opened library.
// purego panics on a missing symbol, which is converted here into a
// load error so construction fails cleanly.
func (t *funcTable) register(lib uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Wrap(errs.ErrKindLoadFailed,
				"missing ODBC entry point", fmt.Errorf("%v", r))
		}
	}()

	purego.RegisterLibFunc(&t.allocHandle, lib, "SQLAllocHandle")
	purego.RegisterLibFunc(&t.freeHandle, lib, "SQLFreeHandle")
	purego.RegisterLibFunc(&t.setEnvAttr, lib, "SQLSetEnvAttr")
	purego.RegisterLibFunc(&t.driverConnect, lib, "SQLDriverConnect")
	purego.RegisterLibFunc(&t.disconnect, lib, "SQLDisconnect")
	purego.RegisterLibFunc(&t.execDirect, lib, "SQLExecDirect")
	purego.RegisterLibFunc(&t.numResultCols, lib, "SQLNumResultCols")
	purego.RegisterLibFunc(&t.describeCol, lib, "SQLDescribeCol")
	purego.RegisterLibFunc(&t.fetch, lib, "SQLFetch")
	purego.RegisterLibFunc(&t.getData, lib, "SQLGetData")
	purego.RegisterLibFunc(&t.freeStmt, lib, "SQLFreeStmt")
	return nil
}
