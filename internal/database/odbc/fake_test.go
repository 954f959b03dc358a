package odbc

import (
	"io"
	"unicode/utf16"
	"unsafe"

	"github.com/datbridge/odbcgo/internal/database"
	"github.com/datbridge/odbcgo/internal/logger"
)

// fakeODBC simulates a driver manager in process. It backs a funcTable
// with closures over its own state, so the connector exercises the real
// call sequence (alloc/connect/exec/describe/fetch/getData/free) without
// a native library.
type fakeColumn struct {
	name     string
	dataType int16
}

type fakeODBC struct {
	// fail maps a call name (as passed to check) to the code it should
	// return instead of success.
	fail map[string]sqlReturn

	columns []fakeColumn
	rows    [][]any

	next         uintptr
	allocated    map[uintptr]int16
	disconnects  int
	cursorCloses int
	cursor       int
}

func newFakeODBC() *fakeODBC {
	return &fakeODBC{
		fail:      map[string]sqlReturn{},
		allocated: map[uintptr]int16{},
	}
}

func (f *fakeODBC) failOn(call string, ret sqlReturn) {
	f.fail[call] = ret
}

func handleName(handleType int16) string {
	switch handleType {
	case sqlHandleEnv:
		return "env"
	case sqlHandleDbc:
		return "dbc"
	default:
		return "stmt"
	}
}

func (f *fakeODBC) table() *funcTable {
	return &funcTable{
		allocHandle: func(handleType int16, parent uintptr, out *uintptr) sqlReturn {
			if ret, ok := f.fail["SQLAllocHandle("+handleName(handleType)+")"]; ok {
				return ret
			}
			f.next++
			f.allocated[f.next] = handleType
			*out = f.next
			return sqlSuccess
		},
		freeHandle: func(handleType int16, handle uintptr) sqlReturn {
			if ret, ok := f.fail["SQLFreeHandle("+handleName(handleType)+")"]; ok {
				return ret
			}
			delete(f.allocated, handle)
			return sqlSuccess
		},
		setEnvAttr: func(env uintptr, attr int32, value uintptr, strLen int32) sqlReturn {
			if ret, ok := f.fail["SQLSetEnvAttr"]; ok {
				return ret
			}
			return sqlSuccess
		},
		driverConnect: func(dbc, hwnd uintptr, inConn *byte, inLen int16, outConn *byte, outMax int16, outLen *int16, completion uint16) sqlReturn {
			if ret, ok := f.fail["SQLDriverConnect"]; ok {
				return ret
			}
			completed := []byte("DRIVER=fake")
			copy(unsafe.Slice(outConn, outMax), completed)
			*outLen = int16(len(completed))
			return sqlSuccess
		},
		disconnect: func(dbc uintptr) sqlReturn {
			f.disconnects++
			if ret, ok := f.fail["SQLDisconnect"]; ok {
				return ret
			}
			return sqlSuccess
		},
		execDirect: func(stmt uintptr, sql *byte, sqlLen int32) sqlReturn {
			if ret, ok := f.fail["SQLExecDirect"]; ok {
				return ret
			}
			f.cursor = 0
			return sqlSuccess
		},
		numResultCols: func(stmt uintptr, count *int16) sqlReturn {
			if ret, ok := f.fail["SQLNumResultCols"]; ok {
				return ret
			}
			*count = int16(len(f.columns))
			return sqlSuccess
		},
		describeCol: func(stmt uintptr, col uint16, name *byte, nameMax int16, nameLen *int16, dataType *int16, colSize *uint64, decDigits *int16, nullable *int16) sqlReturn {
			if ret, ok := f.fail["SQLDescribeCol"]; ok {
				return ret
			}
			desc := f.columns[col-1]
			n := copy(unsafe.Slice(name, nameMax), desc.name)
			*nameLen = int16(n)
			*dataType = desc.dataType
			return sqlSuccess
		},
		fetch: func(stmt uintptr) sqlReturn {
			if ret, ok := f.fail["SQLFetch"]; ok {
				return ret
			}
			if f.cursor >= len(f.rows) {
				return sqlNoData
			}
			f.cursor++
			return sqlSuccess
		},
		getData: func(stmt uintptr, col uint16, targetType int16, value unsafe.Pointer, bufLen int64, indicator *int64) sqlReturn {
			if ret, ok := f.fail["SQLGetData"]; ok {
				return ret
			}
			v := f.rows[f.cursor-1][col-1]
			if v == nil {
				*indicator = sqlNullData
				return sqlSuccess
			}
			switch targetType {
			case sqlCWChar:
				enc := utf16.Encode([]rune(v.(string)))
				dst := unsafe.Slice((*uint16)(value), bufLen/2)
				n := copy(dst, enc)
				if n < len(dst) {
					dst[n] = 0
				}
				*indicator = int64(len(enc)) * 2
			case sqlCSLong:
				*(*int32)(value) = int32(v.(int64))
				*indicator = 4
			case sqlCDouble:
				*(*float64)(value) = v.(float64)
				*indicator = 8
			case sqlCBit:
				var b byte
				if v.(bool) {
					b = 1
				}
				*(*byte)(value) = b
				*indicator = 1
			}
			return sqlSuccess
		},
		freeStmt: func(stmt uintptr, option uint16) sqlReturn {
			if option == sqlClose {
				f.cursorCloses++
			}
			if ret, ok := f.fail["SQLFreeStmt"]; ok {
				return ret
			}
			return sqlSuccess
		},
	}
}

// newTestConnector wires a connector directly to a fake driver manager.
func newTestConnector(f *fakeODBC) *Connector {
	log := logger.New(&logger.Config{Level: "error", Format: "json", Output: io.Discard})
	return &Connector{
		cfg:   database.DefaultConfig(),
		log:   log,
		funcs: f.table(),
	}
}
