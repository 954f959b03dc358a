package odbc

import (
	"context"
	"strings"
	"unicode/utf16"
	"unsafe"

	"github.com/datbridge/odbcgo/internal/database"
)

// textBufferChars bounds the wide-character fetch buffer for a single
// column value. Longer data truncates silently — chunked re-fetch of
// oversized values is not implemented.
const textBufferChars = 1024

// columnDesc describes one result column for the lifetime of a single
// execution; it is rebuilt on every Query.
type columnDesc struct {
	ordinal  uint16
	name     string
	dataType int16
}

// Query executes sql directly and materialises the full result set.
// Statements without a tabular result (DML, DDL) return an empty slice.
// The statement's cursor is closed on every exit path so the handle
// stays reusable after a failed query.
func (c *Connector) Query(_ context.Context, sqlText string) ([]database.Row, error) {
	if c.hstmt == 0 {
		return nil, errNotConnected()
	}

	defer func() {
		if err := check(c.funcs.freeStmt(c.hstmt, sqlClose), "SQLFreeStmt"); err != nil {
			c.log.Warnf("closing cursor: %v", err)
		}
	}()

	text := append([]byte(sqlText), 0)
	if err := check(c.funcs.execDirect(c.hstmt, &text[0], int32(sqlNTS)), "SQLExecDirect"); err != nil {
		return nil, errQuery("statement execution failed", err)
	}

	var count int16
	if err := check(c.funcs.numResultCols(c.hstmt, &count), "SQLNumResultCols"); err != nil {
		return nil, errQuery("cannot read result column count", err)
	}
	if count <= 0 {
		// No tabular result, e.g. a DML statement.
		return []database.Row{}, nil
	}

	cols, err := c.describeColumns(count)
	if err != nil {
		return nil, err
	}

	rows := make([]database.Row, 0)
	for {
		ret := c.funcs.fetch(c.hstmt)
		if ret == sqlNoData {
			break
		}
		if err := check(ret, "SQLFetch"); err != nil {
			return nil, errQuery("row fetch failed", err)
		}

		row := make(database.Row, 0, len(cols))
		for _, col := range cols {
			v, err := c.columnValue(col)
			if err != nil {
				return nil, errQuery("cannot read column "+col.name, err)
			}
			row = append(row, database.Field{Column: col.name, Value: v})
		}
		rows = append(rows, row)
	}

	c.log.Debugf("query returned %d rows, %d columns", len(rows), len(cols))
	return rows, nil
}

// describeColumns introspects name and native SQL type for every column
// ordinal 1..count. This runs even when zero rows will be fetched.
func (c *Connector) describeColumns(count int16) ([]columnDesc, error) {
	cols := make([]columnDesc, 0, count)
	nameBuf := make([]byte, 256)

	for i := uint16(1); i <= uint16(count); i++ {
		var nameLen, dataType, decDigits, nullable int16
		var colSize uint64
		ret := c.funcs.describeCol(c.hstmt, i, &nameBuf[0], int16(len(nameBuf)),
			&nameLen, &dataType, &colSize, &decDigits, &nullable)
		if err := check(ret, "SQLDescribeCol"); err != nil {
			return nil, errQuery("cannot describe result columns", err)
		}

		n := int(nameLen)
		if n < 0 || n > len(nameBuf) {
			n = len(nameBuf)
		}
		cols = append(cols, columnDesc{ordinal: i, name: string(nameBuf[:n]), dataType: dataType})
	}
	return cols, nil
}

// columnValue dispatches on the column's native SQL type. Unrecognised
// type codes fall back to the text path with a diagnostic notice.
func (c *Connector) columnValue(col columnDesc) (any, error) {
	switch col.dataType {
	case sqlTypeChar, sqlTypeVarchar, sqlTypeLongVarchar,
		sqlTypeWChar, sqlTypeWVarchar, sqlTypeWLongVarchar,
		sqlTypeDateTime, sqlTypeTime, sqlTypeTimestamp,
		sqlTypeDate3, sqlTypeTime3, sqlTypeTimestamp3:
		return c.getText(col.ordinal)
	case sqlTypeBit:
		return c.getBool(col.ordinal)
	case sqlTypeTinyInt, sqlTypeSmallInt, sqlTypeInteger:
		return c.getInt(col.ordinal)
	case sqlTypeReal, sqlTypeFloat, sqlTypeDouble, sqlTypeNumeric, sqlTypeDecimal:
		return c.getFloat(col.ordinal)
	default:
		c.log.Warnf("column %q has unhandled SQL type %d, fetching as text", col.name, col.dataType)
		return c.getText(col.ordinal)
	}
}

// getDataAccepted is the accepted-code override for SQLGetData: a
// sqlNoData answer yields a nil value rather than an error.
var getDataAccepted = []sqlReturn{sqlSuccess, sqlSuccessWithInfo, sqlNoData}

// getText fetches the column as wide-character text, decodes it, and
// trims surrounding whitespace.
func (c *Connector) getText(ordinal uint16) (any, error) {
	buf := make([]uint16, textBufferChars)
	var ind int64
	ret := c.funcs.getData(c.hstmt, ordinal, sqlCWChar,
		unsafe.Pointer(&buf[0]), int64(len(buf))*2, &ind)
	if err := check(ret, "SQLGetData", getDataAccepted...); err != nil {
		return nil, err
	}
	if ret == sqlNoData || ind == sqlNullData {
		return nil, nil
	}

	n := int(ind) / 2
	if ind < 0 || n > len(buf)-1 {
		// sqlNoTotal, or data longer than the buffer: take what fits.
		n = len(buf) - 1
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			n = i
			break
		}
	}
	return strings.TrimSpace(string(utf16.Decode(buf[:n]))), nil
}

func (c *Connector) getBool(ordinal uint16) (any, error) {
	var v byte
	var ind int64
	ret := c.funcs.getData(c.hstmt, ordinal, sqlCBit, unsafe.Pointer(&v), 1, &ind)
	if err := check(ret, "SQLGetData", getDataAccepted...); err != nil {
		return nil, err
	}
	if ret == sqlNoData || ind == sqlNullData {
		return nil, nil
	}
	return v != 0, nil
}

func (c *Connector) getInt(ordinal uint16) (any, error) {
	var v int32
	var ind int64
	ret := c.funcs.getData(c.hstmt, ordinal, sqlCSLong, unsafe.Pointer(&v), 4, &ind)
	if err := check(ret, "SQLGetData", getDataAccepted...); err != nil {
		return nil, err
	}
	if ret == sqlNoData || ind == sqlNullData {
		return nil, nil
	}
	return int64(v), nil
}

func (c *Connector) getFloat(ordinal uint16) (any, error) {
	var v float64
	var ind int64
	ret := c.funcs.getData(c.hstmt, ordinal, sqlCDouble, unsafe.Pointer(&v), 8, &ind)
	if err := check(ret, "SQLGetData", getDataAccepted...); err != nil {
		return nil, err
	}
	if ret == sqlNoData || ind == sqlNullData {
		return nil, nil
	}
	return v, nil
}
