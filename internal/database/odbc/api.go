package odbc

// Native ODBC constants, as defined by sql.h/sqlext.h. Only what the
// connector actually calls is declared here.

// sqlReturn is the SQLRETURN status of every native call.
type sqlReturn int16

const (
	sqlSuccess         sqlReturn = 0
	sqlSuccessWithInfo sqlReturn = 1
	sqlStillExecuting  sqlReturn = 2
	sqlError           sqlReturn = -1
	sqlInvalidHandle   sqlReturn = -2
	sqlNoData          sqlReturn = 100
)

// Handle types for SQLAllocHandle / SQLFreeHandle.
const (
	sqlHandleEnv  int16 = 1
	sqlHandleDbc  int16 = 2
	sqlHandleStmt int16 = 3
)

// Environment attributes.
const (
	sqlAttrODBCVersion int32 = 200
	sqlOVODBC3         int32 = 3
)

// SQLDriverConnect completion modes.
const sqlDriverNoPrompt uint16 = 0

// SQLFreeStmt options.
const sqlClose uint16 = 0

const (
	// sqlNTS marks a null-terminated input string.
	sqlNTS int16 = -3
	// sqlNullData in an indicator signals the column value is SQL NULL.
	sqlNullData int64 = -1
	// sqlNoTotal in an indicator means the driver cannot report the length.
	sqlNoTotal int64 = -4
)

// SQL data type codes reported by SQLDescribeCol.
const (
	sqlTypeChar      int16 = 1
	sqlTypeNumeric   int16 = 2
	sqlTypeDecimal   int16 = 3
	sqlTypeInteger   int16 = 4
	sqlTypeSmallInt  int16 = 5
	sqlTypeFloat     int16 = 6
	sqlTypeReal      int16 = 7
	sqlTypeDouble    int16 = 8
	sqlTypeDateTime  int16 = 9
	sqlTypeTime      int16 = 10
	sqlTypeTimestamp int16 = 11
	sqlTypeVarchar   int16 = 12

	sqlTypeDate3      int16 = 91 // SQL_TYPE_DATE (ODBC 3)
	sqlTypeTime3      int16 = 92 // SQL_TYPE_TIME (ODBC 3)
	sqlTypeTimestamp3 int16 = 93 // SQL_TYPE_TIMESTAMP (ODBC 3)

	sqlTypeLongVarchar  int16 = -1
	sqlTypeBigInt       int16 = -5
	sqlTypeTinyInt      int16 = -6
	sqlTypeBit          int16 = -7
	sqlTypeWChar        int16 = -8
	sqlTypeWVarchar     int16 = -9
	sqlTypeWLongVarchar int16 = -10
)

// C buffer type codes for SQLGetData.
const (
	sqlCDouble int16 = 8
	sqlCBit    int16 = -7
	sqlCWChar  int16 = -8
	sqlCSLong  int16 = -16
)
