package odbc

import "fmt"

// nativeError carries the raw return code and the failing call name so
// failures are diagnosable before they are wrapped into an errs kind.
type nativeError struct {
	Call string
	Code sqlReturn
}

func (e *nativeError) Error() string {
	return fmt.Sprintf("%s returned %d", e.Call, e.Code)
}

// defaultAccepted is the accepted-success set for a native call.
var defaultAccepted = []sqlReturn{sqlSuccess, sqlSuccessWithInfo}

// check is the single chokepoint through which every native return code
// passes. call names the native function for diagnostics. Call sites may
// override the accepted set, e.g. treating sqlNoData as acceptable for a
// terminal fetch.
func check(ret sqlReturn, call string, accepted ...sqlReturn) error {
	if len(accepted) == 0 {
		accepted = defaultAccepted
	}
	for _, ok := range accepted {
		if ret == ok {
			return nil
		}
	}
	return &nativeError{Call: call, Code: ret}
}
