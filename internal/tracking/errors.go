package tracking

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// FaultKind classifies why an extraction failed.
type FaultKind int

const (
	// IndexFault is raised when a declared position is absent from a row.
	IndexFault FaultKind = iota + 1
	// ValueFault is raised when a cell could not be parsed and had no default.
	ValueFault
	// Unexpected is anything else.
	Unexpected
	// UnsupportedRoute is returned for routes without rules.
	UnsupportedRoute
)

func (k FaultKind) String() string {
	switch k {
	case IndexFault:
		return "index"
	case ValueFault:
		return "value"
	case Unexpected:
		return "unexpected"
	case UnsupportedRoute:
		return "unsupported_route"
	default:
		return "unknown"
	}
}

// classifyFault maps a recovered panic value to a fault kind and its detail.
func classifyFault(recovered any) (FaultKind, string) {
	switch v := recovered.(type) {
	case runtime.Error:
		if strings.Contains(v.Error(), "index out of range") {
			return IndexFault, v.Error()
		}
		return Unexpected, v.Error()
	case error:
		var numErr *strconv.NumError
		if errors.As(v, &numErr) {
			return ValueFault, v.Error()
		}
		return Unexpected, v.Error()
	default:
		return Unexpected, fmt.Sprint(v)
	}
}
