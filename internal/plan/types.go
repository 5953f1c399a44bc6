package plan

import "fixture-generator/internal/common"

// Strategy is the way a value is manufactured.
type Strategy int

const (
	// StrategyUnsupported - the type cannot be manufactured.
	StrategyUnsupported Strategy = iota
	// StrategyExact - parse the exact value given by num or str.
	StrategyExact
	// StrategyCustom - invoke a registered strategy.
	StrategyCustom
	// StrategyPrimitive - use the canned value of the type.
	StrategyPrimitive
	// StrategySequence - build a slice of the configured size.
	StrategySequence
	// StrategyArray - fill every position of a fixed array.
	StrategyArray
	// StrategyMapping - build a map of the configured size.
	StrategyMapping
	// StrategyPointer - allocate and fill the element.
	StrategyPointer
	// StrategyRecord - instantiate a struct or an interface.
	StrategyRecord
	// StrategyZero - use the zero value, for funcs, channels and other
	// concrete kinds without a canned value.
	StrategyZero
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyUnsupported:
		return "unsupported"
	case StrategyExact:
		return "exact"
	case StrategyCustom:
		return "custom"
	case StrategyPrimitive:
		return "primitive"
	case StrategySequence:
		return "sequence"
	case StrategyArray:
		return "array"
	case StrategyMapping:
		return "mapping"
	case StrategyPointer:
		return "pointer"
	case StrategyRecord:
		return "record"
	case StrategyZero:
		return "zero"
	default:
		return common.UnknownStr
	}
}

// Decision is the outcome of Determine.
type Decision struct {
	Strategy Strategy
	// Explanation describes why the strategy was chosen.
	Explanation string
}

func (d Decision) String() string {
	return d.Strategy.String() + " (" + d.Explanation + ")"
}
