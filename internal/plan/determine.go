package plan

import (
	"reflect"

	"fixture-generator/internal/mapping"
	"fixture-generator/node"
	"fixture-generator/primitive"
)

// Strategy explanation constants.
const (
	explExactNumber   = "exact number"
	explExactText     = "exact text"
	explEmptyIface    = "empty interface"
	explSlice         = "slice"
	explArray         = "fixed array"
	explMap           = "map"
	explPointer       = "pointer"
	explStruct        = "struct"
	explInterface     = "interface"
	explNotBuildable  = "no way to build"
	explCustomPrefix  = "strategy "
	explCannedPrefix  = "canned "
	explZeroPrefix    = "zero "
)

// Determine selects how a value of type t is manufactured under ov.
// Attributes which do not apply to t are ignored: num on a string falls
// through to the canned value.
func Determine(t reflect.Type, ov mapping.FieldOverride) Decision {
	if t == nil {
		return Decision{Strategy: StrategyUnsupported, Explanation: explNotBuildable}
	}

	kind := primitive.BaseKind(t)

	switch {
	case ov.Num != nil && (kind.IsNumber() || kind == primitive.KindDuration):
		return Decision{Strategy: StrategyExact, Explanation: explExactNumber}
	case ov.Str != nil && kind.IsText():
		return Decision{Strategy: StrategyExact, Explanation: explExactText}
	case ov.Strategy != "":
		return Decision{Strategy: StrategyCustom, Explanation: explCustomPrefix + ov.Strategy}
	case kind != 0:
		return Decision{Strategy: StrategyPrimitive, Explanation: explCannedPrefix + kind.String()}
	}

	switch node.Dispatch(t) {
	case node.DispatcherPrimitive:
		return Decision{Strategy: StrategyPrimitive, Explanation: explEmptyIface}
	case node.DispatcherInterface:
		return Decision{Strategy: StrategyRecord, Explanation: explInterface}
	case node.DispatcherSlice:
		return Decision{Strategy: StrategySequence, Explanation: explSlice}
	case node.DispatcherArray:
		return Decision{Strategy: StrategyArray, Explanation: explArray}
	case node.DispatcherMap:
		return Decision{Strategy: StrategyMapping, Explanation: explMap}
	case node.DispatcherPointer:
		return Decision{Strategy: StrategyPointer, Explanation: explPointer}
	case node.DispatcherStruct:
		return Decision{Strategy: StrategyRecord, Explanation: explStruct}
	default:
		return Decision{Strategy: StrategyZero, Explanation: explZeroPrefix + t.Kind().String()}
	}
}

// ExactText returns the exact value text of ov for a decision of
// StrategyExact.
func ExactText(ov mapping.FieldOverride, d Decision) string {
	switch {
	case d.Strategy != StrategyExact:
		return ""
	case d.Explanation == explExactNumber:
		return *ov.Num
	default:
		return *ov.Str
	}
}
