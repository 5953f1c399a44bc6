package node

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherInterface
	DispatcherPointer
	DispatcherSlice
	DispatcherArray
	DispatcherMap
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

func (d DispatcherEnum) String() string {
	switch d {
	case DispatcherPrimitive:
		return "primitive"
	case DispatcherInterface:
		return "interface"
	case DispatcherPointer:
		return "pointer"
	case DispatcherSlice:
		return "slice"
	case DispatcherArray:
		return "array"
	case DispatcherMap:
		return "map"
	case DispatcherStruct:
		return "struct"
	default:
		return "unknown"
	}
}
