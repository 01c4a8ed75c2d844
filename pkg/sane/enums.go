package sane

import "fmt"

// Status is the result code carried by most RPC replies.
type Status Word

const (
	StatusGood Status = iota
	StatusUnsupported
	StatusCancelled
	StatusDeviceBusy
	StatusInval
	StatusEOF
	StatusJammed
	StatusNoDocs
	StatusCoverOpen
	StatusIOError
	StatusNoMem
	StatusAccessDenied
)

var statusNames = map[Status]string{
	StatusGood:         "GOOD",
	StatusUnsupported:  "UNSUPPORTED",
	StatusCancelled:    "CANCELLED",
	StatusDeviceBusy:   "DEVICE_BUSY",
	StatusInval:        "INVAL",
	StatusEOF:          "EOF",
	StatusJammed:       "JAMMED",
	StatusNoDocs:       "NO_DOCS",
	StatusCoverOpen:    "COVER_OPEN",
	StatusIOError:      "IO_ERROR",
	StatusNoMem:        "NO_MEM",
	StatusAccessDenied: "ACCESS_DENIED",
}

// String renders known values as their name and unknown values as
// Name(0xHEX), matching the reference implementation's debug format.
func (s Status) String() string { return enumString("SANE_Status", statusNames, s) }

// ValueType identifies the data type of an option.
type ValueType Word

const (
	ValueTypeBool ValueType = iota
	ValueTypeInt
	ValueTypeFixed
	ValueTypeString
	ValueTypeButton
	ValueTypeGroup
)

var valueTypeNames = map[ValueType]string{
	ValueTypeBool:   "BOOL",
	ValueTypeInt:    "INT",
	ValueTypeFixed:  "FIXED",
	ValueTypeString: "STRING",
	ValueTypeButton: "BUTTON",
	ValueTypeGroup:  "GROUP",
}

func (v ValueType) String() string { return enumString("SANE_Value_Type", valueTypeNames, v) }

// Unit identifies the physical unit of an option's value.
type Unit Word

const (
	UnitNone Unit = iota
	UnitPixel
	UnitBit
	UnitMM
	UnitDPI
	UnitPercent
	UnitMicrosecond
)

var unitNames = map[Unit]string{
	UnitNone:        "NONE",
	UnitPixel:       "PIXEL",
	UnitBit:         "BIT",
	UnitMM:          "MM",
	UnitDPI:         "DPI",
	UnitPercent:     "PERCENT",
	UnitMicrosecond: "MICROSECOND",
}

func (u Unit) String() string { return enumString("SANE_Unit", unitNames, u) }

// ConstraintType identifies which variant of Constraint an
// OptionDescriptor carries.
type ConstraintType Word

const (
	ConstraintTypeNone ConstraintType = iota
	ConstraintTypeRange
	ConstraintTypeWordList
	ConstraintTypeStringList
)

var constraintTypeNames = map[ConstraintType]string{
	ConstraintTypeNone:       "NONE",
	ConstraintTypeRange:      "RANGE",
	ConstraintTypeWordList:   "WORD_LIST",
	ConstraintTypeStringList: "STRING_LIST",
}

func (c ConstraintType) String() string {
	return enumString("SANE_Constraint_Type", constraintTypeNames, c)
}

// Action identifies the operation CONTROL_OPTION should perform.
type Action Word

const (
	ActionGetValue Action = iota
	ActionSetValue
	ActionSetAuto
)

var actionNames = map[Action]string{
	ActionGetValue: "GET_VALUE",
	ActionSetValue: "SET_VALUE",
	ActionSetAuto:  "SET_AUTO",
}

func (a Action) String() string { return enumString("SANE_Action", actionNames, a) }

// Frame identifies the color/gray encoding of scanned image data.
type Frame Word

const (
	FrameGray Frame = iota
	FrameRGB
	FrameRed
	FrameGreen
	FrameBlue
)

var frameNames = map[Frame]string{
	FrameGray:  "GRAY",
	FrameRGB:   "RGB",
	FrameRed:   "RED",
	FrameGreen: "GREEN",
	FrameBlue:  "BLUE",
}

func (f Frame) String() string { return enumString("SANE_Frame", frameNames, f) }

// ByteOrder advertises the byte order of image data transmitted on the
// secondary data port after START.
type ByteOrder Word

const (
	ByteOrderLittleEndian ByteOrder = 0x1234
	ByteOrderBigEndian    ByteOrder = 0x4321
)

var byteOrderNames = map[ByteOrder]string{
	ByteOrderLittleEndian: "LITTLE_ENDIAN",
	ByteOrderBigEndian:    "BIG_ENDIAN",
}

func (b ByteOrder) String() string { return enumString("SANE_Net_Byte_Order", byteOrderNames, b) }

// ProcedureNumber identifies which of the ten RPCs a request payload
// belongs to.
type ProcedureNumber Word

const (
	ProcedureInit ProcedureNumber = iota
	ProcedureGetDevices
	ProcedureOpen
	ProcedureClose
	ProcedureGetOptionDescriptors
	ProcedureControlOption
	ProcedureGetParameters
	ProcedureStart
	ProcedureCancel
	ProcedureAuthorize
	ProcedureExit
)

var procedureNumberNames = map[ProcedureNumber]string{
	ProcedureInit:                 "INIT",
	ProcedureGetDevices:           "GET_DEVICES",
	ProcedureOpen:                 "OPEN",
	ProcedureClose:                "CLOSE",
	ProcedureGetOptionDescriptors: "GET_OPTION_DESCRIPTORS",
	ProcedureControlOption:        "CONTROL_OPTION",
	ProcedureGetParameters:        "GET_PARAMETERS",
	ProcedureStart:                "START",
	ProcedureCancel:               "CANCEL",
	ProcedureAuthorize:            "AUTHORIZE",
	ProcedureExit:                 "EXIT",
}

func (p ProcedureNumber) String() string {
	return enumString("SANE_Net_Procedure_Number", procedureNumberNames, p)
}

// VersionCode is the SANE network protocol version this module
// implements (major 1, minor 1, build 3).
const VersionCode Word = 0x01010003

// enumString renders a value through a name table, falling back to the
// reference implementation's Name(0xHEX) form for unknown codes.
func enumString[T ~uint32](prefix string, names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return fmt.Sprintf("%s(%s)", prefix, name)
	}
	return fmt.Sprintf("%s(0x%08x)", prefix, uint32(v))
}
