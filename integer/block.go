package integer

// Type is a control block type.
type Type struct {
	Prefix byte
	Mask   byte
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

// Control block types.
var (
	Data         = Type{0b_1000_0000, 0b_0111_1111}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111}
	Data1        = Type{0b_0010_0000, 0b_0001_1111}
	Data2        = Type{0b_0001_0000, 0b_0000_1111}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111}

	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
	}
)
