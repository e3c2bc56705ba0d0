package accommodation

import "errors"

var ErrInvalidType = errors.New("invalid accommodation type")

type Type string

const (
	TypeVilla         Type = "Villa"
	TypeSuite         Type = "Suite"
	TypeCottage       Type = "Cottage"
	TypeBungalow      Type = "Bungalow"
	TypeGlamping      Type = "Glamping"
	TypeStandard      Type = "Standard"
	TypeDeluxe        Type = "Deluxe"
	TypeCoupleCottage Type = "Couple Cottage"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeVilla, TypeSuite, TypeCottage, TypeBungalow, TypeGlamping,
		TypeStandard, TypeDeluxe, TypeCoupleCottage:
		return true
	default:
		return false
	}
}

// IsVilla selects the flat-rate pricing branch; every other type is priced per guest.
func (t Type) IsVilla() bool {
	return t == TypeVilla
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
