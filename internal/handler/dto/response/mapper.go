package response

import (
	"stay-admin/internal/pkg/money"

	"github.com/jinzhu/copier"
)

// copyOption converts domain money into the float amounts the dashboard shows.
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Money{},
			DstType: copier.Float64,
			Fn: func(src any) (any, error) {
				return src.(money.Money).Float(), nil
			},
		},
		{
			SrcType: &money.Money{},
			DstType: new(float64),
			Fn: func(src any) (any, error) {
				m, _ := src.(*money.Money)
				return moneyFloat(m), nil
			},
		},
	},
}

func moneyFloat(m *money.Money) *float64 {
	if m == nil {
		return nil
	}
	f := m.Float()
	return &f
}

// copyFrom fills dst from src's exported fields and same-named getters.
// Converters only apply to fields; getters must return a convertible type.
func copyFrom(dst, src any) {
	// both sides are fixed types here, so a failure is a programming error
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		panic("response mapping: " + err.Error())
	}
}
