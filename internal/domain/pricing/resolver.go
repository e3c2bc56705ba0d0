package pricing

import (
	"time"

	"stay-admin/internal/domain/accommodation"
	"stay-admin/internal/domain/blockeddate"
	"stay-admin/internal/pkg/money"
	"stay-admin/internal/pkg/patch"
)

// Rate is the nightly package pricing for one day. For villas Adult is the
// flat nightly villa rate.
type Rate struct {
	Adult      money.Money
	Child      money.Money
	Overridden bool
}

func Base(acc *accommodation.Accommodation) Rate {
	return Rate{Adult: acc.AdultPrice(), Child: acc.ChildPrice()}
}

// Resolve applies the latest price override for (acc, date). A nil override
// sub-field keeps the base price for that sub-field.
func Resolve(acc *accommodation.Accommodation, date time.Time, records []*blockeddate.Record) Rate {
	base := Base(acc)
	rec := blockeddate.LatestPriced(records, acc.ID(), date)
	if rec == nil {
		return base
	}
	return Rate{
		Adult:      patch.Coalesce(rec.AdultPrice(), base.Adult),
		Child:      patch.Coalesce(rec.ChildPrice(), base.Child),
		Overridden: true,
	}
}

// Table answers per-night rates for one accommodation from a single
// blocked-dates read.
type Table struct {
	acc     *accommodation.Accommodation
	records []*blockeddate.Record
}

func NewTable(acc *accommodation.Accommodation, records []*blockeddate.Record) Table {
	return Table{acc: acc, records: blockeddate.ForAccommodation(records, acc.ID())}
}

// BaseTable prices every night at the accommodation's base rates.
func BaseTable(acc *accommodation.Accommodation) Table {
	return Table{acc: acc}
}

func (t Table) At(date time.Time) Rate {
	return Resolve(t.acc, date, t.records)
}
