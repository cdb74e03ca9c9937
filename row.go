package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldCount is the number of whitespace-separated tokens in a data line.
const FieldCount = 13

// Row represents one ledger entry for a fiscal year within the reporting period.
type Row struct {
	FiscalYear  int       `json:"fiscal_year"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`

	BeginningTaxBalance           decimal.Decimal `json:"beginning_tax_balance"`
	TaxAdjustment                 decimal.Decimal `json:"tax_adjustment"`
	BaseTaxCollected              decimal.Decimal `json:"base_tax_collected"`
	Reversals                     decimal.Decimal `json:"reversals"`
	NetBaseTaxCollected           decimal.Decimal `json:"net_base_tax_collected"`
	PercentCollected              decimal.Decimal `json:"percent_collected"` // percent sign already stripped
	EndingTaxBalance              decimal.Decimal `json:"ending_tax_balance"`
	PropertyAndInsuranceCollected decimal.Decimal `json:"property_and_insurance_collected"`
	PropertyAndInsuranceReversals decimal.Decimal `json:"property_and_insurance_reversals"`
	LocalRealPropertyCollected    decimal.Decimal `json:"local_real_property_collected"`
	OtherPenaltyCollected         decimal.Decimal `json:"other_penalty_collected"`
	TotalDistributed              decimal.Decimal `json:"total_distributed"`
}

// Columns lists the output field names in export order.
var Columns = []string{
	"fiscal_year",
	"period_start",
	"period_end",
	"beginning_tax_balance",
	"tax_adjustment",
	"base_tax_collected",
	"reversals",
	"net_base_tax_collected",
	"percent_collected",
	"ending_tax_balance",
	"property_and_insurance_collected",
	"property_and_insurance_reversals",
	"local_real_property_collected",
	"other_penalty_collected",
	"total_distributed",
}

// amounts returns pointers to the decimal fields in data-line order,
// i.e. the order of tokens 1 through 12.
func (r *Row) amounts() []*decimal.Decimal {
	return []*decimal.Decimal{
		&r.BeginningTaxBalance,
		&r.TaxAdjustment,
		&r.BaseTaxCollected,
		&r.Reversals,
		&r.NetBaseTaxCollected,
		&r.PercentCollected,
		&r.EndingTaxBalance,
		&r.PropertyAndInsuranceCollected,
		&r.PropertyAndInsuranceReversals,
		&r.LocalRealPropertyCollected,
		&r.OtherPenaltyCollected,
		&r.TotalDistributed,
	}
}

// Amounts returns the decimal fields in data-line order.
func (r *Row) Amounts() []decimal.Decimal {
	ptrs := r.amounts()
	out := make([]decimal.Decimal, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}
