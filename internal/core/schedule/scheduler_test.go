package schedule

import (
	"testing"
	"time"

	"github.com/SscSPs/statement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return domain.Date(y, m, d)
}

func TestPaymentDate_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		purchase   time.Time
		closingDay int
		want       time.Time
	}{
		{"after early closing day rolls to next statement", date(2024, time.December, 10), 5, date(2025, time.January, 15)},
		{"before closing day stays on this statement", date(2024, time.December, 3), 5, date(2024, time.December, 15)},
		{"late purchase crosses the year", date(2024, time.December, 29), 28, date(2025, time.February, 7)},
		{"mid month purchase", date(2024, time.December, 15), 28, date(2025, time.January, 7)},
		{"first of month purchase", date(2024, time.December, 1), 28, date(2025, time.January, 7)},
		{"january purchase before closing", date(2024, time.January, 15), 28, date(2024, time.February, 7)},
		// Close is Feb 28 in a leap year, ten days later is Mar 9.
		{"january purchase after closing, leap year", date(2024, time.January, 30), 28, date(2024, time.March, 9)},
		{"january purchase after closing, common year", date(2025, time.January, 30), 28, date(2025, time.March, 10)},
		{"purchase on the closing day", date(2025, time.March, 5), 5, date(2025, time.March, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaymentDate(tt.purchase, tt.closingDay)
			assert.Equal(t, tt.want, got, "got %s", got.Format("2006-01-02"))
		})
	}
}

func TestStatementMonth(t *testing.T) {
	for closingDay := 1; closingDay <= 31; closingDay++ {
		for day := 1; day <= 31; day++ {
			purchase := date(2025, time.January, day)
			got := StatementMonth(purchase, closingDay)
			if day <= closingDay {
				assert.Equal(t, domain.YearMonth{Year: 2025, Month: time.January}, got, "day %d closing %d", day, closingDay)
			} else {
				assert.Equal(t, domain.YearMonth{Year: 2025, Month: time.February}, got, "day %d closing %d", day, closingDay)
			}
		}
	}

	assert.Equal(t, domain.YearMonth{Year: 2026, Month: time.January}, StatementMonth(date(2025, time.December, 20), 10))
}

func TestTechnicalCloseDate_Clamping(t *testing.T) {
	tests := []struct {
		name       string
		purchase   time.Time
		closingDay int
		want       time.Time
	}{
		{"day 30 in common february", date(2025, time.February, 2), 30, date(2025, time.February, 28)},
		{"day 31 in leap february", date(2024, time.February, 2), 31, date(2024, time.February, 29)},
		{"day 29 in common february", date(2025, time.January, 30), 29, date(2025, time.February, 28)},
		{"day 31 in april", date(2025, time.April, 10), 31, date(2025, time.April, 30)},
		{"day 31 in march exists", date(2025, time.March, 10), 31, date(2025, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TechnicalCloseDate(tt.purchase, tt.closingDay))
		})
	}
}

func TestPaymentDate_GraceIsAlwaysTenDays(t *testing.T) {
	start := date(2023, time.January, 1)
	for offset := 0; offset < 3*366; offset++ {
		purchase := start.AddDate(0, 0, offset)
		for closingDay := 1; closingDay <= 31; closingDay++ {
			closeDate := TechnicalCloseDate(purchase, closingDay)
			pay := PaymentDate(purchase, closingDay)

			require.Equal(t, GracePeriodDays*24*time.Hour, pay.Sub(closeDate))
			require.False(t, closeDate.Before(purchase), "statement closes before purchase %s", purchase.Format("2006-01-02"))
		}
	}
}

func TestPaymentDate_IgnoresClock(t *testing.T) {
	purchase := time.Date(2024, time.December, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.January, 15), PaymentDate(purchase, 5))
}

func TestExpandInstallments_ThreeEqualParts(t *testing.T) {
	got := ExpandInstallments(date(2024, time.December, 10), 5, decimal.NewFromInt(300), 3)

	require.Len(t, got, 3)
	assert.Equal(t, []Installment{
		{PaymentDate: date(2025, time.January, 15), Amount: decimal.RequireFromString("100.00"), Index: 1},
		{PaymentDate: date(2025, time.February, 15), Amount: decimal.RequireFromString("100.00"), Index: 2},
		{PaymentDate: date(2025, time.March, 15), Amount: decimal.RequireFromString("100.00"), Index: 3},
	}, normalize(got))
}

func TestExpandInstallments_SingleInstallment(t *testing.T) {
	got := ExpandInstallments(date(2024, time.December, 3), 5, decimal.RequireFromString("49.99"), 1)

	require.Len(t, got, 1)
	assert.Equal(t, date(2024, time.December, 15), got[0].PaymentDate)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, 1, got[0].Index)
}

func TestExpandInstallments_MonthEndClampFromBase(t *testing.T) {
	// Closing day 21 in January gives a base due date of Jan 31.
	got := ExpandInstallments(date(2025, time.January, 2), 21, decimal.NewFromInt(400), 4)

	require.Len(t, got, 4)
	assert.Equal(t, date(2025, time.January, 31), got[0].PaymentDate)
	assert.Equal(t, date(2025, time.February, 28), got[1].PaymentDate)
	assert.Equal(t, date(2025, time.March, 31), got[2].PaymentDate)
	assert.Equal(t, date(2025, time.April, 30), got[3].PaymentDate)
}

func TestExpandInstallments_Properties(t *testing.T) {
	totals := []string{"0.12", "1.00", "99.99", "100.00", "1234.57", "10000.01"}
	purchase := date(2024, time.November, 27)

	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for count := 1; count <= 12; count++ {
			if total.LessThan(MinimumTotal(count)) {
				continue
			}
			got := ExpandInstallments(purchase, 25, total, count)
			require.Len(t, got, count)

			sum := decimal.Zero
			seen := map[int]bool{}
			for i, inst := range got {
				sum = sum.Add(inst.Amount)
				assert.True(t, inst.Amount.IsPositive(), "total %s count %d", raw, count)
				assert.False(t, seen[inst.Index])
				seen[inst.Index] = true
				assert.Equal(t, i+1, inst.Index)
				if i > 0 {
					assert.Equal(t, AddMonths(got[i-1].PaymentDate, 1).Month(), inst.PaymentDate.Month())
				}
			}
			assert.True(t, sum.Equal(total), "sum %s != total %s for %d installments", sum, total, count)
		}
	}
}

func TestExpandInstallments_IsDeterministic(t *testing.T) {
	purchase := date(2025, time.August, 31)
	a := ExpandInstallments(purchase, 30, decimal.RequireFromString("250.10"), 6)
	b := ExpandInstallments(purchase, 30, decimal.RequireFromString("250.10"), 6)
	assert.Equal(t, a, b)
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		total string
		count int
		want  []string
	}{
		{"300", 3, []string{"100.00", "100.00", "100.00"}},
		{"100", 3, []string{"33.34", "33.33", "33.33"}},
		{"0.05", 3, []string{"0.02", "0.02", "0.01"}},
		{"10.01", 2, []string{"5.01", "5.00"}},
		{"7", 1, []string{"7.00"}},
		{"999999999999.99", 2, []string{"500000000000.00", "499999999999.99"}},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			got := SplitAmount(decimal.RequireFromString(tt.total), tt.count)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.True(t, got[i].Equal(decimal.RequireFromString(w)), "part %d: got %s want %s", i, got[i], w)
			}
		})
	}

	assert.Nil(t, SplitAmount(decimal.NewFromInt(10), 0))
}

// normalize rewrites amounts with a fixed exponent so struct equality ignores representation.
func normalize(in []Installment) []Installment {
	out := make([]Installment, len(in))
	for i, inst := range in {
		inst.Amount = decimal.RequireFromString(inst.Amount.StringFixed(2))
		out[i] = inst
	}
	return out
}

func TestPlanPurchase(t *testing.T) {
	plan := PlanPurchase(date(2024, time.December, 29), 28, decimal.NewFromInt(90), 2)

	assert.Equal(t, domain.YearMonth{Year: 2025, Month: time.January}, plan.StatementMonth)
	assert.Equal(t, date(2025, time.January, 28), plan.TechnicalCloseDate)
	require.Len(t, plan.Installments, 2)
	assert.Equal(t, date(2025, time.February, 7), plan.Installments[0].PaymentDate)
	assert.Equal(t, date(2025, time.March, 7), plan.Installments[1].PaymentDate)
}
