package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
)

func sampleRecords() []expense.Record {
	return []expense.Record{
		{
			Date: "2024-03-14", PaidBy: "Credit Card", Description: "Tim Hortons",
			GLAccount: "Food", Amount: 5.75, HST: 0.75, Net: 5.00,
		},
		{
			Date: "2024-03-15", PaidBy: "Credit Card", Description: `Esso "Main St"`,
			GLAccount: "Transportation", Amount: 60.00, HST: 7.80, Net: 52.20,
			NeedsReview: true,
		},
	}
}

func TestCSVWithoutMileage(t *testing.T) {
	got := CSV(sampleRecords(), nil)

	want := strings.Join([]string{
		"Date,Paid By,Description,GL Account,Amount,HST,Net,Needs Review",
		`2024-03-14,Credit Card,"Tim Hortons",Food,5.75,0.75,5.00,No`,
		`2024-03-15,Credit Card,"Esso ""Main St""",Transportation,60.00,7.80,52.20,Yes`,
		"",
		"Summary",
		"Total Expenses,,$65.75",
		"",
		"By Category",
		"Food,,$5.75",
		"Transportation,,$60.00",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCSVWithMileage(t *testing.T) {
	mileage := expense.NewMileage(1000, 250)
	got := CSV(sampleRecords(), &mileage)

	want := strings.Join([]string{
		"Date,Paid By,Description,GL Account,Amount,HST,Net,Needs Review",
		`2024-03-14,Credit Card,"Tim Hortons",Food,5.75,0.75,5.00,No`,
		`2024-03-15,Credit Card,"Esso ""Main St""",Transportation,60.00,7.80,52.20,Yes`,
		"",
		"Summary",
		"Total Expenses,,$65.75",
		"",
		"By Category",
		"Food,,$5.75",
		"Transportation,,$60.00",
		"",
		"Mileage Information",
		"Total Kilometers,,1000",
		"Work Kilometers,,250",
		"Work Percentage,,25.00%",
		"Total Transportation Expenses,,$60",
		"Work Transportation Expenses,,$15.00",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCSVNoRecordsStillRendersScaffolding(t *testing.T) {
	got := CSV(nil, nil)

	assert.True(t, strings.HasPrefix(got, "Date,Paid By,Description,GL Account,Amount,HST,Net,Needs Review\n"))
	assert.Contains(t, got, "Total Expenses,,$0.00")
	assert.Contains(t, got, "By Category")
}

func TestCSVCategoryOrderFollowsFirstAppearance(t *testing.T) {
	records := []expense.Record{
		{Date: "2024-01-01", Description: "b", GLAccount: "Office", Amount: 1},
		{Date: "2024-01-02", Description: "a", GLAccount: "Food", Amount: 2},
		{Date: "2024-01-03", Description: "c", GLAccount: "Office", Amount: 3},
	}
	got := CSV(records, nil)

	officeIdx := strings.Index(got, "Office,,")
	foodIdx := strings.Index(got, "Food,,")
	assert.Greater(t, foodIdx, officeIdx)
	assert.Contains(t, got, "Office,,$4.00")
}
