package exporters

import (
	"bytes"
	"testing"
	"time"

	"health-server/entities"
	"health-server/usecases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX(t *testing.T) {
	name := "Ada"
	kcal := 250.0
	report := &usecases.Report{
		User:    &entities.User{Email: "ada@x.com"},
		Profile: &entities.Profile{PatientID: "PID-0A1B2C3D", FullName: &name},
		Medicines: []entities.Medicine{
			{Name: "Aspirin", Dosage: "100mg", Taken: true},
		},
		BMIEntries: []entities.BMIEntry{
			{HeightCM: 170, WeightKG: 70, BMIValue: 24.221, DateRecorded: "2024-01-01"},
		},
		MealPlanEntries: []entities.MealPlanEntry{
			{MealType: "Lunch", FoodItem: "Soup", Calories: &kcal, MealDate: "2024-01-02"},
		},
		GeneratedAt: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	data, err := XLSX(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Profile", "Medical History", "Medicines", "Habits", "BMI", "Emergency Contacts", "Exercise", "Meals"}, f.GetSheetList())

	v, err := f.GetCellValue("Profile", "B3")
	require.NoError(t, err)
	assert.Equal(t, "PID-0A1B2C3D", v)

	v, err = f.GetCellValue("Medicines", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", v)
	v, err = f.GetCellValue("Medicines", "E2")
	require.NoError(t, err)
	assert.Equal(t, "Yes", v)

	v, err = f.GetCellValue("BMI", "D2")
	require.NoError(t, err)
	assert.Equal(t, "24.22", v)

	rows, err := f.GetRows("Habits")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "health_report_ada.xlsx", ReportFilename("ada@x.com"))
	assert.Equal(t, "health_report_a_b.xlsx", ReportFilename("a b@x.com"))
	assert.Equal(t, "health_report_user.xlsx", ReportFilename(""))
}
