// Package exporters renders a health report into downloadable documents.
package exporters

import (
	"bytes"
	"fmt"
	"strings"

	"health-server/entities"
	"health-server/services"
	"health-server/usecases"

	"github.com/xuri/excelize/v2"
)

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sheet struct {
	name    string
	headers []string
	widths  []float64
	rows    [][]interface{}
}

// ReportFilename builds the attachment name from the local part of the email.
func ReportFilename(email string) string {
	local := email
	if i := strings.Index(local, "@"); i >= 0 {
		local = local[:i]
	}
	local = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, local)
	if local == "" {
		local = "user"
	}
	return "health_report_" + local + ".xlsx"
}

// XLSX renders the report with a profile sheet followed by one sheet per collection.
func XLSX(r *usecases.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := append([]sheet{profileSheet(r)}, collectionSheets(r)...)
	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, s sheet, headerStyle int) error {
	header := make([]interface{}, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", s.name, err)
	}
	last, err := excelize.CoordinatesToCellName(len(s.headers), 1)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(s.name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("failed to set header style: %w", err)
	}
	for i, w := range s.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(s.name, col, col, w); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := row
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, s.name, err)
		}
	}
	return f.SetPanes(s.name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *float64) interface{} {
	if p == nil {
		return ""
	}
	return *p
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func profileSheet(r *usecases.Report) sheet {
	s := sheet{name: "Profile", headers: []string{"Field", "Value"}, widths: []float64{20, 40}}
	if r.User != nil {
		s.rows = append(s.rows, []interface{}{"Account Email", r.User.Email})
	}
	if p := r.Profile; p != nil {
		s.rows = append(s.rows,
			[]interface{}{"Patient ID", p.PatientID},
			[]interface{}{"Full Name", str(p.FullName)},
			[]interface{}{"Date of Birth", str(p.DateOfBirth)},
			[]interface{}{"Age", str(p.Age)},
			[]interface{}{"Gender", str(p.Gender)},
			[]interface{}{"Blood Type", str(p.BloodType)},
			[]interface{}{"Height", str(p.Height)},
			[]interface{}{"Weight", str(p.Weight)},
			[]interface{}{"Contact Number", str(p.ContactNumber)},
			[]interface{}{"Email", str(p.Email)},
			[]interface{}{"Address", str(p.Address)},
			[]interface{}{"Disability", str(p.Disability)},
		)
	}
	s.rows = append(s.rows, []interface{}{"Generated At", r.GeneratedAt.Format(entities.TimestampLayout)})
	return s
}

func collectionSheets(r *usecases.Report) []sheet {
	history := sheet{name: "Medical History", headers: []string{"Condition", "Diagnosis Date", "Notes", "Document"}, widths: []float64{25, 15, 40, 30}}
	for _, m := range r.MedicalHistory {
		history.rows = append(history.rows, []interface{}{m.Condition, str(m.DiagnosisDate), m.Notes, str(m.DocumentFilename)})
	}

	medicines := sheet{name: "Medicines", headers: []string{"Name", "Dosage", "Frequency", "Start Date", "Taken"}, widths: []float64{25, 15, 15, 15, 10}}
	for _, m := range r.Medicines {
		medicines.rows = append(medicines.rows, []interface{}{m.Name, m.Dosage, m.Frequency, str(m.StartDate), yesNo(m.Taken)})
	}

	habits := sheet{name: "Habits", headers: []string{"Habit", "Frequency", "Notes", "Done"}, widths: []float64{25, 15, 40, 10}}
	for _, h := range r.Habits {
		habits.rows = append(habits.rows, []interface{}{h.HabitName, h.Frequency, h.Notes, yesNo(h.Done)})
	}

	bmi := sheet{name: "BMI", headers: []string{"Date", "Height (cm)", "Weight (kg)", "BMI", "Category"}, widths: []float64{15, 12, 12, 10, 15}}
	for _, b := range r.BMIEntries {
		bmi.rows = append(bmi.rows, []interface{}{b.DateRecorded, b.HeightCM, b.WeightKG, fmt.Sprintf("%.2f", b.BMIValue), services.BMICategory(b.BMIValue)})
	}

	contacts := sheet{name: "Emergency Contacts", headers: []string{"Name", "Relationship", "Phone Number"}, widths: []float64{25, 15, 20}}
	for _, c := range r.EmergencyContacts {
		contacts.rows = append(contacts.rows, []interface{}{c.Name, c.Relationship, c.PhoneNumber})
	}

	exercise := sheet{name: "Exercise", headers: []string{"Date", "Activity", "Duration (min)", "Calories Burned"}, widths: []float64{15, 25, 15, 15}}
	for _, e := range r.ExerciseLogs {
		exercise.rows = append(exercise.rows, []interface{}{e.LogDate, e.ActivityName, e.DurationMinutes, num(e.CaloriesBurned)})
	}

	meals := sheet{name: "Meals", headers: []string{"Date", "Meal Type", "Food Item", "Calories"}, widths: []float64{15, 15, 30, 10}}
	for _, m := range r.MealPlanEntries {
		meals.rows = append(meals.rows, []interface{}{m.MealDate, m.MealType, m.FoodItem, num(m.Calories)})
	}

	return []sheet{history, medicines, habits, bmi, contacts, exercise, meals}
}
