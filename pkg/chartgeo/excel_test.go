package chartgeo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/dataset"
	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/xuri/excelize/v2"
)

func TestFamilyForChartType(t *testing.T) {
	tests := []struct {
		chartType string
		expected  Family
		ok        bool
	}{
		{"Doughnut", FamilyDonut, true},
		{"Pie", FamilyDonut, true},
		{"Line", FamilyLine, true},
		{"3DArea", FamilyArea, true},
		{"Bar", FamilyBar, true},
		{"Stock", FamilyRange, true},
		{"Bubble", "", false},
	}

	for _, tt := range tests {
		got, ok := FamilyForChartType(tt.chartType)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("FamilyForChartType(%q) = %q, %v, expected %q, %v",
				tt.chartType, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestConfigFromChart(t *testing.T) {
	src := dataset.ChartSource{
		Sheet:     "Grades",
		Name:      "Chart 1",
		ChartType: "Doughnut",
		Title:     "Grade split",
		Width:     480,
		Height:    288,
	}
	cfg, err := ConfigFromChart(src)
	if err != nil {
		t.Fatalf("ConfigFromChart failed: %v", err)
	}
	if cfg.Family != FamilyDonut || cfg.ID != "Grades/Chart 1" || cfg.Title != "Grade split" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Size != 288 {
		t.Errorf("Size = %v, expected 288", cfg.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	line, err := ConfigFromChart(dataset.ChartSource{ChartType: "Line", AxisMin: models.Float(0), AxisMax: models.Float(4)})
	if err != nil {
		t.Fatalf("ConfigFromChart failed: %v", err)
	}
	if line.MinValue == nil || *line.MinValue != 0 || line.MaxValue == nil || *line.MaxValue != 4 {
		t.Errorf("Expected the value axis to fix the domain, got %v %v", line.MinValue, line.MaxValue)
	}

	if _, err := ConfigFromChart(dataset.ChartSource{ChartType: "Bubble"}); !errors.Is(err, ErrUnsupportedChart) {
		t.Errorf("Expected ErrUnsupportedChart, got %v", err)
	}
}

func TestRenderWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Grade")
	f.SetCellValue(sheetName, "B1", "Students")
	f.SetCellValue(sheetName, "A2", "Pass")
	f.SetCellValue(sheetName, "B2", 30)
	f.SetCellValue(sheetName, "A3", "Fail")
	f.SetCellValue(sheetName, "B3", 70)

	err := f.AddChart(sheetName, "D2", &excelize.Chart{
		Type: excelize.Doughnut,
		Series: []excelize.ChartSeries{{
			Name:       "Sheet1!$B$1",
			Categories: "Sheet1!$A$2:$A$3",
			Values:     "Sheet1!$B$2:$B$3",
		}},
	})
	if err != nil {
		t.Fatalf("Failed to add chart: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "grades.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	charts, err := RenderWorkbook(tmpFile)
	if err != nil {
		t.Fatalf("RenderWorkbook failed: %v", err)
	}
	if len(charts) != 1 {
		t.Fatalf("Expected 1 chart, got %d", len(charts))
	}
	wc := charts[0]
	if wc.Err != nil {
		t.Fatalf("Chart failed: %v", wc.Err)
	}
	if wc.Config.Family != FamilyDonut {
		t.Errorf("Family = %q, expected donut", wc.Config.Family)
	}
	if len(wc.Chart.Segments) != 2 || wc.Chart.Segments[0].Label != "Pass" {
		t.Fatalf("Unexpected segments: %+v", wc.Chart.Segments)
	}
	if !approx(wc.Chart.Segments[0].EndAngle, 18) {
		t.Errorf("Pass segment ends at %v, expected 18", wc.Chart.Segments[0].EndAngle)
	}
	if wc.Chart.Label != "100" {
		t.Errorf("Label = %q, expected %q", wc.Chart.Label, "100")
	}
}

func TestRenderWorkbookMissing(t *testing.T) {
	if _, err := RenderWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")); err == nil {
		t.Error("Expected an error for a missing workbook")
	}
}
