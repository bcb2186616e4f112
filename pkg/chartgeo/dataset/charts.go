package dataset

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/chartgeo-go/pkg/chartgeo/models"
	"github.com/xuri/excelize/v2"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":     "Line",
	"line3DChart":   "3DLine",
	"barChart":      "Bar",
	"bar3DChart":    "3DBar",
	"areaChart":     "Area",
	"area3DChart":   "3DArea",
	"pieChart":      "Pie",
	"pie3DChart":    "3DPie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
	"radarChart":    "Radar",
	"stockChart":    "Stock",
}

// SeriesRef holds the cell references of one Excel chart series.
type SeriesRef struct {
	// Name is the cached series name.
	Name string `json:"name,omitempty"`
	// NameRange is the reference of the series name cell.
	NameRange string `json:"name_range,omitempty"`
	// CategoryRange is the reference of the category (label) cells.
	CategoryRange string `json:"category_range,omitempty"`
	// ValueRange is the reference of the value cells.
	ValueRange string `json:"value_range,omitempty"`
}

// ChartSource describes an Excel chart whose data can be re-rendered.
type ChartSource struct {
	// Sheet is the sheet owning the chart drawing.
	Sheet string `json:"sheet"`
	// Name is the drawing object name.
	Name string `json:"name"`
	// ChartType is the chart type name (see ChartTypeMap).
	ChartType string `json:"chart_type"`
	// Title is the chart title.
	Title string `json:"title,omitempty"`
	// AxisMin is the value-axis minimum, when fixed in the chart.
	AxisMin *float64 `json:"axis_min,omitempty"`
	// AxisMax is the value-axis maximum, when fixed in the chart.
	AxisMax *float64 `json:"axis_max,omitempty"`
	// Width is the anchor width in pixels (0 if unknown).
	Width int `json:"width,omitempty"`
	// Height is the anchor height in pixels (0 if unknown).
	Height int `json:"height,omitempty"`
	// Series lists the chart series in document order.
	Series []SeriesRef `json:"series"`
}

// chartInfo holds chart metadata from drawing.xml.
type chartInfo struct {
	name      string
	chartPath string
	width     int
	height    int
}

// ReadChartSources lists the charts of an xlsx file, sorted by sheet and name.
func ReadChartSources(xlsxPath string) ([]ChartSource, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	sheetCharts := getSheetChartMap(&r.Reader)

	var result []ChartSource
	for sheetName, infos := range sheetCharts {
		for _, ci := range infos {
			data, err := readZipFile(&r.Reader, ci.chartPath)
			if err != nil || data == nil {
				continue
			}
			src := parseChartXML(data)
			src.Sheet = sheetName
			src.Name = ci.name
			src.Width = ci.width
			src.Height = ci.height
			result = append(result, src)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Sheet != result[j].Sheet {
			return result[i].Sheet < result[j].Sheet
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// LoadChartSeries reads the cells behind series idx of src into a Series.
// Category cells become labels; missing categories get placeholders.
func LoadChartSeries(f *excelize.File, src ChartSource, idx int) (models.Series, error) {
	if idx < 0 || idx >= len(src.Series) {
		return models.EmptySeries, nil
	}
	ref := src.Series[idx]
	if ref.ValueRange == "" {
		return models.EmptySeries, nil
	}

	valRange, err := ParseRange(ref.ValueRange)
	if err != nil {
		return nil, err
	}
	if valRange.Sheet == "" {
		valRange.Sheet = src.Sheet
	}
	values, err := ReadRange(f, valRange)
	if err != nil {
		return nil, err
	}

	var labels []string
	if ref.CategoryRange != "" {
		catRange, err := ParseRange(ref.CategoryRange)
		if err != nil {
			return nil, err
		}
		if catRange.Sheet == "" {
			catRange.Sheet = src.Sheet
		}
		if labels, err = ReadRange(f, catRange); err != nil {
			return nil, err
		}
	}

	records := make([]map[string]interface{}, len(values))
	for i, v := range values {
		rec := map[string]interface{}{"value": v}
		if i < len(labels) {
			rec["label"] = labels[i]
		}
		records[i] = rec
	}
	return Normalize(records, DefaultAccessors()), nil
}

// getSheetChartMap returns a mapping of sheet names to their chart info.
func getSheetChartMap(r *zip.Reader) map[string][]chartInfo {
	result := make(map[string][]chartInfo)

	workbookXML, err := readZipFile(r, "xl/workbook.xml")
	if err != nil || workbookXML == nil {
		return result
	}
	sheetsInfo := parseWorkbookSheets(workbookXML)

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil || wbRelsXML == nil {
		return result
	}
	sheetFiles := parseWorkbookRels(wbRelsXML, sheetsInfo)

	for sheetName, sheetPath := range sheetFiles {
		relsPath := strings.Replace(sheetPath, "worksheets/", "worksheets/_rels/", 1)
		relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)

		sheetRelsXML, err := readZipFile(r, relsPath)
		if err != nil || sheetRelsXML == nil {
			continue
		}
		drawingPath := findRelationship(sheetRelsXML, "drawing")
		if drawingPath == "" {
			continue
		}

		infos := getChartInfosFromDrawing(r, resolveRelativePath(drawingPath, "xl/drawings"))
		if len(infos) > 0 {
			result[sheetName] = infos
		}
	}
	return result
}

// getChartInfosFromDrawing extracts chart frames from a drawing XML file.
func getChartInfosFromDrawing(r *zip.Reader, drawingPath string) []chartInfo {
	drawingXML, err := readZipFile(r, drawingPath)
	if err != nil || drawingXML == nil {
		return nil
	}
	frames := parseDrawingForCharts(drawingXML)
	if len(frames) == 0 {
		return nil
	}

	relsPath := strings.Replace(drawingPath, "drawings/", "drawings/_rels/", 1)
	relsPath = strings.Replace(relsPath, ".xml", ".xml.rels", 1)
	relsXML, err := readZipFile(r, relsPath)
	if err != nil || relsXML == nil {
		return nil
	}
	targets := parseRelationships(relsXML, "chart")

	var result []chartInfo
	for rID, frame := range frames {
		if target, ok := targets[rID]; ok {
			frame.chartPath = resolveRelativePath(target, "xl/charts")
			result = append(result, frame)
		}
	}
	return result
}

// parseDrawingForCharts maps chart relationship ids to their frames.
func parseDrawingForCharts(data []byte) map[string]chartInfo {
	result := make(map[string]chartInfo)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	var current chartInfo
	var rID string
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				current, rID = chartInfo{}, ""
			case "cNvPr":
				current.name = attrValue(t, "name")
			case "ext":
				if cx, err := strconv.ParseInt(attrValue(t, "cx"), 10, 64); err == nil {
					current.width = EMUToPixels(cx)
				}
				if cy, err := strconv.ParseInt(attrValue(t, "cy"), 10, 64); err == nil {
					current.height = EMUToPixels(cy)
				}
			case "chart":
				rID = attrValue(t, "id")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "twoCellAnchor", "oneCellAnchor", "absoluteAnchor":
				if rID != "" {
					result[rID] = current
				}
			}
		}
	}
	return result
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) ChartSource {
	var src ChartSource
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case se.Name.Local == "title" && src.Title == "" && src.ChartType == "":
			src.Title = parseChartTitle(decoder)
		case se.Name.Local == "valAx":
			src.AxisMin, src.AxisMax = parseValueAxis(decoder)
		default:
			if ct, ok := ChartTypeMap[se.Name.Local]; ok && src.ChartType == "" {
				src.ChartType = ct
				src.Series = parseChartSeries(decoder)
			}
		}
	}

	if src.ChartType == "" {
		src.ChartType = "unknown"
	}
	return src
}

// parseChartTitle returns the concatenated text runs of a title element.
func parseChartTitle(decoder *xml.Decoder) string {
	var parts []string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "t" {
				if txt, err := readElementText(decoder); err == nil {
					parts = append(parts, txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

// parseChartSeries parses the ser elements of one chart type element.
func parseChartSeries(decoder *xml.Decoder) []SeriesRef {
	var series []SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return series
}

// parseSingleSeries parses a single ser element.
func parseSingleSeries(decoder *xml.Decoder) SeriesRef {
	var s SeriesRef
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx":
				s.Name, s.NameRange = parseFormulaAndValue(decoder)
				depth--
			case "cat", "xVal":
				_, s.CategoryRange = parseFormulaAndValue(decoder)
				depth--
			case "val", "yVal":
				_, s.ValueRange = parseFormulaAndValue(decoder)
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return s
}

// parseFormulaAndValue returns the first cached value and formula under the
// current element.
func parseFormulaAndValue(decoder *xml.Decoder) (value, formula string) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "f":
				if txt, err := readElementText(decoder); err == nil && formula == "" {
					formula = strings.TrimSpace(txt)
				}
				depth--
			case "v":
				if txt, err := readElementText(decoder); err == nil && value == "" {
					value = strings.TrimSpace(txt)
				}
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}
	return
}

// parseValueAxis returns the fixed scaling bounds of a valAx element.
func parseValueAxis(decoder *xml.Decoder) (min, max *float64) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "min":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					min = models.Float(v)
				}
			case "max":
				if v, err := strconv.ParseFloat(attrValue(t, "val"), 64); err == nil {
					max = models.Float(v)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return
}

func attrValue(se xml.StartElement, local string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// parseWorkbookSheets maps relationship ids to sheet names.
func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attrValue(se, "name"), attrValue(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}
	return result
}

// parseWorkbookRels maps sheet names to worksheet part paths.
func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string)
	for rID, target := range parseRelationships(data, "worksheet") {
		if sheetName, ok := sheetsInfo[rID]; ok {
			result[sheetName] = resolveRelativePath(target, "xl")
		}
	}
	return result
}

// parseRelationships maps relationship ids to targets for relationships
// whose type ends in kind.
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.HasSuffix(strings.ToLower(attrValue(se, "Type")), "/"+kind) {
				result[attrValue(se, "Id")] = attrValue(se, "Target")
			}
		}
	}
	return result
}

// findRelationship returns the first target whose type ends in kind.
func findRelationship(data []byte, kind string) string {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			if strings.HasSuffix(strings.ToLower(attrValue(se, "Type")), "/"+kind) {
				return attrValue(se, "Target")
			}
		}
	}
	return ""
}
