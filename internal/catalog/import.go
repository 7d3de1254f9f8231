package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportResult describes a custom catalog loaded from a file.
type ImportResult struct {
	Definition Definition
	Processed  int
	Skipped    []SkippedRow
}

// SkippedRow is a data row that could not become an item.
type SkippedRow struct {
	Row    int // 1-based, header included
	Reason string
}

// importColumns maps header names to column indices; -1 when absent.
type importColumns struct {
	id, name, answer, category int
}

// LoadFile reads a custom quiz catalog from the first sheet of an .xlsx file
// or from a .csv file. The header row names the columns id, name, answer and
// category in any order. Only name and answer are required; id defaults to
// name.
func LoadFile(path string) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readExcelRows(path)
	case ".csv":
		rows, err = readCSVRows(path)
	default:
		return nil, fmt.Errorf("unsupported catalog file type %q", ext)
	}
	if err != nil {
		return nil, err
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res, err := parseRows(rows, title)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return res, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRows(rows [][]string, title string) (*ImportResult, error) {
	header := -1
	for i, row := range rows {
		if !blankRow(row) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil, ErrEmptyCatalog
	}

	cols, err := parseHeader(rows[header])
	if err != nil {
		return nil, err
	}

	res := &ImportResult{}
	seen := make(map[string]bool)
	var items []Item
	for i := header + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		res.Processed++
		rowNum := i + 1

		item := Item{
			ID:          cell(row, cols.id),
			DisplayName: cell(row, cols.name),
			Answer:      cell(row, cols.answer),
			Category:    cell(row, cols.category),
		}
		if item.ID == "" {
			item.ID = item.DisplayName
		}
		switch {
		case item.DisplayName == "":
			res.Skipped = append(res.Skipped, SkippedRow{Row: rowNum, Reason: "missing name"})
			continue
		case item.Answer == "":
			res.Skipped = append(res.Skipped, SkippedRow{Row: rowNum, Reason: "missing answer"})
			continue
		case seen[item.ID]:
			res.Skipped = append(res.Skipped, SkippedRow{Row: rowNum, Reason: fmt.Sprintf("duplicate id %q", item.ID)})
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}

	res.Definition = Definition{
		Type:           Custom,
		Title:          title,
		Subtitle:       "Imported catalog",
		PromptTemplate: "What goes with %s?",
		CategoryLabel:  "Category",
		Items:          items,
	}
	return res, nil
}

func parseHeader(row []string) (importColumns, error) {
	cols := importColumns{id: -1, name: -1, answer: -1, category: -1}
	for i, h := range row {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			cols.id = i
		case "name":
			cols.name = i
		case "answer":
			cols.answer = i
		case "category":
			cols.category = i
		}
	}
	if cols.name < 0 || cols.answer < 0 {
		return cols, fmt.Errorf("header must contain name and answer columns, got %v", row)
	}
	return cols, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
