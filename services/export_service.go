package services

import (
	"context"
	"fmt"
	"io"
	"stonex_server/structs"
	"strings"

	"github.com/MonkyMars/gecho"
	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Catalog"

// catalogRow is the flattened export shape of a catalog record
type catalogRow struct {
	ID           string `csv:"id"`
	Name         string `csv:"name"`
	Slug         string `csv:"slug"`
	Category     string `csv:"category"`
	Availability string `csv:"availability"`
	Featured     bool   `csv:"featured"`
	DisplayRank  int    `csv:"display_rank"`
	Origin       string `csv:"origin"`
	Hardness     string `csv:"hardness"`
	Finish       string `csv:"finish"`
	Thickness    string `csv:"thickness"`
	Features     string `csv:"features"`
	Applications string `csv:"applications"`
	Finishes     string `csv:"finishes"`
	Images       string `csv:"images"`
	Description  string `csv:"description"`
}

var exportColumns = []string{
	"id", "name", "slug", "category", "availability", "featured", "display_rank",
	"origin", "hardness", "finish", "thickness",
	"features", "applications", "finishes", "images", "description",
}

func toRow(item structs.CatalogItem) catalogRow {
	urls := make([]string, 0, len(item.Images))
	for _, img := range item.Images {
		urls = append(urls, img.URL)
	}

	return catalogRow{
		ID:           item.ID,
		Name:         item.Name,
		Slug:         item.Slug,
		Category:     string(item.Category),
		Availability: string(item.Availability),
		Featured:     item.Featured,
		DisplayRank:  item.DisplayRank,
		Origin:       item.Specifications.Origin,
		Hardness:     item.Specifications.Hardness,
		Finish:       item.Specifications.Finish,
		Thickness:    item.Specifications.Thickness,
		Features:     strings.Join(item.Features, "; "),
		Applications: strings.Join(item.Applications, "; "),
		Finishes:     strings.Join(item.Finishes, "; "),
		Images:       strings.Join(urls, " "),
		Description:  item.Description,
	}
}

func (r catalogRow) values() []any {
	return []any{
		r.ID, r.Name, r.Slug, r.Category, r.Availability, r.Featured, r.DisplayRank,
		r.Origin, r.Hardness, r.Finish, r.Thickness,
		r.Features, r.Applications, r.Finishes, r.Images, r.Description,
	}
}

type ExportService struct {
	logger  *gecho.Logger
	catalog *CatalogService
}

func NewExportService(logger *gecho.Logger, catalog *CatalogService) *ExportService {
	return &ExportService{logger: logger, catalog: catalog}
}

// WriteCSV writes the catalog as CSV with a header row
func (es *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	items, err := es.catalog.List(ctx)
	if err != nil {
		return err
	}

	rows := make([]catalogRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, toRow(item))
	}

	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

// WriteXLSX writes the catalog as a single sheet workbook
func (es *ExportService) WriteXLSX(ctx context.Context, w io.Writer) error {
	items, err := es.catalog.List(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to prepare sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F2937"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range exportColumns {
		if err := writeHeader(f, i+1, col, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, item := range items {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return err
		}
		row := toRow(item).values()
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx export: %w", err)
	}

	es.logger.Debug("Catalog exported", gecho.Field("format", "xlsx"), gecho.Field("rows", len(items)))
	return nil
}

func writeHeader(f *excelize.File, col int, title string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, 1)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(exportSheet, cell, title); err != nil {
		return fmt.Errorf("failed to write header %s: %w", title, err)
	}
	if err := f.SetCellStyle(exportSheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style header %s: %w", title, err)
	}

	colName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return f.SetColWidth(exportSheet, colName, colName, 20)
}
