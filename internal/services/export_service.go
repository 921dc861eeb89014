package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/refboard/internal/models"
)

// CSVTable is a uniform-shape export: a header row naming each field in
// its natural key order, then one row per record.
type CSVTable struct {
	Headers []string
	Rows    [][]string
}

// Encode renders the table with every field double-quote wrapped and
// internal quotes doubled, rows newline-joined.
func (table CSVTable) Encode() string {
	lines := make([]string, 0, len(table.Rows)+1)
	lines = append(lines, encodeCSVRow(table.Headers))
	for _, row := range table.Rows {
		lines = append(lines, encodeCSVRow(row))
	}
	return strings.Join(lines, "\n")
}

func encodeCSVRow(fields []string) string {
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, `"`+strings.ReplaceAll(field, `"`, `""`)+`"`)
	}
	return strings.Join(quoted, ",")
}

type ExportService struct {
	clicks      ClickReader
	leads       LeadReader
	conversions ConversionReader
}

func NewExportService(clicks ClickReader, leads LeadReader, conversions ConversionReader) *ExportService {
	return &ExportService{
		clicks:      clicks,
		leads:       leads,
		conversions: conversions,
	}
}

func (service *ExportService) ClicksTable() CSVTable {
	clicks := service.clicks.All()
	rows := make([][]string, 0, len(clicks))
	for _, click := range clicks {
		rows = append(rows, []string{
			click.PropertyID,
			strconv.FormatInt(click.Timestamp, 10),
		})
	}
	return CSVTable{Headers: []string{"propertyId", "timestamp"}, Rows: rows}
}

func (service *ExportService) LeadsTable() CSVTable {
	leads := service.leads.All()
	rows := make([][]string, 0, len(leads))
	for _, lead := range leads {
		rows = append(rows, []string{
			lead.Email,
			strconv.FormatInt(lead.Timestamp, 10),
		})
	}
	return CSVTable{Headers: []string{"email", "timestamp"}, Rows: rows}
}

func (service *ExportService) ConversionsTable() CSVTable {
	conversions := service.conversions.All()
	rows := make([][]string, 0, len(conversions))
	for _, conversion := range conversions {
		rows = append(rows, []string{
			conversion.LeadEmail,
			conversion.PropertyID,
			strconv.FormatFloat(conversion.InvestmentAmount, 'f', -1, 64),
			strconv.FormatInt(conversion.Timestamp, 10),
		})
	}
	return CSVTable{Headers: []string{"leadEmail", "propertyId", "investmentAmount", "timestamp"}, Rows: rows}
}

func ExportFilename(collection string, now time.Time) string {
	return fmt.Sprintf("refboard_%s_%s.csv", collection, now.UTC().Format("2006-01-02"))
}

// SavedContentRows flattens library items for export; the nested
// property collapses to its id.
func SavedContentRows(items []models.SavedContent) CSVTable {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.ID,
			item.Property.ID,
			item.Text,
			item.ImageURL,
			strconv.FormatInt(item.SavedAt, 10),
		})
	}
	return CSVTable{Headers: []string{"id", "propertyId", "text", "imageUrl", "savedAt"}, Rows: rows}
}
