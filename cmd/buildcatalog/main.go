// Command buildcatalog converts the multi-sheet vehicle pricing spreadsheet
// into the static data/vehicles.json artifact the server loads at startup.
// The first five sheets map in order to the five fixed vehicleType tags.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"drivestyle/internal/catalog"
)

// Complete tags so every record carries all three dimensions; a tag missing
// its market token would never match a market-constrained query.
var sheetTypeOrder = []string{
	"MANUAL_PASSENGER_SEDAN",
	"AUTO_PASSENGER_SEDAN",
	"AUTO_PASSENGER_ESTATE_MPV",
	"AUTO_PASSENGER_CROSSOVER_SUV",
	"AUTO_COMMERCIAL_PICKUP_BAKKIE",
}

var (
	nonDigits   = regexp.MustCompile(`[^\d]`)
	nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

func main() {
	sourcePath := flag.String("source", "data/vehicles.source.xlsx", "pricing spreadsheet")
	outPath := flag.String("out", "data/vehicles.json", "catalogue artifact to write")
	flag.Parse()

	wb, err := excelize.OpenFile(*sourcePath)
	if err != nil {
		log.Fatalf("Failed to open spreadsheet %s: %v", *sourcePath, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) > len(sheetTypeOrder) {
		sheets = sheets[:len(sheetTypeOrder)]
	}

	var all []catalog.VehicleRecord
	for i, sheet := range sheets {
		vehicleType := sheetTypeOrder[i]

		rows, err := wb.GetRows(sheet)
		if err != nil {
			log.Fatalf("Failed to read sheet %q: %v", sheet, err)
		}

		// Row 1 is the header. Column B holds the make/model, column C the
		// price; rows missing either are skipped.
		for r := 1; r < len(rows); r++ {
			row := rows[r]
			name := ""
			if len(row) > 1 {
				name = strings.TrimSpace(row[1])
			}
			msrp := 0
			if len(row) > 2 {
				msrp = parsePrice(row[2])
			}
			if name == "" || msrp <= 0 {
				continue
			}

			all = append(all, catalog.VehicleRecord{
				ID:          vehicleType + "|" + slug(name),
				Name:        name,
				VehicleType: vehicleType,
				MSRP:        msrp,
			})
		}
	}

	// Duplicate ids keep the highest-price variant.
	byID := make(map[string]catalog.VehicleRecord, len(all))
	for _, v := range all {
		if existing, ok := byID[v.ID]; !ok || v.MSRP > existing.MSRP {
			byID[v.ID] = v
		}
	}

	records := make([]catalog.VehicleRecord, 0, len(byID))
	for _, v := range byID {
		records = append(records, v)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].MSRP != records[j].MSRP {
			return records[i].MSRP < records[j].MSRP
		}
		return records[i].ID < records[j].ID
	})

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode catalogue: %v", err)
	}
	if err := os.WriteFile(*outPath, append(payload, '\n'), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}

	log.Printf("Wrote %d vehicles to %s", len(records), *outPath)
}

func parsePrice(raw string) int {
	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func slug(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", "and")
	s = nonSlugRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
