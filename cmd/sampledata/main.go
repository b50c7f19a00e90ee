// Command sampledata writes a deterministic set of sample input files
// (Facebook.csv, Google.csv, TikTok.csv, Business.csv) that the server can
// discover and load, for local development and demos.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"adlens/domain/core"
	"adlens/domain/source"
	"adlens/internal/testkit"
)

var fileNames = map[source.Kind]string{
	source.KindFacebook: "Facebook",
	source.KindGoogle:   "Google",
	source.KindTikTok:   "TikTok",
	source.KindBusiness: "Business",
}

func main() {
	out := flag.String("out", "./data", "output directory")
	days := flag.Int("days", 30, "number of days to generate")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	start := flag.String("start", "", "start date (YYYY-MM-DD, default 'days' days ago)")
	format := flag.String("format", "csv", "output format: csv or xlsx")
	flag.Parse()

	if *days <= 0 {
		fmt.Fprintln(os.Stderr, "days must be > 0")
		os.Exit(2)
	}
	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName != "csv" && fmtName != "xlsx" {
		fmt.Fprintln(os.Stderr, "format must be csv or xlsx")
		os.Exit(2)
	}

	startDate := core.DateOf(time.Now().AddDate(0, 0, -*days))
	if *start != "" {
		d, ok := core.ParseDate(*start)
		if !ok {
			fmt.Fprintln(os.Stderr, "invalid -start (expected YYYY-MM-DD)")
			os.Exit(2)
		}
		startDate = d
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "create output directory:", err)
		os.Exit(1)
	}

	loader := testkit.NewDemoLoader(*seed, startDate, *days)
	for kind, name := range fileNames {
		table, err := loader.Load(kind)
		if err != nil {
			fmt.Fprintln(os.Stderr, "generate:", err)
			os.Exit(1)
		}

		path := filepath.Join(*out, name+"."+fmtName)
		if fmtName == "csv" {
			err = os.WriteFile(path, testkit.RenderCSV(table), 0o644)
		} else {
			err = writeXLSX(path, table)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "write:", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d rows)\n", path, len(table.Rows))
	}
}

func writeXLSX(path string, table *source.RawTable) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]interface{}, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, c := range row {
			cells[j] = c
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
