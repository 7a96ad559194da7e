package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"runtime-report/internal/chart"
	"runtime-report/internal/data"
	"runtime-report/internal/export"
	"runtime-report/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "config":
		cmdConfig(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli config --data runtime-data.json [--start 2024-01-01 --end 2024-01-31]")
	fmt.Println("  cli export --data runtime-data.json [--start ... --end ...] [--out results/]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - config prints the chart configuration JSON for the range")
	fmt.Println("  - export writes runtime-report-<start>.png; --out may be a directory or a file path")
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	dataPath := fs.String("data", "runtime-data.json", "Path to runtime report JSON")
	start := fs.String("start", "", "Range start (YYYY-MM-DD, default: first dataset date)")
	end := fs.String("end", "", "Range end (YYYY-MM-DD, default: last dataset date)")
	_ = fs.Parse(args)

	ds, err := data.LoadRuntimeJSON(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load dataset: %v\n", err)
		os.Exit(1)
	}

	cfg := chart.Build(ds, resolveRange(ds, *start, *end))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "encode config: %v\n", err)
		os.Exit(1)
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	dataPath := fs.String("data", "runtime-data.json", "Path to runtime report JSON")
	start := fs.String("start", "", "Range start (YYYY-MM-DD, default: first dataset date)")
	end := fs.String("end", "", "Range end (YYYY-MM-DD, default: last dataset date)")
	outPath := fs.String("out", ".", "Output directory or file path")
	width := fs.Int("width", 0, "Image width in pixels (0=default)")
	height := fs.Int("height", 0, "Image height in pixels (0=default)")
	_ = fs.Parse(args)

	ds, err := data.LoadRuntimeJSON(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load dataset: %v\n", err)
		os.Exit(1)
	}

	rng := resolveRange(ds, *start, *end)
	cfg := chart.Build(ds, rng)

	target := *outPath
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, export.Filename(rng))
	}

	opts := export.Options{Width: *width, Height: *height}
	if err := export.WriteFile(target, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "export: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d rows, %d cells)\n", target, len(cfg.YAxis.Categories), len(cfg.Series))
}

func resolveRange(ds *model.RuntimeDataset, start, end string) model.DateRange {
	rng := model.DefaultRange(ds)
	if start != "" {
		rng.Start = start
	}
	if end != "" {
		rng.End = end
	}
	return rng
}
