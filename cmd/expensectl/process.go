package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/expense-engine/internal/domain/categorize"
	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
	"github.com/FACorreiaa/expense-engine/internal/domain/export"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/parser"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/service"
	"github.com/FACorreiaa/expense-engine/pkg/pdftext"
)

var (
	province     string
	occupation   string
	categories   []string
	outputFormat string
	mileageTotal float64
	mileageWork  float64
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Extract expense records from statement files",
	Long: `Process reads each file (PDF, CSV, XLSX or plain text; "-" for stdin),
runs the extraction pipeline and prints the combined records.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&province, "province", "p", "Ontario", "tax jurisdiction")
	processCmd.Flags().StringVar(&occupation, "occupation", "", "occupation hint for the classifier")
	processCmd.Flags().StringSliceVarP(&categories, "categories", "c", nil, "category set (defaults to the built-in set)")
	processCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json or csv")
	processCmd.Flags().Float64Var(&mileageTotal, "mileage-total", 0, "total kilometers for the CSV mileage block")
	processCmd.Flags().Float64Var(&mileageWork, "mileage-work", 0, "work kilometers for the CSV mileage block")
}

func runProcess(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var documents []service.Document
	for _, arg := range args {
		doc, err := readDocument(arg)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}
		documents = append(documents, doc)
	}

	svc := service.New(categorize.NewRuleClassifier(), logger)
	records, failures, err := svc.Process(context.Background(), service.Request{
		Documents:  documents,
		Province:   province,
		Occupation: occupation,
		Categories: categories,
	})
	if err != nil {
		return err
	}
	for _, f := range failures {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", f.Document, f.Reason)
	}

	switch outputFormat {
	case "csv":
		var mileage *expense.Mileage
		if mileageTotal > 0 {
			m := expense.NewMileage(mileageTotal, mileageWork)
			mileage = &m
		}
		fmt.Fprintln(cmd.OutOrStdout(), export.CSV(records, mileage))
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("unknown format %q", outputFormat)
	}
}

func readDocument(path string) (service.Document, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: "stdin", Kind: service.KindText, Text: string(data)}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		data, err := os.ReadFile(path)
		if err != nil {
			return service.Document{}, err
		}
		text, err := pdftext.Extract(data)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: filepath.Base(path), Kind: service.KindText, Text: text}, nil

	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return service.Document{}, err
		}
		defer f.Close()
		text, err := parser.WorkbookText(f)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: filepath.Base(path), Kind: service.KindCSV, Text: text}, nil

	case ".csv", ".tsv":
		data, err := os.ReadFile(path)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: filepath.Base(path), Kind: service.KindCSV, Text: string(data)}, nil

	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: filepath.Base(path), Kind: service.KindText, Text: string(data)}, nil
	}
}
