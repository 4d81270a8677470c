package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finbridge/statement-ingest/internal/ingest"
	"github.com/finbridge/statement-ingest/internal/models"
	"github.com/finbridge/statement-ingest/internal/writer"
)

var (
	bankFlag   string
	outputFlag string
	formatFlag string
	headerFlag bool
	monthFlag  int
	yearFlag   int
)

var processCmd = &cobra.Command{
	Use:   "process <statement.pdf|statement.csv> [more files...]",
	Short: "Process statement files and write the transactions out",
	Long: `Process one or more statement files. PDF statements are parsed with the
bank's dialect (auto-detected when --bank is omitted); CSV exports are
read column-wise, with Lloyds online banking exports recognized by their
header row.

Output defaults to a CSV next to the input; use --format=xlsx for an
Excel workbook instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(args)
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVar(&bankFlag, "bank", "", "Bank dialect: hsbc, lloyds, barclays, natwest, generic (auto-detected if omitted)")
	processCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (defaults to input name with new extension)")
	processCmd.Flags().StringVar(&formatFlag, "format", "csv", "Output format: csv or xlsx")
	processCmd.Flags().BoolVar(&headerFlag, "header", true, "Include metadata header rows in CSV output")
	processCmd.Flags().IntVar(&monthFlag, "month", 0, "Keep only PDF transactions from this month (requires --year)")
	processCmd.Flags().IntVar(&yearFlag, "year", 0, "Keep only PDF transactions from this year (requires --month)")
}

func runProcess(inputs []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	proc := ingest.NewProcessor(log)

	bank := bankFlag
	if bank == "" {
		bank = cfg.DefaultBank
	}

	if formatFlag != "csv" && formatFlag != "xlsx" {
		return fmt.Errorf("unknown format %q: use csv or xlsx", formatFlag)
	}

	for _, inputPath := range inputs {
		if err := processFile(proc, inputPath, bank); err != nil {
			return fmt.Errorf("processing %s: %w", inputPath, err)
		}
	}
	return nil
}

func processFile(proc *ingest.Processor, inputPath, bank string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Processing: %s\n", inputPath)

	batch := processByExt(proc, inputPath, data, bank)
	if !batch.Success {
		return fmt.Errorf("%s", batch.Error)
	}

	fmt.Printf("  Found %d transaction(s)\n", batch.TotalCount)
	if batch.TotalCount == 0 {
		fmt.Println("  Warning: no transactions found. Try --bank to select the dialect explicitly.")
	}

	outPath := outputFlag
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + formatFlag
	}

	switch formatFlag {
	case "xlsx":
		w := &writer.XLSXWriter{}
		if err := w.WriteToFile(outPath, &batch); err != nil {
			return err
		}
	default:
		w := &writer.CSVWriter{IncludeHeader: headerFlag}
		if err := w.WriteToFile(outPath, &batch); err != nil {
			return err
		}
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func processByExt(proc *ingest.Processor, inputPath string, data []byte, bank string) models.BatchResult {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".csv":
		return proc.ProcessCSVStatement(string(data), "date", "description", "amount", true, filepath.Base(inputPath))
	default:
		return proc.ProcessPDFStatement(data, bank, monthFlag, yearFlag)
	}
}
