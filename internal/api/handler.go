package api

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/finbridge/statement-ingest/internal/ingest"
	"github.com/finbridge/statement-ingest/internal/models"
	"github.com/finbridge/statement-ingest/internal/writer"
)

// ConvertResponse is the JSON response from the /api/convert endpoints.
type ConvertResponse struct {
	Success      bool                 `json:"success"`
	Error        string               `json:"error,omitempty"`
	BatchID      string               `json:"batchId,omitempty"`
	Bank         string               `json:"bank,omitempty"`
	Transactions []models.Transaction `json:"transactions"`
	CSV          string               `json:"csv,omitempty"`
	TotalDebit   float64              `json:"totalDebit"`
	TotalCredit  float64              `json:"totalCredit"`
	Count        int                  `json:"count"`
}

// RegisterRoutes sets up the API routes on the given app.
func RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	app.Post("/api/convert/csv", HandleConvertCSV)
}

// HandleHealth reports service liveness.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"engine": "fiber",
	})
}

// HandleConvert accepts a PDF statement upload and returns the processed
// batch as JSON, with a CSV rendering of the transactions included.
func HandleConvert(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return writeError(c, fiber.StatusBadRequest, "Only PDF files are supported.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to open uploaded file.")
	}
	defer file.Close()

	pdfBytes, err := io.ReadAll(file)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to read uploaded file.")
	}

	bank := c.FormValue("bank")
	month := formInt(c, "month")
	year := formInt(c, "year")
	includeHeader := c.FormValue("header") != "false"

	batch := ingest.ProcessPDFStatement(pdfBytes, bank, month, year)
	if !batch.Success {
		return writeError(c, fiber.StatusUnprocessableEntity, batch.Error)
	}

	return c.JSON(buildResponse(batch, includeHeader))
}

// HandleConvertCSV accepts a CSV statement upload. Column names are taken
// from the dateColumn, descriptionColumn and amountColumn form fields when
// the file carries a header row.
func HandleConvertCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to open uploaded file.")
	}
	defer file.Close()

	csvBytes, err := io.ReadAll(file)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "Failed to read uploaded file.")
	}

	hasHeader := c.FormValue("hasHeader") != "false"
	batch := ingest.ProcessCSVStatement(
		string(csvBytes),
		c.FormValue("dateColumn"),
		c.FormValue("descriptionColumn"),
		c.FormValue("amountColumn"),
		hasHeader,
		fileHeader.Filename,
	)
	if !batch.Success {
		return writeError(c, fiber.StatusUnprocessableEntity, batch.Error)
	}

	includeHeader := c.FormValue("header") != "false"
	return c.JSON(buildResponse(batch, includeHeader))
}

func buildResponse(batch models.BatchResult, includeHeader bool) ConvertResponse {
	var totalDebit, totalCredit float64
	for _, txn := range batch.Transactions {
		if txn.Direction == models.Debit {
			totalDebit += txn.Amount
		} else {
			totalCredit += txn.Amount
		}
	}

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	csvText := ""
	if err := csvWriter.Write(&csvBuf, &batch); err == nil {
		csvText = csvBuf.String()
	}

	return ConvertResponse{
		Success:      true,
		BatchID:      batch.BatchID,
		Bank:         batch.BankName,
		Transactions: batch.Transactions,
		CSV:          csvText,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		Count:        batch.TotalCount,
	}
}

func formInt(c *fiber.Ctx, field string) int {
	v, err := strconv.Atoi(c.FormValue(field))
	if err != nil {
		return 0
	}
	return v
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ConvertResponse{
		Success:      false,
		Error:        msg,
		Transactions: []models.Transaction{},
	})
}

// NewServer builds the fiber app with routes registered.
func NewServer(maxUploadMB int) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: maxUploadMB << 20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return writeError(c, code, err.Error())
		},
	})
	RegisterRoutes(app)
	return app
}
