// Package handler exposes the extraction engine over HTTP.
package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
	"github.com/FACorreiaa/expense-engine/internal/domain/export"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/parser"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/service"
	"github.com/FACorreiaa/expense-engine/internal/domain/tax"
	"github.com/FACorreiaa/expense-engine/pkg/pdftext"
)

// ExpenseHandler handles expense extraction requests.
type ExpenseHandler struct {
	svc    *service.Service
	logger *slog.Logger
}

func NewExpenseHandler(svc *service.Service, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{svc: svc, logger: logger}
}

// Register mounts the expense routes on a router group.
func (h *ExpenseHandler) Register(api *gin.RouterGroup) {
	expenses := api.Group("/expenses")
	{
		expenses.POST("/process", h.Process)
		expenses.POST("/export", h.Export)
		expenses.GET("/jurisdictions", h.Jurisdictions)
	}
}

// Process accepts statement uploads plus optional pasted text and returns
// the extracted records. Files and the "text" form field are combined into
// one batch.
func (h *ExpenseHandler) Process(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "failed to parse multipart form", err)
		return
	}

	// An unreadable file is a hard failure for that document only; the
	// rest of the batch still runs.
	var documents []service.Document
	var failures []service.DocumentFailure
	for _, file := range form.File["files[]"] {
		doc, err := h.readFile(file)
		if err != nil {
			h.logger.Warn("could not read upload",
				slog.String("file", file.Filename), slog.Any("error", err))
			failures = append(failures, service.DocumentFailure{
				Document: file.Filename, Reason: err.Error(),
			})
			continue
		}
		documents = append(documents, doc)
	}
	if text := c.PostForm("text"); strings.TrimSpace(text) != "" {
		documents = append(documents, service.Document{
			Name: "pasted-text", Kind: service.KindText, Text: text,
		})
	}

	if len(documents) == 0 {
		if len(failures) > 0 {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
				"error": "no readable documents", "errors": failures,
			})
			return
		}
		h.sendError(c, http.StatusBadRequest, "no documents provided", service.ErrNoDocuments)
		return
	}

	req := service.Request{
		Documents:  documents,
		Province:   c.PostForm("province"),
		Occupation: c.PostForm("occupation"),
		Categories: splitCategories(c.PostForm("categories")),
	}

	records, svcFailures, err := h.svc.Process(c.Request.Context(), req)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "processing failed", err)
		return
	}
	failures = append(failures, svcFailures...)

	resp := gin.H{"data": records}
	if len(failures) > 0 {
		resp["errors"] = failures
	}
	c.JSON(http.StatusOK, resp)
}

// exportRequest is the JSON body for /expenses/export.
type exportRequest struct {
	Records []expense.Record `json:"records" binding:"required"`
	Mileage *struct {
		TotalKms float64 `json:"totalKms"`
		WorkKms  float64 `json:"workKms"`
	} `json:"mileage"`
}

// Export renders previously extracted records as the accounting CSV.
func (h *ExpenseHandler) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.sendError(c, http.StatusBadRequest, "invalid export request", err)
		return
	}

	var mileage *expense.Mileage
	if req.Mileage != nil {
		m := expense.NewMileage(req.Mileage.TotalKms, req.Mileage.WorkKms)
		mileage = &m
	}

	body := export.CSV(req.Records, mileage)
	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}

// Jurisdictions lists the known tax jurisdictions.
func (h *ExpenseHandler) Jurisdictions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": tax.Jurisdictions()})
}

// readFile converts one uploaded file into a pipeline document based on its
// extension. Unknown extensions are treated as plain text.
func (h *ExpenseHandler) readFile(file *multipart.FileHeader) (service.Document, error) {
	f, err := file.Open()
	if err != nil {
		return service.Document{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".pdf":
		data, err := io.ReadAll(f)
		if err != nil {
			return service.Document{}, err
		}
		text, err := pdftext.Extract(data)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: file.Filename, Kind: service.KindText, Text: text}, nil

	case ".xlsx":
		text, err := parser.WorkbookText(f)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: file.Filename, Kind: service.KindCSV, Text: text}, nil

	case ".csv", ".tsv":
		data, err := io.ReadAll(f)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: file.Filename, Kind: service.KindCSV, Text: string(data)}, nil

	default:
		data, err := io.ReadAll(f)
		if err != nil {
			return service.Document{}, err
		}
		return service.Document{Name: file.Filename, Kind: service.KindText, Text: string(data)}, nil
	}
}

func splitCategories(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (h *ExpenseHandler) sendError(c *gin.Context, status int, message string, err error) {
	h.logger.Error(message, slog.Any("error", err))
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
