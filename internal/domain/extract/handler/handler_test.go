package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/expense-engine/internal/domain/categorize"
	"github.com/FACorreiaa/expense-engine/internal/domain/expense"
	"github.com/FACorreiaa/expense-engine/internal/domain/extract/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(categorize.NewRuleClassifier(), logger)
	h := NewExpenseHandler(svc, logger)

	router := gin.New()
	h.Register(router.Group("/api/v1"))
	return router
}

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for name, content := range files {
		part, err := w.CreateFormFile("files[]", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

type processResponse struct {
	Data []expense.Record `json:"data"`
}

func TestProcessPastedText(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, map[string]string{
		"text":     "03/14/2024 Tim Hortons 5.75",
		"province": "Ontario",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Tim Hortons", resp.Data[0].Description)
	assert.Equal(t, "Food", resp.Data[0].GLAccount)
}

func TestProcessCSVUpload(t *testing.T) {
	router := newTestRouter()

	csvText := "date,description,amount\n2024-03-15,Petro Canada,60.00\n"
	body, contentType := multipartBody(t, nil, map[string]string{"statement.csv": csvText})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp processResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, service.PaidByCSV, resp.Data[0].PaidBy)
	assert.Equal(t, "Gas", resp.Data[0].GLAccount)
}

func TestProcessUnreadableFileDoesNotAbortBatch(t *testing.T) {
	router := newTestRouter()

	csvText := "date,description,amount\n2024-03-15,Petro Canada,60.00\n"
	body, contentType := multipartBody(t, nil, map[string]string{
		"broken.xlsx":   "this is not a workbook",
		"statement.csv": csvText,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data   []expense.Record `json:"data"`
		Errors []struct {
			Document string `json:"document"`
			Reason   string `json:"error"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Petro Canada", resp.Data[0].Description)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "broken.xlsx", resp.Errors[0].Document)
	assert.NotEmpty(t, resp.Errors[0].Reason)
}

func TestProcessAllFilesUnreadable(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, nil, map[string]string{
		"broken.xlsx": "this is not a workbook",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "broken.xlsx")
}

func TestProcessNoDocuments(t *testing.T) {
	router := newTestRouter()

	body, contentType := multipartBody(t, map[string]string{"province": "Ontario"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/process", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExport(t *testing.T) {
	router := newTestRouter()

	payload := `{"records":[{"date":"2024-03-14","paidBy":"Credit Card","description":"Tim Hortons","glAccount":"Food","amount":5.75,"hst":0.75,"net":5.00,"needsReview":false}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/export", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "expenses.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Date,Paid By,Description,GL Account,Amount,HST,Net,Needs Review\n"))
	assert.Contains(t, rec.Body.String(), `2024-03-14,Credit Card,"Tim Hortons",Food,5.75,0.75,5.00,No`)
}

func TestExportRejectsEmptyBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses/export", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJurisdictions(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses/jurisdictions", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ontario")
}
