package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/feral-file/ff-guarantees/internal/api/middleware"
	"github.com/feral-file/ff-guarantees/internal/api/rest"
	"github.com/feral-file/ff-guarantees/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-guarantees/internal/api/shared/errors"
	"github.com/feral-file/ff-guarantees/internal/domain"
	"github.com/feral-file/ff-guarantees/internal/expiry"
	"github.com/feral-file/ff-guarantees/internal/guarantee"
	"github.com/feral-file/ff-guarantees/internal/logger"
	"github.com/feral-file/ff-guarantees/internal/mocks"
	"github.com/feral-file/ff-guarantees/internal/reference"
	"github.com/feral-file/ff-guarantees/internal/report"
	"github.com/feral-file/ff-guarantees/internal/store"
	"github.com/feral-file/ff-guarantees/internal/store/schema"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

// testRouter contains all the mocks needed for testing the REST handlers
type testRouter struct {
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	store    *mocks.MockStore
	router   *gin.Engine
}

// setupTestRouter mounts every route over a mocked executor
func setupTestRouter(t *testing.T) *testRouter {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	mockStore := mocks.NewMockStore(ctrl)
	exec.EXPECT().References().Return(reference.NewService(mockStore)).AnyTimes()

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(false, exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return &testRouter{
		ctrl:     ctrl,
		executor: exec,
		store:    mockStore,
		router:   router,
	}
}

// tearDownTestRouter cleans up test resources
func tearDownTestRouter(tr *testRouter) {
	tr.ctrl.Finish()
}

func (tr *testRouter) do(method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)
	return w
}

func (tr *testRouter) doJSON(method, target, body string) *httptest.ResponseRecorder {
	return tr.do(method, target, strings.NewReader(body), "application/json")
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func day(s string) time.Time {
	t, err := domain.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHealthCheck(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().Ping(gomock.Any()).Return(nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"ok"}`, w.Body.String())

	tr.executor.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	w = httptest.NewRecorder()
	tr.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	w := httptest.NewRecorder()
	tr.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/warranties/1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeError(t, w).Code)
}

func TestGetGuarantee(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().GetGuarantee(gomock.Any(), int64(7)).Return(&dto.GuaranteeResponse{ID: 7, ContractorID: 2}, nil)
	w := tr.do(http.MethodGet, "/api/v1/warranties/7", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.GuaranteeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)

	tr.executor.EXPECT().GetGuarantee(gomock.Any(), int64(8)).Return(nil, domain.NewNotFoundError("warranty", int64(8)))
	w = tr.do(http.MethodGet, "/api/v1/warranties/8", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)

	w = tr.do(http.MethodGet, "/api/v1/warranties/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id", decodeError(t, w).Fields[0].Field)
}

func TestGetGuarantee_InternalError(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().GetGuarantee(gomock.Any(), int64(1)).Return(nil, errors.New("connection reset by peer"))
	w := tr.do(http.MethodGet, "/api/v1/warranties/1", nil, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
	assert.Equal(t, "Failed to get warranty", apiErr.Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestListGuarantees(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().
		ListGuarantees(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, q store.GuaranteeQuery) (*dto.ListResponse[dto.GuaranteeResponse], error) {
			assert.Equal(t, "acme", q.Search)
			assert.Equal(t, 20, q.Limit)
			assert.Equal(t, 40, q.Offset)
			require.NotNil(t, q.ContractorID)
			assert.Equal(t, int64(3), *q.ContractorID)
			assert.Equal(t, map[string]any{"cui": "2345678"}, q.Filters)
			return dto.NewListResponse([]dto.GuaranteeResponse{{ID: 1}}, 41), nil
		})

	w := tr.do(http.MethodGet, "/api/v1/warranties?search=acme&limit=20&offset=40&contractor_id=3&cui=2345678", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListResponse[dto.GuaranteeResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(41), resp.Count)
	assert.Len(t, resp.Results, 1)
}

func TestListGuarantees_InvalidPagination(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	w := tr.do(http.MethodGet, "/api/v1/warranties?limit=-1&offset=x", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, decodeError(t, w).Fields, 2)
}

func TestCreateGuarantee_JSON(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	body := `{
		"warranty_object_id": 1,
		"letter_type_id": 2,
		"contractor_id": 3,
		"initial_history": {
			"letter_number": "CF-001",
			"financial_entity_id": 4,
			"issue_date": "2025-01-10",
			"validity_start": "2025-01-10",
			"validity_end": "2025-07-10",
			"currency_type_id": 1,
			"amount": "15000.50"
		}
	}`

	tr.executor.EXPECT().
		CreateGuarantee(gomock.Any(), middleware.APIKeyPrincipal, gomock.Any()).
		DoAndReturn(func(_ any, _ string, in guarantee.CreateInput) (*dto.GuaranteeResponse, error) {
			assert.Equal(t, int64(1), in.ObjectID)
			assert.Equal(t, int64(3), in.ContractorID)
			require.NotNil(t, in.History.ValidityEnd)
			assert.True(t, day("2025-07-10").Equal(*in.History.ValidityEnd))
			assert.True(t, decimal.RequireFromString("15000.50").Equal(*in.History.Amount))
			assert.Empty(t, in.Files)
			return &dto.GuaranteeResponse{ID: 10}, nil
		})

	w := tr.doJSON(http.MethodPost, "/api/v1/warranties", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateGuarantee_Multipart(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	pdf := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", `{"warranty_object_id":1,"letter_type_id":2,"contractor_id":3,"initial_history":{"letter_number":"CF-9"}}`))
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="files"; filename="carta.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(pdf)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	tr.executor.EXPECT().
		CreateGuarantee(gomock.Any(), middleware.APIKeyPrincipal, gomock.Any()).
		DoAndReturn(func(_ any, _ string, in guarantee.CreateInput) (*dto.GuaranteeResponse, error) {
			require.Len(t, in.Files, 1)
			assert.Equal(t, "carta.pdf", in.Files[0].FileName)
			assert.Equal(t, "application/pdf", in.Files[0].ContentType)
			assert.Equal(t, pdf, in.Files[0].Content)
			assert.Equal(t, "CF-9", *in.History.LetterNumber)
			return &dto.GuaranteeResponse{ID: 11}, nil
		})

	w := tr.do(http.MethodPost, "/api/v1/warranties", &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateGuarantee_MalformedInput(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	w := tr.doJSON(http.MethodPost, "/api/v1/warranties", `{"initial_history":{"validity_end":"10/07/2025"}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
	assert.Equal(t, guarantee.FieldValidityEnd, apiErr.Fields[0].Field)

	w = tr.doJSON(http.MethodPost, "/api/v1/warranties", `{"warranty_object_id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = tr.doJSON(http.MethodPost, "/api/v1/warranties", ``)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenewGuarantee_Conflict(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().
		RenewGuarantee(gomock.Any(), middleware.APIKeyPrincipal, gomock.Any()).
		DoAndReturn(func(_ any, _ string, in guarantee.RenewInput) (*dto.HistoryResponse, error) {
			assert.Equal(t, int64(5), in.GuaranteeID)
			return nil, domain.NewConflictError("current status does not allow renewal", map[string]any{"current_status_id": 6})
		})

	w := tr.doJSON(http.MethodPost, "/api/v1/warranty-histories/renovar", `{"warranty_id":5,"letter_number":"CF-2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeConflict, apiErr.Code)
	assert.Equal(t, float64(6), apiErr.Context["current_status_id"])
}

func TestReturnAndExecuteGuarantee(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	gomock.InOrder(
		tr.executor.EXPECT().
			ReturnGuarantee(gomock.Any(), middleware.APIKeyPrincipal, gomock.Any()).
			DoAndReturn(func(_ any, _ string, in guarantee.CloseInput) (*dto.HistoryResponse, error) {
				assert.True(t, day("2025-03-01").Equal(*in.IssueDate))
				return &dto.HistoryResponse{ID: 20, WarrantyStatusID: 3}, nil
			}),
		tr.executor.EXPECT().
			ExecuteGuarantee(gomock.Any(), middleware.APIKeyPrincipal, gomock.Any()).
			Return(&dto.HistoryResponse{ID: 21, WarrantyStatusID: 6}, nil),
	)

	w := tr.doJSON(http.MethodPost, "/api/v1/warranty-histories/devolver", `{"warranty_id":5,"issue_date":"2025-03-01"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = tr.doJSON(http.MethodPost, "/api/v1/warranty-histories/ejecutar", `{"warranty_id":6}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAmendHistory(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	kinds := map[string]domain.AmendKind{
		"modificar-emision":    domain.AmendIssuance,
		"modificar-renovacion": domain.AmendRenewal,
		"modificar-devolucion": domain.AmendReturn,
		"modificar-ejecucion":  domain.AmendExecution,
	}
	for path, kind := range kinds {
		t.Run(path, func(t *testing.T) {
			tr.executor.EXPECT().
				AmendHistory(gomock.Any(), middleware.APIKeyPrincipal, kind, int64(30), gomock.Any()).
				DoAndReturn(func(_ any, _ string, _ domain.AmendKind, _ int64, in guarantee.AmendInput) (*dto.HistoryResponse, error) {
					assert.Equal(t, []int64{4, 5}, in.RemoveFileIDs)
					return &dto.HistoryResponse{ID: 30}, nil
				})

			w := tr.doJSON(http.MethodPost, "/api/v1/warranty-histories/30/"+path, `{"comments":"fix","remove_file_ids":[4,5]}`)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestDeleteHistory(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().DeleteHistory(gomock.Any(), int64(12)).Return(&guarantee.DeleteResult{GuaranteeID: 3, GuaranteeDeleted: true}, nil)

	w := tr.do(http.MethodDelete, "/api/v1/warranty-histories/12/eliminar", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"warranty_id":3,"warranty_deleted":true,"current_history_id":0}`, w.Body.String())
}

func TestIsLatestHistory(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().IsLatestHistory(gomock.Any(), int64(12)).Return(&dto.IsLatestResponse{HistoryID: 12, IsLatest: false, CurrentHistoryID: 14}, nil)

	w := tr.do(http.MethodGet, "/api/v1/warranty-histories/12/is-latest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"history_id":12,"is_latest":false,"current_history_id":14}`, w.Body.String())
}

func TestDownloadFile(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	content := []byte("%PDF-1.4 content")
	tr.executor.EXPECT().
		OpenFile(gomock.Any(), int64(9)).
		Return(&dto.FileResponse{ID: 9, FileName: "carta fianza.pdf", Size: int64(len(content))}, io.NopCloser(bytes.NewReader(content)), nil)

	w := tr.do(http.MethodGet, "/api/v1/warranty-files/9/download", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="carta fianza.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.Bytes())
}

func TestDeleteFile(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().DeleteFile(gomock.Any(), int64(9)).Return(nil)
	w := tr.do(http.MethodDelete, "/api/v1/warranty-files/9", nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	tr.executor.EXPECT().DeleteFile(gomock.Any(), int64(10)).Return(domain.NewConflictError("file does not belong to the current record", nil))
	w = tr.do(http.MethodDelete, "/api/v1/warranty-files/10", nil, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSearchGuarantees(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().
		SearchGuarantees(gomock.Any(), store.SearchByContractorRUC, "20123456789").
		Return(dto.NewListResponse([]dto.GuaranteeResponse{{ID: 1}}, 0), nil)

	w := tr.do(http.MethodGet, "/api/v1/warranty-objects/buscar?filter_type=contractor_ruc&filter_value=20123456789", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = tr.do(http.MethodGet, "/api/v1/warranty-objects/buscar?filter_type=amount&filter_value=1", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "filter_type", decodeError(t, w).Fields[0].Field)

	w = tr.do(http.MethodGet, "/api/v1/warranty-objects/buscar?filter_type=cui", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExpiredReport(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	rows := []report.ExpiredLetter{{
		Letter:  report.Letter{MaxWarrantyHistory: 3, WarrantyID: 1},
		Expired: expiry.Span{TotalDays: 75, Months: 2, Days: 15, Phrase: "2 meses, 15 días"},
	}}

	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	tr.executor.EXPECT().ExpiredReport(gomock.Any(), day("2025-06-01")).Return(rows, nil)
	w := tr.do(http.MethodGet, "/api/v1/warranties/vencidas", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count   int64                  `json:"count"`
		Results []report.ExpiredLetter `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Count)
	assert.Equal(t, "2 meses, 15 días", resp.Results[0].Expired.Phrase)

	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	w = tr.do(http.MethodGet, "/api/v1/warranties/vencidas?fecha=2025-13-01", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fecha", decodeError(t, w).Fields[0].Field)
}

func TestExpiredReport_XLSX(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	rows := []report.ExpiredLetter{{
		Letter:  report.Letter{MaxWarrantyHistory: 3, WarrantyID: 1, ContractorRUC: "20123456789"},
		Expired: expiry.Span{TotalDays: 10, Days: 10, Phrase: "10 días"},
	}}
	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	tr.executor.EXPECT().ExpiredReport(gomock.Any(), day("2025-05-20")).Return(rows, nil)

	w := tr.do(http.MethodGet, "/api/v1/warranties/vencidas?fecha=2025-05-20&format=xlsx", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "vencidas_2025-05-20.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	sheetRows, err := f.GetRows("Vencidas")
	require.NoError(t, err)
	require.Len(t, sheetRows, 2)
	assert.Equal(t, "Historial", sheetRows[0][0])
	assert.Contains(t, sheetRows[1], "20123456789")
}

func TestValidCount(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	tr.executor.EXPECT().ValidCount(gomock.Any(), day("2025-06-01")).Return(int64(42), nil)

	w := tr.do(http.MethodGet, "/api/v1/warranties/vigentes", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":42}`, w.Body.String())
}

func TestValidAtReport_Filters(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	tr.executor.EXPECT().
		ValidAtReport(gomock.Any(), day("2025-01-15"), gomock.Any()).
		DoAndReturn(func(_ any, _ time.Time, f store.GuaranteeFilter) ([]report.ValidLetter, error) {
			require.NotNil(t, f.FinancialEntityID)
			assert.Equal(t, int64(4), *f.FinancialEntityID)
			assert.Nil(t, f.ContractorID)
			return []report.ValidLetter{}, nil
		})

	w := tr.do(http.MethodGet, "/api/v1/warranties/vigentes-por-fecha?fecha=2025-01-15&financial_entity_id=4", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":0,"results":[]}`, w.Body.String())
}

func TestClosedInPeriodReport(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	tr.executor.EXPECT().
		ClosedInPeriodReport(gomock.Any(), domain.StatusExecution, day("2025-01-01"), day("2025-03-31"), store.GuaranteeFilter{}).
		Return([]report.ClosedLetter{}, nil)
	w := tr.do(http.MethodGet, "/api/v1/warranties/ejecutadas-por-periodo?fecha_inicio=2025-01-01&fecha_fin=2025-03-31", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	tr.executor.EXPECT().
		ClosedInPeriodReport(gomock.Any(), domain.StatusReturn, day("2025-01-01"), day("2025-03-31"), store.GuaranteeFilter{}).
		Return([]report.ClosedLetter{}, nil)
	w = tr.do(http.MethodGet, "/api/v1/warranties/devueltas-por-periodo?fecha_inicio=2025-01-01&fecha_fin=2025-03-31&format=xlsx", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "devueltas_2025-01-01_2025-03-31.xlsx")

	w = tr.do(http.MethodGet, "/api/v1/warranties/ejecutadas-por-periodo?fecha_fin=2025-03-31", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "fecha_inicio", decodeError(t, w).Fields[0].Field)

	tr.executor.EXPECT().
		ClosedInPeriodReport(gomock.Any(), domain.StatusExecution, day("2025-03-31"), day("2025-01-01"), store.GuaranteeFilter{}).
		Return(nil, domain.NewValidationError("fecha_fin", "must not be before fecha_inicio"))
	w = tr.do(http.MethodGet, "/api/v1/warranties/ejecutadas-por-periodo?fecha_inicio=2025-03-31&fecha_fin=2025-01-01", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCertificationReport(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	w := tr.do(http.MethodGet, "/api/v1/warranties/certificacion?contractor_id=2", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "warranty_object_id", decodeError(t, w).Fields[0].Field)

	contractorID := int64(2)
	tr.executor.EXPECT().
		CertificationReport(gomock.Any(), int64(1), &contractorID).
		Return([]dto.GuaranteeResponse{{ID: 1}, {ID: 2}}, nil)
	w = tr.do(http.MethodGet, "/api/v1/warranties/certificacion?warranty_object_id=1&contractor_id=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListResponse[dto.GuaranteeResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.Count)
}

func TestLettersReport(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	contractors := mocks.NewMockReferenceRepository[schema.Contractor](tr.ctrl)
	tr.store.EXPECT().Contractors().Return(contractors).AnyTimes()

	contractorID := int64(2)
	contractors.EXPECT().Get(gomock.Any(), contractorID).Return(&schema.Contractor{ID: contractorID}, nil)
	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	tr.executor.EXPECT().
		LettersReport(gomock.Any(), store.GuaranteeFilter{ContractorID: &contractorID}, day("2025-06-01")).
		Return([]report.ClassifiedLetter{{Classification: expiry.StatusValid}}, nil)

	w := tr.do(http.MethodGet, "/api/v1/contractors/2/reporte-cartas", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)

	contractors.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, domain.NewNotFoundError("contractor", int64(99)))
	tr.executor.EXPECT().Today().Return(day("2025-06-01"))
	w = tr.do(http.MethodGet, "/api/v1/contractors/99/reporte-cartas", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReferenceCRUD(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	contractors := mocks.NewMockReferenceRepository[schema.Contractor](tr.ctrl)
	tr.store.EXPECT().Contractors().Return(contractors).AnyTimes()

	t.Run("create stamps the principal", func(t *testing.T) {
		contractors.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, row *schema.Contractor) error {
				assert.Equal(t, "20123456789", row.RUC)
				assert.Equal(t, middleware.APIKeyPrincipal, row.CreatedBy)
				row.ID = 5
				return nil
			})

		w := tr.doJSON(http.MethodPost, "/api/v1/contractors", `{"business_name":"Constructora Andina SAC","ruc":" 20123456789 "}`)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":5`)
	})

	t.Run("invalid tax id", func(t *testing.T) {
		w := tr.doJSON(http.MethodPost, "/api/v1/contractors", `{"business_name":"Constructora Andina SAC","ruc":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "ruc", decodeError(t, w).Fields[0].Field)
	})

	t.Run("duplicate tax id", func(t *testing.T) {
		contractors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.IntegrityError{Field: "ruc", Constraint: "contractors_ruc_key"})
		w := tr.doJSON(http.MethodPost, "/api/v1/contractors", `{"business_name":"Otra SAC","ruc":"20123456789"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("list with filter", func(t *testing.T) {
		contractors.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q store.ListQuery) ([]schema.Contractor, int64, error) {
				assert.Equal(t, map[string]any{"ruc": "20123456789"}, q.Filters)
				assert.Equal(t, "-business_name", q.Ordering)
				assert.Equal(t, store.DefaultListLimit, q.Limit)
				return []schema.Contractor{{ID: 5}}, 1, nil
			})
		w := tr.do(http.MethodGet, "/api/v1/contractors?ruc=20123456789&ordering=-business_name", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":1`)
	})

	t.Run("list with unknown filter", func(t *testing.T) {
		w := tr.do(http.MethodGet, "/api/v1/contractors?color=red", nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "color", decodeError(t, w).Fields[0].Field)
	})

	t.Run("patch", func(t *testing.T) {
		contractors.EXPECT().
			Update(gomock.Any(), int64(5), map[string]any{"business_name": "Andina SAC", "updated_by": middleware.APIKeyPrincipal}).
			Return(&schema.Contractor{ID: 5, BusinessName: "Andina SAC"}, nil)
		w := tr.doJSON(http.MethodPatch, "/api/v1/contractors/5", `{"business_name":"Andina SAC"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("put requires every field", func(t *testing.T) {
		w := tr.doJSON(http.MethodPut, "/api/v1/contractors/5", `{"business_name":"Andina SAC"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete referenced row", func(t *testing.T) {
		contractors.EXPECT().Delete(gomock.Any(), int64(5)).Return(domain.NewConflictError("reference row in use", nil))
		w := tr.do(http.MethodDelete, "/api/v1/contractors/5", nil, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		contractors.EXPECT().Delete(gomock.Any(), int64(6)).Return(nil)
		w := tr.do(http.MethodDelete, "/api/v1/contractors/6", nil, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRequestTooLarge(t *testing.T) {
	tr := setupTestRouter(t)
	defer tearDownTestRouter(tr)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", `{"warranty_id":1}`))
	part, err := mw.CreateFormFile("files", "big.pdf")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{'a'}, rest.MaxRequestBodySize+1))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	w := tr.do(http.MethodPost, "/api/v1/warranty-histories/renovar", &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, apierrors.ErrCodeTooLarge, decodeError(t, w).Code)
}
