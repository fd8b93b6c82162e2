package checks

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/reconcile"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/source"
	"github.com/JamshedBosch/Requirements-import-export-check-compact/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const ppeSource = `{
  "source": {
    "name": "ppe_customer.xlsx",
    "schema": ["Object ID", "CR-ID_Bosch_PPx", "BRS-1Box_Status_Hersteller_Bosch_PPx"],
    "records": [
      {"Object ID": "R-1", "CR-ID_Bosch_PPx": "", "BRS-1Box_Status_Hersteller_Bosch_PPx": "akzeptiert"},
      {"Object ID": "R-2", "CR-ID_Bosch_PPx": "CR-7", "BRS-1Box_Status_Hersteller_Bosch_PPx": "akzeptiert"}
    ]
  }
}`

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	locator := &source.Locator{Storage: mockClient, Bucket: "test-bucket", Logger: zap.NewNop()}
	svc := NewService(NewRegistry(Params{}), locator, zap.NewNop(), reconcile.Config{Workers: 2}, "reports/")
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func post(t *testing.T, app *fiber.App, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHandleProjects(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/checks", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"ppe", "sdv01", "ssp"}, body["projects"])
}

func TestHandleRules(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("OneDirection", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/checks/PPE/rules?direction=export", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Project string `json:"project"`
			Export  []struct {
				ID string `json:"id"`
			} `json:"export"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ppe", body.Project)
		require.Len(t, body.Export, 2)
		assert.Equal(t, "PPE-E01", body.Export[0].ID)
	})

	t.Run("BothDirections", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/checks/sdv01/rules", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body["import"], 10)
		assert.Empty(t, body["export"])
	})

	t.Run("UnknownProject", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/checks/abc/rules", nil))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("UnknownDirection", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/checks/ppe/rules?direction=sideways", nil))
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}

func TestHandleCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := post(t, app, "/checks/ppe/import", ppeSource)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, body["run_id"])

	findings, ok := body["findings"].([]any)
	require.True(t, ok)
	require.Len(t, findings, 1)
	first := findings[0].(map[string]any)
	assert.Equal(t, "PPE-04", first["rule_id"])
	assert.Equal(t, "R-1", first["identifier"])
	assert.EqualValues(t, 2, first["row"])

	diagnostics, ok := body["diagnostics"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, diagnostics)
}

func TestHandleCheck_Report(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := post(t, app, "/checks/ppe/import?view=report", ppeSource)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ppe", body["project"])
	assert.Equal(t, "ppe_customer.xlsx", body["source_name"])

	entries, ok := body["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].(map[string]any)["number"])
}

func TestHandleCheck_Publish(t *testing.T) {
	app, mockClient := setupTestApp(t)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.AnythingOfType("string"), mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	body := strings.Replace(ppeSource, `"source": {`, `"run_id": "run-9", "source": {`, 1)
	resp, decoded := post(t, app, "/checks/ppe/import?publish=true", body)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []any{"reports/ppe_customer_run-9.json", "reports/ppe_customer_run-9.md"}, decoded["published"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleCheck_SourceLocation(t *testing.T) {
	app, mockClient := setupTestApp(t)

	doc := `
name: sdv01_customer.xlsx
schema: [Object ID, CR-ID_Bosch_SDV0.1, BRS_Status_Hersteller_Bosch_SDV0.1]
records:
  - Object ID: R-1
    CR-ID_Bosch_SDV0.1: ""
    BRS_Status_Hersteller_Bosch_SDV0.1: akzeptiert
`
	mockClient.On("GetObject", mock.Anything, "test-bucket", "datasets/sdv01.yaml", mock.Anything).
		Return(io.NopCloser(strings.NewReader(doc)), nil)

	resp, body := post(t, app, "/checks/sdv01/import", `{"source_location": "object:datasets/sdv01.yaml"}`)
	assert.Equal(t, 200, resp.StatusCode)

	summary := body["summary"].(map[string]any)
	assert.EqualValues(t, 1, summary["source_records"])
	mockClient.AssertExpectations(t)
}

func TestHandleCheck_Errors(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name   string
		url    string
		body   string
		status int
	}{
		{"MissingSource", "/checks/ppe/import", `{}`, 400},
		{"InvalidBody", "/checks/ppe/import", `{"source": 42`, 400},
		{"UnknownProject", "/checks/abc/import", ppeSource, 404},
		{"UnknownDirection", "/checks/ppe/sideways", ppeSource, 400},
		{"DuplicateAttribute", "/checks/ppe/import",
			`{"source": {"schema": ["Object ID", "Object ID"], "records": []}}`, 400},
		{"MissingIdentifierAttribute", "/checks/ppe/import",
			`{"source": {"schema": ["Object Text"], "records": [{"Object Text": "x"}]}}`, 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := post(t, app, tt.url, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, body["error"])
		})
	}
}
