package v0_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	v0 "github.com/modelreg/model-registry-api/internal/api/v0"
	"github.com/modelreg/model-registry-api/internal/service"
	"github.com/modelreg/model-registry-api/internal/service/mocks"
)

func TestSystemRoutes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().CheckReadiness(gomock.Any()).Return(nil).AnyTimes()

	router := v0.Router(mockSvc)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"health endpoint", "/health", http.StatusOK},
		{"readiness endpoint", "/readiness", http.StatusOK},
		{"version endpoint", "/version", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		})
	}
}

func TestReadinessWithServiceError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().CheckReadiness(gomock.Any()).Return(assert.AnError)

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/readiness", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Contains(t, response, "error")
}

func TestOpenAPIYAML(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	router := v0.Router(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/x-yaml", rr.Header().Get("Content-Type"))
	assert.Greater(t, len(rr.Body.String()), 0, "OpenAPI YAML should not be empty")
}

func TestUserRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		path        string
		body        string
		setupMocks  func(*mocks.MockRegistryService)
		wantStatus  int
		wantMessage string
	}{
		{
			name:   "create user success",
			method: http.MethodPost,
			path:   "/create_user",
			body:   `{"username":"alice","password":"pw","role":"readWrite","database":"model_registry"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User 'alice' created successfully in database 'model_registry'.",
		},
		{
			name:   "create user service error",
			method: http.MethodPost,
			path:   "/create_user",
			body:   `{"username":"alice","password":"pw","role":"readWrite","database":"model_registry"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create user malformed body",
			method:     http.MethodPost,
			path:       "/create_user",
			body:       `{"username":`,
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "delete user success",
			method: http.MethodDelete,
			path:   "/delete_user",
			body:   `{"username":"alice","database":"model_registry"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "User 'alice' deleted successfully from database 'model_registry'.",
		},
		{
			name:   "delete user service error",
			method: http.MethodDelete,
			path:   "/delete_user",
			body:   `{"username":"alice","database":"model_registry"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			tt.setupMocks(mockSvc)

			router := v0.Router(mockSvc)
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				var response v0.MessageResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, tt.wantMessage, response.Message)
			}
		})
	}
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantStatus int
	}{
		{"defaults", "", http.StatusOK},
		{"custom length", "?length=32", http.StatusOK},
		{"special chars", "?length=16&special_chars=true", http.StatusOK},
		{"zero length", "?length=0", http.StatusBadRequest},
		{"over maximum", "?length=10000", http.StatusBadRequest},
		{"non-numeric length", "?length=abc", http.StatusBadRequest},
		{"bad special_chars", "?special_chars=maybe", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			router := v0.Router(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/generate_password"+tt.query, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				var response v0.PasswordResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.NotEmpty(t, response.Password)
			}
		})
	}
}

func TestStoreModel(t *testing.T) {
	t.Parallel()

	validBody := `{
		"database": "model_registry",
		"collection": "llm",
		"modelPath": "/models/net.pt",
		"modelArchitecture": "transformer",
		"modelVersion": 1.2,
		"project_name": "chatbot"
	}`

	tests := []struct {
		name        string
		body        string
		setupMocks  func(*mocks.MockRegistryService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "stored",
			body: validBody,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().StoreModel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&service.StoreResult{Stored: true, ModelID: "66daf3cae7e64e7bde7f46a0"}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Model stored successfully.",
		},
		{
			name: "duplicate content",
			body: validBody,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().StoreModel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&service.StoreResult{Stored: false}, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Model already exists or could not be stored.",
		},
		{
			name: "service error",
			body: validBody,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().StoreModel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "missing model path",
			body:       `{"modelArchitecture":"cnn","modelVersion":1,"project_name":"p"}`,
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing metadata",
			body:       `{"modelPath":"/models/net.pt"}`,
			setupMocks: func(*mocks.MockRegistryService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			tt.setupMocks(mockSvc)

			router := v0.Router(mockSvc)
			req := httptest.NewRequest(http.MethodPost, "/store_model", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				var response v0.MessageResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, tt.wantMessage, response.Message)
			}
		})
	}
}

func TestUploadModel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().UploadModel(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.StoreResult{Stored: true, ModelID: "66daf3cae7e64e7bde7f46a0"}, nil)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "net.pt")
	require.NoError(t, err)
	_, err = part.Write([]byte("model weights"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("modelArchitecture", "transformer"))
	require.NoError(t, mw.WriteField("modelVersion", "1.2"))
	require.NoError(t, mw.WriteField("project_name", "chatbot"))
	require.NoError(t, mw.Close())

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodPost, "/upload_model", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response v0.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, "Model stored successfully.", response.Message)
}

func TestUploadModelMissingFile(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("modelArchitecture", "transformer"))
	require.NoError(t, mw.Close())

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodPost, "/upload_model", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestModelLookupRoutes(t *testing.T) {
	t.Parallel()

	storedModel := &service.Model{
		ID:         "66daf3cae7e64e7bde7f46a0",
		Filename:   "net.pt",
		Length:     2048,
		UploadDate: time.Now().UTC(),
		Metadata: service.ModelMetadata{
			ModelArchitecture: "transformer",
			ModelVersion:      1.2,
			ProjectName:       "chatbot",
			Digest:            "abc123",
		},
	}

	for _, path := range []string{"/search_model", "/get_model"} {
		t.Run(strings.TrimPrefix(path, "/")+" found", func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			mockSvc.EXPECT().GetModel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(storedModel, nil)

			router := v0.Router(mockSvc)
			body := `{"database":"model_registry","collection":"llm","modelId":"66daf3cae7e64e7bde7f46a0"}`
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)

			var response v0.ModelResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
			assert.Equal(t, "success", response.Status)
			assert.Equal(t, "transformer", response.Model.ModelArchitecture)
		})

		t.Run(strings.TrimPrefix(path, "/")+" not found", func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			mockSvc.EXPECT().GetModel(gomock.Any(), gomock.Any()).
				Return(nil, service.ErrModelNotFound)

			router := v0.Router(mockSvc)
			body := `{"modelId":"66daf3cae7e64e7bde7f46a0"}`
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error": "Model not found"}`, rr.Body.String())
		})
	}
}

func TestDeleteModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		setupMocks  func(*mocks.MockRegistryService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "deleted",
			body: `{"modelId":"66daf3cae7e64e7bde7f46a0"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteModel(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Model with ID '66daf3cae7e64e7bde7f46a0' deleted successfully.",
		},
		{
			name: "not found",
			body: `{"modelId":"66daf3cae7e64e7bde7f46a0"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteModel(gomock.Any(), gomock.Any()).Return(service.ErrModelNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "invalid id",
			body: `{"modelId":"not-hex"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteModel(gomock.Any(), gomock.Any()).Return(service.ErrInvalidModelID)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "backend failure",
			body: `{"modelId":"66daf3cae7e64e7bde7f46a0"}`,
			setupMocks: func(m *mocks.MockRegistryService) {
				m.EXPECT().DeleteModel(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockSvc := mocks.NewMockRegistryService(ctrl)
			tt.setupMocks(mockSvc)

			router := v0.Router(mockSvc)
			req := httptest.NewRequest(http.MethodDelete, "/delete_model", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				var response v0.MessageResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, tt.wantMessage, response.Message)
			}
		})
	}
}

func TestListModels(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().ListModels(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&service.ListModelsResult{
			Models: []*service.Model{
				{ID: "66daf3cae7e64e7bde7f46a0", Filename: "net.pt", Length: 2048},
			},
			Total: 1,
		}, nil)

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/list_models?database=experiments&collection=vision", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response v0.ListModelsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Total)
	require.Len(t, response.Models, 1)
	assert.Equal(t, "net.pt", response.Models[0].Filename)
}

func TestDownloadModel(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	storedModel := &service.Model{
		ID:       "66daf3cae7e64e7bde7f46a0",
		Filename: "net.pt",
		Length:   13,
	}

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().GetModel(gomock.Any(), gomock.Any()).Return(storedModel, nil)
	mockSvc.EXPECT().DownloadModel(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w io.Writer, _ ...service.Option[service.DownloadModelOptions]) (*service.Model, error) {
			_, err := w.Write([]byte("model weights"))
			return storedModel, err
		})

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/download_model/66daf3cae7e64e7bde7f46a0", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/octet-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="net.pt"`, rr.Header().Get("Content-Disposition"))
	assert.Equal(t, "model weights", rr.Body.String())
}

func TestDownloadModelNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockSvc := mocks.NewMockRegistryService(ctrl)
	mockSvc.EXPECT().GetModel(gomock.Any(), gomock.Any()).Return(nil, service.ErrModelNotFound)

	router := v0.Router(mockSvc)
	req := httptest.NewRequest(http.MethodGet, "/download_model/66daf3cae7e64e7bde7f46a0", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
