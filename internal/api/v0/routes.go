// Package v0 provides the REST API handlers for model registry access.
package v0

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"github.com/modelreg/model-registry-api/cmd/model-registry-api/docs"
	"github.com/modelreg/model-registry-api/internal/service"
	"github.com/modelreg/model-registry-api/pkg/versions"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger files spill to disk.
const maxUploadMemory = 32 << 20

var (
	// cachedOpenAPIYAML stores the cached YAML representation of the OpenAPI spec
	cachedOpenAPIYAML []byte
)

func init() {
	// Initialize the OpenAPI YAML at package load time to prevent race conditions
	// Parse the JSON OpenAPI spec
	var openAPISpec map[string]any
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &openAPISpec); err != nil {
		slog.Error("Failed to parse OpenAPI specification during initialization", "error", err)
		return
	}

	// Convert to YAML
	yamlData, err := yaml.Marshal(openAPISpec)
	if err != nil {
		slog.Error("Failed to convert OpenAPI specification to YAML during initialization", "error", err)
		return
	}

	cachedOpenAPIYAML = yamlData
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a human-readable outcome message
type MessageResponse struct {
	Message string `json:"message"`
}

// PasswordResponse represents a generated password
type PasswordResponse struct {
	Password string `json:"password"`
}

// ModelResponse represents a model lookup result
type ModelResponse struct {
	Status string                `json:"status"`
	Model  service.ModelMetadata `json:"model"`
}

// ListModelsResponse represents the model listing result
type ListModelsResponse struct {
	Models []*service.Model `json:"models"`
	Total  int              `json:"total"`
}

// CreateUserRequest is the body for the create user endpoint
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Database string `json:"database"`
}

// DeleteUserRequest is the body for the delete user endpoint
type DeleteUserRequest struct {
	Username string `json:"username"`
	Database string `json:"database"`
}

// StoreModelRequest is the body for the store model endpoint
type StoreModelRequest struct {
	Database          string  `json:"database"`
	Collection        string  `json:"collection"`
	ModelPath         string  `json:"modelPath"`
	ModelArchitecture string  `json:"modelArchitecture"`
	ModelVersion      float64 `json:"modelVersion"`
	ProjectName       string  `json:"project_name"`
}

// ModelIDRequest is the body shared by the delete, search, and get model endpoints
type ModelIDRequest struct {
	Database   string `json:"database"`
	Collection string `json:"collection"`
	ModelID    string `json:"modelId"`
}

// Routes defines the routes for the model registry API with dependency injection
type Routes struct {
	service service.RegistryService
}

// NewRoutes creates a new Routes instance with the provided service
func NewRoutes(svc service.RegistryService) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates a new router for the model registry API
func Router(svc service.RegistryService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	// System routes
	r.Get("/health", healthHandler)
	r.Get("/readiness", readinessHandler(svc))
	r.Get("/version", versionHandler)
	r.Get("/openapi.yaml", serveOpenAPIYAML)

	// User management
	r.Post("/create_user", routes.createUser)
	r.Delete("/delete_user", routes.deleteUser)
	r.Get("/generate_password", routes.generatePassword)

	// Model storage
	r.Post("/store_model", routes.storeModel)
	r.Post("/upload_model", routes.uploadModel)
	r.Delete("/delete_model", routes.deleteModel)
	r.Post("/search_model", routes.searchModel)
	r.Post("/get_model", routes.getModel)
	r.Get("/list_models", routes.listModels)
	r.Get("/download_model/{modelId}", routes.downloadModel)

	return r
}

// healthHandler handles health check requests
//
// @Summary		Health check
// @Description	Check if the model registry API is healthy
// @Tags			system
// @Produce		json
// @Success		200	{object}	api.HealthResponse
// @Router			/health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}

// readinessHandler handles readiness check requests
//
// @Summary		Readiness check
// @Description	Check if the model registry API is ready to serve requests
// @Tags			system
// @Produce		json
// @Success		200	{object}	api.ReadinessResponse
// @Failure		503	{object}	ErrorResponse
// @Router			/readiness [get]
func readinessHandler(svc service.RegistryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			errorResp := ErrorResponse{
				Error: "Service not ready: " + err.Error(),
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			if encodeErr := json.NewEncoder(w).Encode(errorResp); encodeErr != nil {
				slog.Error("Failed to encode readiness error response", "error", encodeErr)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ready"}`))
	}
}

// versionHandler handles version information requests
//
// @Summary		Version information
// @Description	Get version information about the model registry API
// @Tags			system
// @Produce		json
// @Success		200	{object}	api.VersionResponse
// @Router			/version [get]
func versionHandler(w http.ResponseWriter, _ *http.Request) {
	info := versions.GetVersionInfo()

	response := map[string]string{
		"version":    info.Version,
		"commit":     info.Commit,
		"build_date": info.BuildDate,
		"go_version": info.GoVersion,
		"platform":   info.Platform,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode version info", "error", err)
	}
}

// serveOpenAPIYAML serves the OpenAPI specification in YAML format
//
// @Summary		Get OpenAPI specification
// @Description	Returns the OpenAPI specification for the model registry API in YAML format
// @Tags			system
// @Produce		application/x-yaml
// @Success		200	{string}	string	"OpenAPI specification in YAML format"
// @Router			/openapi.yaml [get]
func serveOpenAPIYAML(w http.ResponseWriter, _ *http.Request) {
	// Check if initialization failed (cachedOpenAPIYAML would be empty)
	if len(cachedOpenAPIYAML) == 0 {
		http.Error(w, "OpenAPI specification not available", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/x-yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(cachedOpenAPIYAML)
}

// createUser handles POST /create_user
//
// @Summary		Create a MongoDB user
// @Description	Create a new user in the specified MongoDB database
// @Tags			users
// @Accept			json
// @Produce		json
// @Param			request	body		CreateUserRequest	true	"User details"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/create_user [post]
func (rr *Routes) createUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rr.writeErrorResponse(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := rr.service.CreateUser(r.Context(),
		service.WithUser[service.CreateUserOptions](req.Username, req.Database),
		service.WithUserPassword(req.Password),
		service.WithUserRole(req.Role),
	)
	if err != nil {
		slog.Error("Failed to create user", "username", req.Username, "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	rr.writeJSONResponse(w, MessageResponse{
		Message: fmt.Sprintf("User '%s' created successfully in database '%s'.", req.Username, req.Database),
	})
}

// deleteUser handles DELETE /delete_user
//
// @Summary		Delete a MongoDB user
// @Description	Delete a user from the specified MongoDB database
// @Tags			users
// @Accept			json
// @Produce		json
// @Param			request	body		DeleteUserRequest	true	"User details"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/delete_user [delete]
func (rr *Routes) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req DeleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rr.writeErrorResponse(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := rr.service.DeleteUser(r.Context(),
		service.WithUser[service.DeleteUserOptions](req.Username, req.Database),
	)
	if err != nil {
		slog.Error("Failed to delete user", "username", req.Username, "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	rr.writeJSONResponse(w, MessageResponse{
		Message: fmt.Sprintf("User '%s' deleted successfully from database '%s'.", req.Username, req.Database),
	})
}

// generatePassword handles GET /generate_password
//
// @Summary		Generate a password
// @Description	Generate a secure random password
// @Tags			users
// @Produce		json
// @Param			length			query		int		false	"Password length"	default(12)
// @Param			special_chars	query		bool	false	"Include special characters"	default(false)
// @Success		200				{object}	PasswordResponse
// @Failure		400				{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/generate_password [get]
func (rr *Routes) generatePassword(w http.ResponseWriter, r *http.Request) {
	length := service.DefaultPasswordLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			rr.writeErrorResponse(w, "Invalid length parameter: "+raw, http.StatusBadRequest)
			return
		}
		length = parsed
	}

	specialChars := false
	if raw := r.URL.Query().Get("special_chars"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			rr.writeErrorResponse(w, "Invalid special_chars parameter: "+raw, http.StatusBadRequest)
			return
		}
		specialChars = parsed
	}

	password, err := service.GeneratePassword(length, specialChars)
	if err != nil {
		rr.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	rr.writeJSONResponse(w, PasswordResponse{Password: password})
}

// storeModel handles POST /store_model
//
// @Summary		Store a model
// @Description	Store a model file from a server-local path in MongoDB GridFS with metadata
// @Tags			models
// @Accept			json
// @Produce		json
// @Param			request	body		StoreModelRequest	true	"Model location and metadata"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	ErrorResponse
// @Failure		500		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/store_model [post]
func (rr *Routes) storeModel(w http.ResponseWriter, r *http.Request) {
	var req StoreModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rr.writeErrorResponse(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	opts, err := storeOptions(req)
	if err != nil {
		rr.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rr.service.StoreModel(r.Context(), opts...)
	if err != nil {
		slog.Error("Failed to store model", "model_path", req.ModelPath, "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, storeMessage(result))
}

// storeOptions translates a store request into service options
func storeOptions(req StoreModelRequest) ([]service.Option[service.StoreModelOptions], error) {
	opts := []service.Option[service.StoreModelOptions]{
		service.WithModelPath(req.ModelPath),
		service.WithMetadata[service.StoreModelOptions](service.ModelMetadata{
			ModelArchitecture: req.ModelArchitecture,
			ModelVersion:      req.ModelVersion,
			ProjectName:       req.ProjectName,
		}),
	}
	if req.Database != "" {
		opts = append(opts, service.WithDatabase[service.StoreModelOptions](req.Database))
	}
	if req.Collection != "" {
		opts = append(opts, service.WithCollection[service.StoreModelOptions](req.Collection))
	}

	// Surface option validation errors before touching the service
	if _, err := service.ApplyOptions(opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

func storeMessage(result *service.StoreResult) MessageResponse {
	if result.Stored {
		return MessageResponse{Message: "Model stored successfully."}
	}
	return MessageResponse{Message: "Model already exists or could not be stored."}
}

// uploadModel handles POST /upload_model
//
// @Summary		Upload a model
// @Description	Upload a model file as multipart form data into MongoDB GridFS with metadata
// @Tags			models
// @Accept			multipart/form-data
// @Produce		json
// @Param			file				formData	file	true	"Model file"
// @Param			database			formData	string	false	"Target database"
// @Param			collection			formData	string	false	"Target GridFS bucket"
// @Param			modelArchitecture	formData	string	true	"Model architecture"
// @Param			modelVersion		formData	number	true	"Model version"
// @Param			project_name		formData	string	true	"Project name"
// @Success		200					{object}	MessageResponse
// @Failure		400					{object}	ErrorResponse
// @Failure		500					{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/upload_model [post]
func (rr *Routes) uploadModel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		rr.writeErrorResponse(w, "Invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		rr.writeErrorResponse(w, "Missing file part: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	version := float64(0)
	if raw := r.FormValue("modelVersion"); raw != "" {
		version, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			rr.writeErrorResponse(w, "Invalid modelVersion: "+raw, http.StatusBadRequest)
			return
		}
	}

	opts := []service.Option[service.UploadModelOptions]{
		service.WithContent(header.Filename, file),
		service.WithMetadata[service.UploadModelOptions](service.ModelMetadata{
			ModelArchitecture: r.FormValue("modelArchitecture"),
			ModelVersion:      version,
			ProjectName:       r.FormValue("project_name"),
		}),
	}
	if database := r.FormValue("database"); database != "" {
		opts = append(opts, service.WithDatabase[service.UploadModelOptions](database))
	}
	if collection := r.FormValue("collection"); collection != "" {
		opts = append(opts, service.WithCollection[service.UploadModelOptions](collection))
	}

	if _, err := service.ApplyOptions(opts...); err != nil {
		rr.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := rr.service.UploadModel(r.Context(), opts...)
	if err != nil {
		slog.Error("Failed to upload model", "filename", header.Filename, "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, storeMessage(result))
}

// deleteModel handles DELETE /delete_model
//
// @Summary		Delete a model
// @Description	Delete a model from MongoDB GridFS using its ID
// @Tags			models
// @Accept			json
// @Produce		json
// @Param			request	body		ModelIDRequest	true	"Model identifier"
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	ErrorResponse
// @Failure		404		{object}	ErrorResponse
// @Failure		500		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/delete_model [delete]
func (rr *Routes) deleteModel(w http.ResponseWriter, r *http.Request) {
	var req ModelIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rr.writeErrorResponse(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	err := rr.service.DeleteModel(r.Context(), modelIDOptions[service.DeleteModelOptions](req)...)
	if err != nil {
		rr.writeModelError(w, req.ModelID, err)
		return
	}

	rr.writeJSONResponse(w, MessageResponse{
		Message: fmt.Sprintf("Model with ID '%s' deleted successfully.", req.ModelID),
	})
}

// searchModel handles POST /search_model
//
// @Summary		Search for a model
// @Description	Look up a model's metadata by its ID
// @Tags			models
// @Accept			json
// @Produce		json
// @Param			request	body		ModelIDRequest	true	"Model identifier"
// @Success		200		{object}	ModelResponse
// @Failure		400		{object}	ErrorResponse
// @Failure		404		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/search_model [post]
func (rr *Routes) searchModel(w http.ResponseWriter, r *http.Request) {
	rr.lookupModel(w, r)
}

// getModel handles POST /get_model
//
// @Summary		Get a model
// @Description	Look up a model's metadata by its ID
// @Tags			models
// @Accept			json
// @Produce		json
// @Param			request	body		ModelIDRequest	true	"Model identifier"
// @Success		200		{object}	ModelResponse
// @Failure		400		{object}	ErrorResponse
// @Failure		404		{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/get_model [post]
func (rr *Routes) getModel(w http.ResponseWriter, r *http.Request) {
	rr.lookupModel(w, r)
}

// lookupModel implements the shared search/get lookup behavior
func (rr *Routes) lookupModel(w http.ResponseWriter, r *http.Request) {
	var req ModelIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rr.writeErrorResponse(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	model, err := rr.service.GetModel(r.Context(), modelIDOptions[service.GetModelOptions](req)...)
	if err != nil {
		rr.writeModelError(w, req.ModelID, err)
		return
	}

	rr.writeJSONResponse(w, ModelResponse{Status: "success", Model: model.Metadata})
}

// listModels handles GET /list_models
//
// @Summary		List models
// @Description	List all models stored in a GridFS bucket
// @Tags			models
// @Produce		json
// @Param			database	query		string	false	"Database name"
// @Param			collection	query		string	false	"GridFS bucket name"
// @Success		200			{object}	ListModelsResponse
// @Failure		400			{object}	ErrorResponse
// @Failure		500			{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/list_models [get]
func (rr *Routes) listModels(w http.ResponseWriter, r *http.Request) {
	var opts []service.Option[service.ListModelsOptions]
	if database := r.URL.Query().Get("database"); database != "" {
		opts = append(opts, service.WithDatabase[service.ListModelsOptions](database))
	}
	if collection := r.URL.Query().Get("collection"); collection != "" {
		opts = append(opts, service.WithCollection[service.ListModelsOptions](collection))
	}

	result, err := rr.service.ListModels(r.Context(), opts...)
	if err != nil {
		slog.Error("Failed to list models", "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rr.writeJSONResponse(w, ListModelsResponse{Models: result.Models, Total: result.Total})
}

// downloadModel handles GET /download_model/{modelId}
//
// @Summary		Download a model
// @Description	Stream a stored model file back to the client
// @Tags			models
// @Produce		application/octet-stream
// @Param			modelId		path		string	true	"Model ID"
// @Param			database	query		string	false	"Database name"
// @Param			collection	query		string	false	"GridFS bucket name"
// @Success		200			{file}		binary
// @Failure		400			{object}	ErrorResponse
// @Failure		404			{object}	ErrorResponse
// @Failure		500			{object}	ErrorResponse
// @Security		BasicAuth
// @Router			/download_model/{modelId} [get]
func (rr *Routes) downloadModel(w http.ResponseWriter, r *http.Request) {
	modelID := chi.URLParam(r, "modelId")
	database := r.URL.Query().Get("database")
	collection := r.URL.Query().Get("collection")

	getOpts := []service.Option[service.GetModelOptions]{
		service.WithModelID[service.GetModelOptions](modelID),
	}
	downloadOpts := []service.Option[service.DownloadModelOptions]{
		service.WithModelID[service.DownloadModelOptions](modelID),
	}
	if database != "" {
		getOpts = append(getOpts, service.WithDatabase[service.GetModelOptions](database))
		downloadOpts = append(downloadOpts, service.WithDatabase[service.DownloadModelOptions](database))
	}
	if collection != "" {
		getOpts = append(getOpts, service.WithCollection[service.GetModelOptions](collection))
		downloadOpts = append(downloadOpts, service.WithCollection[service.DownloadModelOptions](collection))
	}

	// Fetch the descriptor first so headers can be written before streaming
	model, err := rr.service.GetModel(r.Context(), getOpts...)
	if err != nil {
		rr.writeModelError(w, modelID, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", model.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(model.Length, 10))

	if _, err := rr.service.DownloadModel(r.Context(), w, downloadOpts...); err != nil {
		// Headers are already sent; the truncated body is the only signal left
		slog.Error("Failed to stream model content", "model_id", modelID, "error", err)
	}
}

// modelIDOptions translates a model id request into options for an id-keyed operation
func modelIDOptions[
	T service.GetModelOptions | service.DownloadModelOptions | service.DeleteModelOptions,
](req ModelIDRequest) []service.Option[T] {
	opts := []service.Option[T]{}
	if req.ModelID != "" {
		opts = append(opts, service.WithModelID[T](req.ModelID))
	}
	if req.Database != "" {
		opts = append(opts, service.WithDatabase[T](req.Database))
	}
	if req.Collection != "" {
		opts = append(opts, service.WithCollection[T](req.Collection))
	}
	return opts
}

// writeModelError maps service errors for id-keyed model operations to HTTP responses
func (rr *Routes) writeModelError(w http.ResponseWriter, modelID string, err error) {
	switch {
	case errors.Is(err, service.ErrModelNotFound):
		rr.writeErrorResponse(w, "Model not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidModelID):
		rr.writeErrorResponse(w, fmt.Sprintf("Invalid model ID '%s'", modelID), http.StatusBadRequest)
	default:
		slog.Error("Model operation failed", "model_id", modelID, "error", err)
		rr.writeErrorResponse(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeJSONResponse writes a JSON response with the given data
func (*Routes) writeJSONResponse(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// writeErrorResponse writes a standardized error response
func (*Routes) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	errorResp := ErrorResponse{
		Error: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}
