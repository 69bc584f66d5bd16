package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/topoclimb/topoclimb-gateway/federation"
	"github.com/topoclimb/topoclimb-gateway/registry"
	"github.com/topoclimb/topoclimb-gateway/topoclimb"
)

// EndpointHandler manages the configured backend endpoints.
type EndpointHandler struct {
	reg     *registry.Registry
	factory *federation.Factory
}

func NewEndpointHandler(reg *registry.Registry, factory *federation.Factory) *EndpointHandler {
	return &EndpointHandler{reg: reg, factory: factory}
}

// endpointResponse is the outward representation of an endpoint.
// The auth token is write-only and never leaves the gateway.
type endpointResponse struct {
	ID            uuid.UUID              `json:"id"`
	Name          string                 `json:"name"`
	BaseURL       string                 `json:"base_url"`
	Enabled       bool                   `json:"enabled"`
	Default       bool                   `json:"default"`
	Authenticated bool                   `json:"authenticated"`
	User          *registry.UserSnapshot `json:"user,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func toEndpointResponse(ep registry.Endpoint) endpointResponse {
	return endpointResponse{
		ID:            ep.ID,
		Name:          ep.Name,
		BaseURL:       ep.BaseURL,
		Enabled:       ep.Enabled,
		Default:       ep.Default,
		Authenticated: ep.Authenticated(),
		User:          ep.User,
		CreatedAt:     ep.CreatedAt,
		UpdatedAt:     ep.UpdatedAt,
	}
}

// writeRegistryError maps registry sentinel errors onto HTTP statuses.
func writeRegistryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, registry.ErrInvalidURL):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrDuplicateURL):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, registry.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	case errors.Is(err, registry.ErrLastEndpoint), errors.Is(err, registry.ErrNoEnabledEndpoint):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registry operation failed"})
	}
}

func endpointID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endpoint ID"})
		return uuid.Nil, false
	}
	return id, true
}

// ListEndpoints handles GET /gateway/backends.
func (h *EndpointHandler) ListEndpoints(c *gin.Context) {
	endpoints := h.reg.List()
	resp := make([]endpointResponse, len(endpoints))
	for i, ep := range endpoints {
		resp[i] = toEndpointResponse(ep)
	}
	c.JSON(http.StatusOK, resp)
}

// GetEndpoint handles GET /gateway/backends/:id.
func (h *EndpointHandler) GetEndpoint(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	ep, ok := h.reg.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
		return
	}
	c.JSON(http.StatusOK, toEndpointResponse(ep))
}

type createEndpointRequest struct {
	Name    string `json:"name"     binding:"required"`
	BaseURL string `json:"base_url" binding:"required"`
	Enabled *bool  `json:"enabled"`
	Default bool   `json:"default"`
}

// CreateEndpoint handles POST /gateway/backends.
func (h *EndpointHandler) CreateEndpoint(c *gin.Context) {
	var req createEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep := registry.Endpoint{
		Name:    req.Name,
		BaseURL: req.BaseURL,
		Enabled: true,
		Default: req.Default,
	}
	if req.Enabled != nil {
		ep.Enabled = *req.Enabled
	}

	created, err := h.reg.Add(c.Request.Context(), ep)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEndpointResponse(created))
}

// updateEndpointRequest uses pointer fields for partial updates.
type updateEndpointRequest struct {
	Name    *string `json:"name"`
	BaseURL *string `json:"base_url"`
}

// UpdateEndpoint handles PATCH /gateway/backends/:id.
// Changing the base URL drops the endpoint's cached API client; a rename
// keeps it.
func (h *EndpointHandler) UpdateEndpoint(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}

	var req updateEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == nil && req.BaseURL == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields provided to update"})
		return
	}

	ep, exists := h.reg.Get(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
		return
	}

	urlChanged := false
	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		ep.Name = *req.Name
	}
	if req.BaseURL != nil && *req.BaseURL != ep.BaseURL {
		ep.BaseURL = *req.BaseURL
		urlChanged = true
	}

	updated, err := h.reg.Update(c.Request.Context(), ep)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	if urlChanged {
		h.factory.Remove(id)
	}
	c.JSON(http.StatusOK, toEndpointResponse(updated))
}

// DeleteEndpoint handles DELETE /gateway/backends/:id.
func (h *EndpointHandler) DeleteEndpoint(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	if err := h.reg.Delete(c.Request.Context(), id); err != nil {
		writeRegistryError(c, err)
		return
	}
	h.factory.Remove(id)
	c.Status(http.StatusNoContent)
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetEnabled handles POST /gateway/backends/:id/enabled.
func (h *EndpointHandler) SetEnabled(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ep, err := h.reg.SetEnabled(c.Request.Context(), id, *req.Enabled)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEndpointResponse(ep))
}

// SetDefault handles POST /gateway/backends/:id/default.
func (h *EndpointHandler) SetDefault(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	ep, err := h.reg.SetDefault(c.Request.Context(), id)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEndpointResponse(ep))
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /gateway/backends/:id/login.
// Authenticates against the backend itself, then stores the returned token and
// user snapshot on the endpoint.
func (h *EndpointHandler) Login(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ep, exists := h.reg.Get(id)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
		return
	}

	auth, err := h.factory.Client(ep).Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var apiErr *topoclimb.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "backend rejected the credentials"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend login failed: " + err.Error()})
		return
	}

	snapshot := &registry.UserSnapshot{
		ID:       auth.User.ID,
		Username: auth.User.Username,
		Email:    auth.User.Email,
	}
	updated, err := h.reg.Authenticate(c.Request.Context(), id, auth.Token, snapshot)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEndpointResponse(updated))
}

// Logout handles POST /gateway/backends/:id/logout.
func (h *EndpointHandler) Logout(c *gin.Context) {
	id, ok := endpointID(c)
	if !ok {
		return
	}
	ep, err := h.reg.Logout(c.Request.Context(), id)
	if err != nil {
		writeRegistryError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEndpointResponse(ep))
}
