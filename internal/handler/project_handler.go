package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/lumenworks/backend/internal/metrics"
	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/service"
	"github.com/lumenworks/backend/internal/storage"
)

const maxImageSize = 2 << 20 // 2 MB decoded

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ProjectHandler serves the public project list and the admin authoring CRUD.
type ProjectHandler struct {
	projectService service.ProjectService
	store          storage.Storage // nil = keep data URIs inline
	publicLimit    int             // 0 = uncapped list
}

// NewProjectHandler creates a ProjectHandler. When publicLimit is positive,
// List returns at most that many records and disables response caching so
// the public site never shows a stale set. When store is non-nil, incoming
// data-URI images are written to it and replaced by their served URL.
func NewProjectHandler(projectService service.ProjectService, store storage.Storage, publicLimit int) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, store: store, publicLimit: publicLimit}
}

// List handles GET /api/projects, newest first.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context(), h.publicLimit)
	if err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}
	if h.publicLimit > 0 {
		w.Header().Set("Cache-Control", "no-store")
	}
	writeData(w, http.StatusOK, projects)
}

// Create handles POST /api/projects, the admin authoring form.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p.ID = ""

	if ok := h.offloadImage(w, r, &p); !ok {
		return
	}
	if err := h.projectService.Create(r.Context(), &p); err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}
	metrics.RecordProjectMutation("create")
	writeData(w, http.StatusCreated, &p)
}

// Get handles GET /api/projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}
	writeData(w, http.StatusOK, p)
}

// Update handles PUT /api/projects/{id}. Same partial-merge contract as the
// contact update: supplied keys win, omitted keys keep their stored value.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.projectService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mergeString(raw, "title", &existing.Title)
	mergeString(raw, "description", &existing.Description)
	mergeString(raw, "category", &existing.Category)
	mergeString(raw, "image", &existing.Image)
	mergeString(raw, "link", &existing.Link)
	mergeString(raw, "status", &existing.Status)
	if b, ok := raw["technologies"]; ok {
		var v []string
		if json.Unmarshal(b, &v) == nil {
			existing.Technologies = v
		}
	}

	if ok := h.offloadImage(w, r, existing); !ok {
		return
	}
	if err := h.projectService.Update(r.Context(), existing); err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}
	metrics.RecordProjectMutation("update")
	writeData(w, http.StatusOK, existing)
}

// Delete handles DELETE /api/projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.projectService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "Project not found")
		return
	}
	metrics.RecordProjectMutation("delete")
	writeData(w, http.StatusOK, struct{}{})
}

// offloadImage replaces an inline data-URI image with a stored-file URL when
// a storage backend is configured. Without one, the data URI stays in the
// record as-is. Returns false after writing an error response.
func (h *ProjectHandler) offloadImage(w http.ResponseWriter, r *http.Request, p *model.Project) bool {
	if h.store == nil || !strings.HasPrefix(p.Image, "data:") {
		return true
	}

	contentType, data, err := decodeDataURI(p.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid image data")
		return false
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		writeError(w, http.StatusBadRequest, "Unsupported image type")
		return false
	}
	if len(data) > maxImageSize {
		writeError(w, http.StatusBadRequest, "Image size should be less than 2MB")
		return false
	}

	key := path.Join("projects", uuid.NewString()+ext)
	url, err := h.store.Save(r.Context(), key, bytes.NewReader(data), contentType)
	if err != nil {
		writeServiceError(w, err, "Project not found")
		return false
	}
	p.Image = url
	return true
}

var errInvalidDataURI = errors.New("invalid data uri")

// decodeDataURI splits a "data:<type>;base64,<payload>" string.
func decodeDataURI(uri string) (contentType string, data []byte, err error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, errInvalidDataURI
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errInvalidDataURI
	}
	return contentType, data, nil
}
