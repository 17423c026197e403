package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumenworks/backend/internal/metrics"
	"github.com/lumenworks/backend/internal/model"
	"github.com/lumenworks/backend/internal/service"
)

// ContactHandler serves the public contact form and the admin contact list.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List handles GET /api/contacts. All submissions, newest first.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context(), 0)
	if err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}
	writeData(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts, the unauthenticated submission form.
// Echoes the stored record, including the generated id and timestamps.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c model.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// Ignore client-supplied identity; the store owns it.
	c.ID = ""

	if err := h.contactService.Create(r.Context(), &c); err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}
	metrics.RecordContactSubmission()
	writeData(w, http.StatusCreated, &c)
}

// Get handles GET /api/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}
	writeData(w, http.StatusOK, c)
}

// Update handles PUT /api/contacts/{id}. The body may be partial: supplied
// keys replace the stored values, omitted keys keep them. The merged record
// is validated as a whole, so a partial body can still fail validation.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, err := h.contactService.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	mergeString(raw, "fullName", &existing.FullName)
	mergeString(raw, "companyName", &existing.CompanyName)
	mergeString(raw, "email", &existing.Email)
	mergeString(raw, "projectType", &existing.ProjectType)
	mergeString(raw, "message", &existing.Message)
	mergeString(raw, "status", &existing.Status)

	if err := h.contactService.Update(r.Context(), existing); err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}
	writeData(w, http.StatusOK, existing)
}

// Delete handles DELETE /api/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err, "Contact not found")
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}

// mergeString overwrites dst when key is present in raw, including an
// explicit empty string. Unknown keys in raw are ignored by the callers.
func mergeString(raw map[string]json.RawMessage, key string, dst *string) {
	if b, ok := raw[key]; ok {
		var v string
		if json.Unmarshal(b, &v) == nil {
			*dst = v
		}
	}
}
