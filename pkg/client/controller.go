package client

import (
	"context"
	"errors"
	"sync"

	"github.com/lumenworks/backend/internal/model"
)

// FormState tracks where the project form is in its lifecycle.
type FormState int

const (
	// FormIdle means no form is open.
	FormIdle FormState = iota
	// FormComposing means the form is open and editable.
	FormComposing
	// FormSubmitting means a save is in flight and the form is locked.
	FormSubmitting
)

// ErrSubmitting is returned when an action is not allowed while a save is
// in flight.
var ErrSubmitting = errors.New("controller: submission in progress")

// AdminController holds the dashboard's view of the backend: the loaded
// contact and project lists plus the project form state. All methods are
// safe for concurrent use. Every successful mutation refetches the affected
// list so the view always reflects the server, not a local guess.
type AdminController struct {
	api *Client

	mu        sync.Mutex
	contacts  []*model.Contact
	projects  []*model.Project
	formState FormState
	form      model.Project
	editingID string
}

// NewAdminController creates a controller backed by api with empty lists
// and an idle form.
func NewAdminController(api *Client) *AdminController {
	return &AdminController{api: api}
}

// Contacts returns a copy of the loaded contact list.
func (a *AdminController) Contacts() []*model.Contact {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*model.Contact, len(a.contacts))
	copy(out, a.contacts)
	return out
}

// Projects returns a copy of the loaded project list.
func (a *AdminController) Projects() []*model.Project {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]*model.Project, len(a.projects))
	copy(out, a.projects)
	return out
}

// FormState reports the current form lifecycle state.
func (a *AdminController) FormState() FormState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.formState
}

// Form returns a copy of the form contents.
func (a *AdminController) Form() model.Project {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.form
}

// EditingID returns the id of the project being edited, or "" when the form
// is creating a new one.
func (a *AdminController) EditingID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.editingID
}

// Refresh loads both lists from the server.
func (a *AdminController) Refresh(ctx context.Context) error {
	contacts, err := a.api.ListContacts(ctx)
	if err != nil {
		return err
	}
	projects, err := a.api.ListProjects(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.contacts = contacts
	a.projects = projects
	a.mu.Unlock()
	return nil
}

// OpenForm opens an empty form for a new project.
func (a *AdminController) OpenForm() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.formState == FormSubmitting {
		return ErrSubmitting
	}
	a.formState = FormComposing
	a.form = model.Project{}
	a.editingID = ""
	return nil
}

// EditProject opens the form pre-filled with the loaded project id.
func (a *AdminController) EditProject(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.formState == FormSubmitting {
		return ErrSubmitting
	}
	for _, p := range a.projects {
		if p.ID == id {
			a.formState = FormComposing
			a.form = *p
			a.editingID = id
			return nil
		}
	}
	return errors.New("controller: project not loaded")
}

// SetForm replaces the form contents. Only valid while composing.
func (a *AdminController) SetForm(p model.Project) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.formState != FormComposing {
		return errors.New("controller: no form open")
	}
	a.form = p
	return nil
}

// CloseForm abandons the form without saving.
func (a *AdminController) CloseForm() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.formState == FormSubmitting {
		return ErrSubmitting
	}
	a.formState = FormIdle
	a.form = model.Project{}
	a.editingID = ""
	return nil
}

// SubmitForm saves the form, creating or updating depending on whether a
// project is being edited. On success the form closes and the lists are
// refetched. On failure the form returns to composing with its contents
// intact so the operator can correct and retry.
func (a *AdminController) SubmitForm(ctx context.Context) error {
	a.mu.Lock()
	if a.formState != FormComposing {
		a.mu.Unlock()
		return errors.New("controller: no form open")
	}
	a.formState = FormSubmitting
	form := a.form
	editingID := a.editingID
	a.mu.Unlock()

	var err error
	if editingID == "" {
		_, err = a.api.CreateProject(ctx, &form)
	} else {
		_, err = a.api.UpdateProject(ctx, editingID, &form)
	}

	a.mu.Lock()
	if err != nil {
		a.formState = FormComposing
		a.mu.Unlock()
		return err
	}
	a.formState = FormIdle
	a.form = model.Project{}
	a.editingID = ""
	a.mu.Unlock()

	return a.Refresh(ctx)
}

// DeleteProject removes a project and refetches the lists.
func (a *AdminController) DeleteProject(ctx context.Context, id string) error {
	if err := a.api.DeleteProject(ctx, id); err != nil {
		return err
	}
	return a.Refresh(ctx)
}

// MarkContact moves a contact submission to the given status and refetches
// the lists.
func (a *AdminController) MarkContact(ctx context.Context, id, status string) error {
	if _, err := a.api.UpdateContactStatus(ctx, id, status); err != nil {
		return err
	}
	return a.Refresh(ctx)
}

// DeleteContact removes a contact submission and refetches the lists.
func (a *AdminController) DeleteContact(ctx context.Context, id string) error {
	if err := a.api.DeleteContact(ctx, id); err != nil {
		return err
	}
	return a.Refresh(ctx)
}
