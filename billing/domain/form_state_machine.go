package domain

import (
	"encore.dev/beta/errs"

	"admin.app/billing/apperr"
)

type FormState string

const (
	FormStateClosed      FormState = "closed"
	FormStateOpenCreate  FormState = "open_create"
	FormStateEditLoading FormState = "edit_loading"
	FormStateOpenEdit    FormState = "open_edit"
)

// FormStateMachine tracks the lifecycle of the invoice composition form.
// The zero value is a closed form.
type FormStateMachine struct {
	state FormState
}

func NewFormStateMachine() *FormStateMachine {
	return &FormStateMachine{state: FormStateClosed}
}

func (sm *FormStateMachine) State() FormState {
	if sm.state == "" {
		return FormStateClosed
	}
	return sm.state
}

// Interactive reports whether the form accepts user edits.
func (sm *FormStateMachine) Interactive() bool {
	s := sm.State()
	return s == FormStateOpenCreate || s == FormStateOpenEdit
}

// Editing reports whether the form targets an existing invoice.
func (sm *FormStateMachine) Editing() bool {
	s := sm.State()
	return s == FormStateEditLoading || s == FormStateOpenEdit
}

// TransitionToOpenCreate opens an empty form. Only a closed form can be opened.
func (sm *FormStateMachine) TransitionToOpenCreate() error {
	if sm.State() != FormStateClosed {
		return apperr.New(errs.InvalidArgument, "form must be closed to open for create")
	}
	sm.state = FormStateOpenCreate
	return nil
}

// TransitionToEditLoading opens the form for an existing invoice while its
// details are fetched.
func (sm *FormStateMachine) TransitionToEditLoading() error {
	if sm.State() != FormStateClosed {
		return apperr.New(errs.InvalidArgument, "form must be closed to open for edit")
	}
	sm.state = FormStateEditLoading
	return nil
}

func (sm *FormStateMachine) TransitionToOpenEdit() error {
	if sm.State() != FormStateEditLoading {
		return apperr.New(errs.InvalidArgument, "form must be loading an invoice to become editable")
	}
	sm.state = FormStateOpenEdit
	return nil
}

// TransitionToClosed closes the form from any state. Closing a closed form
// is a no-op.
func (sm *FormStateMachine) TransitionToClosed() {
	sm.state = FormStateClosed
}

// RequireInteractive returns an error unless the form accepts edits.
func (sm *FormStateMachine) RequireInteractive() error {
	if !sm.Interactive() {
		return apperr.New(errs.FailedPrecondition, "form is not open for editing (state " + string(sm.State()) + ")")
	}
	return nil
}
