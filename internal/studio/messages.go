package studio

import (
	"github.com/alexisbeaulieu97/headliner/internal/export"
)

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewEditor ViewMode = iota
	ViewExport
	ViewLibrary
	ViewHelp
)

// InputMode is the field the text input is currently editing.
type InputMode int

const (
	InputNone InputMode = iota
	InputText
	InputHighlight
)

// DeliveredMsg reports the outcome of a copy or download.
type DeliveredMsg struct {
	Result export.Result
}

// ClearStatusMsg expires a transient status line. Gen ties it to the status
// it was scheduled for so a newer status is not cleared early.
type ClearStatusMsg struct {
	Gen int
}

// ErrorMsg indicates a general error occurred
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg requests error banner dismissal
type ClearErrorMsg struct{}
