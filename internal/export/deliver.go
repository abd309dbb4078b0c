package export

import (
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"

	"github.com/alexisbeaulieu97/headliner/internal/logger"
	headlineerrors "github.com/alexisbeaulieu97/headliner/pkg/errors"
)

// Clipboard receives copied artifacts.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardAvailable reports whether a system clipboard utility was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// Action is the kind of delivery attempted.
type Action string

const (
	ActionCopy     Action = "copy"
	ActionDownload Action = "download"
)

// Result is the outcome of one delivery. A failed delivery never discards
// the artifact text; callers still hold it.
type Result struct {
	Format Format
	Action Action
	Target string
	Err    error
}

// OK reports whether the delivery succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Deliverer copies or saves artifacts and logs failures.
type Deliverer struct {
	Clipboard Clipboard
	Dir       string
	Log       *logger.Logger
}

// NewDeliverer returns a deliverer writing downloads into dir.
func NewDeliverer(cb Clipboard, dir string, log *logger.Logger) *Deliverer {
	if cb == nil {
		cb = SystemClipboard{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Deliverer{Clipboard: cb, Dir: dir, Log: log}
}

// Copy places content on the clipboard.
func (d *Deliverer) Copy(f Format, content string) Result {
	res := Result{Format: f, Action: ActionCopy, Target: "clipboard"}
	if err := d.Clipboard.WriteAll(content); err != nil {
		res.Err = headlineerrors.NewDeliveryError(string(f), res.Target, err)
		d.Log.WithFields(map[string]any{"format": string(f), "action": string(ActionCopy)}).Error(err, "Failed to copy artifact")
		return res
	}
	d.Log.With("format", string(f)).Debug("Copied artifact to clipboard")
	return res
}

// Download writes exactly content to Dir/f.Filename().
func (d *Deliverer) Download(f Format, content string) Result {
	path := filepath.Join(d.Dir, f.Filename())
	res := Result{Format: f, Action: ActionDownload, Target: path}

	if err := writeArtifact(path, content); err != nil {
		res.Err = headlineerrors.NewDeliveryError(string(f), path, err)
		d.Log.WithFields(map[string]any{"format": string(f), "path": path}).Error(err, "Failed to save artifact")
		return res
	}
	d.Log.WithFields(map[string]any{"format": string(f), "path": path}).Info("Saved artifact")
	return res
}

func writeArtifact(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
