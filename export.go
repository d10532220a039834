package ctxmenu

import (
	"log/slog"

	"github.com/ctxmenu/ctxmenu/internal/config"
	"github.com/ctxmenu/ctxmenu/internal/display"
	"github.com/ctxmenu/ctxmenu/internal/menu"
	"github.com/ctxmenu/ctxmenu/internal/surface"
)

// FileConfig is the on-disk configuration shape.
type FileConfig = config.Config

// LoadConfig loads configuration from a TOML file, falling back to
// defaults when the file does not exist.
var LoadConfig = config.LoadConfig

// DefaultFileConfig returns the built-in configuration defaults.
var DefaultFileConfig = config.DefaultConfig

// Re-exported surface types, so hosts can build documents and elements
// without reaching into internal packages.
type (
	Document = surface.Document
	Element  = surface.Element
	Event    = surface.Event
	Rect     = surface.Rect
)

// Event names the document emits itself. Trigger events are free-form.
const (
	EventPointerDown = surface.EventPointerDown
	EventResize      = surface.EventResize
	EventScroll      = surface.EventScroll
)

// NewDocument creates a document with the given viewport size.
func NewDocument(width, height int, logger *slog.Logger) *Document {
	return surface.NewDocument(width, height, logger)
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return surface.NewElement(tag)
}

// Re-exported menu definition types.
type (
	Definition = menu.Definition
	Entry      = menu.Entry
	Options    = menu.Options
	Item       = menu.Item
	SelectFunc = menu.SelectFunc
)

// Do wraps a select handler as a definition entry spec.
var Do = menu.Do

// Bool is a convenience for the Options.Enabled pointer field.
var Bool = menu.Bool

// LoadDefinition reads a menu definition from a YAML file.
var LoadDefinition = menu.LoadDefinition

// Close reasons reported to OnClose callbacks.
type CloseReason = display.CloseReason

// CloseCallback is invoked after a menu has been torn down.
type CloseCallback = display.CloseCallback

const (
	CloseReasonExplicit  = display.CloseReasonExplicit
	CloseReasonDismissed = display.CloseReasonDismissed
	CloseReasonResize    = display.CloseReasonResize
	CloseReasonScroll    = display.CloseReasonScroll
	CloseReasonReplaced  = display.CloseReasonReplaced
	CloseReasonSelected  = display.CloseReasonSelected
)

// The class identifiers that make up the visual contract.
const (
	ClassMenu         = display.ClassMenu
	ClassItem         = display.ClassItem
	ClassItemDisabled = display.ClassItemDisabled
)
