package ctxmenu

// Config is the per-attachment menu configuration: the trigger event, the
// anchor mode, the placement offsets, and an opaque data payload handed to
// select callbacks.
type Config struct {
	Trigger string
	Anchor  string
	OffsetX int
	OffsetY int
	Data    any
}

// Option overrides one field of the per-attachment configuration.
type Option func(*Config)

// WithTrigger sets the event name that opens the menu.
func WithTrigger(name string) Option {
	return func(c *Config) { c.Trigger = name }
}

// WithAnchor sets the anchor mode: bottom, top, left, right, or pointer.
// Unrecognized modes fall back to pointer placement.
func WithAnchor(anchor string) Option {
	return func(c *Config) { c.Anchor = anchor }
}

// WithOffsets sets the horizontal and vertical placement offsets in cells.
func WithOffsets(x, y int) Option {
	return func(c *Config) {
		c.OffsetX = x
		c.OffsetY = y
	}
}

// WithData sets the auxiliary payload passed to select callbacks.
func WithData(data any) Option {
	return func(c *Config) { c.Data = data }
}
