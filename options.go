package xytable

// Option configures one scroll region for one frame.
type Option func(options)

// options maps OptKey names to values. A nil map reads as all defaults.
type options map[string]any

// OptKey names a region option and carries its type and default, so
// callers outside this package can add options of their own:
//
//	var OptSnap = xytable.NewOptKey("snap", float32(0))
//	r := ctx.BeginScrollRegion("body", vp, size, xytable.WithOpt(OptSnap, 50))
//	snap := xytable.GetOpt(r.Options(), OptSnap)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey returns a key that reads as def until set.
func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o options) { o[key.name] = value }
}

// GetOpt reads key from o. Unset keys, and values stored under the same
// name with another type, read as the key's default.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o[key.name].(T); ok {
		return v
	}
	return key.def
}

func applyOptions(opts []Option) options {
	if len(opts) == 0 {
		return nil
	}
	o := make(options, len(opts))
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ScrollbarVisibility controls when a region draws its scrollbars.
type ScrollbarVisibility int

const (
	ScrollbarAuto   ScrollbarVisibility = iota // only when content overflows
	ScrollbarAlways
	ScrollbarNever
)

// OffsetObserver receives a scroll region's content offset whenever it
// changes, and once when the region first appears.
type OffsetObserver func(offset Vec2)

var (
	OptInputDisabled       = NewOptKey("inputDisabled", false)
	OptHorizontalScroll    = NewOptKey("horizontalScroll", true)
	OptVerticalScroll      = NewOptKey("verticalScroll", true)
	OptScrollbarVisibility = NewOptKey("scrollbarVisibility", ScrollbarAuto)
	OptOffsetObserver      = NewOptKey[OffsetObserver]("offsetObserver", nil)
	OptBackground          = NewOptKey("background", ColorTransparent)
	// OptWheelStep overrides Style.WheelStep when positive.
	OptWheelStep = NewOptKey("wheelStep", float32(0))
)

// WithInputDisabled makes a region ignore wheel, drag and keys. Its offset
// then only changes through ScrollRegion.SetOffset and ScrollTo.
func WithInputDisabled() Option { return WithOpt(OptInputDisabled, true) }

// WithAxes selects which axes a region pans along.
func WithAxes(horizontal, vertical bool) Option {
	return func(o options) {
		o[OptHorizontalScroll.name] = horizontal
		o[OptVerticalScroll.name] = vertical
	}
}

// ShowScrollbar sets scrollbar visibility.
func ShowScrollbar(v ScrollbarVisibility) Option { return WithOpt(OptScrollbarVisibility, v) }

// WithOffsetObserver registers fn to observe the region's offset.
func WithOffsetObserver(fn OffsetObserver) Option { return WithOpt(OptOffsetObserver, fn) }

// WithBackground fills the viewport before content is drawn.
func WithBackground(color uint32) Option { return WithOpt(OptBackground, color) }

// WithWheelStep sets how far one wheel notch or arrow key moves the
// content, in pixels.
func WithWheelStep(step float32) Option { return WithOpt(OptWheelStep, step) }
