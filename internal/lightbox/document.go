package lightbox

// Recorder is an in-memory Document. It keeps the last overflow value and
// counts focus moves, which is all a server-rendered overlay needs to know.
type Recorder struct {
	overflow string
	Focused  int
}

// NewRecorder starts with the given document overflow.
func NewRecorder(overflow string) *Recorder {
	return &Recorder{overflow: overflow}
}

func (r *Recorder) FocusDismiss() { r.Focused++ }

func (r *Recorder) Overflow() string { return r.overflow }

func (r *Recorder) SetOverflow(v string) { r.overflow = v }

// ScrollLocked reports whether background scrolling is suppressed.
func (r *Recorder) ScrollLocked() bool { return r.overflow == OverflowHidden }
