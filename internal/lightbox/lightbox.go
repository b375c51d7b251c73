// Package lightbox tracks which gallery image is shown in the overlay and
// pages through the images with wraparound.
package lightbox

import "errors"

var (
	ErrNoImages        = errors.New("lightbox: no images")
	ErrIndexOutOfRange = errors.New("lightbox: index out of range")
)

// Keys understood by HandleKey.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// OverflowHidden is the document overflow value while the overlay is open.
const OverflowHidden = "hidden"

// Image is one overlay entry.
type Image struct {
	Src   string
	Title string
	Alt   string
}

// State is the overlay visibility and the shown index.
type State struct {
	IsOpen       bool
	CurrentIndex int
}

// Document is the part of the page the overlay has side effects on.
type Document interface {
	// FocusDismiss moves input focus to the overlay's close control.
	FocusDismiss()
	// Overflow reports the document scroll setting.
	Overflow() string
	// SetOverflow replaces the document scroll setting.
	SetOverflow(v string)
}

// Controller owns the overlay state for one ordered list of images.
type Controller struct {
	images        []Image
	doc           Document
	state         State
	savedOverflow string
}

// New returns a closed controller over images.
func New(images []Image, doc Document) *Controller {
	return &Controller{images: images, doc: doc}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Len() int { return len(c.images) }

// NavigationEnabled reports whether next/prev controls should be operative.
func (c *Controller) NavigationEnabled() bool { return len(c.images) > 1 }

// Current returns the image at the current index while open.
func (c *Controller) Current() (Image, bool) {
	if !c.state.IsOpen {
		return Image{}, false
	}
	return c.images[c.state.CurrentIndex], true
}

// Open shows image i. Out of range requests are rejected and leave the state
// unchanged. Focus and scroll lock are applied only when coming from closed.
func (c *Controller) Open(i int) error {
	if len(c.images) == 0 {
		return ErrNoImages
	}
	if i < 0 || i >= len(c.images) {
		return ErrIndexOutOfRange
	}
	if !c.state.IsOpen {
		c.savedOverflow = c.doc.Overflow()
		c.doc.SetOverflow(OverflowHidden)
		c.doc.FocusDismiss()
	}
	c.state = State{IsOpen: true, CurrentIndex: i}
	return nil
}

// Resume puts the controller into an overlay that is already open at i,
// with overflow as the value the document had before it opened. Unlike Open
// it has no side effects, so focus stays where the user left it.
func (c *Controller) Resume(i int, overflow string) error {
	if len(c.images) == 0 {
		return ErrNoImages
	}
	if i < 0 || i >= len(c.images) {
		return ErrIndexOutOfRange
	}
	c.savedOverflow = overflow
	c.state = State{IsOpen: true, CurrentIndex: i}
	return nil
}

// Close hides the overlay and restores the document overflow it found on open.
func (c *Controller) Close() {
	if !c.state.IsOpen {
		return
	}
	c.doc.SetOverflow(c.savedOverflow)
	c.savedOverflow = ""
	c.state = State{}
}

// Next advances one image, wrapping to the first.
func (c *Controller) Next() {
	if !c.state.IsOpen {
		return
	}
	c.state.CurrentIndex = (c.state.CurrentIndex + 1) % len(c.images)
}

// Prev steps back one image, wrapping to the last.
func (c *Controller) Prev() {
	if !c.state.IsOpen {
		return
	}
	n := len(c.images)
	c.state.CurrentIndex = (c.state.CurrentIndex - 1 + n) % n
}

// HandleKey applies the keyboard binding for key and reports whether it was
// consumed. Keys are ignored while closed.
func (c *Controller) HandleKey(key string) bool {
	if !c.state.IsOpen {
		return false
	}
	switch key {
	case KeyEscape:
		c.Close()
	case KeyArrowRight:
		c.Next()
	case KeyArrowLeft:
		c.Prev()
	default:
		return false
	}
	return true
}
