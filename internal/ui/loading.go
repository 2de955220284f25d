package ui

const (
	SpinnerClass = "uk-icon-spinner"
	SpinClass    = "uk-icon-spin"
	DisabledAttr = "disabled"
)

// Loader toggles the loading state of a form's submit button. The state
// lives in the elements themselves, so Start and Stop are idempotent.
type Loader struct {
	button Element
	icon   Element
}

// NewLoader creates a Loader for button and its icon. Either may be nil.
func NewLoader(button, icon Element) *Loader {
	return &Loader{button: button, icon: icon}
}

// Start shows the spinner and disables the button
func (l *Loader) Start() {
	if l == nil {
		return
	}
	if l.icon != nil {
		l.icon.AddClass(SpinnerClass, SpinClass)
	}
	if l.button != nil {
		l.button.SetAttr(DisabledAttr, DisabledAttr)
	}
}

// Stop removes the spinner and enables the button
func (l *Loader) Stop() {
	if l == nil {
		return
	}
	if l.icon != nil {
		l.icon.RemoveClass(SpinClass, SpinnerClass)
	}
	if l.button != nil {
		l.button.RemoveAttr(DisabledAttr)
	}
}

// Loading reports whether the button is currently disabled
func (l *Loader) Loading() bool {
	if l == nil || l.button == nil {
		return false
	}
	_, ok := l.button.Attr(DisabledAttr)
	return ok
}
