package ui

import (
	"fmt"

	"github.com/AlexZinkM/pagekit/internal/common"

	"go.uber.org/zap"
)

const (
	// HiddenClass hides the banner in the page stylesheet
	HiddenClass = "uk-hidden"
	// DefaultHeaderOffset is the height of the fixed page header
	DefaultHeaderOffset = 41
)

// Banner shows and clears the single page-level error message
type Banner struct {
	el       Element
	viewport Viewport
	offset   float64
	logger   *zap.Logger
}

// BannerOption configures a Banner
type BannerOption func(*Banner)

// WithViewport enables scrolling the banner into view
func WithViewport(vp Viewport) BannerOption {
	return func(b *Banner) { b.viewport = vp }
}

// WithHeaderOffset overrides DefaultHeaderOffset
func WithHeaderOffset(offset float64) BannerOption {
	return func(b *Banner) { b.offset = offset }
}

// WithBannerLogger sets the logger that records failed reveals
func WithBannerLogger(logger *zap.Logger) BannerOption {
	return func(b *Banner) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBanner creates a controller for the banner element el
func NewBanner(el Element, opts ...BannerOption) *Banner {
	b := &Banner{
		el:     el,
		offset: DefaultHeaderOffset,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ShowError displays v in the banner, or clears the banner when v is falsy.
// The text is v's message, else its error code, else v itself as a string.
func (b *Banner) ShowError(v any) {
	if b == nil || b.el == nil {
		return
	}
	if !common.Truthy(v) {
		b.el.AddClass(HiddenClass)
		b.el.Hide()
		b.el.SetText("")
		return
	}

	b.el.SetText(common.DisplayText(v))
	b.el.RemoveClass(HiddenClass)
	b.el.Show()

	if err := b.Reveal(); err != nil {
		b.logger.Debug("banner reveal skipped", zap.Error(err))
	}
}

// Clear hides the banner
func (b *Banner) Clear() {
	b.ShowError(nil)
}

// Reveal scrolls the page so the banner sits just below the fixed header
// when it is currently scrolled out of view above. It is best effort: the
// returned error is informational and a panicking viewport is recovered.
func (b *Banner) Reveal() (err error) {
	if b.viewport == nil {
		return ErrNoLayout
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("viewport panic: %v", r)
		}
	}()

	top, err := b.viewport.OffsetTop(b.el)
	if err != nil {
		return fmt.Errorf("failed to measure banner: %w", err)
	}
	scroll, err := b.viewport.ScrollTop()
	if err != nil {
		return fmt.Errorf("failed to read scroll position: %w", err)
	}
	if top < scroll-b.offset {
		if err := b.viewport.AnimateScrollTo(top - b.offset); err != nil {
			return fmt.Errorf("failed to scroll: %w", err)
		}
	}
	return nil
}
