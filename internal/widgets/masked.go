package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/formulary/internal/theme"
)

// DateMask is the mask used by date inputs.
const DateMask = "____-__-__"

// Digits restricts a mask to decimal digits.
const Digits = "0123456789"

// segment is one fixed-width editable run of a mask.
type segment struct {
	buf  []rune
	size int
}

func (s *segment) full() bool { return len(s.buf) >= s.size }

// maskPart is either a literal separator or an editable segment.
type maskPart struct {
	literal string
	seg     *segment
}

// MaskedInput edits text against a mask such as "____-__-__". Each run of
// placeholder characters is a segment with a fixed maximum length; the
// other characters are fixed separators. A segment that becomes full moves
// focus to the next one, and backspace in an empty segment continues into
// the previous one.
type MaskedInput struct {
	mask        string
	placeholder rune
	allowed     string
	parts       []maskPart
	segs        []*segment
	literals    string
	focus       int
	focused     bool
	styles      *theme.Styles
}

// NewMaskedInput parses mask. placeholder defaults to '_'; allowed, when
// non-empty, lists the accepted characters.
func NewMaskedInput(mask, placeholder, allowed string, styles *theme.Styles) (*MaskedInput, error) {
	ph := '_'
	if placeholder != "" {
		r := []rune(placeholder)
		if len(r) != 1 {
			return nil, fmt.Errorf("placeholder must be a single character, got %q", placeholder)
		}
		ph = r[0]
	}

	m := &MaskedInput{mask: mask, placeholder: ph, allowed: allowed, styles: styles}
	var literal strings.Builder
	size := 0
	flushLiteral := func() {
		if literal.Len() > 0 {
			m.parts = append(m.parts, maskPart{literal: literal.String()})
			m.literals += literal.String()
			literal.Reset()
		}
	}
	flushSegment := func() {
		if size > 0 {
			seg := &segment{size: size}
			m.parts = append(m.parts, maskPart{seg: seg})
			m.segs = append(m.segs, seg)
			size = 0
		}
	}
	for _, r := range mask {
		if r == ph {
			flushLiteral()
			size++
			continue
		}
		flushSegment()
		literal.WriteRune(r)
	}
	flushSegment()
	flushLiteral()

	if len(m.segs) == 0 {
		return nil, fmt.Errorf("mask %q has no %q placeholders", mask, string(ph))
	}
	return m, nil
}

// Mask returns the mask string.
func (m *MaskedInput) Mask() string { return m.mask }

func (m *MaskedInput) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}
	switch {
	case key.Matches(km, Keys.Delete):
		m.backspace()
	case key.Matches(km, Keys.Left):
		m.FocusPrev()
	case key.Matches(km, Keys.Right):
		m.FocusNext()
	default:
		for _, r := range runes(km) {
			m.insert(r)
		}
	}
	return nil
}

func (m *MaskedInput) insert(r rune) {
	seg := m.segs[m.focus]
	if seg.full() {
		return
	}
	if m.allowed != "" && !strings.ContainsRune(m.allowed, r) {
		return
	}
	seg.buf = append(seg.buf, r)
	if seg.full() && m.focus < len(m.segs)-1 {
		m.focus++
	}
}

func (m *MaskedInput) backspace() {
	seg := m.segs[m.focus]
	if len(seg.buf) > 0 {
		seg.buf = seg.buf[:len(seg.buf)-1]
		return
	}
	if m.focus == 0 {
		return
	}
	m.focus--
	prev := m.segs[m.focus]
	if len(prev.buf) > 0 {
		prev.buf = prev.buf[:len(prev.buf)-1]
	}
}

// Value returns the literals and segment texts in mask order, or nil while
// every segment is empty.
func (m *MaskedInput) Value() any {
	s, ok := m.Text()
	if !ok {
		return nil
	}
	return s
}

// Text is Value as a string; ok is false while nothing has been typed.
func (m *MaskedInput) Text() (string, bool) {
	empty := true
	for _, seg := range m.segs {
		if len(seg.buf) > 0 {
			empty = false
			break
		}
	}
	if empty {
		return "", false
	}
	var b strings.Builder
	for _, p := range m.parts {
		if p.seg != nil {
			b.WriteString(string(p.seg.buf))
		} else {
			b.WriteString(p.literal)
		}
	}
	return b.String(), true
}

// Complete reports whether every segment is full.
func (m *MaskedInput) Complete() bool {
	for _, seg := range m.segs {
		if !seg.full() {
			return false
		}
	}
	return true
}

// SetValue removes the mask's literal characters from v and spreads the
// rest over the segments. An empty v clears the input.
func (m *MaskedInput) SetValue(v string) error {
	var rest []rune
	for _, r := range v {
		if !strings.ContainsRune(m.literals, r) {
			rest = append(rest, r)
		}
	}

	if len(rest) == 0 {
		for _, seg := range m.segs {
			seg.buf = nil
		}
		m.focus = 0
		return nil
	}

	total := 0
	for _, seg := range m.segs {
		total += seg.size
	}
	if len(rest) != total {
		return fmt.Errorf("%w: %q has %d characters, mask %q takes %d", ErrMaskLength, v, len(rest), m.mask, total)
	}
	if m.allowed != "" {
		for _, r := range rest {
			if !strings.ContainsRune(m.allowed, r) {
				return fmt.Errorf("%w: %q", ErrMaskChars, r)
			}
		}
	}

	for _, seg := range m.segs {
		seg.buf = append([]rune(nil), rest[:seg.size]...)
		rest = rest[seg.size:]
	}
	m.focus = len(m.segs) - 1
	return nil
}

func (m *MaskedInput) View() string {
	var b strings.Builder
	for _, p := range m.parts {
		if p.seg == nil {
			b.WriteString(m.styles.Literal.Render(p.literal))
			continue
		}
		text := string(p.seg.buf) + strings.Repeat(string(m.placeholder), p.seg.size-len(p.seg.buf))
		if m.focused && p.seg == m.segs[m.focus] {
			b.WriteString(m.styles.SegmentFocus.Render(text))
		} else {
			b.WriteString(m.styles.Segment.Render(text))
		}
	}
	return b.String()
}

func (m *MaskedInput) Focus() tea.Cmd {
	m.focused = true
	m.focus = 0
	return nil
}

func (m *MaskedInput) FocusLast() tea.Cmd {
	m.focused = true
	m.focus = len(m.segs) - 1
	return nil
}

func (m *MaskedInput) Blur() { m.focused = false }
func (m *MaskedInput) Focused() bool { return m.focused }

func (m *MaskedInput) FocusNext() bool {
	if m.focus >= len(m.segs)-1 {
		return false
	}
	m.focus++
	return true
}

func (m *MaskedInput) FocusPrev() bool {
	if m.focus == 0 {
		return false
	}
	m.focus--
	return true
}

func (m *MaskedInput) Accepts(msg tea.KeyMsg) bool {
	return key.Matches(msg, Keys.Accept)
}

// FocusedSegment returns the index of the segment being edited.
func (m *MaskedInput) FocusedSegment() int { return m.focus }

// DateRange is a pair of date inputs.
type DateRange struct {
	from, to           *MaskedInput
	fromLabel, toLabel string
	onTo               bool
	focused            bool
	styles             *theme.Styles
}

// NewDateRange creates the widget. Empty labels default to "From: " and
// "To: ".
func NewDateRange(fromLabel, toLabel string, styles *theme.Styles) *DateRange {
	if fromLabel == "" {
		fromLabel = "From: "
	}
	if toLabel == "" {
		toLabel = "To: "
	}
	from, _ := NewMaskedInput(DateMask, "", Digits, styles)
	to, _ := NewMaskedInput(DateMask, "", Digits, styles)
	return &DateRange{from: from, to: to, fromLabel: fromLabel, toLabel: toLabel, styles: styles}
}

func (d *DateRange) active() *MaskedInput {
	if d.onTo {
		return d.to
	}
	return d.from
}

func (d *DateRange) Update(msg tea.Msg) tea.Cmd {
	if !d.focused {
		return nil
	}
	return d.active().Update(msg)
}

func (d *DateRange) View() string {
	return d.styles.Question.Render(d.fromLabel) + d.from.View() + "  " +
		d.styles.Question.Render(d.toLabel) + d.to.View()
}

func (d *DateRange) Focus() tea.Cmd {
	d.focused = true
	d.onTo = false
	d.to.Blur()
	return d.from.Focus()
}

func (d *DateRange) FocusLast() tea.Cmd {
	d.focused = true
	d.onTo = true
	d.from.Blur()
	return d.to.FocusLast()
}

func (d *DateRange) Blur() {
	d.focused = false
	d.from.Blur()
	d.to.Blur()
}

func (d *DateRange) Focused() bool { return d.focused }

// FocusNext walks the segments of "from", then those of "to".
func (d *DateRange) FocusNext() bool {
	if d.active().FocusNext() {
		return true
	}
	if d.onTo {
		return false
	}
	d.from.Blur()
	d.onTo = true
	d.to.Focus()
	return true
}

func (d *DateRange) FocusPrev() bool {
	if d.active().FocusPrev() {
		return true
	}
	if !d.onTo {
		return false
	}
	d.to.Blur()
	d.onTo = false
	d.from.FocusLast()
	return true
}

func (d *DateRange) Accepts(msg tea.KeyMsg) bool {
	return key.Matches(msg, Keys.Accept)
}

// Value returns {"from": ..., "to": ...}; each side is nil until typed in.
func (d *DateRange) Value() any {
	return map[string]any{"from": d.from.Value(), "to": d.to.Value()}
}

// SetValue fills both sides. Empty strings clear a side.
func (d *DateRange) SetValue(from, to string) error {
	if err := d.from.SetValue(from); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := d.to.SetValue(to); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	return nil
}

// From and To expose the two inputs.
func (d *DateRange) From() *MaskedInput { return d.from }
func (d *DateRange) To() *MaskedInput { return d.to }
