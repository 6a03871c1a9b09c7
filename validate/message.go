package validate

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-varcheck/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Severity of an emitted diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

func (s Severity) tag() string {
	if s == SeverityWarning {
		return "WARNING!"
	}

	return "ERROR!"
}

// Markup controls how the severity tag at the start of each message is decorated.
type Markup int

const (
	// MarkupPlain prints the tag as is.
	MarkupPlain Markup = iota
	// MarkupRich wraps the tag in <color=...> rich-text markup.
	MarkupRich
	// MarkupANSI colors the tag with ANSI escape sequences.
	MarkupANSI
)

var markupNames = map[Markup]string{ //nolint:gochecknoglobals
	MarkupPlain: "plain",
	MarkupRich:  "rich",
	MarkupANSI:  "ansi",
}

func (m Markup) String() string {
	if name, ok := markupNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Markup(%d)", int(m))
}

// ParseMarkup parses "plain", "rich" or "ansi" (case-insensitive).
func ParseMarkup(name string) (Markup, error) {
	for m, n := range markupNames {
		if strings.EqualFold(n, name) {
			return m, nil
		}
	}

	return MarkupPlain, fmt.Errorf("%w: unknown markup %q", errors.ErrInvalidConfiguration, name)
}

// The renderer is pinned to the ANSI profile so output doesn't depend on
// whether stdout is a terminal.
var (
	ansiRenderer = newANSIRenderer()                                                    //nolint:gochecknoglobals
	ansiError    = ansiRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) //nolint:gochecknoglobals
	ansiWarning  = ansiRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) //nolint:gochecknoglobals
)

func newANSIRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	return r
}

func (m Markup) render(sev Severity) string {
	tag := sev.tag()

	switch m {
	case MarkupRich:
		color := "red"
		if sev == SeverityWarning {
			color = "yellow"
		}

		return fmt.Sprintf("<color=%s>%s</color>", color, tag)
	case MarkupANSI:
		if sev == SeverityWarning {
			return ansiWarning.Render(tag)
		}

		return ansiError.Render(tag)
	default:
		return tag
	}
}

// DefaultOwnerKind is the noun printed after the owner name.
const DefaultOwnerKind = "object"

// Formatter builds diagnostic messages of the form
//
//	<tag> The variable '<name>' in '<owner>' <owner kind> <detail>
type Formatter struct {
	Markup    Markup
	OwnerKind string
}

func (f Formatter) prefix(sev Severity, owner, variable string) string {
	kind := f.OwnerKind
	if kind == "" {
		kind = DefaultOwnerKind
	}

	return fmt.Sprintf("%s The variable '%s' in '%s' %s", f.Markup.render(sev), variable, owner, kind)
}

// ErrorPrefix returns the prefix used for violations.
func (f Formatter) ErrorPrefix(owner, variable string) string {
	return f.prefix(SeverityError, owner, variable)
}

// WarningPrefix returns the prefix used for inapplicable checks.
func (f Formatter) WarningPrefix(owner, variable string) string {
	return f.prefix(SeverityWarning, owner, variable)
}

// Message returns the full diagnostic text.
func (f Formatter) Message(sev Severity, owner, variable, detail string) string {
	return f.prefix(sev, owner, variable) + " " + detail
}

// ErrorPrefix returns the plain-markup error prefix with the default owner kind.
func ErrorPrefix(owner, variable string) string {
	return Formatter{}.ErrorPrefix(owner, variable)
}

// WarningPrefix returns the plain-markup warning prefix with the default owner kind.
func WarningPrefix(owner, variable string) string {
	return Formatter{}.WarningPrefix(owner, variable)
}
