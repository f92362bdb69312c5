package labelconfig

import (
	"fmt"

	"github.com/charmbracelet/log"

	"lsconfig/internal/diagnostic"
	"lsconfig/internal/logging"
	"lsconfig/internal/match"
	"lsconfig/internal/tags"
)

// maxSuggestions caps the "did you mean" list of an unresolved toName.
const maxSuggestions = 3

// CodeUnknownControlType marks a control whose values are accepted unchecked.
const CodeUnknownControlType = "unknown_control_type"

// Linker resolves control targets and attaches labels.
type Linker struct {
	Logger *log.Logger
	// Diagnostics receives one warning per unresolved toName and one info per
	// control of unknown type. May be nil.
	Diagnostics *diagnostic.Diagnostics
}

// Link resolves every control of controls against objects and labels. It
// mutates and returns controls. Linking the same maps twice gives the same
// result.
func (l *Linker) Link(controls ControlMap, objects ObjectMap, labels LabelMap) ControlMap {
	logger := l.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if l.Diagnostics != nil {
		l.Diagnostics.Reset(CodeToNameUnresolved)
		l.Diagnostics.Reset(CodeUnknownControlType)
	}

	controlTypes := tags.ControlTypes()

	objectNames := objects.Names()

	for _, c := range controls.Sorted() {
		resolved := make([]string, 0, len(c.ToName))

		for _, name := range c.ToName {
			if _, ok := objects[name]; ok {
				resolved = append(resolved, name)
				continue
			}

			suggestions := match.Suggest(name, objectNames, maxSuggestions)
			logger.Warn("control target not found", "control", c.Name, "toName", name, "suggestions", suggestions)

			if l.Diagnostics != nil {
				l.Diagnostics.AddWarning(CodeToNameUnresolved,
					fmt.Sprintf("toName %q of control %q does not name an object", name, c.Name),
					c.Name, name, suggestions...)
			}
		}

		if !c.IsKnownType() && l.Diagnostics != nil {
			l.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityInfo,
				Code:        CodeUnknownControlType,
				Message:     fmt.Sprintf("control %q has unknown type %q, its values are not checked", c.Name, c.Tag),
				Tag:         c.Name,
				Suggestions: match.Suggest(c.Type(), controlTypes, maxSuggestions),
			})
		}

		c.SetObjects(resolved)
		c.SetLabels(labels.Ordered(c.Name))
	}

	return controls
}

// Link resolves controls with a discarding Linker.
func Link(controls ControlMap, objects ObjectMap, labels LabelMap) ControlMap {
	return (&Linker{}).Link(controls, objects, labels)
}
