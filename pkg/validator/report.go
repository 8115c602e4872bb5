package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Violation is a single failed constraint.
type Violation struct {
	ID      ID
	Message string
	// Code is a stable machine key such as "validation.required".
	// Catalog rules always set it; rules built from plain messages leave it empty.
	Code string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.ID, v.Message)
}

// Report is the ordered list of violations that explains why a validation
// failed. It is the only failure payload produced by this package.
type Report []Violation

func (r Report) Error() string {
	if len(r) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(r))
	for _, v := range r {
		parts = append(parts, v.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// String renders one violation per line in detection order.
func (r Report) String() string {
	var sb strings.Builder
	for i, v := range r {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

// LogValue groups the violations as id=message pairs.
func (r Report) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(r))
	for _, v := range r {
		attrs = append(attrs, slog.String(v.ID.String(), v.Message))
	}
	return slog.GroupValue(attrs...)
}

// Has reports whether any violation is tagged with id. The id may be an ID or
// a raw key.
func (r Report) Has(id any) bool {
	want := toID(id)
	for _, v := range r {
		if v.ID == want {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for id.
func (r Report) Get(id any) []string {
	want := toID(id)
	var messages []string
	for _, v := range r {
		if v.ID == want {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// ByID returns the violations recorded for id.
func (r Report) ByID(id any) []Violation {
	want := toID(id)
	var out []Violation
	for _, v := range r {
		if v.ID == want {
			out = append(out, v)
		}
	}
	return out
}

// IDs returns the distinct identifiers in first-seen order.
func (r Report) IDs() []ID {
	var ids []ID
	seen := make(map[ID]bool)
	for _, v := range r {
		if !seen[v.ID] {
			ids = append(ids, v.ID)
			seen[v.ID] = true
		}
	}
	return ids
}

// Messages groups messages by rendered identifier. Identifiers that render
// the same, such as Key(1) and Key("1"), share one entry even though Has and
// Get tell them apart.
func (r Report) Messages() map[string][]string {
	out := make(map[string][]string, len(r))
	for _, v := range r {
		key := v.ID.String()
		out[key] = append(out[key], v.Message)
	}
	return out
}

// IsEmpty reports whether r holds no violations.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// AsReport extracts a Report from err.
func AsReport(err error) (Report, bool) {
	if err == nil {
		return nil, false
	}

	var report Report
	if errors.As(err, &report) {
		return report, true
	}
	return nil, false
}

// IsReport reports whether err is or wraps a Report.
func IsReport(err error) bool {
	_, ok := AsReport(err)
	return ok
}

// Builder accumulates violations for a single identifier. It is meant to live
// for one rule invocation only.
type Builder struct {
	id         ID
	violations []Violation
}

// NewBuilder returns a builder tagging violations with id (an ID or a raw key).
func NewBuilder(id any) *Builder {
	return &Builder{id: toID(id)}
}

// Add records a violation with message.
func (b *Builder) Add(message string) *Builder {
	b.violations = append(b.violations, Violation{ID: b.id, Message: message})
	return b
}

// AddCode records a violation with a machine code.
func (b *Builder) AddCode(code, message string) *Builder {
	b.violations = append(b.violations, Violation{ID: b.id, Message: message, Code: code})
	return b
}

// AddIf records a violation with message when cond is true.
func (b *Builder) AddIf(cond bool, message string) *Builder {
	if cond {
		b.Add(message)
	}
	return b
}

// Append copies the violations of r as they are, keeping their identifiers.
func (b *Builder) Append(r Report) *Builder {
	b.violations = append(b.violations, r...)
	return b
}

// Len returns the number of recorded violations.
func (b *Builder) Len() int {
	return len(b.violations)
}

// Report returns a copy of the accumulated violations.
func (b *Builder) Report() Report {
	if len(b.violations) == 0 {
		return nil
	}
	out := make(Report, len(b.violations))
	copy(out, b.violations)
	return out
}

// Err returns nil when nothing was recorded and the accumulated Report otherwise.
func (b *Builder) Err() error {
	if len(b.violations) == 0 {
		return nil
	}
	return b.Report()
}
