// Package notify holds the toast notification model and the store that
// accumulates active notifications for a single UI session.
package notify

import (
	"time"
)

// Category is a presentation tag for a notification. The zero value means
// "no category" and renders with the neutral style.
type Category string

const (
	CategoryNone    Category = ""
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryDanger  Category = "danger"
)

// Categories returns every named category in display order.
func Categories() []Category {
	return []Category{CategoryInfo, CategorySuccess, CategoryWarning, CategoryDanger}
}

// IsValid reports whether c is empty or one of the named categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryNone, CategoryInfo, CategorySuccess, CategoryWarning, CategoryDanger:
		return true
	default:
		return false
	}
}

// ContentKind tags the variant held by a Content value.
type ContentKind int

const (
	ContentNone ContentKind = iota
	ContentPayload
	ContentFragment
)

func (k ContentKind) String() string {
	switch k {
	case ContentPayload:
		return "payload"
	case ContentFragment:
		return "fragment"
	default:
		return "none"
	}
}

// RenderFunc produces displayable markup on demand.
type RenderFunc func() string

// Content is either a structured payload or a render fragment. Build it with
// Payload, Fragment or Markdown; the zero value holds nothing.
type Content struct {
	kind     ContentKind
	payload  any
	fragment RenderFunc
}

// Payload wraps arbitrary serializable key/value data. The value is stored
// as given and returned unchanged by Content.Payload.
func Payload(v any) Content {
	return Content{kind: ContentPayload, payload: v}
}

// Fragment wraps a zero-argument render function. A nil fn yields an empty
// Content.
func Fragment(fn RenderFunc) Content {
	if fn == nil {
		return Content{}
	}
	return Content{kind: ContentFragment, fragment: fn}
}

// Message is shorthand for Payload(map[string]any{"message": msg}).
func Message(msg string) Content {
	return Payload(map[string]any{"message": msg})
}

func (c Content) Kind() ContentKind { return c.kind }

// Payload returns the structured payload, or nil for other kinds.
func (c Content) Payload() any {
	if c.kind != ContentPayload {
		return nil
	}
	return c.payload
}

// Render invokes the fragment. It returns "" for non-fragment content.
func (c Content) Render() string {
	if c.kind != ContentFragment {
		return ""
	}
	return c.fragment()
}

// Notification is a single active toast.
type Notification struct {
	ID        ID
	Content   Content
	Category  Category
	CreatedAt time.Time
}
