// Package insights produces a short human-readable annotation for an upload
// from its metadata alone. File content is never inspected. Annotation is
// strictly best-effort: every failure path collapses into a deterministic
// fallback value and no error ever reaches the upload flow.
package insights

import (
	"context"
	"log"
)

// FileMeta is everything the annotator is allowed to see.
type FileMeta struct {
	Name      string
	MimeType  string
	SizeBytes int64
}

// Insights is the annotation shown on the share page. All three fields are
// always non-empty.
type Insights struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// Annotator turns file metadata into an annotation. Implementations must not
// return errors; they fall back instead.
type Annotator interface {
	Annotate(ctx context.Context, meta FileMeta) Insights
}

const fallbackDescription = "Securely shared file via QR-Drop."

// Fallback is the annotator used when no Gemini API key is configured. It is
// the explicit "capability unavailable" variant rather than a nil check at
// every call site.
type Fallback struct{}

func (Fallback) Annotate(_ context.Context, meta FileMeta) Insights {
	return Insights{
		Title:       meta.Name,
		Description: fallbackDescription,
		Category:    "File",
	}
}

// errorFallback is what a live annotator degrades to when the provider call
// fails; the category differs so the two paths are distinguishable in logs.
func errorFallback(meta FileMeta) Insights {
	return Insights{
		Title:       meta.Name,
		Description: fallbackDescription,
		Category:    "Other",
	}
}

// New returns a Gemini-backed annotator when an API key is present, otherwise
// the fallback variant. Never fails: an unreachable provider at startup also
// degrades to the fallback.
func New(ctx context.Context, apiKey, model string) Annotator {
	if apiKey == "" {
		log.Println("GEMINI_API_KEY not set, insight annotator running in fallback mode")
		return Fallback{}
	}
	annotator, err := newGemini(ctx, apiKey, model)
	if err != nil {
		log.Println("Failed to initialize Gemini client, falling back:", err)
		return Fallback{}
	}
	return annotator
}
