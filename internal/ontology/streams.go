package ontology

import "strings"

// StreamResolution is the canonical stream-code set for a declared stream.
// Recognized is false when the input did not match any known label and the
// lowercased raw value was passed through as a single code. Callers treat
// both cases identically; the flag exists so the degradation stays visible.
type StreamResolution struct {
	Codes      []string
	Recognized bool
}

// ResolveStreams maps a student's declared stream label (case-insensitive)
// to canonical stream codes. Unknown labels degrade to a lowercased
// single-code set, which simply fails to match any program requirement.
func ResolveStreams(stream string) StreamResolution {
	switch strings.ToLower(strings.TrimSpace(stream)) {
	case "medical":
		return StreamResolution{Codes: []string{"pcb"}, Recognized: true}
	case "engineering":
		return StreamResolution{Codes: []string{"pcm"}, Recognized: true}
	case "commerce":
		return StreamResolution{Codes: []string{"commerce"}, Recognized: true}
	default:
		return StreamResolution{Codes: []string{strings.ToLower(strings.TrimSpace(stream))}, Recognized: false}
	}
}

// Contains reports whether the resolution includes the given code.
func (r StreamResolution) Contains(code string) bool {
	for _, c := range r.Codes {
		if c == code {
			return true
		}
	}
	return false
}
