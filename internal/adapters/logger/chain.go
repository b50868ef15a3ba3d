package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// link is one level of an error chain as shown to the user.
type link struct {
	text   string
	fields map[string]any
}

func (k link) String() string {
	if len(k.fields) == 0 {
		return k.text
	}
	pairs := make([]string, 0, len(k.fields))
	for _, key := range slices.Sorted(maps.Keys(k.fields)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, k.fields[key]))
	}
	return k.text + " (" + strings.Join(pairs, ", ") + ")"
}

// unchain flattens err into links, outermost first.
//
// A zerr error contributes its own message and metadata; one without a
// message hands its metadata to the next link. Joined errors contribute each
// branch in turn. Any other error contributes its full text and ends the
// branch.
func unchain(err error) []link {
	var links []link
	carried := map[string]any{}

	for err != nil {
		switch e := err.(type) {
		case *zerr.Error:
			maps.Copy(carried, e.Metadata())
			if e.Message() != "" {
				links = append(links, link{text: e.Message(), fields: carried})
				carried = map[string]any{}
			}
			err = e.Unwrap()
		case interface{ Unwrap() []error }:
			for _, branch := range e.Unwrap() {
				links = append(links, unchain(branch)...)
			}
			return links
		default:
			return append(links, link{text: e.Error(), fields: carried})
		}
	}
	return links
}

// render lays out links as a headline followed by an indented cause list.
// Continuation lines of multi-line messages stay aligned with their first line.
func render(links []link) string {
	lines := make([]string, 0, len(links)+2)

	for i, l := range links {
		first, rest, _ := strings.Cut(l.String(), "\n")
		lead, indent := "    → ", "      "
		switch i {
		case 0:
			lead, indent = "Error: ", "       "
		case 1:
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, lead+first)
		if rest != "" {
			for line := range strings.SplitSeq(rest, "\n") {
				lines = append(lines, indent+line)
			}
		}
	}

	return strings.Join(lines, "\n")
}
