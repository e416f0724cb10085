package services

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RE2's \s and \d are ASCII only. Day labels also accept Unicode spaces
// (e.g. NBSP) between "day" and the number, and any decimal digit.
const dayNumber = `day[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]*\p{Nd}+`

var (
	dayLabelPattern = regexp.MustCompile(`(?i)^` + dayNumber)
	// Day markers that appear somewhere other than the start of a line,
	// e.g. "**Day 1:**" or "### Day 2".
	embeddedDayPattern = regexp.MustCompile(`(?i)\b` + dayNumber)
)

const bulletMarker = "-"

// DayRoute is one day of the itinerary with its places in source order.
type DayRoute struct {
	Day    string   `json:"day"`
	Places []string `json:"places"`
}

// RouteMapping is an ordered mapping from day label to places. Keys keep the
// position of their first appearance.
type RouteMapping struct {
	days  []DayRoute
	index map[string]int
}

func newRouteMapping() RouteMapping {
	return RouteMapping{index: make(map[string]int)}
}

// reset inserts label with an empty place list, discarding anything an
// earlier occurrence of the same label collected.
func (m *RouteMapping) reset(label string) {
	if i, ok := m.index[label]; ok {
		m.days[i].Places = []string{}
		return
	}
	m.index[label] = len(m.days)
	m.days = append(m.days, DayRoute{Day: label, Places: []string{}})
}

func (m *RouteMapping) add(label, place string) {
	i := m.index[label]
	m.days[i].Places = append(m.days[i].Places, place)
}

func (m RouteMapping) Len() int { return len(m.days) }

func (m RouteMapping) Labels() []string {
	labels := make([]string, 0, len(m.days))
	for _, d := range m.days {
		labels = append(labels, d.Day)
	}
	return labels
}

// Places returns the places for label and whether the label exists.
func (m RouteMapping) Places(label string) ([]string, bool) {
	i, ok := m.index[label]
	if !ok {
		return nil, false
	}
	return m.days[i].Places, true
}

// Days returns a copy of the mapping in order.
func (m RouteMapping) Days() []DayRoute {
	out := make([]DayRoute, len(m.days))
	for i, d := range m.days {
		out[i] = DayRoute{Day: d.Day, Places: append([]string{}, d.Places...)}
	}
	return out
}

func (m RouteMapping) MarshalJSON() ([]byte, error) {
	if m.days == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(m.days)
}

// ParseItinerary extracts the day -> places structure from model output.
// It never fails; text without day labels yields an empty mapping.
func ParseItinerary(text string) RouteMapping {
	mapping := newRouteMapping()
	currentDay := ""

	for _, raw := range splitLines(text) {
		line := strings.TrimSpace(raw)

		if label := dayLabelPattern.FindString(line); label != "" {
			currentDay = label
			mapping.reset(currentDay)
			continue
		}

		if strings.HasPrefix(line, bulletMarker) && currentDay != "" {
			if place := strings.TrimSpace(line[len(bulletMarker):]); place != "" {
				mapping.add(currentDay, place)
			}
		}
	}

	return mapping
}

// Parse warning kinds.
const (
	WarningOrphanBullet          = "orphan_bullet"
	WarningUnrecognizedDayHeader = "unrecognized_day_header"
	WarningDuplicateDay          = "duplicate_day"
	WarningEmptyDay              = "empty_day"
)

type ParseWarning struct {
	Kind string `json:"kind"`
	Line int    `json:"line,omitempty"`
	Text string `json:"text"`
}

// ParseReport carries the parsed routes and everything the parser skipped
// that looked like it was meant to be structure.
type ParseReport struct {
	Routes   RouteMapping   `json:"routes"`
	Warnings []ParseWarning `json:"warnings"`
}

// InspectItinerary parses text exactly like ParseItinerary and additionally
// flags sections the parser could not attach to a day.
func InspectItinerary(text string) ParseReport {
	report := ParseReport{
		Routes:   ParseItinerary(text),
		Warnings: []ParseWarning{},
	}

	seen := make(map[string]bool)
	currentDay := ""
	for i, raw := range numberedLines(text) {
		n := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if label := dayLabelPattern.FindString(line); label != "" {
			if seen[label] {
				report.Warnings = append(report.Warnings, ParseWarning{Kind: WarningDuplicateDay, Line: n, Text: label})
			}
			seen[label] = true
			currentDay = label
			continue
		}

		if strings.HasPrefix(line, bulletMarker) {
			if currentDay == "" {
				report.Warnings = append(report.Warnings, ParseWarning{Kind: WarningOrphanBullet, Line: n, Text: line})
			}
			continue
		}

		if embeddedDayPattern.MatchString(line) && looksLikeHeader(line) {
			report.Warnings = append(report.Warnings, ParseWarning{Kind: WarningUnrecognizedDayHeader, Line: n, Text: line})
		}
	}

	for _, day := range report.Routes.days {
		if len(day.Places) == 0 {
			report.Warnings = append(report.Warnings, ParseWarning{Kind: WarningEmptyDay, Text: day.Day})
		}
	}

	return report
}

// looksLikeHeader keeps narrative sentences that merely mention a day
// ("On day 2 you will rest") out of the warnings.
func looksLikeHeader(line string) bool {
	loc := embeddedDayPattern.FindStringIndex(line)
	prefix := strings.TrimSpace(line[:loc[0]])
	return strings.Trim(prefix, "*#_>`") == ""
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitLines splits on every line boundary; empty lines are dropped since
// the parser ignores them anyway.
func splitLines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

// numberedLines returns every line including empty ones, so that index+1 is
// the line number. "\r\n" counts as a single break.
func numberedLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	start := 0
	for i, r := range text {
		if isLineBreak(r) {
			lines = append(lines, text[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(lines, text[start:])
}
