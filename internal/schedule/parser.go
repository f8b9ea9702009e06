// Package schedule evaluates free-text pt-BR operating hours.
//
// Merchants type their hours into a spreadsheet by hand, so the parser
// has to tolerate anything from "Seg a Sex" to "Terça, Quinta e Sábado"
// and "18h às 23h30". Unparseable input always resolves to closed.
package schedule

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dayAbbrev maps the three-letter pt-BR day prefix to its weekday.
// Full names ("segunda", "sábado") reduce to the same prefix after
// normalization, so three letters cover both spellings.
var dayAbbrev = map[string]time.Weekday{
	"dom": time.Sunday,
	"seg": time.Monday,
	"ter": time.Tuesday,
	"qua": time.Wednesday,
	"qui": time.Thursday,
	"sex": time.Friday,
	"sab": time.Saturday,
}

var dayOrder = []string{"dom", "seg", "ter", "qua", "qui", "sex", "sab"}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeText(s string) string {
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

var (
	listSepRe   = regexp.MustCompile(`\s+e\s+`)
	spaceRe     = regexp.MustCompile(`\s+`)
	clockPairRe = regexp.MustCompile(`(\d{1,2})(?::(\d{1,2}))?\D+?(\d{1,2})(?::(\d{1,2}))?`)
)

// ParseDays extracts the set of working weekdays from free text like
// "Seg a Sex", "Sábado e Domingo" or "ter, qui, sab". Ranges wrap
// around the week, so "sex a seg" covers Friday through Monday.
func ParseDays(raw string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	if strings.TrimSpace(raw) == "" {
		return days
	}

	normalized := normalizeText(raw)
	normalized = listSepRe.ReplaceAllString(normalized, ",")

	for _, part := range strings.Split(normalized, ",") {
		tokens := strings.Fields(strings.Trim(part, " ."))
		if len(tokens) == 3 && tokens[1] == "a" {
			addDayRange(days, dayPrefix(tokens[0]), dayPrefix(tokens[2]))
			continue
		}
		for _, tok := range tokens {
			if wd, ok := dayAbbrev[dayPrefix(tok)]; ok {
				days[wd] = true
			}
		}
	}
	return days
}

func dayPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 3 {
		s = s[:3]
	}
	return s
}

func addDayRange(days map[time.Weekday]bool, start, end string) {
	startIdx, endIdx := -1, -1
	for i, name := range dayOrder {
		if name == start {
			startIdx = i
		}
		if name == end {
			endIdx = i
		}
	}
	if startIdx == -1 || endIdx == -1 {
		return
	}
	if startIdx <= endIdx {
		for i := startIdx; i <= endIdx; i++ {
			days[dayAbbrev[dayOrder[i]]] = true
		}
		return
	}
	for i := startIdx; i < len(dayOrder); i++ {
		days[dayAbbrev[dayOrder[i]]] = true
	}
	for i := 0; i <= endIdx; i++ {
		days[dayAbbrev[dayOrder[i]]] = true
	}
}

// Interval is a same-day opening window in minutes since midnight.
// End may be smaller than Start for windows that cross midnight.
type Interval struct {
	Start int
	End   int
}

// Overnight reports whether the window crosses midnight.
func (iv Interval) Overnight() bool {
	return iv.End < iv.Start
}

// ParseHours extracts opening windows from free text like "18h às 23h",
// "11:30 - 14:00 e 18:00 - 22:00" or "Das 18 a 22". Each list entry is
// scanned for a pair of clock readings; entries without a valid pair
// are skipped.
func ParseHours(raw string) []Interval {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	normalized := normalizeText(raw)
	normalized = strings.ReplaceAll(normalized, "h", ":")
	normalized = strings.ReplaceAll(normalized, ".", ":")
	normalized = listSepRe.ReplaceAllString(normalized, ",")

	var intervals []Interval
	for _, part := range strings.Split(normalized, ",") {
		m := clockPairRe.FindStringSubmatch(spaceRe.ReplaceAllString(part, ""))
		if m == nil {
			continue
		}
		start, okStart := clockMinutes(m[1], m[2])
		end, okEnd := clockMinutes(m[3], m[4])
		if !okStart || !okEnd {
			continue
		}
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals
}

func clockMinutes(hours, minutes string) (int, bool) {
	h := atoi(hours)
	m := 0
	if minutes != "" {
		m = atoi(minutes)
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
