package statblock

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// glyphs NFKC leaves alone but stat blocks copied from PDFs and web tools use
var glyphReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"−", "-", // minus sign
	"–", "-", // en dash
	"⁄", "/", // fraction slash, produced by NFKC from ½ ¼ ⅛
	"’", "'",
	"\t", " ",
)

// normalize folds compatibility characters and maps the glyphs above to ASCII
func normalize(text string) string {
	return glyphReplacer.Replace(norm.NFKC.String(text))
}

var (
	// labels that end a line-delimited section when they open a line
	lineStop = regexp.MustCompile(`(?i)(?:^|\n)\s*(?:saving throws|skills|damage immunities|damage resistances|damage vulnerabilities|condition immunities|senses|languages|challenge|cr\s+\d+|proficiency bonus|initiative|gear|traits|actions|bonus actions|reactions|legendary actions)\b`)

	// capitalized labels that end a section inside a one-line paste
	inlineStop = regexp.MustCompile(`(?:^|\s)(?:Saving Throws|Skills|Damage Immunities|Damage Resistances|Damage Vulnerabilities|Condition Immunities|Senses|Languages|Challenge|CR\s+\d+|Proficiency Bonus|Initiative|Gear|Traits|Actions|Bonus Actions|Reactions|Legendary Actions)\b`)
)

// document is the normalized input shared by every strategy
type document struct {
	text   string
	lines  []string
	header string
}

func newDocument(raw string) *document {
	text := normalize(raw)

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return &document{
		text:   text,
		lines:  lines,
		header: text[:headerEnd(text)],
	}
}

func (d *document) empty() bool {
	return len(d.lines) == 0
}

// headerLines returns up to n trimmed non-blank lines before the Actions heading
func (d *document) headerLines(n int) []string {
	var out []string
	for _, line := range strings.Split(d.header, "\n") {
		if len(out) == n {
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// labelledSection returns the text after label up to the next label that
// opens a line, or on a one-line paste the next capitalized label
func labelledSection(text string, label *regexp.Regexp) (string, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	stop := lineStop
	if !strings.Contains(strings.TrimSpace(text), "\n") {
		stop = inlineStop
	}

	rest := text[loc[1]:]
	if end := stop.FindStringIndex(rest); end != nil {
		rest = rest[:end[0]]
	}
	return strings.Join(strings.Fields(rest), " "), true
}

// submatch returns the capture groups of the first match, nil when none
func submatch(re *regexp.Regexp, text string) []string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return m[1:]
}

// body returns the header without the name line
func (d *document) body() string {
	if d.empty() {
		return d.header
	}
	i := strings.Index(d.header, d.lines[0])
	if i < 0 {
		return d.header
	}
	return d.header[i+len(d.lines[0]):]
}
