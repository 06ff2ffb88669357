package extrinsic

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	sectionSources      = "SOURCES"
	sectionSourceParams = "SOURCE-PARAMETERS"
	sectionGroup        = "GROUP"
	sectionGeneral      = "GENERAL"
)

// Load reads and parses a hint file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read hint file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates hint-file text and builds the immutable Config. The first
// failure aborts parsing and is returned as a *ConfigError; no partial
// configuration is ever produced.
func Parse(data []byte) (*Config, error) {
	sections, err := splitSections(data)
	if err != nil {
		return nil, err
	}

	srcLines, ok := sections[sectionSources]
	if !ok {
		return nil, errAt(KindMissingRequiredSection, 0, "["+sectionSources+"]")
	}
	genLines, ok := sections[sectionGeneral]
	if !ok {
		return nil, errAt(KindMissingRequiredSection, 0, "["+sectionGeneral+"]")
	}

	cfg := &Config{
		flags: make(map[Source][]Flag),
		rows:  make(map[FeatureType]row, len(FeatureTypes)),
	}

	if err := parseSources(cfg, srcLines); err != nil {
		return nil, err
	}
	if err := parseSourceParameters(cfg, sections[sectionSourceParams]); err != nil {
		return nil, err
	}
	parseGroup(cfg, sections[sectionGroup])
	if err := parseGeneral(cfg, genLines); err != nil {
		return nil, err
	}

	for _, ft := range FeatureTypes {
		if _, ok := cfg.rows[ft]; !ok {
			return nil, errAt(KindMissingFeatureRow, 0, string(ft))
		}
	}
	return cfg, nil
}

type line struct {
	num  int
	text string
}

// splitSections strips comments and blank lines and buckets the remaining
// lines under their bracketed headers.
func splitSections(data []byte) (map[string][]line, error) {
	sections := make(map[string][]line, 4)
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(data))
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if strings.HasPrefix(text, "[") {
			if !strings.HasSuffix(text, "]") {
				return nil, errAt(KindMalformedHeader, num, text)
			}
			name := text[1 : len(text)-1]
			switch name {
			case sectionSources, sectionSourceParams, sectionGroup, sectionGeneral:
			default:
				return nil, errAt(KindMalformedHeader, num, text)
			}
			if _, dup := sections[name]; dup {
				return nil, errAt(KindMalformedHeader, num, text)
			}
			sections[name] = []line{}
			current = name
			continue
		}
		if current == "" {
			return nil, errAt(KindMalformedHeader, num, text)
		}
		sections[current] = append(sections[current], line{num: num, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errAt(KindMalformedHeader, num, err.Error())
	}
	return sections, nil
}

func parseSources(cfg *Config, lines []line) error {
	for _, ln := range lines {
		for _, tok := range strings.Fields(ln.text) {
			src := Source(tok)
			if !src.Valid() {
				return errAt(KindUnknownSource, ln.num, tok)
			}
			if cfg.HasSource(src) {
				return errAt(KindDuplicateSource, ln.num, tok)
			}
			cfg.sources = append(cfg.sources, src)
		}
	}
	if len(cfg.sources) == 0 {
		// Present but empty declares nothing, which is treated the same
		// as an absent section.
		return errAt(KindMissingRequiredSection, 0, "["+sectionSources+"]")
	}
	return nil
}

func parseSourceParameters(cfg *Config, lines []line) error {
	for _, ln := range lines {
		fields := strings.Fields(ln.text)
		src := Source(fields[0])
		if !src.Valid() || !cfg.HasSource(src) {
			return errAt(KindUnknownSource, ln.num, fields[0])
		}
		for _, tok := range fields[1:] {
			flag := Flag(tok)
			if !flag.Valid() {
				return errAt(KindUnknownFlag, ln.num, tok)
			}
			cfg.flags[src] = append(cfg.flags[src], flag)
		}
	}
	return nil
}

// parseGroup records the first non-comment line as the provenance label.
// The label is free-form; no validation applies beyond non-emptiness, which
// section splitting already guarantees.
func parseGroup(cfg *Config, lines []line) {
	if len(lines) > 0 {
		cfg.group = lines[0].text
	}
}

func parseGeneral(cfg *Config, lines []line) error {
	for _, ln := range lines {
		fields := strings.Fields(ln.text)
		ft := FeatureType(fields[0])
		if !ft.Valid() {
			return errAt(KindUnknownFeature, ln.num, fields[0])
		}
		if _, dup := cfg.rows[ft]; dup {
			return errAt(KindDuplicateFeatureRow, ln.num, fields[0])
		}
		r, err := parseRow(cfg, ft, fields[1:], ln.num)
		if err != nil {
			return err
		}
		cfg.rows[ft] = r
	}
	return nil
}

// parseRow consumes the boundary flag, the class-specific tuning values,
// and one source group per declared source, in declaration order.
func parseRow(cfg *Config, ft FeatureType, fields []string, num int) (row, error) {
	class := ft.Class()
	want := 1 + class.tuningArity() + len(cfg.sources)*(1+class.groupArity())
	if len(fields) != want {
		return row{}, errAt(KindArityMismatch, num, string(ft))
	}

	boundary, err := parseBoundary(fields[0])
	if err != nil {
		return row{}, errAt(KindMalformedNumber, num, fields[0])
	}
	pos := 1

	tuning := make([]float64, class.tuningArity())
	for i := range tuning {
		v, err := parseNumber(fields[pos])
		if err != nil {
			return row{}, errAt(KindMalformedNumber, num, fields[pos])
		}
		tuning[i] = v
		pos++
	}

	scores := make(map[Source]Score, len(cfg.sources))
	for _, src := range cfg.sources {
		if fields[pos] != string(src) {
			return row{}, errAt(KindArityMismatch, num, fields[pos])
		}
		pos++
		values := make([]float64, class.groupArity())
		for i := range values {
			v, err := parseNumber(fields[pos])
			if err != nil {
				return row{}, errAt(KindMalformedNumber, num, fields[pos])
			}
			values[i] = v
			pos++
		}
		sc := Score{Malus: values[0], Bonus: values[1]}
		if class == PartFeature {
			sc.Curve = &Curve{FullLength: values[2], Exponent: values[3]}
		}
		scores[src] = sc
	}

	return row{boundary: boundary, tuning: tuning, scores: scores}, nil
}

func parseBoundary(tok string) (bool, error) {
	switch tok {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("boundary flag must be 0 or 1, got %q", tok)
	}
}

// parseNumber accepts integers, decimals, and scientific notation
// (1e+100, .992, 1e-3).
func parseNumber(tok string) (float64, error) {
	return strconv.ParseFloat(tok, 64)
}
