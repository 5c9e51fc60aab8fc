package overrides

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// TermTable maps a translated search term to its normalized/grouped form.
// Same override pattern as regions: left join, coalesce to the input.
type TermTable struct {
	m map[string]string
}

// Final returns the grouped term, or the translated term itself when no
// grouping exists.
func (t *TermTable) Final(translate string) string {
	if t == nil {
		return translate
	}
	if normalized, ok := t.m[translate]; ok && normalized != "" {
		return normalized
	}
	return translate
}

// Len returns the number of grouped terms.
func (t *TermTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.m)
}

// LoadTermTable reads a term-groups CSV with columns translate and
// normalized_term.
func LoadTermTable(path string) (*TermTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open term groups CSV: %w", err)
	}
	defer file.Close()

	return ReadTermTable(file)
}

// ReadTermTable parses term groups from a reader.
func ReadTermTable(r io.Reader) (*TermTable, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read term groups header: %w", err)
	}

	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	translateIdx, ok := columnMap["translate"]
	if !ok {
		return nil, fmt.Errorf("term groups CSV missing required column: translate")
	}
	normalizedIdx, ok := columnMap["normalized_term"]
	if !ok {
		return nil, fmt.Errorf("term groups CSV missing required column: normalized_term")
	}

	table := &TermTable{m: make(map[string]string)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if translateIdx >= len(record) || normalizedIdx >= len(record) {
			continue
		}
		translate := strings.TrimSpace(record[translateIdx])
		normalized := strings.TrimSpace(record[normalizedIdx])
		if translate == "" || normalized == "" {
			continue
		}
		table.m[translate] = normalized
	}

	return table, nil
}
