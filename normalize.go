package portafolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// This file is the single place where currency-formatted cells are turned
// into numbers. Every other component consumes the output of this parser,
// there is no second cleaning regex anywhere else.

// ParseNumber parses a currency-like cell into a float. It strips the peso
// sign, whitespace (including non breaking spaces) and thousands separators,
// then reads the remainder as a decimal number. Anything unparsable yields 0:
// a single bad cell must never take the whole analysis down.
func ParseNumber(s string) float64 {
	d, err := parseDecimal(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

// ParseAmount is ParseNumber returning pesos.
func ParseAmount(s string) Money {
	d, err := parseDecimal(s)
	if err != nil {
		return COP(0)
	}
	return COP(d)
}

func parseDecimal(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '$', ' ', '\t', '\u00a0', '\u202f':
			return -1
		}
		return r
	}, s)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	dot := strings.LastIndexByte(clean, '.')
	comma := strings.LastIndexByte(clean, ',')
	switch {
	case dot >= 0 && comma >= 0:
		// Both present: the rightmost one is the decimal separator, the
		// other one groups thousands.
		if dot > comma {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		}
	case comma >= 0:
		clean = normalizeSeparator(clean, ',')
	case dot >= 0:
		clean = normalizeSeparator(clean, '.')
	}
	return decimal.NewFromString(clean)
}

// normalizeSeparator resolves a string that contains a single kind of
// separator. A lone separator followed by one or two digits is a decimal
// point ("1234.56"), everything else is thousands grouping ("1.234.567").
func normalizeSeparator(s string, sep byte) string {
	first := strings.IndexByte(s, sep)
	last := strings.LastIndexByte(s, sep)
	if first == last && len(s)-last-1 <= 2 {
		if sep == ',' {
			return strings.Replace(s, ",", ".", 1)
		}
		return s
	}
	return strings.ReplaceAll(s, string(sep), "")
}

// Column names of the uploaded table. The sheet is in Spanish, the reader
// matches headers case-insensitively and ignores the pre-computed columns.
const (
	colLabel    = "items"
	colOwner    = "personas"
	colAmount   = "dinero"
	colType     = "tipo de inversion"
	colInterest = "interes mensual"
)

// ReadRows reads the portfolio table from CSV. Currency columns go through
// the canonical parser, so currency-formatted strings and plain numbers are
// both accepted. Rows with no label and no amount are skipped.
func ReadRows(r io.Reader) ([]InvestmentRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read portfolio header: %w", err)
	}
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx[colAmount]; !ok {
		return nil, fmt.Errorf("portfolio table has no %q column", colAmount)
	}

	field := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []InvestmentRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read portfolio row: %w", err)
		}
		row := InvestmentRow{
			Label:           field(record, colLabel),
			Owner:           field(record, colOwner),
			Type:            field(record, colType),
			Amount:          ParseAmount(field(record, colAmount)),
			MonthlyInterest: ParseAmount(field(record, colInterest)),
		}
		if row.Label == "" && row.Amount.IsZero() {
			continue
		}
		if row.Amount.IsNegative() {
			// amounts are capital, never negative
			row.Amount = COP(0)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes the normalized table back as CSV, amounts as plain
// numbers so a re-read is the identity.
func WriteRows(w io.Writer, rows []InvestmentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Items", "Personas", "Dinero", "Tipo de inversion", "Interes Mensual"}); err != nil {
		return fmt.Errorf("could not write portfolio header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Label,
			r.Owner,
			fmt.Sprintf("%.0f", r.Amount.AsFloat()),
			r.Type,
			fmt.Sprintf("%.0f", r.MonthlyInterest.AsFloat()),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write portfolio row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
