// Package csvio reads and writes the ledger's CSV interchange format.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"moneysaving/internal/core"
)

var header = []string{"id", "title", "amount", "type", "date", "source", "purpose"}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Write writes a header followed by one row per transaction. Free-text
// columns are always quoted so titles with commas or quotes round-trip.
func Write(w io.Writer, txs []core.Transaction) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		row := strings.Join([]string{
			strconv.FormatInt(tx.ID, 10),
			quote(tx.Title),
			core.FormatAmount(tx.Amount),
			tx.Type.String(),
			core.FormatDate(tx.Date),
			quote(tx.Source),
			quote(tx.Purpose),
		}, ",")
		if _, err := bw.WriteString(row + "\n"); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Read parses a CSV produced by Write or by a spreadsheet. Columns are
// matched by header name; id is ignored since imported rows get fresh ids.
func Read(r io.Reader) ([]core.Transaction, error) {
	ur, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	cr := csv.NewReader(ur)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := columns(records[0])
	if err != nil {
		return nil, err
	}

	txs := make([]core.Transaction, 0, len(records)-1)
	for i, rec := range records[1:] {
		tx, err := unmarshal(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func columns(head []string) (map[string]int, error) {
	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range header[1:] {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func unmarshal(rec []string, cols map[string]int) (core.Transaction, error) {
	field := func(name string) string {
		return strings.TrimSpace(rec[cols[name]])
	}

	amount, err := core.ParseAmount(field("amount"))
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parsing amount %q: %w", field("amount"), err)
	}
	typ, err := core.ParseType(field("type"))
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(field("date"))
	if err != nil {
		return core.Transaction{}, err
	}

	return core.Transaction{
		Title:   field("title"),
		Amount:  amount,
		Type:    typ,
		Date:    date,
		Source:  field("source"),
		Purpose: field("purpose"),
	}, nil
}
