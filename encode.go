package xirr

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/xirr/date"
	"github.com/shopspring/decimal"
)

// flowLine is a single cash flow as stored in a JSONL stream.
type flowLine struct {
	Date   date.Date           `json:"date"`
	Amount decimal.NullDecimal `json:"amount"`
}

// DecodeFlows decodes a cash flow from a stream of JSONL data.
//
// Each non empty line holds one entry: {"date":"2015-06-01","amount":1000000}.
// An entry with a null or missing amount decodes as a nil amount.
func DecodeFlows(r io.Reader) (dates []date.Date, amounts []*float64, err error) {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var l flowLine
		if err := json.Unmarshal(lineBytes, &l); err != nil {
			return nil, nil, fmt.Errorf("could not decode cash flow at line %d %q: %w", line, string(lineBytes), err)
		}
		if l.Date.IsZero() {
			return nil, nil, fmt.Errorf("cash flow at line %d has no date", line)
		}
		dates = append(dates, l.Date)
		if l.Amount.Valid {
			v := l.Amount.Decimal.InexactFloat64()
			amounts = append(amounts, &v)
		} else {
			amounts = append(amounts, nil)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("could not read cash flow: %w", err)
	}
	return dates, amounts, nil
}
