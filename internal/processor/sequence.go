package processor

import (
	"fmt"
	"strconv"
)

// nextSequenceNumber increments a zero-padded document number. An empty
// or unparseable last number restarts the sequence at "00001". Numbers
// are read from the most recently created row, so two concurrent
// creates can observe the same last value; nothing here or in the
// schema prevents that.
func nextSequenceNumber(last string) string {
	next := 1
	if n, err := strconv.Atoi(last); err == nil {
		next = n + 1
	}
	return fmt.Sprintf("%05d", next)
}
