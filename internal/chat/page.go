package chat

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/chatfilter/chatfilter/internal/record"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

// ErrPage indicates invalid pagination arguments.
var ErrPage = errors.New("invalid page arguments")

// Page carries the pagination arguments of a listing call. A zero Size
// means the default; sizes above the maximum are clamped. Token is a
// decimal offset issued by a previous call, or empty for the first
// page.
type Page struct {
	Size  int
	Token string
}

// paginate slices recs to the requested page and returns the token for
// the next one, empty when the listing is exhausted.
func paginate(recs []record.Record, page Page) ([]record.Record, string, error) {
	size := page.Size
	switch {
	case size < 0:
		return nil, "", fmt.Errorf("%w: page size %d is negative", ErrPage, size)
	case size == 0:
		size = defaultPageSize
	case size > maxPageSize:
		size = maxPageSize
	}

	offset := 0
	if page.Token != "" {
		n, err := strconv.Atoi(page.Token)
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("%w: bad page token %q", ErrPage, page.Token)
		}
		offset = n
	}
	if offset >= len(recs) {
		return nil, "", nil
	}

	end := offset + size
	next := ""
	if end < len(recs) {
		next = strconv.Itoa(end)
	} else {
		end = len(recs)
	}
	return recs[offset:end], next, nil
}
