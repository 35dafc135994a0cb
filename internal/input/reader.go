package input

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"flatland/internal/domain"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Reader yields the header and records of one document.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	return &Reader{sc: sc}
}

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }

// ReadHeader parses the first line as "angle count".
func (r *Reader) ReadHeader() (domain.Header, error) {
	if !r.sc.Scan() {
		return domain.Header{}, domain.ErrIo
	}
	r.line++
	if !utf8.Valid(r.sc.Bytes()) {
		return domain.Header{}, domain.ErrIo
	}
	a, c, err := fields(r.sc.Text())
	if err != nil {
		return domain.Header{}, err
	}
	angle, err := parseInt32(a)
	if err != nil {
		return domain.Header{}, err
	}
	count, err := parseUint32(c)
	if err != nil {
		return domain.Header{}, err
	}
	return domain.Header{Angle: domain.Angle(angle), Count: count}, nil
}

// Next parses the next line as "position height". It returns io.EOF when
// the input is exhausted.
func (r *Reader) Next() (domain.Record, error) {
	if !r.sc.Scan() {
		if r.sc.Err() != nil {
			return domain.Record{}, domain.ErrIo
		}
		return domain.Record{}, io.EOF
	}
	r.line++
	if !utf8.Valid(r.sc.Bytes()) {
		return domain.Record{}, domain.ErrIo
	}
	p, h, err := fields(r.sc.Text())
	if err != nil {
		return domain.Record{}, err
	}
	position, err := parseInt32(p)
	if err != nil {
		return domain.Record{}, err
	}
	height, err := parseUint32(h)
	if err != nil {
		return domain.Record{}, err
	}
	return domain.Record{Position: position, Height: height}, nil
}

// fields returns the first two whitespace-separated fields of line.
func fields(line string) (string, string, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return "", "", domain.ErrMissingValue
	}
	return f[0], f[1], nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidValue
	}
	return int32(v), nil
}

// parseUint32 accepts an optional leading '+', as ParseInt does for signed values.
func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, domain.ErrInvalidValue
	}
	return uint32(v), nil
}

var _ domain.RecordSource = (*Reader)(nil)
