package vector

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/evilsocket/islazy/log"
)

// Binary layout: the token "FV" (float32) or "DV" (float64) followed by a space, the
// byte 4 and the element count as a little endian int32, then the raw little endian
// elements.
//
// Text layout: " [ e0 e1 ... ]\n", "[]" is accepted for an empty vector.

const maxTokenLen = 20

func token[T Float]() string {
	if bitSize[T]() == 32 {
		return "FV"
	}
	return "DV"
}

// otherTag is the first byte of the token of the other element width.
func otherTag[T Float]() byte {
	if bitSize[T]() == 32 {
		return 'D'
	}
	return 'F'
}

func truncate(s string) string {
	if len(s) > maxTokenLen {
		return s[:17] + "..."
	}
	return s
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Write serializes the vector to w.
func (v *View[T]) Write(w io.Writer, binaryMode bool) error {
	var err error
	if binaryMode {
		err = v.writeBinary(w)
	} else {
		_, err = io.WriteString(w, " "+v.String()+"\n")
	}
	if err != nil {
		return fmt.Errorf("failed to write vector to stream: %w", err)
	}
	return nil
}

func (v *View[T]) writeBinary(w io.Writer) error {
	if int64(v.dim) > math.MaxInt32 {
		fail("Write", ErrPrecondition, "%d elements do not fit the 32 bits size field", v.dim)
	}
	hdr := make([]byte, 0, 8)
	hdr = append(hdr, token[T]()...)
	hdr = append(hdr, ' ', 4)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(v.dim))
	if _, err := w.Write(hdr); err != nil {
		return err
	}
	if v.dim == 0 {
		return nil
	}
	data := v.data
	if v.stride != 1 {
		data = v.ToSlice()
	}
	return binary.Write(w, binary.LittleEndian, data[:v.dim])
}

// scanner tracks the position in the stream for error reports.
type scanner struct {
	r    io.ByteScanner
	base int64
	pos  int64
}

func newScanner(r io.Reader) *scanner {
	s := &scanner{}
	if bs, ok := r.(io.ByteScanner); ok {
		s.r = bs
		if seeker, ok := r.(io.Seeker); ok {
			if off, err := seeker.Seek(0, io.SeekCurrent); err == nil {
				s.base = off
			}
		}
	} else {
		s.r = bufio.NewReader(r)
	}
	return s
}

func (s *scanner) offset() int64 {
	return s.base + s.pos
}

func (s *scanner) ReadByte() (byte, error) {
	b, err := s.r.ReadByte()
	if err == nil {
		s.pos++
	}
	return b, err
}

func (s *scanner) UnreadByte() error {
	err := s.r.UnreadByte()
	if err == nil {
		s.pos--
	}
	return err
}

func (s *scanner) Read(p []byte) (int, error) {
	if r, ok := s.r.(io.Reader); ok {
		n, err := r.Read(p)
		s.pos += int64(n)
		return n, err
	}
	for i := range p {
		b, err := s.ReadByte()
		if err != nil {
			return i, err
		}
		p[i] = b
	}
	return len(p), nil
}

func (s *scanner) peek() (byte, error) {
	b, err := s.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, s.UnreadByte()
}

func (s *scanner) skipSpace() error {
	for {
		b, err := s.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(b) {
			return s.UnreadByte()
		}
	}
}

// word reads up to the next whitespace or to any byte stop reports.
func (s *scanner) word(stop func(byte) bool) (string, error) {
	var sb strings.Builder
	for {
		b, err := s.ReadByte()
		if err == io.EOF && sb.Len() > 0 {
			return sb.String(), nil
		} else if err != nil {
			return sb.String(), err
		}
		if isSpace(b) || (stop != nil && stop(b)) {
			return sb.String(), s.UnreadByte()
		}
		sb.WriteByte(b)
	}
}

// Read deserializes a vector of the same dimension from r into v, adding it to the
// current content when add is set. When r is not an io.ByteScanner it is buffered,
// so consecutive reads should share a *bufio.Reader.
func (v *View[T]) Read(r io.Reader, binaryMode, add bool) error {
	sc := newScanner(r)
	start := sc.offset()
	tmp := &Vector[T]{View: View[T]{stride: 1}}
	if err := tmp.read(sc, binaryMode); err != nil {
		return err
	}
	if tmp.dim != v.dim {
		return &ParseError{
			Expected: fmt.Sprintf("%d elements", v.dim),
			Found:    fmt.Sprintf("%d", tmp.dim),
			Offset:   start,
			Pos:      sc.offset(),
		}
	}
	if add {
		v.AddVec(1, tmp)
	} else {
		v.CopyFromVec(tmp)
	}
	return nil
}

// Read deserializes a vector from r, resizing v to the dimension found in the
// stream. With add set the parsed vector is added to v instead, an empty v adopts the
// parsed dimension.
func (v *Vector[T]) Read(r io.Reader, binaryMode, add bool) error {
	sc := newScanner(r)
	if !add {
		return v.read(sc, binaryMode)
	}

	start := sc.offset()
	tmp := &Vector[T]{View: View[T]{stride: 1}}
	if err := tmp.read(sc, binaryMode); err != nil {
		return err
	}
	if v.dim == 0 {
		if err := v.Resize(tmp.dim, SetZero); err != nil {
			return err
		}
	}
	if v.dim != tmp.dim {
		return &ParseError{
			Expected: fmt.Sprintf("%d elements to add", v.dim),
			Found:    fmt.Sprintf("%d", tmp.dim),
			Offset:   start,
			Pos:      sc.offset(),
		}
	}
	v.AddVec(1, tmp)
	return nil
}

func (v *Vector[T]) read(sc *scanner, binaryMode bool) error {
	if binaryMode {
		return v.readBinary(sc)
	}
	return v.readText(sc)
}

func (v *Vector[T]) readBinary(sc *scanner) error {
	start := sc.offset()
	bad := func(expected, found string, err error) error {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &ParseError{Expected: expected, Found: found, Offset: start, Pos: sc.offset(), Err: err}
	}

	b, err := sc.peek()
	if err != nil {
		return bad(token[T](), "", err)
	}
	if b == otherTag[T]() {
		return v.readOther(sc)
	}

	if err := sc.skipSpace(); err != nil {
		return bad(token[T](), "", err)
	}
	tok, err := sc.word(nil)
	if err != nil {
		return bad(token[T](), truncate(tok), err)
	} else if tok != token[T]() {
		return bad("token "+token[T](), truncate(tok), nil)
	}
	if b, err := sc.ReadByte(); err != nil {
		return bad("space after token", "", err)
	} else if !isSpace(b) {
		return bad("space after token", strconv.QuoteRune(rune(b)), nil)
	}

	var sizeHdr [5]byte
	if _, err := io.ReadFull(sc, sizeHdr[:]); err != nil {
		return bad("vector size", "", err)
	} else if sizeHdr[0] != 4 {
		return bad("4 bytes integer", fmt.Sprintf("%d bytes", int8(sizeHdr[0])), nil)
	}
	size := int32(binary.LittleEndian.Uint32(sizeHdr[1:]))
	if size < 0 {
		return bad("vector size", fmt.Sprintf("%d", size), nil)
	}
	if int(size) != v.dim {
		if err := v.Resize(int(size), Undefined); err != nil {
			return err
		}
	}
	if size > 0 {
		if err := binary.Read(sc, binary.LittleEndian, v.data[:size]); err != nil {
			return bad(fmt.Sprintf("%d elements (truncated stream?)", size), "", err)
		}
	}
	return nil
}

// readOther reads a vector serialized with the other element width and converts it.
func (v *Vector[T]) readOther(sc *scanner) error {
	var err error
	if bitSize[T]() == 32 {
		other := &Vector[float64]{View: View[float64]{stride: 1}}
		if err = other.readBinary(sc); err == nil {
			if err = v.Resize(other.dim, Undefined); err == nil {
				CopyFromVecOf[T, float64](v, other)
			}
		}
	} else {
		other := &Vector[float32]{View: View[float32]{stride: 1}}
		if err = other.readBinary(sc); err == nil {
			if err = v.Resize(other.dim, Undefined); err == nil {
				CopyFromVecOf[T, float32](v, other)
			}
		}
	}
	return err
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.' || b == 'e' || b == 'E'
}

func (v *Vector[T]) readText(sc *scanner) error {
	start := sc.offset()
	bad := func(expected, found string, err error) error {
		return &ParseError{Expected: expected, Found: found, Offset: start, Pos: sc.offset(), Err: err}
	}

	if err := sc.skipSpace(); err != nil {
		return bad(`"["`, "EOF", nil)
	}
	s, err := sc.word(nil)
	if err != nil && err != io.EOF {
		return bad(`"["`, "", err)
	}
	if s == "[]" {
		return v.Resize(0, SetZero)
	} else if s != "[" {
		return bad(`"["`, truncate(s), nil)
	}

	var data []T
	for {
		b, err := sc.peek()
		if err == io.EOF {
			return bad("vector data", "EOF", nil)
		} else if err != nil {
			return bad("vector data", "", err)
		}

		switch {
		case b == '-' || (b >= '0' && b <= '9'):
			num, err := sc.word(func(c byte) bool { return !isNumberByte(c) })
			if err != nil && err != io.EOF {
				return bad("number", num, err)
			}
			f, perr := strconv.ParseFloat(num, bitSize[T]())
			if perr != nil {
				return bad("number", truncate(num), nil)
			}
			if next, err := sc.peek(); err == nil && !isSpace(next) && next != ']' {
				return bad("whitespace after number", strconv.QuoteRune(rune(next)), nil)
			}
			data = append(data, T(f))

		case b == ' ' || b == '\t':
			sc.ReadByte()

		case b == ']':
			sc.ReadByte()
			if err := v.Resize(len(data), Undefined); err != nil {
				return err
			}
			copy(v.data, data)
			if err := eatNewline(sc); err != nil {
				log.Warning("after end of vector data, read error: %v", err)
			}
			return nil

		case b == '\n' || b == '\r':
			return bad("vector data", "newline (maybe it's a matrix?)", nil)

		default:
			s, err := sc.word(nil)
			if err != nil && err != io.EOF {
				return bad("vector data", truncate(s), err)
			}
			switch strings.ToLower(s) {
			case "inf", "infinity", "+inf", "+infinity":
				log.Warning("reading infinite value into vector")
				data = append(data, T(math.Inf(1)))
			case "nan":
				log.Warning("reading NaN value into vector")
				data = append(data, T(math.NaN()))
			default:
				return bad("numeric vector data", truncate(s), nil)
			}
		}
	}
}

// eatNewline consumes the "\n" or "\r\n" written after the closing bracket.
func eatNewline(sc *scanner) error {
	b, err := sc.peek()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	switch b {
	case '\n':
		_, err = sc.ReadByte()
	case '\r':
		if _, err = sc.ReadByte(); err == nil {
			_, err = sc.ReadByte()
		}
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	return err
}
