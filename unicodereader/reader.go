// Package unicodereader implements the buffered character cursor over
// Java source text (C2): a positioned cursor that transparently resolves
// \uXXXX escapes, exposes a scratch buffer for accumulating decoded
// literal text, and reserves a sentinel past the logical end of input so
// callers can probe one position past without a bounds check.
package unicodereader

import "github.com/dhamidi/javafront/name"

// EOI is the sentinel appended past the logical end of the buffer.
const EOI = ''

// Reader is a positioned cursor over a rune buffer. Characters are
// modelled as runes rather than raw UTF-16 code units: a \uXXXX escape
// always decodes to exactly one element of buf, which may be one half of
// a surrogate pair (PeekSurrogates recombines such pairs on request).
type Reader struct {
	buf []rune
	bp  int // index in buf of Ch
	Ch  rune

	// sbuf/sp is the scratch buffer used by callers to accumulate the
	// decoded text of literals (identifiers, numbers, strings, chars).
	sbuf []rune
	sp   int

	// unicodeOffset is the buffer offset of the backslash that began the
	// most recently resolved \uXXXX escape. A backslash encountered again
	// at the same offset is not re-expanded (expansion is once-per-position).
	unicodeOffset int
}

// New returns a Reader positioned on the first character of src (Ch
// holds it, with any leading \uXXXX escape already resolved). The
// caller's buffer is copied once into an internal rune slice with an EOI
// sentinel appended; src is never mutated.
func New(src []byte) *Reader {
	runes := []rune(string(src))
	runes = append(runes, EOI)
	r := &Reader{buf: runes, bp: -1, unicodeOffset: -1}
	r.ScanChar()
	return r
}

// NewFromRunes is like New but accepts an already-decoded rune buffer
// (e.g. the text of a single doc comment, independent of any file).
// A trailing EOI is appended if not already present.
func NewFromRunes(src []rune) *Reader {
	runes := make([]rune, len(src), len(src)+1)
	copy(runes, src)
	if len(runes) == 0 || runes[len(runes)-1] != EOI {
		runes = append(runes, EOI)
	}
	r := &Reader{buf: runes, bp: -1, unicodeOffset: -1}
	r.ScanChar()
	return r
}

// BP returns the cursor's current index into the logical buffer.
func (r *Reader) BP() int { return r.bp }

// Len returns the number of logical characters, excluding the EOI
// sentinel.
func (r *Reader) Len() int { return len(r.buf) - 1 }

// AtEOI reports whether the cursor has reached the sentinel.
func (r *Reader) AtEOI() bool { return r.bp >= len(r.buf)-1 }

func (r *Reader) rawAt(i int) rune {
	if i < 0 || i >= len(r.buf) {
		return EOI
	}
	return r.buf[i]
}

// ScanChar advances one logical character and resolves any pending
// \uXXXX escape (JLS §3.3) into a single logical character. Escapes may
// be doubled (\\u...u...XXXX); an escape already resolved at the current
// offset is not re-expanded on a repeat visit.
func (r *Reader) ScanChar() {
	r.bp++
	ch := r.rawAt(r.bp)

	if ch == '\\' && r.bp != r.unicodeOffset {
		start := r.bp
		p := r.bp + 1
		if r.rawAt(p) == 'u' {
			for r.rawAt(p) == 'u' {
				p++
			}
			hex := [4]rune{}
			ok := true
			for i := 0; i < 4; i++ {
				d := r.rawAt(p + i)
				if !isHexDigit(d) {
					ok = false
					break
				}
				hex[i] = d
			}
			if ok {
				val := hexValue(hex[0])<<12 | hexValue(hex[1])<<8 | hexValue(hex[2])<<4 | hexValue(hex[3])
				r.bp = p + 3 // index of the escape's last hex digit; the next ScanChar moves past it
				r.unicodeOffset = start
				r.Ch = rune(val)
				return
			}
		}
	}

	r.Ch = ch
}

// ScanCommentChar behaves like ScanChar but a literal '\\' never begins
// escape processing: inside a comment's raw text, backslash sequences
// that happen to resemble escapes are left untouched so that a comment
// previously subjected to escape expansion is not decoded twice.
func (r *Reader) ScanCommentChar() {
	r.bp++
	r.Ch = r.rawAt(r.bp)
}

// PeekChar reports the next logical character without consuming it or
// resolving any escape it may begin.
func (r *Reader) PeekChar() rune {
	return r.rawAt(r.bp + 1)
}

// PeekAt reports the raw character n positions ahead of the current one
// (PeekAt(1) is equivalent to PeekChar), without consuming input or
// resolving any escape. Used by multi-character lookahead (e.g. the
// "non-sealed" contextual keyword, text-block delimiters).
func (r *Reader) PeekAt(n int) rune {
	return r.rawAt(r.bp + n)
}

// PeekSurrogates reports the combined code point of a high/low surrogate
// pair starting at the current character, without consuming input. It
// returns 0, false if the current character is not a high surrogate or
// is not followed by a low surrogate.
func (r *Reader) PeekSurrogates() (rune, bool) {
	hi := r.Ch
	if hi < 0xD800 || hi > 0xDBFF {
		return 0, false
	}
	lo := r.rawAt(r.bp + 1)
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, false
	}
	return ((hi - 0xD800) << 10) + (lo - 0xDC00) + 0x10000, true
}

// PutChar appends ch to the scratch buffer.
func (r *Reader) PutChar(ch rune) {
	if r.sp >= len(r.sbuf) {
		r.sbuf = append(r.sbuf, ch)
	} else {
		r.sbuf[r.sp] = ch
	}
	r.sp++
}

// ResetScratch discards any accumulated scratch content without
// releasing its backing array, so it can be reused for the next literal.
func (r *Reader) ResetScratch() { r.sp = 0 }

// Chars returns a snapshot of the scratch buffer's current contents as a
// string.
func (r *Reader) Chars() string {
	return string(r.sbuf[:r.sp])
}

// Name interns the scratch buffer's current contents into tbl.
func (r *Reader) Name(tbl *name.Table) name.Name {
	return tbl.Intern([]byte(string(r.sbuf[:r.sp])), 0, len(string(r.sbuf[:r.sp])))
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	default:
		return int(ch-'A') + 10
	}
}
