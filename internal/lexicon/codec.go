package lexicon

import (
	"encoding/binary"
	"hash/crc32"

	engerr "github.com/nepalinlp/orthography-engine/pkg/errors"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// MagicBytes identifies a lexicon blob.
const (
	MagicBytes    uint32 = 0x4E504C58 // "NPLX"
	FormatVersion uint32 = 1
	headerSize           = 32
	footerSize           = 8
	stateSize            = 12
	edgeSize             = 5
)

// Marshal serialises the lexicon into its versioned binary blob:
// a 32-byte header, the state and edge tables, the metadata array, the
// correction table, and a CRC32 footer over the payload. Everything is
// little-endian. Identical lexicons marshal to identical bytes.
func (l *Lexicon) Marshal() []byte {
	payloadLen := len(l.fsa.states)*stateSize + len(l.fsa.edges)*edgeSize + len(l.meta)*4
	for _, c := range l.corrections {
		payloadLen += 1 + 2 + len(c.Want) + 2 + len(c.Rule.Code) + 2 + len(c.Note)
	}
	buf := make([]byte, headerSize+payloadLen+footerSize)

	binary.LittleEndian.PutUint32(buf[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(buf[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(l.fsa.states)))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(l.fsa.edges)))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(len(l.meta)))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(len(l.corrections)))

	off := headerSize
	for _, st := range l.fsa.states {
		binary.LittleEndian.PutUint32(buf[off:], st.Count)
		binary.LittleEndian.PutUint32(buf[off+4:], st.EdgeStart)
		binary.LittleEndian.PutUint16(buf[off+8:], st.EdgeCount)
		if st.Final {
			buf[off+10] = 1
		}
		off += stateSize
	}
	for _, e := range l.fsa.edges {
		binary.LittleEndian.PutUint32(buf[off:], e.Target)
		buf[off+4] = e.Label
		off += edgeSize
	}
	for _, m := range l.meta {
		binary.LittleEndian.PutUint32(buf[off:], m)
		off += 4
	}
	for _, c := range l.corrections {
		buf[off] = byte(c.Rule.Source)
		off++
		off = putString(buf, off, c.Want)
		off = putString(buf, off, c.Rule.Code)
		off = putString(buf, off, c.Note)
	}

	checksum := crc32.ChecksumIEEE(buf[headerSize : headerSize+payloadLen])
	binary.LittleEndian.PutUint32(buf[off:], checksum)
	binary.LittleEndian.PutUint32(buf[off+4:], uint32(payloadLen))
	return buf
}

func putString(buf []byte, off int, s string) int {
	binary.LittleEndian.PutUint16(buf[off:], uint16(len(s)))
	off += 2
	copy(buf[off:], s)
	return off + len(s)
}

// Unmarshal validates and decodes a lexicon blob. A bad magic number,
// truncated payload, or checksum mismatch is ErrCorruptLexicon; an
// unknown format version is ErrIncompatibleVersion. Both are fatal.
func Unmarshal(blob []byte) (*Lexicon, error) {
	if len(blob) < headerSize+footerSize {
		return nil, engerr.Newf(engerr.ErrCorruptLexicon, "lexicon", "blob too short: %d bytes", len(blob))
	}
	if magic := binary.LittleEndian.Uint32(blob[0:4]); magic != MagicBytes {
		return nil, engerr.Newf(engerr.ErrCorruptLexicon, "lexicon", "bad magic 0x%08X", magic)
	}
	if version := binary.LittleEndian.Uint32(blob[4:8]); version != FormatVersion {
		return nil, engerr.Newf(engerr.ErrIncompatibleVersion, "lexicon", "version %d, want %d", version, FormatVersion)
	}
	stateCount := int(binary.LittleEndian.Uint32(blob[8:12]))
	edgeCount := int(binary.LittleEndian.Uint32(blob[12:16]))
	metaCount := int(binary.LittleEndian.Uint32(blob[16:20]))
	corrCount := int(binary.LittleEndian.Uint32(blob[20:24]))

	payloadLen := int(binary.LittleEndian.Uint32(blob[len(blob)-4:]))
	if headerSize+payloadLen+footerSize != len(blob) {
		return nil, engerr.Newf(engerr.ErrCorruptLexicon, "lexicon", "payload length %d disagrees with blob size %d", payloadLen, len(blob))
	}
	wantSum := binary.LittleEndian.Uint32(blob[len(blob)-8:])
	if gotSum := crc32.ChecksumIEEE(blob[headerSize : headerSize+payloadLen]); gotSum != wantSum {
		return nil, engerr.Newf(engerr.ErrCorruptLexicon, "lexicon", "checksum mismatch: got 0x%08X, want 0x%08X", gotSum, wantSum)
	}

	fixed := stateCount*stateSize + edgeCount*edgeSize + metaCount*4
	if fixed > payloadLen {
		return nil, engerr.New(engerr.ErrCorruptLexicon, "lexicon", "section counts exceed payload")
	}

	l := &Lexicon{
		fsa: &Automaton{
			states: make([]state, stateCount),
			edges:  make([]edge, edgeCount),
		},
		meta:        make([]uint32, metaCount),
		corrections: make([]Correction, corrCount),
	}
	off := headerSize
	for i := range l.fsa.states {
		l.fsa.states[i] = state{
			Count:     binary.LittleEndian.Uint32(blob[off:]),
			EdgeStart: binary.LittleEndian.Uint32(blob[off+4:]),
			EdgeCount: binary.LittleEndian.Uint16(blob[off+8:]),
			Final:     blob[off+10] == 1,
		}
		off += stateSize
	}
	for i := range l.fsa.edges {
		l.fsa.edges[i] = edge{
			Target: binary.LittleEndian.Uint32(blob[off:]),
			Label:  blob[off+4],
		}
		off += edgeSize
	}
	for i := range l.meta {
		l.meta[i] = binary.LittleEndian.Uint32(blob[off:])
		off += 4
	}
	end := headerSize + payloadLen
	for i := range l.corrections {
		if off >= end {
			return nil, engerr.New(engerr.ErrCorruptLexicon, "lexicon", "truncated correction table")
		}
		source := types.RuleSource(blob[off])
		off++
		var want, code, note string
		var err error
		if want, off, err = getString(blob, off, end); err != nil {
			return nil, err
		}
		if code, off, err = getString(blob, off, end); err != nil {
			return nil, err
		}
		if note, off, err = getString(blob, off, end); err != nil {
			return nil, err
		}
		l.corrections[i] = Correction{
			Want: want,
			Rule: types.Rule{Source: source, Code: code},
			Note: note,
		}
	}
	return l, nil
}

func getString(blob []byte, off, end int) (string, int, error) {
	if off+2 > end {
		return "", 0, engerr.New(engerr.ErrCorruptLexicon, "lexicon", "truncated string length")
	}
	n := int(binary.LittleEndian.Uint16(blob[off:]))
	off += 2
	if off+n > end {
		return "", 0, engerr.New(engerr.ErrCorruptLexicon, "lexicon", "truncated string payload")
	}
	return string(blob[off : off+n]), off + n, nil
}
