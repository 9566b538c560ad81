// Package state implements the on-disk/on-wire envelope a wrapper uses to
// save and restore an author's parameter values and any author-defined
// extension data.
package state

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/zplugin/zplugin/pkg/param"
)

// magic identifies an envelope written by this framework. It is checked
// byte-for-byte before anything else is read.
var magic = [4]byte{'Z', 'P', 'L', 'G'}

// Version is the default state_version (§4.6) an author is assumed to
// have declared when it doesn't implement plugin.Versioner.
const Version uint32 = 1

var (
	// ErrInvalidMagic is returned when the stream does not begin with the
	// expected 4-byte magic.
	ErrInvalidMagic = errors.New("state: invalid magic")
	// ErrTruncatedStream is returned when the stream ends before a
	// complete envelope has been read.
	ErrTruncatedStream = errors.New("state: truncated stream")
	// ErrVersionTooNew is returned when the stream declares a format
	// version newer than the maxKnownVersion passed to Load.
	ErrVersionTooNew = errors.New("state: version too new")
)

// Writer is the single-method sink an envelope is written to. io.Writer
// already satisfies it; it exists so callers aren't forced to depend on
// io directly from author-facing signatures.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Reader is the single-method source an envelope is read from.
type Reader interface {
	Read(p []byte) (n int, err error)
}

// ExtensionWriter is implemented by authors who keep state beyond their
// declared parameters. WriteExtension is called after the parameter
// block, on the main actor, never on the audio actor.
type ExtensionWriter interface {
	WriteExtension(w Writer) error
}

// ExtensionReader is the load-side counterpart of ExtensionWriter.
// version is the value read from the envelope header (the author's own
// state_version at the time it was saved, §4.6), letting an author
// migrate an older extension layout forward.
type ExtensionReader interface {
	ReadExtension(r Reader, version uint32) error
}

// Save writes rt's current normalized parameter values, in declaration
// order, to w, followed by ext's extension bytes if ext is non-nil and
// implements ExtensionWriter. The envelope is bit-exact per §6: 4 bytes
// magic, a u32 LE version, then N little-endian f32 normalized values (N
// is rt's parameter count — not itself carried on the wire, since a
// wrapper always knows its own author's declared parameter count before
// it ever reads a stream), then whatever ext chooses to write. version
// is the author's own state_version (§4.6; Version if the author didn't
// declare one), written verbatim so a later Load can hand it back for
// migration.
func Save(w Writer, rt *param.Runtime, version uint32, ext any) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return err
	}
	for i := 0; i < rt.Count(); i++ {
		v := float32(rt.Normalized(i))
		if err := binary.Write(w, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if ew, ok := ext.(ExtensionWriter); ok {
		return ew.WriteExtension(w)
	}
	return nil
}

// Load reads an envelope written by Save and applies normalized
// parameter values to rt, matched by position against rt's current
// declaration order. Per §6 the parameter count is not itself carried on
// the wire — N is rt's current declaration count, read directly after
// the header, matching Save's writer. This matches cleanly when rt's
// shape is unchanged since the save (the overwhelmingly common case: the
// same plugin revision loading its own prior state); an author that
// changes its declared parameter count between releases is outside what
// the bit-exact envelope alone can reconcile (see design notes).
//
// maxKnownVersion is the highest state_version (§4.6) this build of the
// author knows how to read (Version if the author didn't declare one); a
// saved version above it yields ErrVersionTooNew rather than silently
// misreading a future layout. Load returns the version the envelope was
// saved with, for a caller that wants to log or inspect it even when ext
// is nil.
//
// If ext implements ExtensionReader, its ReadExtension is called with the
// saved version and whatever remains of the stream after the parameter
// block, so an author can migrate an older extension layout forward; any
// error it returns is passed back to the caller unchanged, except that an
// error matching io.EOF (by errors.Is) is treated as "no extension data"
// and suppressed.
func Load(r Reader, rt *param.Runtime, maxKnownVersion uint32, ext any) (uint32, error) {
	var got [4]byte
	if _, err := io.ReadFull(toIOReader(r), got[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return 0, ErrTruncatedStream
		}
		return 0, err
	}
	if got != magic {
		return 0, ErrInvalidMagic
	}

	var version uint32
	if err := binary.Read(toIOReader(r), binary.LittleEndian, &version); err != nil {
		return 0, truncate(err)
	}
	if version > maxKnownVersion {
		return 0, ErrVersionTooNew
	}

	for i := 0; i < rt.Count(); i++ {
		var v float32
		if err := binary.Read(toIOReader(r), binary.LittleEndian, &v); err != nil {
			return 0, truncate(err)
		}
		rt.SetNormalized(i, float64(v))
	}

	if er, ok := ext.(ExtensionReader); ok {
		if err := er.ReadExtension(r, version); err != nil && !errors.Is(err, io.EOF) {
			return version, err
		}
	}
	return version, nil
}

func truncate(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncatedStream
	}
	return err
}

// toIOReader adapts a Reader to io.Reader for use with encoding/binary
// and io.ReadFull, which both require the stdlib interface.
func toIOReader(r Reader) io.Reader {
	if ior, ok := r.(io.Reader); ok {
		return ior
	}
	return readerFunc(r.Read)
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) { return f(p) }
