package ice

import "fmt"

// Kind identifies the class of error an archive operation failed with.
type Kind int

const (
	// KindNotAnArchive indicates the input's signature does not match "ICE\0".
	KindNotAnArchive Kind = iota
	// KindUnsupportedVersion indicates the archive version is not 3 or 4.
	KindUnsupportedVersion
	// KindMalformedHeader indicates a fixed-size header violated an invariant.
	KindMalformedHeader
	// KindMalformedRecord indicates a data-file record violated an invariant.
	KindMalformedRecord
	// KindDecryptionFailed indicates the Blowfish oracle rejected a key or
	// the decrypted structure is impossible.
	KindDecryptionFailed
	// KindDecompressionFailed indicates the Kraken/PRS codec reported an
	// error or produced an unexpected output length.
	KindDecompressionFailed
	// KindUnexpectedEOF indicates the input ended mid-record.
	KindUnexpectedEOF
	// KindEncryptionNotSupported indicates a writer was asked to encrypt
	// under a layout this package cannot synthesize correctly.
	KindEncryptionNotSupported
	// KindInvalidInput indicates a caller-supplied argument was invalid
	// (bad version number, unknown compression mode). Empty file lists are
	// not rejected: they are written as empty groups.
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindNotAnArchive:
		return "not an archive"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindMalformedHeader:
		return "malformed header"
	case KindMalformedRecord:
		return "malformed record"
	case KindDecryptionFailed:
		return "decryption failed"
	case KindDecompressionFailed:
		return "decompression failed"
	case KindUnexpectedEOF:
		return "unexpected EOF"
	case KindEncryptionNotSupported:
		return "encryption not supported"
	case KindInvalidInput:
		return "invalid input"
	default:
		return "unknown error"
	}
}

// ArchiveError carries enough context to diagnose a failed read or write:
// the Kind of failure, the byte Offset it was detected at (-1 if not
// applicable), the struct Field involved, and an optional wrapped cause.
type ArchiveError struct {
	Kind   Kind
	Offset int64
	Field  string
	Err    error
}

func (e *ArchiveError) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" (offset 0x%x)", e.Offset)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// Is reports whether target is a Kind-only *ArchiveError (no offset, field,
// or cause, as built by ErrKind) with the same Kind, allowing callers to
// write errors.Is(err, ice.ErrKind(KindMalformedRecord)).
func (e *ArchiveError) Is(target error) bool {
	other, ok := target.(*ArchiveError)
	if !ok {
		return false
	}
	return other.Offset < 0 && other.Field == "" && other.Err == nil && other.Kind == e.Kind
}

func newErr(kind Kind, field string) *ArchiveError {
	return &ArchiveError{Kind: kind, Offset: -1, Field: field}
}

func newErrAt(kind Kind, offset int64, field string) *ArchiveError {
	return &ArchiveError{Kind: kind, Offset: offset, Field: field}
}

func wrapErr(kind Kind, field string, err error) *ArchiveError {
	return &ArchiveError{Kind: kind, Offset: -1, Field: field, Err: err}
}

// ErrKind builds a sentinel usable with errors.Is to test only the Kind of
// a failure, e.g. errors.Is(err, ice.ErrKind(ice.KindDecryptionFailed)).
func ErrKind(kind Kind) error {
	return &ArchiveError{Kind: kind, Offset: -1}
}
