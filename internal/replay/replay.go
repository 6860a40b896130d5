// Package replay prepares replay files for playback by the game engine.
//
// Two formats exist in the wild: .scfareplay is the raw stream the engine
// records itself and can be played back in place, while .fafreplay is a
// container the lobby server produces, a JSON metadata line followed by a
// compressed copy of the raw stream. The engine only understands the raw
// format, so containers are unpacked into a temp file first.
package replay

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Format identifies how a replay file on disk is encoded.
type Format int

const (
	FormatUnknown Format = iota
	// FormatRaw is the stream written by the Forged Alliance binary.
	FormatRaw
	// FormatFAF is the lobby server container (metadata header + compressed stream).
	FormatFAF
)

var (
	ErrUnknownFormat = errors.New("unknown replay format")
	ErrCorruptReplay = errors.New("corrupt replay")
)

// DetectFormat classifies a replay path by its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scfareplay":
		return FormatRaw
	case ".fafreplay":
		return FormatFAF
	default:
		return FormatUnknown
	}
}

// Source is a replay ready to be handed to the engine. Path always points at a
// raw-format file; for containers it is a temp file holding the unpacked
// stream. Metadata is nil for raw replays.
type Source struct {
	Path     string
	Metadata *Metadata
	Temp     bool
}

// Prepare resolves a replay path into a playable source. Temp files created
// for unpacked containers are deliberately not cleaned up here: the engine
// reads them after this process has exited.
func Prepare(path string) (*Source, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("replay file not found: %s", path)
		}
		return nil, err
	}
	if format == FormatRaw {
		return &Source{Path: path}, nil
	}
	return extract(path)
}

// ReadMetadata parses just the container header without unpacking the stream.
func ReadMetadata(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	line, err := bufio.NewReader(file).ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: metadata header is missing", ErrCorruptReplay)
	}
	return parseMetadata(line)
}

func extract(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	header, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("%w: metadata header is missing", ErrCorruptReplay)
	}
	meta, err := parseMetadata(header)
	if err != nil {
		return nil, err
	}

	temp, err := os.CreateTemp("", "faf-replay-*.scfareplay")
	if err != nil {
		return nil, err
	}
	if err := unpackStream(temp, reader, meta); err != nil {
		temp.Close()
		os.Remove(temp.Name())
		return nil, err
	}
	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return nil, err
	}

	return &Source{Path: temp.Name(), Metadata: meta, Temp: true}, nil
}

func unpackStream(dst io.Writer, src *bufio.Reader, meta *Metadata) error {
	if meta.Compression == "zstd" {
		return unpackZstd(dst, src)
	}
	return unpackLegacy(dst, src)
}

// unpackZstd handles v2 containers: everything after the header newline is a
// bare zstd stream.
func unpackZstd(dst io.Writer, src io.Reader) error {
	decoder, err := zstd.NewReader(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptReplay, err)
	}
	defer decoder.Close()
	if _, err := io.Copy(dst, decoder); err != nil {
		return fmt.Errorf("%w: truncated zstd stream: %v", ErrCorruptReplay, err)
	}
	return nil
}

// unpackLegacy handles the original container: a base64 line whose decoded
// bytes are qCompress output, a 4-byte big-endian length prefix followed by a
// zlib stream.
func unpackLegacy(dst io.Writer, src *bufio.Reader) error {
	encoded, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	encoded = bytes.TrimSpace(encoded)
	if len(encoded) == 0 {
		return fmt.Errorf("%w: binary replay stream is missing", ErrCorruptReplay)
	}

	packed, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return fmt.Errorf("%w: couldn't decode base64 stream", ErrCorruptReplay)
	}
	if len(packed) < 4 {
		return fmt.Errorf("%w: stream shorter than its length prefix", ErrCorruptReplay)
	}

	// Skip the qCompress length prefix.
	inflater, err := zlib.NewReader(bytes.NewReader(packed[4:]))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptReplay, err)
	}
	defer inflater.Close()
	if _, err := io.Copy(dst, inflater); err != nil {
		return fmt.Errorf("%w: truncated zlib stream: %v", ErrCorruptReplay, err)
	}
	return nil
}
