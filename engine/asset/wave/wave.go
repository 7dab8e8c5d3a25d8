// package wave decodes RIFF/WAVE containers into a format descriptor plus an
// owned raw sample buffer. The sample bytes are passed through unchanged, no
// resampling or format conversion happens here; the audio backend consumes
// the descriptor and the raw buffer as-is.
package wave

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"sync"
)

var (
	ErrMalformedContainer  = errors.New("stream does not start with a RIFF/WAVE header")
	ErrMissingFormatChunk  = errors.New("no fmt chunk precedes the data chunk")
	ErrFormatChunkTooLarge = errors.New("declared fmt chunk size exceeds descriptor capacity")
	ErrMissingDataChunk    = errors.New("no data chunk found")
	ErrAlreadyReleased     = errors.New("sample buffer already released")
)

// formatDescriptorCapacity is the size of an extended PCM format record, the
// largest fmt payload this decoder accepts.
const formatDescriptorCapacity = 18

const chunkHeaderSize = 8

// FormatDescriptor is the PCM format record carried by the fmt chunk.
type FormatDescriptor struct {
	// AudioFormat is the format tag (1 for uncompressed PCM).
	AudioFormat uint16

	// Channels is the number of interleaved channels.
	Channels uint16

	// SampleRate is the number of sample frames per second.
	SampleRate uint32

	// ByteRate is the average bytes per second (SampleRate * BlockAlign).
	ByteRate uint32

	// BlockAlign is the size in bytes of one sample frame across all channels.
	BlockAlign uint16

	// BitsPerSample is the bit depth of a single channel sample.
	BitsPerSample uint16
}

// Asset is a decoded waveform: an immutable format descriptor and an owned
// sample buffer. Close releases the buffer exactly once; using the samples
// after release is a defect and reported as such.
type Asset interface {
	// Format returns the PCM format record decoded from the fmt chunk.
	//
	// Returns:
	//   - FormatDescriptor: the decoded format record
	Format() FormatDescriptor

	// Samples returns the raw sample bytes.
	//
	// Returns:
	//   - []byte: the owned sample buffer
	//   - error: ErrAlreadyReleased if Close has been called
	Samples() ([]byte, error)

	// ByteLength returns the declared size of the data chunk. It always
	// equals the length of the buffer returned by Samples.
	//
	// Returns:
	//   - uint32: the sample buffer length in bytes
	ByteLength() uint32

	// Close releases the sample buffer.
	//
	// Returns:
	//   - error: ErrAlreadyReleased on a second call
	Close() error
}

type asset struct {
	mu         sync.Mutex
	format     FormatDescriptor
	samples    []byte
	byteLength uint32
	released   bool
}

var _ Asset = (*asset)(nil)

// Decode parses a complete RIFF/WAVE byte stream.
//
// The stream must open with the RIFF signature and declare the WAVE type,
// carry a fmt chunk before the data chunk, and may hold any number of JUNK
// chunks between the two; those are skipped without interpreting their
// contents. The data chunk's declared size is read exactly, no more.
//
// Parameters:
//   - data: the raw container bytes
//
// Returns:
//   - Asset: the decoded waveform
//   - error: ErrMalformedContainer, ErrMissingFormatChunk,
//     ErrFormatChunkTooLarge or ErrMissingDataChunk describing the first
//     structural violation encountered
func Decode(data []byte) (Asset, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, ErrMalformedContainer
	}
	offset := 12

	tag, size, err := readChunkHeader(data, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingFormatChunk, err)
	}
	if tag != "fmt " {
		return nil, ErrMissingFormatChunk
	}
	if size > formatDescriptorCapacity {
		return nil, ErrFormatChunkTooLarge
	}
	offset += chunkHeaderSize
	if offset+int(size) > len(data) {
		return nil, fmt.Errorf("%w: truncated fmt payload", ErrMissingFormatChunk)
	}
	format := decodeFormat(data[offset : offset+int(size)])
	offset += int(size)

	for {
		tag, size, err = readChunkHeader(data, offset)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingDataChunk, err)
		}
		offset += chunkHeaderSize
		if tag == "JUNK" {
			offset += int(size)
			continue
		}
		break
	}
	if tag != "data" {
		return nil, ErrMissingDataChunk
	}
	if offset+int(size) > len(data) {
		return nil, fmt.Errorf("%w: truncated data payload", ErrMissingDataChunk)
	}

	samples := make([]byte, size)
	copy(samples, data[offset:offset+int(size)])

	return &asset{
		format:     format,
		samples:    samples,
		byteLength: size,
	}, nil
}

// DecodeFile reads and decodes a RIFF/WAVE container from disk.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Asset: the decoded waveform
//   - error: the read error, or any error Decode reports
func DecodeFile(path string) (Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wave file %s: %w", path, err)
	}
	return Decode(data)
}

// readChunkHeader reads the 4-byte ASCII tag and little-endian size at offset.
func readChunkHeader(data []byte, offset int) (string, uint32, error) {
	if offset+chunkHeaderSize > len(data) {
		return "", 0, errors.New("unexpected end of stream")
	}
	tag := string(data[offset : offset+4])
	size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
	return tag, size, nil
}

// decodeFormat unpacks the fmt payload. Payloads shorter than a full PCM
// record leave the trailing fields zeroed.
func decodeFormat(payload []byte) FormatDescriptor {
	var buf [formatDescriptorCapacity]byte
	copy(buf[:], payload)

	return FormatDescriptor{
		AudioFormat:   binary.LittleEndian.Uint16(buf[0:2]),
		Channels:      binary.LittleEndian.Uint16(buf[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(buf[4:8]),
		ByteRate:      binary.LittleEndian.Uint32(buf[8:12]),
		BlockAlign:    binary.LittleEndian.Uint16(buf[12:14]),
		BitsPerSample: binary.LittleEndian.Uint16(buf[14:16]),
	}
}

func (a *asset) Format() FormatDescriptor {
	return a.format
}

func (a *asset) Samples() ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return nil, ErrAlreadyReleased
	}
	return a.samples, nil
}

func (a *asset) ByteLength() uint32 {
	return a.byteLength
}

func (a *asset) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return ErrAlreadyReleased
	}
	a.released = true
	a.samples = nil
	return nil
}
