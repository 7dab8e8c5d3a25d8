package audio

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/asset/wave"
)

// buildPCMContainer assembles a minimal RIFF/WAVE container with the given
// format descriptor and a short sample payload.
func buildPCMContainer(t *testing.T, format wave.FormatDescriptor) []byte {
	t.Helper()

	var fmtChunk bytes.Buffer
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.AudioFormat)
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.Channels)
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.SampleRate)
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.ByteRate)
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.BlockAlign)
	_ = binary.Write(&fmtChunk, binary.LittleEndian, format.BitsPerSample)

	samples := []byte{0x00, 0x01, 0x02, 0x03}

	var body bytes.Buffer
	body.WriteString("WAVE")
	body.WriteString("fmt ")
	_ = binary.Write(&body, binary.LittleEndian, uint32(fmtChunk.Len()))
	body.Write(fmtChunk.Bytes())
	body.WriteString("data")
	_ = binary.Write(&body, binary.LittleEndian, uint32(len(samples)))
	body.Write(samples)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())
	return buf.Bytes()
}
