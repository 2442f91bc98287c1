package audio

import (
	"encoding/binary"
	"errors"
)

// ProbeHeaderSize is how many leading bytes of a stream the duration probe
// needs. The canonical WAV header is 44 bytes; extra room covers streams
// with a LIST chunk before the data chunk.
const ProbeHeaderSize = 512

var (
	ErrNotWAV          = errors.New("audio: not a RIFF/WAVE stream")
	ErrHeaderTruncated = errors.New("audio: header too short to probe")
)

// ProbeWAVDuration computes the stream duration in seconds from the leading
// bytes of a WAV stream. Only the chunk headers need to be present; chunk
// bodies past the fmt chunk may be truncated.
func ProbeWAVDuration(header []byte) (float64, error) {
	if len(header) < 12 {
		return 0, ErrHeaderTruncated
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return 0, ErrNotWAV
	}

	var byteRate uint32
	offset := 12
	for offset+8 <= len(header) {
		chunkID := string(header[offset : offset+4])
		chunkSize := binary.LittleEndian.Uint32(header[offset+4 : offset+8])
		switch chunkID {
		case "fmt ":
			if offset+8+16 > len(header) {
				return 0, ErrHeaderTruncated
			}
			byteRate = binary.LittleEndian.Uint32(header[offset+16 : offset+20])
		case "data":
			if byteRate == 0 {
				return 0, ErrHeaderTruncated
			}
			if chunkSize == 0 || chunkSize == 0xFFFFFFFF {
				return 0, ErrHeaderTruncated
			}
			return float64(chunkSize) / float64(byteRate), nil
		}
		offset += 8 + int(chunkSize)
		if chunkSize%2 == 1 {
			offset++
		}
	}
	return 0, ErrHeaderTruncated
}
