package audio

import (
	"encoding/binary"
	"errors"
	"testing"
)

func wavHeader(sampleRate, byteRate, dataSize uint32) []byte {
	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], 1)
	binary.LittleEndian.PutUint16(header[22:24], 2)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], 4)
	binary.LittleEndian.PutUint16(header[34:36], 16)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
	return header
}

func TestProbeWAVDuration(t *testing.T) {
	// 44.1kHz, 16-bit stereo: 176400 bytes/s. 10 seconds of data.
	header := wavHeader(44100, 176400, 1764000)
	duration, err := ProbeWAVDuration(header)
	if err != nil {
		t.Fatalf("ProbeWAVDuration error: %v", err)
	}
	if duration != 10 {
		t.Fatalf("unexpected duration: %v", duration)
	}
}

func TestProbeWAVDurationTruncatedBodyStillProbes(t *testing.T) {
	// Only the 44 header bytes are available, not the data chunk body.
	header := wavHeader(22050, 44100, 441000)
	duration, err := ProbeWAVDuration(header[:44])
	if err != nil {
		t.Fatalf("ProbeWAVDuration error: %v", err)
	}
	if duration != 10 {
		t.Fatalf("unexpected duration: %v", duration)
	}
}

func TestProbeWAVDurationRejectsNonWAV(t *testing.T) {
	data := []byte("ID3\x04\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00")
	if _, err := ProbeWAVDuration(data); !errors.Is(err, ErrNotWAV) {
		t.Fatalf("expected ErrNotWAV, got %v", err)
	}
}

func TestProbeWAVDurationRejectsShortHeader(t *testing.T) {
	if _, err := ProbeWAVDuration([]byte("RIFF")); !errors.Is(err, ErrHeaderTruncated) {
		t.Fatalf("expected ErrHeaderTruncated, got %v", err)
	}
}

func TestProbeWAVDurationRejectsStreamingSize(t *testing.T) {
	header := wavHeader(44100, 176400, 0xFFFFFFFF)
	if _, err := ProbeWAVDuration(header); !errors.Is(err, ErrHeaderTruncated) {
		t.Fatalf("expected ErrHeaderTruncated, got %v", err)
	}
}
