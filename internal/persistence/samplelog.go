package persistence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vskvj3/deques/internal/utils"
)

// endMarker terminates every frame ("EOF\0").
var endMarker = []byte{0x45, 0x4F, 0x46, 0x00}

var ErrCorruptFrame = errors.New("corrupt frame")

// SampleLog is an append-only file of rendered sample frames.
type SampleLog struct {
	file *os.File
}

// OpenSampleLog opens the log at path, creating it if needed.
func OpenSampleLog(path string) (*SampleLog, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	return &SampleLog{file: file}, nil
}

// Append writes a frame to the end of the log
func (s *SampleLog) Append(frame []float64) error {
	payload, err := utils.EncodeFrame(frame)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	// Write payload length and payload
	if err := binary.Write(buf, binary.LittleEndian, int32(len(payload))); err != nil {
		return err
	}
	buf.Write(payload)
	buf.Write(endMarker)

	_, err = s.file.Write(buf.Bytes())
	return err
}

// LoadFrames reads every frame in the log, oldest first
func (s *SampleLog) LoadFrames() ([][]float64, error) {
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	info, err := s.file.Stat()
	if err != nil {
		return nil, err
	}
	remaining := info.Size()

	var frames [][]float64
	header := make([]byte, 4)
	for n := 0; ; n++ {
		if _, err := io.ReadFull(s.file, header); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("frame %d header: %w", n, ErrCorruptFrame)
		}
		remaining -= int64(len(header))
		size := int32(binary.LittleEndian.Uint32(header))
		if size < 0 {
			return nil, fmt.Errorf("frame %d has negative length: %w", n, ErrCorruptFrame)
		}
		// the claimed body must fit in what is left of the file
		if int64(size)+int64(len(endMarker)) > remaining {
			return nil, fmt.Errorf("frame %d claims %d bytes, %d left: %w", n, size, remaining, ErrCorruptFrame)
		}

		body := make([]byte, int(size)+len(endMarker))
		if _, err := io.ReadFull(s.file, body); err != nil {
			return nil, fmt.Errorf("frame %d truncated: %w", n, ErrCorruptFrame)
		}
		remaining -= int64(len(body))
		if !bytes.Equal(body[size:], endMarker) {
			return nil, fmt.Errorf("frame %d end marker: %w", n, ErrCorruptFrame)
		}

		frame, err := utils.DecodeFrame(body[:size])
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", n, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// Close closes the log file.
func (s *SampleLog) Close() error {
	return s.file.Close()
}
