package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/wav"

	"voice_cloning/entity"
)

var ErrInvalidWAV = errors.New("not a valid wav buffer")

// WAVProber reads duration, sample rate and channel count from a WAV header.
type WAVProber struct{}

var _ entity.AudioProber = WAVProber{}

func NewWAVProber() WAVProber {
	return WAVProber{}
}

func (WAVProber) Probe(b []byte) (entity.AudioInfo, error) {
	dec := wav.NewDecoder(bytes.NewReader(b))

	dec.ReadInfo()

	if !dec.IsValidFile() {
		return entity.AudioInfo{}, ErrInvalidWAV
	}

	dur, err := dec.Duration()
	if err != nil {
		return entity.AudioInfo{}, fmt.Errorf("wav duration: %w", err)
	}

	return entity.AudioInfo{
		Duration:   dur,
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
	}, nil
}

// EncodeSilenceWAV builds a mono 16-bit PCM WAV buffer of silence. The
// go-audio encoder wants an io.WriteSeeker, which an in-memory buffer cannot
// provide, so the 44-byte header is written directly.
func EncodeSilenceWAV(sampleRate int, d time.Duration) []byte {
	frames := int(float64(sampleRate) * d.Seconds())
	dataLen := frames * 2

	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVEfmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	return buf.Bytes()
}
