package decoders

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/gopxl/beep/v2"
)

// aiffChunkSamples bounds how much decoded PCM data is held in memory at
// once per channel (~93ms at 44.1kHz).
const aiffChunkSamples = 4096

// aiffStreamer implements beep.StreamSeekCloser for AIFF files by pulling
// PCM chunks from go-audio/aiff and normalizing them to beep's [-1,1]
// float64 sample format.
type aiffStreamer struct {
	decoder *aiff.Decoder
	format  beep.Format
	reader  io.ReadSeeker

	raw           *audio.IntBuffer
	buf           [][2]float64
	bufPos        int
	totalSamples  int
	currentSample int

	sourceBitDepth int
	maxValue       float64
}

// DecodeAIFF creates a beep-compatible streamer from an AIFF file.
func DecodeAIFF(r io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
	readSeeker, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, beep.Format{}, fmt.Errorf("decode aiff: reader does not support seeking")
	}

	decoder := aiff.NewDecoder(readSeeker)
	if !decoder.IsValidFile() {
		return nil, beep.Format{}, fmt.Errorf("decode aiff: not a valid AIFF file")
	}
	decoder.ReadInfo()

	format := decoder.Format()
	if format == nil {
		return nil, beep.Format{}, fmt.Errorf("decode aiff: could not read format chunk")
	}

	beepFormat := beep.Format{
		SampleRate:  beep.SampleRate(format.SampleRate),
		NumChannels: format.NumChannels,
		Precision:   4,
	}

	bitDepth := int(decoder.SampleBitDepth())
	var maxValue float64
	switch bitDepth {
	case 8:
		maxValue = float64(1 << 7)
	case 16:
		maxValue = float64(1 << 15)
	case 24:
		maxValue = float64(1 << 23)
	case 32:
		maxValue = float64(1 << 31)
	case 64:
		maxValue = float64(1 << 63)
	default:
		maxValue = float64(1 << 15)
	}

	s := &aiffStreamer{
		decoder:        decoder,
		format:         beepFormat,
		reader:         readSeeker,
		buf:            make([][2]float64, aiffChunkSamples),
		totalSamples:   int(decoder.NumSampleFrames),
		sourceBitDepth: bitDepth,
		maxValue:       maxValue,
	}
	if err := s.fill(); err != nil {
		return nil, beep.Format{}, fmt.Errorf("decode aiff: initial buffer: %w", err)
	}
	return s, beepFormat, nil
}

func (s *aiffStreamer) fill() error {
	if s.currentSample >= s.totalSamples {
		return fmt.Errorf("end of stream")
	}

	toRead := aiffChunkSamples
	if s.currentSample+toRead > s.totalSamples {
		toRead = s.totalSamples - s.currentSample
	}

	s.raw = &audio.IntBuffer{
		Data:   make([]int, toRead*s.format.NumChannels),
		Format: s.decoder.Format(),
	}
	n, err := s.decoder.PCMBuffer(s.raw)
	if err != nil {
		return fmt.Errorf("read pcm chunk: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no data read from decoder")
	}

	actual := n / s.format.NumChannels
	if actual > len(s.buf) {
		actual = len(s.buf)
	}
	for i := 0; i < actual; i++ {
		switch {
		case s.format.NumChannels == 1:
			v := float64(s.raw.Data[i]) / s.maxValue
			s.buf[i] = [2]float64{v, v}
		default:
			l := float64(s.raw.Data[i*s.format.NumChannels]) / s.maxValue
			r := float64(s.raw.Data[i*s.format.NumChannels+1]) / s.maxValue
			s.buf[i] = [2]float64{l, r}
		}
	}

	s.bufPos = 0
	s.currentSample += actual
	return nil
}

func (s *aiffStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.currentSample >= s.totalSamples {
		return 0, false
	}

	copied := 0
	want := len(samples)
	for copied < want && s.currentSample < s.totalSamples {
		if s.bufPos >= aiffChunkSamples || (s.bufPos > 0 && s.bufPos >= s.totalSamples-s.currentSample+s.bufPos) {
			if err := s.fill(); err != nil {
				if copied > 0 {
					return copied, true
				}
				return 0, false
			}
		}

		remaining := want - copied
		inBuf := aiffChunkSamples - s.bufPos
		left := s.totalSamples - (s.currentSample - (aiffChunkSamples - s.bufPos))

		n := remaining
		if n > inBuf {
			n = inBuf
		}
		if n > left {
			n = left
		}
		copy(samples[copied:copied+n], s.buf[s.bufPos:s.bufPos+n])
		s.bufPos += n
		copied += n
	}
	return copied, copied > 0
}

func (s *aiffStreamer) Err() error { return nil }
func (s *aiffStreamer) Len() int   { return s.totalSamples }

func (s *aiffStreamer) Position() int {
	return s.currentSample - (aiffChunkSamples - s.bufPos)
}

func (s *aiffStreamer) Seek(p int) error {
	if p < 0 || p >= s.totalSamples {
		return fmt.Errorf("seek out of range: %d (total %d)", p, s.totalSamples)
	}
	bytesPerSample := s.sourceBitDepth / 8
	bytePos := int64(p * s.format.NumChannels * bytesPerSample)
	if _, err := s.reader.Seek(bytePos, io.SeekStart); err != nil {
		return fmt.Errorf("seek aiff reader: %w", err)
	}
	s.currentSample = p
	s.bufPos = aiffChunkSamples
	return nil
}

func (s *aiffStreamer) Close() error {
	s.raw = nil
	s.buf = nil
	return nil
}
