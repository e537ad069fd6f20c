// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

const framesPerBuffer = 1024

// PortAudioSource reads the default input device through PortAudio.
type PortAudioSource struct{}

func NewPortAudioSource() *PortAudioSource {
	return &PortAudioSource{}
}

type portAudioStream struct {
	stream *portaudio.Stream
	in     []int16
}

// Open initializes PortAudio and starts a mono int16 input stream. Every
// failure is reported as ErrPermissionDenied: the library does not tell a
// missing device from a refused one.
func (s *PortAudioSource) Open(sampleRate int) (Stream, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: portaudio init: %w", ErrPermissionDenied, err)
	}

	in := make([]int16, framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(1, 0, float64(sampleRate), len(in), in)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: open stream: %w", ErrPermissionDenied, err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("%w: start stream: %w", ErrPermissionDenied, err)
	}

	return &portAudioStream{stream: stream, in: in}, nil
}

func (p *portAudioStream) Read() ([]int16, error) {
	if err := p.stream.Read(); err != nil {
		return nil, err
	}
	frame := make([]int16, len(p.in))
	copy(frame, p.in)
	return frame, nil
}

func (p *portAudioStream) Close() error {
	stopErr := p.stream.Stop()
	closeErr := p.stream.Close()
	termErr := portaudio.Terminate()

	if stopErr != nil {
		return stopErr
	}
	if closeErr != nil {
		return closeErr
	}
	return termErr
}
