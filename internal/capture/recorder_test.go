// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"bytes"
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/idea-voice/internal/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

var errExhausted = errors.New("source exhausted")

type fakeStream struct {
	mu     sync.Mutex
	frames [][]int16
	closed bool
}

func (f *fakeStream) Read() ([]int16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.frames) == 0 {
		return nil, errExhausted
	}
	frame := f.frames[0]
	f.frames = f.frames[1:]
	return frame, nil
}

func (f *fakeStream) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeStream) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

type fakeSource struct {
	stream  *fakeStream
	openErr error
	gotRate int
}

func (f *fakeSource) Open(sampleRate int) (Stream, error) {
	f.gotRate = sampleRate
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.stream, nil
}

func sineFrames(seconds, rate int, freq float64) [][]int16 {
	total := seconds * rate
	var frames [][]int16
	for start := 0; start < total; start += framesPerBuffer {
		n := framesPerBuffer
		if start+n > total {
			n = total - start
		}
		frame := make([]int16, n)
		for i := range frame {
			frame[i] = int16(12000 * math.Sin(2*math.Pi*freq*float64(start+i)/float64(rate)))
		}
		frames = append(frames, frame)
	}
	return frames
}

// waitDrained blocks until the fake stream has handed out every frame.
func waitDrained(t *testing.T, s *fakeStream) {
	t.Helper()
	require.Eventually(t, func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		return len(s.frames) == 0
	}, time.Second, time.Millisecond)
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestRecorder_StopProducesWAV(t *testing.T) {
	stream := &fakeStream{frames: sineFrames(5, 16000, 440)}
	source := &fakeSource{stream: stream}
	rec := NewRecorder(source, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)
	waitDrained(t, stream)

	recording, err := session.Stop()
	require.NoError(t, err)

	assert.Equal(t, 16000, source.gotRate)
	assert.Equal(t, 5, recording.DurationSeconds)
	assert.Equal(t, WAVMIMEType, recording.Audio.MIMEType)
	assert.True(t, stream.isClosed())

	dec := wav.NewDecoder(bytes.NewReader(recording.Audio.Data))
	require.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, 5*16000, len(buf.Data))
	assert.Equal(t, 16000, int(dec.SampleRate))
	assert.Equal(t, 1, int(dec.NumChans))
}

func TestRecorder_DurationIsWholeSeconds(t *testing.T) {
	frames := sineFrames(2, 16000, 440)
	frames = append(frames, make([]int16, 8000))
	stream := &fakeStream{frames: frames}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)
	waitDrained(t, stream)

	assert.Equal(t, 2500*time.Millisecond, session.Elapsed())

	recording, err := session.Stop()
	require.NoError(t, err)
	assert.Equal(t, 2, recording.DurationSeconds)
}

func TestRecorder_PermissionDenied(t *testing.T) {
	rec := NewRecorder(&fakeSource{openErr: errors.New("no default input device")}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// a failed start leaves the recorder free
	_, err = rec.Start(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.NotErrorIs(t, err, ErrAlreadyRecording)
}

func TestRecorder_SingleActiveSession(t *testing.T) {
	stream := &fakeStream{frames: sineFrames(1, 16000, 440)}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)

	_, err = rec.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRecording)

	session.Cancel()

	stream.frames = sineFrames(1, 16000, 440)
	again, err := rec.Start(context.Background())
	require.NoError(t, err)
	again.Cancel()
}

func TestRecorder_CancelDiscards(t *testing.T) {
	stream := &fakeStream{frames: sineFrames(1, 16000, 440)}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)
	waitDrained(t, stream)

	session.Cancel()
	assert.True(t, stream.isClosed())

	_, err = session.Stop()
	assert.ErrorIs(t, err, ErrNoAudio)
}

func TestRecorder_StopWithoutAudio(t *testing.T) {
	stream := &fakeStream{}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)

	_, err = session.Stop()
	assert.ErrorIs(t, err, ErrNoAudio)
}

func TestSession_Spectrum(t *testing.T) {
	stream := &fakeStream{frames: sineFrames(1, 16000, 2000)}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, logger.Nop())

	session, err := rec.Start(context.Background())
	require.NoError(t, err)
	defer session.Cancel()

	waitDrained(t, stream)

	var bins []uint8
	// smoothing needs a few snapshots to rise
	for i := 0; i < 20; i++ {
		bins = session.Spectrum()
	}
	require.Len(t, bins, BinCount)

	// 2 kHz at 16 kHz with 256 points lands in bin 32
	peak := 0
	for k := range bins {
		if bins[k] > bins[peak] {
			peak = k
		}
	}
	assert.InDelta(t, 32, peak, 1)
	assert.Greater(t, bins[peak], bins[100])
}

func TestRecorder_StopAfterReadErrorKeepsPartialAudio(t *testing.T) {
	stream := &fakeStream{frames: sineFrames(2, 16000, 440)}
	var logs bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logs)}
	rec := NewRecorder(&fakeSource{stream: stream}, 16000, log)

	sess, err := rec.Start(context.Background())
	require.NoError(t, err)
	waitDrained(t, stream)

	// the drained fake fails its next read, like an unplugged device
	live := sess.(*session)
	require.Eventually(t, func() bool {
		live.mu.Lock()
		defer live.mu.Unlock()
		return live.readErr != nil
	}, time.Second, time.Millisecond)

	got, err := sess.Stop()
	require.NoError(t, err)
	assert.Equal(t, 2, got.DurationSeconds)
	assert.False(t, got.Audio.IsEmpty())

	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), errExhausted.Error())
	assert.Contains(t, logs.String(), `"samples":32000`)
}
