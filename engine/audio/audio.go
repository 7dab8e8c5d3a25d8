package audio

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/asset/wave"
	"github.com/hajimehoshi/oto/v2"
)

// pcmAudioFormat is the format tag for uncompressed integer PCM.
const pcmAudioFormat = 1

var (
	// ErrUnsupportedFormat is returned for audio data the playback device cannot consume.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrFormatMismatch is returned when an asset's sample rate or channel count
	// differs from the format the playback context was opened with.
	ErrFormatMismatch = errors.New("audio format mismatch")

	// ErrEngineClosed is returned when playback is requested after Close.
	ErrEngineClosed = errors.New("audio engine closed")
)

// AudioEngine plays decoded wave assets through the system audio device.
//
// The underlying playback context is opened lazily from the first asset's
// format descriptor; the process-wide audio device only supports a single
// context, so all subsequent assets must share that sample rate and channel
// count.
type AudioEngine interface {
	// PlayWave starts asynchronous playback of a decoded wave asset.
	// The asset's sample buffer is released when playback finishes, so the
	// caller must not use the asset afterwards.
	//
	// Parameters:
	//   - asset: the decoded wave asset to play
	//
	// Returns:
	//   - error: error if the asset cannot be played
	PlayWave(asset wave.Asset) error

	// Close stops accepting playback requests, interrupts playback in
	// progress, and waits for the playback goroutines to exit. The assets
	// they held are released.
	//
	// Returns:
	//   - error: error if close fails
	Close() error
}

// audioEngine is the implementation of the AudioEngine interface.
type audioEngine struct {
	mu     sync.Mutex
	ctx    *oto.Context
	ready  chan struct{}
	format wave.FormatDescriptor
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

var _ AudioEngine = &audioEngine{}

// NewAudioEngine creates an audio engine with no playback context yet.
// The context is opened on the first PlayWave call.
//
// Returns:
//   - AudioEngine: the engine
func NewAudioEngine() AudioEngine {
	return &audioEngine{done: make(chan struct{})}
}

func (a *audioEngine) PlayWave(asset wave.Asset) error {
	format := asset.Format()
	if err := validateFormat(format); err != nil {
		return err
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrEngineClosed
	}
	if a.ctx == nil {
		ctx, ready, err := oto.NewContext(
			int(format.SampleRate),
			int(format.Channels),
			int(format.BitsPerSample/8),
		)
		if err != nil {
			a.mu.Unlock()
			return fmt.Errorf("failed to open audio context: %w", err)
		}
		a.ctx = ctx
		a.ready = ready
		a.format = format
	} else if format.SampleRate != a.format.SampleRate || format.Channels != a.format.Channels || format.BitsPerSample != a.format.BitsPerSample {
		a.mu.Unlock()
		return fmt.Errorf("%w: context is %d Hz %d ch %d bit, asset is %d Hz %d ch %d bit",
			ErrFormatMismatch,
			a.format.SampleRate, a.format.Channels, a.format.BitsPerSample,
			format.SampleRate, format.Channels, format.BitsPerSample)
	}
	ctx, ready := a.ctx, a.ready
	a.mu.Unlock()

	samples, err := asset.Samples()
	if err != nil {
		return fmt.Errorf("failed to read samples: %w", err)
	}

	a.wg.Add(1)
	go a.playback(ctx, ready, asset, samples)
	return nil
}

// playback drains one asset through its own player, bailing out as soon as
// Close is signalled. The context is never touched before the device reports
// ready.
func (a *audioEngine) playback(ctx *oto.Context, ready chan struct{}, asset wave.Asset, samples []byte) {
	defer a.wg.Done()
	defer asset.Close()

	select {
	case <-ready:
	case <-a.done:
		return
	}

	player := ctx.NewPlayer(bytes.NewReader(samples))
	defer player.Close()
	player.Play()
	for player.IsPlaying() {
		select {
		case <-a.done:
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (a *audioEngine) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.done)
	a.mu.Unlock()

	a.wg.Wait()
	return nil
}

// validateFormat rejects wave formats the oto device cannot play directly.
func validateFormat(format wave.FormatDescriptor) error {
	if format.AudioFormat != pcmAudioFormat {
		return fmt.Errorf("%w: audio format tag %d (want PCM)", ErrUnsupportedFormat, format.AudioFormat)
	}
	if format.Channels != 1 && format.Channels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, format.Channels)
	}
	if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, format.BitsPerSample)
	}
	if format.SampleRate == 0 {
		return fmt.Errorf("%w: zero sample rate", ErrUnsupportedFormat)
	}
	return nil
}
