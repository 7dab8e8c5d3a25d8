package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/lumen-go/engine/asset/wave"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name   string
		format wave.FormatDescriptor
		want   error
	}{
		{
			name:   "mono 16-bit PCM",
			format: wave.FormatDescriptor{AudioFormat: 1, Channels: 1, SampleRate: 44100, BitsPerSample: 16},
			want:   nil,
		},
		{
			name:   "stereo 8-bit PCM",
			format: wave.FormatDescriptor{AudioFormat: 1, Channels: 2, SampleRate: 22050, BitsPerSample: 8},
			want:   nil,
		},
		{
			name:   "compressed format tag",
			format: wave.FormatDescriptor{AudioFormat: 85, Channels: 2, SampleRate: 44100, BitsPerSample: 16},
			want:   ErrUnsupportedFormat,
		},
		{
			name:   "too many channels",
			format: wave.FormatDescriptor{AudioFormat: 1, Channels: 6, SampleRate: 48000, BitsPerSample: 16},
			want:   ErrUnsupportedFormat,
		},
		{
			name:   "24-bit samples",
			format: wave.FormatDescriptor{AudioFormat: 1, Channels: 2, SampleRate: 48000, BitsPerSample: 24},
			want:   ErrUnsupportedFormat,
		},
		{
			name:   "zero sample rate",
			format: wave.FormatDescriptor{AudioFormat: 1, Channels: 2, SampleRate: 0, BitsPerSample: 16},
			want:   ErrUnsupportedFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPlayWaveRejectsUnsupportedFormat(t *testing.T) {
	data := buildPCMContainer(t, wave.FormatDescriptor{AudioFormat: 85, Channels: 2, SampleRate: 44100, BitsPerSample: 16})
	asset, err := wave.Decode(data)
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	defer asset.Close()

	eng := NewAudioEngine()
	defer eng.Close()
	if err := eng.PlayWave(asset); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCloseInterruptsPendingPlayback(t *testing.T) {
	data := buildPCMContainer(t, wave.FormatDescriptor{AudioFormat: 1, Channels: 2, SampleRate: 44100, BitsPerSample: 16})
	asset, err := wave.Decode(data)
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	samples, err := asset.Samples()
	if err != nil {
		t.Fatalf("failed to read samples: %v", err)
	}

	// The ready channel never fires, standing in for a device that never
	// comes up. Close must still unblock the goroutine and release the asset.
	eng := &audioEngine{ready: make(chan struct{}), done: make(chan struct{})}
	eng.wg.Add(1)
	go eng.playback(nil, eng.ready, asset, samples)

	closed := make(chan struct{})
	go func() {
		if err := eng.Close(); err != nil {
			t.Errorf("unexpected close error: %v", err)
		}
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not return while playback was pending")
	}

	if _, err := asset.Samples(); !errors.Is(err, wave.ErrAlreadyReleased) {
		t.Fatalf("expected the asset released on close, got %v", err)
	}
}

func TestPlayWaveAfterClose(t *testing.T) {
	data := buildPCMContainer(t, wave.FormatDescriptor{AudioFormat: 1, Channels: 2, SampleRate: 44100, BitsPerSample: 16})
	asset, err := wave.Decode(data)
	if err != nil {
		t.Fatalf("failed to decode fixture: %v", err)
	}
	defer asset.Close()

	eng := NewAudioEngine()
	if err := eng.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if err := eng.PlayWave(asset); !errors.Is(err, ErrEngineClosed) {
		t.Fatalf("expected ErrEngineClosed, got %v", err)
	}
}
