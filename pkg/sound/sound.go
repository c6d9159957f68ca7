package sound

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
)

var (
	octx    *oto.Context
	initErr error
	once    sync.Once
)

// Init prepares the shared oto context. It is safe to call more than once,
// only the first call touches the audio device.
func Init() error {
	once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   SampleRate,
			ChannelCount: ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		otoCtx, readyChan, err := oto.NewContext(op)
		if err != nil {
			initErr = fmt.Errorf("sound.Init failed: %w", err)
			return
		}
		// the device may take a moment to become ready
		select {
		case <-readyChan:
			octx = otoCtx
		case <-time.After(10 * time.Second):
			initErr = errors.New("sound.Init timed out")
		}
	})
	return initErr
}

// Click plays a short tick without blocking. Failures are logged.
func Click() {
	go func() {
		if err := play(Tick(1800, 25*time.Millisecond, 0.3)); err != nil {
			log.Printf("sound.Click: %v", err)
		}
	}()
}

func play(pcm []byte) error {
	if err := Init(); err != nil {
		return err
	}
	player := octx.NewPlayer(bytes.NewReader(pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(5 * time.Millisecond)
	}
	return player.Close()
}

// Tick synthesizes an exponentially decaying sine burst as interleaved
// signed 16-bit little endian stereo PCM.
func Tick(freq float64, d time.Duration, volume float64) []byte {
	n := int(d.Seconds() * SampleRate)
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))
	buf := make([]byte, n*ChannelCount*2)
	for i := range n {
		t := float64(i) / SampleRate
		env := math.Exp(-5 * float64(i) / float64(n))
		v := int16(volume * env * math.Sin(2*math.Pi*freq*t) * math.MaxInt16)
		for c := range ChannelCount {
			binary.LittleEndian.PutUint16(buf[(i*ChannelCount+c)*2:], uint16(v))
		}
	}
	return buf
}
