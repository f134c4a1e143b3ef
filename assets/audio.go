package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	cfg "github.com/automoto/gamepad-gun/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"
)

// SoundBank loads sound effects in the background and plays them once
// decoded. A sound that fails to load stays silent; it is not retried.
type SoundBank struct {
	context    *audio.Context // nil decodes but never plays
	sampleRate int
	dir        string
	pool       *ants.Pool
	loading    sync.WaitGroup

	mu      sync.RWMutex
	decoded map[cfg.SoundID][]byte
	pending map[cfg.SoundID]bool
	failed  map[cfg.SoundID]error
	volume  float64
}

// NewSoundBank creates a bank reading sound files relative to dir.
func NewSoundBank(ctx *audio.Context, dir string) (*SoundBank, error) {
	pool, err := ants.NewPool(2, ants.WithPanicHandler(func(p interface{}) {
		log.Error().Interface("panic", p).Msg("Sound decoder panicked")
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create sound pool: %w", err)
	}

	sampleRate := cfg.Audio.SampleRate
	if ctx != nil {
		sampleRate = ctx.SampleRate()
	}
	return &SoundBank{
		context:    ctx,
		sampleRate: sampleRate,
		dir:        dir,
		pool:       pool,
		decoded:    make(map[cfg.SoundID][]byte),
		pending:    make(map[cfg.SoundID]bool),
		failed:     make(map[cfg.SoundID]error),
		volume:     cfg.Audio.DefaultSFXVol,
	}, nil
}

// Load starts decoding path for id. Calls for a sound that is loaded, loading
// or failed are ignored.
func (b *SoundBank) Load(id cfg.SoundID, path string) {
	if b.Loaded(id) || b.Err(id) != nil {
		return
	}

	b.mu.Lock()
	if _, ok := b.decoded[id]; ok || b.pending[id] || b.failed[id] != nil {
		b.mu.Unlock()
		return
	}
	b.pending[id] = true
	b.mu.Unlock()

	b.loading.Add(1)
	task := func() {
		defer b.loading.Done()
		b.finish(id, path)
	}
	if err := b.pool.Submit(task); err != nil {
		b.loading.Done()
		b.fail(id, path, err)
	}
}

// LoadAll starts loading every configured sound effect.
func (b *SoundBank) LoadAll(paths map[cfg.SoundID]string) {
	for id, path := range paths {
		b.Load(id, path)
	}
}

// Wait blocks until every started load has finished.
func (b *SoundBank) Wait() {
	b.loading.Wait()
}

// Loaded reports whether id is ready to play.
func (b *SoundBank) Loaded(id cfg.SoundID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.decoded[id]
	return ok
}

// Err returns the load failure for id, if any.
func (b *SoundBank) Err(id cfg.SoundID) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.failed[id]
}

// SetVolume sets the effect volume, 0.0 - 1.0.
func (b *SoundBank) SetVolume(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.volume = max(0, min(1, v))
}

// Volume returns the effect volume.
func (b *SoundBank) Volume() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.volume
}

// Play starts a new player for id. Sounds that are not loaded are skipped.
func (b *SoundBank) Play(id cfg.SoundID) {
	if b.context == nil || !b.Loaded(id) {
		return
	}

	b.mu.RLock()
	data := b.decoded[id]
	volume := b.volume
	b.mu.RUnlock()

	if volume <= 0 {
		return
	}
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		volume *= mult
	}

	player := b.context.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// Close waits for started loads to finish, then stops the loader pool.
func (b *SoundBank) Close() {
	b.Wait()
	b.pool.Release()
}

func (b *SoundBank) finish(id cfg.SoundID, path string) {
	data, err := b.readAndDecode(path)
	if err != nil {
		b.fail(id, path, err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, id)
	b.decoded[id] = data
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("Sound loaded")
}

func (b *SoundBank) fail(id cfg.SoundID, path string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.pending, id)
	b.failed[id] = err
	log.Warn().Err(err).Str("path", path).Msg("Could not load sound, shots will be silent")
}

func (b *SoundBank) readAndDecode(path string) ([]byte, error) {
	full := path
	if !filepath.IsAbs(path) && b.dir != "" {
		full = filepath.Join(b.dir, path)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", full, err)
	}
	return decodeSFX(b.sampleRate, path, data)
}

// decodeSFX decodes an mp3, ogg or wav file to raw PCM at sampleRate.
func decodeSFX(sampleRate int, path string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
