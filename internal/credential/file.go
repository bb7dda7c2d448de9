package credential

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// FileStorage is a Storage backed by a single JSON file, the durable binding
// for desktop and CLI deployments. Every write rewrites the whole file; the
// credential payload is a handful of short strings so this stays cheap.
type FileStorage struct {
	path string
	log  zerolog.Logger

	mu     sync.Mutex
	values map[string]string
}

// NewFileStorage loads (or initialises) the credential file at path. An
// unreadable or corrupt file starts empty rather than failing: a lost
// credential only forces a re-login.
func NewFileStorage(path string, log zerolog.Logger) *FileStorage {
	fs := &FileStorage{path: path, log: log, values: make(map[string]string)}
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := json.Unmarshal(raw, &fs.values); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("credential file corrupt, starting empty")
			fs.values = make(map[string]string)
		}
	} else if !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("credential file unreadable, starting empty")
	}
	return fs
}

func (f *FileStorage) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileStorage) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.flushLocked()
}

func (f *FileStorage) Remove(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	f.flushLocked()
}

func (f *FileStorage) flushLocked() {
	raw, err := json.Marshal(f.values)
	if err != nil {
		f.log.Error().Err(err).Msg("encode credential file")
		return
	}
	// 0600: the file holds a bearer token.
	if err := os.WriteFile(f.path, raw, 0o600); err != nil {
		f.log.Error().Err(err).Str("path", f.path).Msg("write credential file")
	}
}
