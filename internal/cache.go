package internal

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	tt "github.com/gnolang/tlogic/internal/types"
)

const (
	cacheFileName      = "logic_cache.gob"
	defaultCacheMaxAge = 24 * time.Hour
)

type fileMetadata struct {
	Hash         string
	LastModified time.Time
}

// CacheEntry holds the reports produced for one expression file.
type CacheEntry struct {
	Metadata     fileMetadata
	Fingerprint  string
	Reports      []tt.Report
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache persists reports per expression file so unchanged files are not
// re-enumerated. An entry is invalid once the file content changes, the
// analyzer fingerprint changes, a dependency (the config file) changes, or
// it is older than the maximum age.
type Cache struct {
	CacheDir         string
	entries          map[string]CacheEntry
	mutex            sync.RWMutex
	maxAge           time.Duration
	fingerprint      string
	dependencyFiles  []string
	dependencyHashes map[string]string
}

// NewCache opens (or creates) the cache stored in cacheDir.
func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		CacheDir:         cacheDir,
		entries:          make(map[string]CacheEntry),
		maxAge:           defaultCacheMaxAge,
		dependencyHashes: make(map[string]string),
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

func (c *Cache) load() error {
	cacheFile := filepath.Join(c.CacheDir, cacheFileName)
	file, err := os.Open(cacheFile)
	if os.IsNotExist(err) {
		return nil // cache file doesn't exist yet. This is fine.
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}

	return nil
}

func (c *Cache) save() error {
	cacheFile := filepath.Join(c.CacheDir, cacheFileName)
	file, err := os.Create(cacheFile)
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}

	return nil
}

// Set stores the reports of filename and persists the cache.
func (c *Cache) Set(filename string, reports []tt.Report) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	metadata, err := getFileMetadata(filename)
	if err != nil {
		return fmt.Errorf("failed to get file metadata: %w", err)
	}

	now := time.Now()
	c.entries[filename] = CacheEntry{
		Metadata:     metadata,
		Fingerprint:  c.fingerprint,
		Reports:      reports,
		CreatedAt:    now,
		LastAccessed: now,
	}

	return c.save()
}

// Get returns the cached reports of filename if the entry is still valid.
func (c *Cache) Get(filename string) ([]tt.Report, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists {
		return nil, false
	}

	if c.isEntryInvalid(filename, entry) {
		delete(c.entries, filename)
		return nil, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry

	return entry.Reports, true
}

func (c *Cache) isEntryInvalid(filename string, entry CacheEntry) bool {
	// too old
	if time.Since(entry.CreatedAt) > c.maxAge {
		return true
	}

	if entry.Fingerprint != c.fingerprint {
		return true
	}

	currentMetadata, err := getFileMetadata(filename)
	if err != nil || !currentMetadata.equal(entry.Metadata) {
		return true
	}

	return c.haveDependenciesChanged()
}

func (c *Cache) haveDependenciesChanged() bool {
	for _, file := range c.dependencyFiles {
		hash, err := getFileHash(file)
		if err != nil {
			return true
		}

		if hash != c.dependencyHashes[file] {
			return true
		}
	}

	return false
}

// AddDependency registers a file whose change invalidates every entry.
func (c *Cache) AddDependency(filename string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	hash, err := getFileHash(filename)
	if err != nil {
		return fmt.Errorf("failed to get hash for %s: %w", filename, err)
	}
	c.dependencyFiles = append(c.dependencyFiles, filename)
	c.dependencyHashes[filename] = hash
	return nil
}

// SetFingerprint records the analyzer settings the cached reports depend on.
func (c *Cache) SetFingerprint(fingerprint string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.fingerprint = fingerprint
}

// SetMaxAge sets how long an entry stays valid.
func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

// InvalidateAll drops every entry and persists the empty cache.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry)
	return c.save()
}

func (m fileMetadata) equal(other fileMetadata) bool {
	return m.Hash == other.Hash && m.LastModified.Equal(other.LastModified)
}

func getFileMetadata(filename string) (fileMetadata, error) {
	file, err := os.Open(filename)
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fileMetadata{}, fmt.Errorf("failed to calculate hash: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to get file info: %w", err)
	}

	return fileMetadata{
		Hash:         fmt.Sprintf("%x", hash.Sum(nil)),
		LastModified: info.ModTime(),
	}, nil
}

func getFileHash(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
