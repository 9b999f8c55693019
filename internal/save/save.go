// Package save persists player records as timestamped JSON files so a
// bankroll can be carried between sessions.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/fileutil"
	"github.com/lox/blackjack-cli/internal/game"
)

const filenameFormat = "blackjack_20060102_150405.json"

// Record is the on-disk shape of a saved game
type Record struct {
	PlayerName string    `json:"player_name"`
	Bankroll   int       `json:"bankroll"`
	SavedAt    time.Time `json:"saved_at"`
}

// Store writes and reads save records under a single directory. The
// clock is injectable so tests get stable filenames and timestamps.
type Store struct {
	dir   string
	clock quartz.Clock
}

// NewStore creates the save directory if needed. A nil clock falls back
// to the real one.
func NewStore(dir string, clock quartz.Clock) (*Store, error) {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save directory: %w", err)
	}
	return &Store{dir: dir, clock: clock}, nil
}

// Dir returns the directory records are written to
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the player's name and bankroll to a timestamped file and
// returns the path written. The write is atomic so an interrupted save
// never leaves a truncated record behind.
func (s *Store) Save(player *game.Player) (string, error) {
	now := s.clock.Now()
	record := Record{
		PlayerName: player.Name,
		Bankroll:   player.Bankroll,
		SavedAt:    now,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode save record: %w", err)
	}

	path := filepath.Join(s.dir, now.Format(filenameFormat))
	if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write save record: %w", err)
	}
	return path, nil
}

// Load reads a single save record from path
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read save record: %w", err)
	}
	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("decode save record %s: %w", path, err)
	}
	return record, nil
}

// Latest returns the most recent record in the store's directory. The
// timestamped filenames sort lexically in time order, so the newest save
// is the last matching name.
func (s *Store) Latest() (Record, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "blackjack_*.json"))
	if err != nil {
		return Record{}, fmt.Errorf("list save records: %w", err)
	}
	if len(matches) == 0 {
		return Record{}, fmt.Errorf("no save records in %s", s.dir)
	}
	sort.Strings(matches)
	return Load(matches[len(matches)-1])
}
