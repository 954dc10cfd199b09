package songs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

type Song struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Store persists song lists keyed by calendar day ("2006-01-02").
type Store interface {
	Load(ctx context.Context, day string) ([]Song, bool, error)
	Save(ctx context.Context, day string, list []Song) error
	PurgeExcept(ctx context.Context, day string) error
}

type MemoryStore struct {
	mu    sync.Mutex
	lists map[string][]Song
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{lists: make(map[string][]Song)}
}

func (s *MemoryStore) Load(_ context.Context, day string) ([]Song, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, ok := s.lists[day]
	if !ok {
		return nil, false, nil
	}
	return append([]Song(nil), list...), true, nil
}

func (s *MemoryStore) Save(_ context.Context, day string, list []Song) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[day] = append([]Song(nil), list...)
	return nil
}

func (s *MemoryStore) PurgeExcept(_ context.Context, day string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.lists {
		if key != day {
			delete(s.lists, key)
		}
	}
	return nil
}

func (s *MemoryStore) Days() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make([]string, 0, len(s.lists))
	for day := range s.lists {
		days = append(days, day)
	}
	return days
}

// SQLStore keeps the cache in a song_cache table. Lists are stored as JSON
// arrays.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS song_cache (
		day   VARCHAR PRIMARY KEY,
		songs VARCHAR NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("failed to create song_cache table: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Load(ctx context.Context, day string) ([]Song, bool, error) {
	var encoded string
	err := s.db.QueryRowContext(ctx, `SELECT songs FROM song_cache WHERE day = ?`, day).Scan(&encoded)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load songs for %s: %w", day, err)
	}

	var list []Song
	if err := json.Unmarshal([]byte(encoded), &list); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached songs for %s: %w", day, err)
	}
	return list, true, nil
}

func (s *SQLStore) Save(ctx context.Context, day string, list []Song) error {
	encoded, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode songs: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO song_cache (day, songs) VALUES (?, ?)`, day, string(encoded)); err != nil {
		return fmt.Errorf("failed to save songs for %s: %w", day, err)
	}
	return nil
}

func (s *SQLStore) PurgeExcept(ctx context.Context, day string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM song_cache WHERE day <> ?`, day); err != nil {
		return fmt.Errorf("failed to purge song cache: %w", err)
	}
	return nil
}

func (s *SQLStore) Days(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day FROM song_cache ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cached days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}
