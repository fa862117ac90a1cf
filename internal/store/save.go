package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// saveVersion is stamped on every slot. A slot written under a
// different version is discarded on load rather than deserialized into
// mismatched structures.
const saveVersion = "1.0.0"

// saveRepo implements SaveRepo on the raw connection.
type saveRepo struct {
	db *sql.DB
}

func (r *saveRepo) Save(ctx context.Context, slot string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal save data: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO saves (slot, version, timestamp, data) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET version = excluded.version,
			timestamp = excluded.timestamp, data = excluded.data`,
		slot, saveVersion, time.Now().UTC(), string(data),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", slot, err)
	}
	return nil
}

// Load reads a slot into v. It returns false when the slot is empty or
// was written by an incompatible version, in which case the stale slot
// is cleared.
func (r *saveRepo) Load(ctx context.Context, slot string, v any) (bool, error) {
	var version, data string
	err := r.db.QueryRowContext(ctx,
		`SELECT version, data FROM saves WHERE slot = ?`, slot,
	).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load slot %q: %w", slot, err)
	}

	if version != saveVersion {
		if err := r.Clear(ctx, slot); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := json.Unmarshal([]byte(data), v); err != nil {
		return false, fmt.Errorf("unmarshal slot %q: %w", slot, err)
	}
	return true, nil
}

func (r *saveRepo) Clear(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("clear slot %q: %w", slot, err)
	}
	return nil
}
