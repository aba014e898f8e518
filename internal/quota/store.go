// SPDX-FileCopyrightText: 2025 TechAir Media <ops@techair.media>
//
// SPDX-License-Identifier: AGPL-3.0-only

package quota

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/techair/mediakit"
)

// Load retrieves the usage record from the backing file. A missing file
// yields a fresh record for the current month. A file that exists but cannot
// be read or decoded is an error; a corrupt counter must halt rather than
// silently reset to zero.
func (s *FileStore) Load(ctx context.Context) (mediakit.UsageRecord, error) {
	data, err := os.ReadFile(s.options.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.options.Logger.Debug("No usage record yet, starting fresh", "path", s.options.Path)
			return mediakit.UsageRecord{Month: PeriodOf(s.options.Now()).Key()}, nil
		}
		return mediakit.UsageRecord{}, fmt.Errorf("read usage record %s: %w", s.options.Path, err)
	}

	var record mediakit.UsageRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return mediakit.UsageRecord{}, fmt.Errorf("usage record %s is corrupt: %w", s.options.Path, err)
	}
	if record.Count < 0 {
		return mediakit.UsageRecord{}, fmt.Errorf("usage record %s is corrupt: negative count %d", s.options.Path, record.Count)
	}

	return record, nil
}

// Save persists the usage record, rewriting the file in full
func (s *FileStore) Save(ctx context.Context, record mediakit.UsageRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode usage record: %w", err)
	}

	if err := os.WriteFile(s.options.Path, data, 0o600); err != nil {
		return fmt.Errorf("write usage record %s: %w", s.options.Path, err)
	}

	s.options.Logger.Debug("Usage record saved", "path", s.options.Path, "month", record.Month, "count", record.Count)
	return nil
}
