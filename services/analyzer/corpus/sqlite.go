// Copyright (C) 2026 Thamizhneri (dev@thamizhneri.org)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package corpus

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS corpus_units (
	unit_id INTEGER PRIMARY KEY AUTOINCREMENT,
	group_name TEXT NOT NULL,
	section_label TEXT NOT NULL,
	sequence_number INTEGER NOT NULL,
	original_text TEXT NOT NULL,
	transliteration TEXT,
	meaning TEXT,
	commentary TEXT,
	moral_teaching TEXT,
	fame_level INTEGER DEFAULT 0,
	characters TEXT,
	tags TEXT
);
CREATE TABLE IF NOT EXISTS unit_lines (
	line_id INTEGER PRIMARY KEY AUTOINCREMENT,
	unit_id INTEGER NOT NULL REFERENCES corpus_units(unit_id),
	line_number INTEGER NOT NULL,
	line_text TEXT NOT NULL
);`

// OpenSQLite loads the corpus from a SQLite file. The schema is created when
// missing, and an empty database is seeded from the embedded sample corpus so
// first runs behave the same as the in-memory path. The returned store is a
// plain in-memory snapshot; the database is closed before returning.
func OpenSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database %q: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaDDL); err != nil {
		return nil, fmt.Errorf("failed to ensure corpus schema: %w", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM corpus_units`).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count corpus units: %w", err)
	}
	if count == 0 {
		slog.Info("Corpus database is empty, seeding from embedded corpus", "path", path)
		if err := seed(db); err != nil {
			return nil, err
		}
	}

	units, err := readUnits(db)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded corpus from SQLite", "path", path, "units", len(units))
	return NewStore(units), nil
}

func seed(db *sql.DB) error {
	store, err := LoadEmbedded()
	if err != nil {
		return fmt.Errorf("failed to load embedded corpus for seeding: %w", err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, u := range store.Units() {
		chars, _ := json.Marshal(u.Characters)
		tags, _ := json.Marshal(u.Tags)
		res, err := tx.Exec(`
			INSERT INTO corpus_units
				(group_name, section_label, sequence_number, original_text,
				 transliteration, meaning, commentary, moral_teaching,
				 fame_level, characters, tags)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.GroupName, u.SectionLabel, u.SequenceNumber, u.Text,
			u.Transliteration, u.Meaning, u.Commentary, u.MoralTeaching,
			u.FameLevel, string(chars), string(tags))
		if err != nil {
			return fmt.Errorf("failed to seed corpus unit: %w", err)
		}
		unitID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read seeded unit id: %w", err)
		}
		for _, line := range u.Lines {
			if _, err := tx.Exec(`
				INSERT INTO unit_lines (unit_id, line_number, line_text)
				VALUES (?, ?, ?)`,
				unitID, line.Number, line.Text); err != nil {
				return fmt.Errorf("failed to seed unit line: %w", err)
			}
		}
	}
	return tx.Commit()
}

func readUnits(db *sql.DB) ([]Unit, error) {
	rows, err := db.Query(`
		SELECT unit_id, group_name, section_label, sequence_number,
		       original_text, transliteration, meaning, commentary,
		       moral_teaching, fame_level, characters, tags
		FROM corpus_units ORDER BY unit_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query corpus units: %w", err)
	}
	defer rows.Close()

	var units []Unit
	index := make(map[int]int)
	for rows.Next() {
		var u Unit
		var transliteration, meaning, commentary, moral, chars, tags sql.NullString
		if err := rows.Scan(&u.ID, &u.GroupName, &u.SectionLabel, &u.SequenceNumber,
			&u.Text, &transliteration, &meaning, &commentary, &moral,
			&u.FameLevel, &chars, &tags); err != nil {
			return nil, fmt.Errorf("failed to scan corpus unit: %w", err)
		}
		u.Transliteration = transliteration.String
		u.Meaning = meaning.String
		u.Commentary = commentary.String
		u.MoralTeaching = moral.String
		if chars.Valid && chars.String != "" {
			_ = json.Unmarshal([]byte(chars.String), &u.Characters)
		}
		if tags.Valid && tags.String != "" {
			_ = json.Unmarshal([]byte(tags.String), &u.Tags)
		}
		index[u.ID] = len(units)
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate corpus units: %w", err)
	}

	lineRows, err := db.Query(`
		SELECT unit_id, line_number, line_text
		FROM unit_lines ORDER BY unit_id, line_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to query unit lines: %w", err)
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var unitID int
		var line Line
		if err := lineRows.Scan(&unitID, &line.Number, &line.Text); err != nil {
			return nil, fmt.Errorf("failed to scan unit line: %w", err)
		}
		if idx, ok := index[unitID]; ok {
			units[idx].Lines = append(units[idx].Lines, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate unit lines: %w", err)
	}
	return units, nil
}
