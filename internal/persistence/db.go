// Package persistence provides SQLite-based campaign storage: structured
// tables for the board (factions, zones, units, relations) and JSON blobs
// for the sub-engine side-cars.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/frostline/internal/engine"
	"github.com/talgya/frostline/internal/world"
)

// DB wraps a SQLite connection for campaign persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS factions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL,
		influence REAL NOT NULL,
		economic_output REAL NOT NULL,
		icebreakers INTEGER NOT NULL,
		military_readiness REAL NOT NULL,
		legitimacy REAL NOT NULL,
		victory_points REAL NOT NULL,
		zones_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS zones (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		coord_q INTEGER NOT NULL,
		coord_r INTEGER NOT NULL,
		controller TEXT,
		ice_months INTEGER NOT NULL,
		resources_json TEXT NOT NULL,
		contested_json TEXT NOT NULL,
		presence_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		owner TEXT NOT NULL,
		zone TEXT NOT NULL,
		strength REAL NOT NULL,
		experience REAL NOT NULL,
		morale REAL NOT NULL,
		status TEXT NOT NULL,
		stealth INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS relations (
		faction_a TEXT NOT NULL,
		faction_b TEXT NOT NULL,
		level INTEGER NOT NULL,
		value REAL NOT NULL,
		treaties_json TEXT NOT NULL,
		incidents_json TEXT NOT NULL,
		PRIMARY KEY (faction_a, faction_b)
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		turn INTEGER NOT NULL,
		kind TEXT NOT NULL,
		title TEXT NOT NULL,
		body TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS campaign_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_notifications_turn ON notifications(turn);
	CREATE INDEX IF NOT EXISTS idx_units_owner ON units(owner);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveFactions writes all factions (full replace).
func (db *DB) SaveFactions(s *world.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM factions"); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO factions
		(id, name, color, influence, economic_output, icebreakers,
		 military_readiness, legitimacy, victory_points, zones_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range s.Factions {
		zonesJSON, _ := json.Marshal(f.Zones)
		_, err := stmt.Exec(
			f.ID, f.Name, f.Color,
			f.Resources.Influence, f.Resources.EconomicOutput, f.Resources.Icebreakers,
			f.Resources.MilitaryReadiness, f.Resources.Legitimacy,
			f.VictoryPoints, string(zonesJSON),
		)
		if err != nil {
			return fmt.Errorf("insert faction %s: %w", f.ID, err)
		}
	}

	return tx.Commit()
}

// SaveZones writes all zones (full replace).
func (db *DB) SaveZones(s *world.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM zones"); err != nil {
		return err
	}

	for _, z := range s.Zones {
		resourcesJSON, _ := json.Marshal(z.Resources)
		contestedJSON, _ := json.Marshal(z.ContestedBy)
		presenceJSON, _ := json.Marshal(z.MilitaryPresence)
		_, err := tx.Exec(`INSERT INTO zones
			(id, name, type, coord_q, coord_r, controller, ice_months,
			 resources_json, contested_json, presence_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			z.ID, z.Name, z.Type, z.Coord.Q, z.Coord.R, z.Controller, z.IceMonths,
			string(resourcesJSON), string(contestedJSON), string(presenceJSON),
		)
		if err != nil {
			return fmt.Errorf("insert zone %s: %w", z.ID, err)
		}
	}

	return tx.Commit()
}

// SaveUnits writes all units, destroyed included (full replace).
func (db *DB) SaveUnits(s *world.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM units"); err != nil {
		return err
	}

	for _, u := range s.Units {
		stealth := 0
		if u.Stealth {
			stealth = 1
		}
		_, err := tx.Exec(`INSERT INTO units
			(id, type, owner, zone, strength, experience, morale, status, stealth)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Type, u.Owner, u.Zone, u.Strength, u.Experience, u.Morale, u.Status, stealth,
		)
		if err != nil {
			return fmt.Errorf("insert unit %s: %w", u.ID, err)
		}
	}

	return tx.Commit()
}

// SaveRelations writes all bilateral relations (full replace).
func (db *DB) SaveRelations(s *world.State) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM relations"); err != nil {
		return err
	}

	for _, r := range s.Relations {
		treatiesJSON, _ := json.Marshal(r.Treaties)
		incidentsJSON, _ := json.Marshal(r.Incidents)
		_, err := tx.Exec(`INSERT INTO relations
			(faction_a, faction_b, level, value, treaties_json, incidents_json)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.A, r.B, int(r.Level), r.Value, string(treatiesJSON), string(incidentsJSON),
		)
		if err != nil {
			return fmt.Errorf("insert relation %s/%s: %w", r.A, r.B, err)
		}
	}

	return tx.Commit()
}

// SaveNotifications appends notifications to the log table.
func (db *DB) SaveNotifications(notes []world.Notification) error {
	if len(notes) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, n := range notes {
		_, err := tx.Exec(
			"INSERT INTO notifications (turn, kind, title, body) VALUES (?, ?, ?, ?)",
			n.Turn, n.Kind, n.Title, n.Body,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveMeta stores a key-value pair in campaign metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO campaign_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM campaign_meta WHERE key = ?", key)
	return value, err
}

// saveSideCar serializes a sub-engine state into campaign metadata.
func (db *DB) saveSideCar(key string, v any) error {
	blob, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return db.SaveMeta(key, string(blob))
}

// SaveCampaign performs a full save of the game.
func (db *DB) SaveCampaign(g *engine.Game) error {
	s := g.World
	slog.Info("saving campaign", "turn", s.Turn, "year", s.Year)

	if err := db.SaveFactions(s); err != nil {
		return fmt.Errorf("save factions: %w", err)
	}
	if err := db.SaveZones(s); err != nil {
		return fmt.Errorf("save zones: %w", err)
	}
	if err := db.SaveUnits(s); err != nil {
		return fmt.Errorf("save units: %w", err)
	}
	if err := db.SaveRelations(s); err != nil {
		return fmt.Errorf("save relations: %w", err)
	}
	if err := db.SaveNotifications(s.Notifications); err != nil {
		return fmt.Errorf("save notifications: %w", err)
	}

	for key, v := range map[string]any{
		"economy":    g.Econ,
		"tech":       g.Tech,
		"reputation": g.Rep,
		"drama":      g.Drama,
	} {
		if err := db.saveSideCar(key, v); err != nil {
			return err
		}
	}

	if err := db.SaveMeta("turn", fmt.Sprintf("%d", s.Turn)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	if err := db.SaveMeta("season", fmt.Sprintf("%d", s.Season)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	if err := db.SaveMeta("year", fmt.Sprintf("%d", s.Year)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	if err := db.SaveMeta("player", string(s.Player)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	slog.Info("campaign saved")
	return nil
}

// RecentNotifications returns the most recent N notifications.
func (db *DB) RecentNotifications(limit int) ([]world.Notification, error) {
	rows, err := db.conn.Queryx(
		"SELECT turn, kind, title, body FROM notifications ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []world.Notification
	for rows.Next() {
		var n world.Notification
		if err := rows.Scan(&n.Turn, &n.Kind, &n.Title, &n.Body); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}
