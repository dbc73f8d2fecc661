package lmu2png

import (
	"database/sql"
	"fmt"

	"github.com/bodgit/lmu2png/rpg"
	_ "github.com/mattn/go-sqlite3"
)

// ChipsetDB is a sqlite database of the chipsets in a project database. It
// implements Chipsets.
type ChipsetDB struct {
	db *sql.DB
}

// NewChipsetDB opens, creating it if necessary, the chipset database file.
func NewChipsetDB(file string) (*ChipsetDB, error) {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS chipset (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL, chipset_name TEXT NOT NULL, passable_lower BLOB, passable_upper BLOB)"); err != nil {
		db.Close()
		return nil, err
	}

	return &ChipsetDB{
		db: db,
	}, nil
}

// ImportJSON replaces the contents of the database with the chipsets of the
// JSON project database file.
func (db *ChipsetDB) ImportJSON(file string) error {
	d, err := rpg.LoadDatabase(file)
	if err != nil {
		return err
	}
	return db.Import(d)
}

// Import replaces the contents of the database with the chipsets of d. Ids
// are assigned by position, the same as the engine.
func (db *ChipsetDB) Import(d *rpg.Database) error {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM chipset"); err != nil {
		return err
	}

	for i, cs := range d.Chipsets {
		if _, err = tx.Exec("INSERT INTO chipset (id, name, chipset_name, passable_lower, passable_upper) VALUES (?, ?, ?, ?, ?)", i+1, cs.Name, cs.ChipsetName, []byte(cs.PassableDataLower), []byte(cs.PassableDataUpper)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Chipset returns the chipset with the given id.
func (db *ChipsetDB) Chipset(id int) (*rpg.Chipset, error) {
	var name, chipsetName string
	var lower, upper []byte
	switch err := db.db.QueryRow("SELECT name, chipset_name, passable_lower, passable_upper FROM chipset WHERE id = ?", id).Scan(&name, &chipsetName, &lower, &upper); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("lmu2png: chipset %d not found", id)
	case nil:
		return &rpg.Chipset{
			ID:                id,
			Name:              name,
			ChipsetName:       chipsetName,
			PassableDataLower: rpg.Bytes(lower),
			PassableDataUpper: rpg.Bytes(upper),
		}, nil
	default:
		return nil, err
	}
}

// Close closes the database.
func (db *ChipsetDB) Close() error {
	return db.db.Close()
}
