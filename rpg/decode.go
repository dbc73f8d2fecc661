package rpg

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Bytes is a byte array encoded as a JSON array of numbers rather than a
// base64 string.
type Bytes []byte

// MarshalJSON implements json.Marshaler.
func (b Bytes) MarshalJSON() ([]byte, error) {
	v := make([]int, len(b))
	for i, c := range b {
		v[i] = int(c)
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	// A []uint8 target would expect base64, so go through a wider type
	var v []uint16
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = make(Bytes, len(v))
	for i, c := range v {
		if c > 0xff {
			return fmt.Errorf("rpg: byte value %d out of range", c)
		}
		(*b)[i] = byte(c)
	}
	return nil
}

// DecodeMap reads a JSON encoded map from r.
func DecodeMap(r io.Reader) (*Map, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadMap reads a JSON encoded map from file.
func LoadMap(file string) (*Map, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeMap(f)
}

// DecodeDatabase reads a JSON encoded database from r.
func DecodeDatabase(r io.Reader) (*Database, error) {
	var db Database
	if err := json.NewDecoder(r).Decode(&db); err != nil {
		return nil, err
	}
	return &db, nil
}

// LoadDatabase reads a JSON encoded database from file.
func LoadDatabase(file string) (*Database, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return DecodeDatabase(f)
}
