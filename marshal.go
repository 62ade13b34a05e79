package nonempty

import (
	"encoding/json"

	"github.com/anacrolix/log"
	"github.com/anacrolix/torrent/bencode"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// All encodings are a plain list of the elements. Decoding an empty list returns an error matching
// ErrEmpty.

var (
	_ json.Marshaler      = Vec[int]{}
	_ json.Unmarshaler    = (*Vec[int])(nil)
	_ yaml.Marshaler      = Vec[int]{}
	_ yaml.Unmarshaler    = (*Vec[int])(nil)
	_ bencode.Marshaler   = Vec[int]{}
	_ bencode.Unmarshaler = (*Vec[int])(nil)
)

func (me Vec[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(me.AsSlice())
}

func (me *Vec[T]) UnmarshalJSON(b []byte) error {
	var s []T
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "decoding json")
	}
	return me.setDecoded(s, "json")
}

func (me Vec[T]) MarshalYAML() (interface{}, error) {
	return me.AsSlice(), nil
}

func (me *Vec[T]) UnmarshalYAML(value *yaml.Node) error {
	var s []T
	if err := value.Decode(&s); err != nil {
		return errors.Wrap(err, "decoding yaml")
	}
	return me.setDecoded(s, "yaml")
}

func (me Vec[T]) MarshalBencode() ([]byte, error) {
	return bencode.Marshal(me.AsSlice())
}

func (me *Vec[T]) UnmarshalBencode(b []byte) error {
	var s []T
	if err := bencode.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "decoding bencode")
	}
	return me.setDecoded(s, "bencode")
}

func (me *Vec[T]) setDecoded(s []T, codec string) error {
	if me.borrowed {
		panic("nonempty: Vec used while borrowed by a DrainFilter")
	}
	v, err := FromSlice(s)
	if err != nil {
		return errors.Wrapf(err, "decoding %v", codec)
	}
	logger.Levelf(log.Debug, "decoded %v elements from %v", v.Len(), codec)
	*me = v
	return nil
}
