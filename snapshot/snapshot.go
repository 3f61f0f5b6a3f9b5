// Package snapshot encodes the values of a queue in protobuf wire format, as
// the message
//
//	message Snapshot {
//	  repeated string values = 1;
//	}
package snapshot

import (
	"os"

	"github.com/golang/protobuf/proto"
	"github.com/kchristidis/listq/queue"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ValuesField is the field number of the repeated values field.
const ValuesField = 1

// ErrUnknownField is returned when decoding meets a field other than the values.
var ErrUnknownField = errors.New("snapshot: unknown field")

var valuesKey = uint64(ValuesField<<3 | proto.WireBytes)

// Encode serializes the values of q front to back.
func Encode(q *queue.Queue) ([]byte, error) {
	if q == nil {
		return nil, queue.ErrNilQueue
	}

	b := proto.NewBuffer(nil)
	for _, v := range q.Values() {
		if err := b.EncodeVarint(valuesKey); err != nil {
			return nil, err
		}
		if err := b.EncodeStringBytes(v); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

// Decode appends the values found in data to the tail of q and returns how
// many were added. On error, the values decoded so far stay in q.
func Decode(data []byte, q *queue.Queue) (int, error) {
	if q == nil {
		return 0, queue.ErrNilQueue
	}

	b := proto.NewBuffer(data)
	var cnt, read int
	for read < len(data) {
		key, err := b.DecodeVarint()
		if err != nil {
			return cnt, errors.Wrap(err, "cannot decode field key")
		}
		if key != valuesKey {
			return cnt, errors.Wrapf(ErrUnknownField, "field %d, wire type %d", key>>3, key&7)
		}
		v, err := b.DecodeStringBytes()
		if err != nil {
			return cnt, errors.Wrap(err, "cannot decode value")
		}
		if err := q.InsertTail(v); err != nil {
			return cnt, err
		}
		read += proto.SizeVarint(key) + proto.SizeVarint(uint64(len(v))) + len(v)
		cnt++
	}
	return cnt, nil
}

// Save writes the encoded values of q to path on fs.
func Save(fs afero.Fs, path string, q *queue.Queue) error {
	data, err := Encode(q)
	if err != nil {
		return err
	}
	return errors.Wrapf(afero.WriteFile(fs, path, data, os.FileMode(0644)), "cannot write %s", path)
}

// Load appends the values stored at path on fs to the tail of q.
func Load(fs afero.Fs, path string, q *queue.Queue) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, errors.Wrapf(err, "cannot read %s", path)
	}
	return Decode(data, q)
}
