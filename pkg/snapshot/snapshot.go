// Package snapshot persists the reduction descriptors of iterator adapters,
// so an iteration over stored data can be resumed by another process.
//
// Only descriptors whose arguments are plain data can be persisted.
// A callable iterator reduces to its producer function, which has no portable form,
// so taking a snapshot of it fails with ErrNotSerializable.
package snapshot

import (
	"context"
	"reflect"
	"time"

	jsoniter "github.com/json-iterator/go"
	uuid "github.com/satori/go.uuid"

	"go.llib.dev/iterbridge/pkg/errorkit"
	"go.llib.dev/iterbridge/pkg/iterkit"
	"go.llib.dev/iterbridge/pkg/logging"
)

const (
	ErrNotFound        errorkit.Error = "snapshot not found"
	ErrNotSerializable errorkit.Error = "descriptor is not serializable"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RawArg is a JSON encoded constructor argument.
type RawArg = jsoniter.RawMessage

// Record is the persisted form of an iterkit.Descriptor.
type Record struct {
	ID          string    `json:"id"`
	Constructor string    `json:"constructor"`
	Args        []RawArg  `json:"args,omitempty"`
	State       *int      `json:"state,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Exhausted reports whether the record describes an exhausted iterator.
func (r Record) Exhausted() bool { return len(r.Args) == 0 }

// Store is the persistence port of the snapshot records.
type Store interface {
	Save(ctx context.Context, r Record) error
	Load(ctx context.Context, id string) (Record, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Record, error)
}

// Encode converts a descriptor into a Record without an ID.
func Encode(d iterkit.Descriptor) (Record, error) {
	r := Record{Constructor: d.Constructor}
	for i, arg := range d.Args {
		if isFunc(arg) {
			return Record{}, ErrNotSerializable.F("argument #%d is a %T", i, arg)
		}
		raw, err := json.Marshal(arg)
		if err != nil {
			return Record{}, ErrNotSerializable.Wrap(err)
		}
		r.Args = append(r.Args, raw)
	}
	if d.State != nil {
		cursor, ok := d.State.(int)
		if !ok {
			return Record{}, ErrNotSerializable.F("state is a %T", d.State)
		}
		r.State = &cursor
	}
	return r, nil
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// Take persists the current descriptor of r, and returns the ID of the new record.
func Take(ctx context.Context, store Store, r iterkit.Reducer) (string, error) {
	rec, err := Encode(r.Reduce())
	if err != nil {
		return "", err
	}
	rec.ID = uuid.NewV4().String()
	rec.CreatedAt = time.Now().UTC()
	if err := store.Save(ctx, rec); err != nil {
		return "", err
	}
	l := logging.FromContext(ctx)
	l.Debug().
		Str(logging.FieldSnapshot, rec.ID).
		Bool("exhausted", rec.Exhausted()).
		Msg("snapshot taken")
	return rec.ID, nil
}

// RestoreSequence loads a record taken from a sequence iterator over a List[T],
// and rebuilds the iterator at the recorded cursor.
func RestoreSequence[T any](ctx context.Context, store Store, id string, opts ...iterkit.Option[T]) (*iterkit.SequenceIterator[T], error) {
	rec, err := store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err := DecodeSequence[T](rec)
	if err != nil {
		return nil, err
	}
	it, err := iterkit.FromDescriptor[T](d, opts...)
	if err != nil {
		return nil, err
	}
	return it.(*iterkit.SequenceIterator[T]), nil
}

// DecodeSequence converts a Record of a sequence iterator back into a Descriptor.
func DecodeSequence[T any](rec Record) (iterkit.Descriptor, error) {
	if rec.Constructor != iterkit.ConstructorIter {
		return iterkit.Descriptor{}, iterkit.ErrInvalidDescriptor.F("unexpected constructor: %q", rec.Constructor)
	}
	d := iterkit.Descriptor{Constructor: rec.Constructor}
	switch len(rec.Args) {
	case 0:
		return d, nil
	case 1:
		var vs iterkit.List[T]
		if err := json.Unmarshal(rec.Args[0], &vs); err != nil {
			return iterkit.Descriptor{}, iterkit.ErrInvalidDescriptor.Wrap(err)
		}
		d.Args = []any{iterkit.Sequence[T](vs)}
		if rec.State != nil {
			d.State = *rec.State
		}
		return d, nil
	default:
		return iterkit.Descriptor{}, iterkit.ErrInvalidDescriptor.F("a sequence record has one argument, got %d", len(rec.Args))
	}
}
