package snapshot

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"time"

	"github.com/boltdb/bolt"

	"go.llib.dev/iterbridge/pkg/errorkit"
)

const DefaultBucket = "snapshots"

// NewBolt opens (or creates) the bolt database at path.
// An empty bucket name falls back to DefaultBucket.
func NewBolt(path, bucket string) (_ *Bolt, rErr error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	defer errorkit.FinishOnError(&rErr, func() { _ = db.Close() })
	if bucket == "" {
		bucket = DefaultBucket
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &Bolt{DB: db, Bucket: []byte(bucket), CompressionLevel: gzip.DefaultCompression}, nil
}

// Bolt is a Store backed by a local bolt database file.
// Records are kept as gzip compressed JSON documents keyed by their ID.
type Bolt struct {
	DB               *bolt.DB
	Bucket           []byte
	CompressionLevel int
}

func (storage *Bolt) Save(ctx context.Context, r Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := storage.serialize(r)
	if err != nil {
		return err
	}
	return storage.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(storage.Bucket)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(r.ID), value)
	})
}

func (storage *Bolt) Load(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	var r Record
	err := storage.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.Bucket)
		if bucket == nil {
			return ErrNotFound.F("id: %s", id)
		}
		value := bucket.Get([]byte(id))
		if value == nil {
			return ErrNotFound.F("id: %s", id)
		}
		return storage.deserialize(value, &r)
	})
	return r, err
}

func (storage *Bolt) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return storage.DB.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.Bucket)
		if bucket == nil || bucket.Get([]byte(id)) == nil {
			return ErrNotFound.F("id: %s", id)
		}
		return bucket.Delete([]byte(id))
	})
}

func (storage *Bolt) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rs := make([]Record, 0)
	err := storage.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(storage.Bucket)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r Record
			if err := storage.deserialize(value, &r); err != nil {
				return err
			}
			rs = append(rs, r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortRecords(rs)
	return rs, nil
}

// Close the bolt database and release the file lock
func (storage *Bolt) Close() error {
	return storage.DB.Close()
}

func (storage *Bolt) serialize(r Record) ([]byte, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, storage.CompressionLevel)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (storage *Bolt) deserialize(value []byte, r *Record) error {
	reader, err := gzip.NewReader(bytes.NewReader(value))
	if err != nil {
		return err
	}
	defer reader.Close()
	raw, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, r)
}
