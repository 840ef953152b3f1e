package snapshotcontract

import (
	"context"
	"time"

	"github.com/Pallinder/go-randomdata"
	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"

	"go.llib.dev/iterbridge/pkg/iterkit"
	"go.llib.dev/iterbridge/pkg/snapshot"
)

// Store describes the behaviour every snapshot.Store implementation must have.
func Store(s *testcase.Spec, mk func(t *testcase.T) snapshot.Store) {
	subject := testcase.Let(s, mk)
	ctx := testcase.Let(s, func(t *testcase.T) context.Context { return context.Background() })

	s.Test("a saved record can be loaded back", func(t *testcase.T) {
		rec := Fixture(t)
		t.Must.NoError(subject.Get(t).Save(ctx.Get(t), rec))

		got, err := subject.Get(t).Load(ctx.Get(t), rec.ID)
		t.Must.NoError(err)
		t.Must.Equal(rec.ID, got.ID)
		t.Must.Equal(rec.Constructor, got.Constructor)
		t.Must.Equal(len(rec.Args), len(got.Args))
		for i := range rec.Args {
			t.Must.Equal(string(rec.Args[i]), string(got.Args[i]))
		}
		t.Must.Equal(*rec.State, *got.State)
		t.Must.True(rec.CreatedAt.Equal(got.CreatedAt))
	})

	s.Test("saving under an existing id replaces the record", func(t *testcase.T) {
		rec := Fixture(t)
		t.Must.NoError(subject.Get(t).Save(ctx.Get(t), rec))
		rec.Args, rec.State = nil, nil
		t.Must.NoError(subject.Get(t).Save(ctx.Get(t), rec))

		got, err := subject.Get(t).Load(ctx.Get(t), rec.ID)
		t.Must.NoError(err)
		t.Must.True(got.Exhausted())
		t.Must.Nil(got.State)
	})

	s.Test("loading an unknown id reports not found", func(t *testcase.T) {
		_, err := subject.Get(t).Load(ctx.Get(t), uuid.NewV4().String())
		t.Must.ErrorIs(snapshot.ErrNotFound, err)
	})

	s.Test("a deleted record is gone", func(t *testcase.T) {
		rec := Fixture(t)
		t.Must.NoError(subject.Get(t).Save(ctx.Get(t), rec))
		t.Must.NoError(subject.Get(t).Delete(ctx.Get(t), rec.ID))

		_, err := subject.Get(t).Load(ctx.Get(t), rec.ID)
		t.Must.ErrorIs(snapshot.ErrNotFound, err)
		t.Must.ErrorIs(snapshot.ErrNotFound, subject.Get(t).Delete(ctx.Get(t), rec.ID))
	})

	s.Test("records are listed in creation order", func(t *testcase.T) {
		base := time.Now().UTC().Add(-time.Hour)
		var ids []string
		for i, n := 0, t.Random.IntBetween(2, 5); i < n; i++ {
			rec := Fixture(t)
			rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			ids = append(ids, rec.ID)
			t.Must.NoError(subject.Get(t).Save(ctx.Get(t), rec))
		}

		rs, err := subject.Get(t).List(ctx.Get(t))
		t.Must.NoError(err)
		var got []string
		for _, r := range rs {
			got = append(got, r.ID)
		}
		t.Must.Equal(ids, got)
	})

	s.When("the context is already cancelled", func(s *testcase.Spec) {
		ctx.Let(s, func(t *testcase.T) context.Context {
			c, cancel := context.WithCancel(context.Background())
			cancel()
			return c
		})

		s.Then("every operation reports the cancellation", func(t *testcase.T) {
			rec := Fixture(t)
			t.Must.ErrorIs(context.Canceled, subject.Get(t).Save(ctx.Get(t), rec))
			_, err := subject.Get(t).Load(ctx.Get(t), rec.ID)
			t.Must.ErrorIs(context.Canceled, err)
			t.Must.ErrorIs(context.Canceled, subject.Get(t).Delete(ctx.Get(t), rec.ID))
			_, err = subject.Get(t).List(ctx.Get(t))
			t.Must.ErrorIs(context.Canceled, err)
		})
	})
}

// Fixture makes a record of a sequence iterator over random words.
func Fixture(t *testcase.T) snapshot.Record {
	words := make([]string, t.Random.IntBetween(1, 5))
	for i := range words {
		words[i] = randomdata.Noun()
	}
	raw, err := snapshot.Encode(iterkit.Descriptor{
		Constructor: iterkit.ConstructorIter,
		Args:        []any{iterkit.List[string](words)},
		State:       t.Random.IntBetween(0, len(words)),
	})
	t.Must.NoError(err)
	raw.ID = uuid.NewV4().String()
	raw.CreatedAt = time.Now().UTC()
	return raw
}
