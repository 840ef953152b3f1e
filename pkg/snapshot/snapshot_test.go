package snapshot_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterbridge/internal/mocks"
	"go.llib.dev/iterbridge/pkg/iterkit"
	"go.llib.dev/iterbridge/pkg/snapshot"
)

func TestTake(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctx   = testcase.Let(s, func(t *testcase.T) context.Context { return context.Background() })
		store = testcase.Let(s, func(t *testcase.T) snapshot.Store { return NewBoltSubject(t) })
		words = testcase.Let(s, func(t *testcase.T) []string {
			return []string{t.Random.String(), t.Random.String(), t.Random.String()}
		})
		iterator = testcase.Let(s, func(t *testcase.T) *iterkit.SequenceIterator[string] {
			return iterkit.NewSequenceIterator[string](iterkit.List[string](words.Get(t)))
		})
	)
	act := func(t *testcase.T) (string, error) {
		return snapshot.Take(ctx.Get(t), store.Get(t), iterator.Get(t))
	}

	s.Test("the snapshot restores into an iterator at the same position", func(t *testcase.T) {
		_, err := iterator.Get(t).Next()
		t.Must.NoError(err)

		id, err := act(t)
		t.Must.NoError(err)
		t.Must.NotEmpty(id)

		restored, err := snapshot.RestoreSequence[string](ctx.Get(t), store.Get(t), id)
		t.Must.NoError(err)
		vs, err := iterkit.Collect[string](restored)
		t.Must.NoError(err)
		t.Must.Equal(words.Get(t)[1:], vs)
	})

	s.Test("the snapshotted iterator is not affected by the snapshot", func(t *testcase.T) {
		_, err := act(t)
		t.Must.NoError(err)
		vs, err := iterkit.Collect[string](iterator.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(words.Get(t), vs)
	})

	s.Test("an exhausted iterator restores into an exhausted iterator", func(t *testcase.T) {
		_, err := iterkit.Collect[string](iterator.Get(t))
		t.Must.NoError(err)

		id, err := act(t)
		t.Must.NoError(err)

		rec, err := store.Get(t).Load(ctx.Get(t), id)
		t.Must.NoError(err)
		t.Must.True(rec.Exhausted())
		t.Must.Nil(rec.State)

		restored, err := snapshot.RestoreSequence[string](ctx.Get(t), store.Get(t), id)
		t.Must.NoError(err)
		t.Must.True(restored.Exhausted())
	})

	s.Test("every snapshot gets its own id", func(t *testcase.T) {
		id1, err := act(t)
		t.Must.NoError(err)
		id2, err := act(t)
		t.Must.NoError(err)
		t.Must.NotEqual(id1, id2)

		rs, err := store.Get(t).List(ctx.Get(t))
		t.Must.NoError(err)
		t.Must.Equal(2, len(rs))
	})

	s.When("the store fails", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		store.Let(s, func(t *testcase.T) snapshot.Store {
			m := mocks.NewMockStore(gomock.NewController(t))
			m.EXPECT().Save(gomock.Any(), gomock.Any()).Return(expErr.Get(t))
			return m
		})

		s.Then("the error is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(expErr.Get(t), err)
		})
	})
}

func TestTake_callableIterator(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl) // no call is expected

	it := iterkit.NewCallableIterator[int](func() (int, error) { return 1, nil }, 0)
	_, err := snapshot.Take(context.Background(), store, it)
	assert.ErrorIs(t, snapshot.ErrNotSerializable, err)
}

func TestTake_exhaustedCallableIterator(t *testing.T) {
	store := snapshot.NewMemory()
	it := iterkit.NewCallableIterator[int](func() (int, error) { return 0, nil }, 0)
	_, err := it.Next()
	assert.ErrorIs(t, iterkit.ErrStopIteration, err)

	id, err := snapshot.Take(context.Background(), store, it)
	assert.NoError(t, err)
	rec, err := store.Load(context.Background(), id)
	assert.NoError(t, err)
	assert.True(t, rec.Exhausted())
	assert.Equal(t, iterkit.ConstructorIter, rec.Constructor)
}

func TestRestoreSequence_errors(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemory()

	_, err := snapshot.RestoreSequence[int](ctx, store, "unknown")
	assert.ErrorIs(t, snapshot.ErrNotFound, err)

	assert.NoError(t, store.Save(ctx, snapshot.Record{ID: "async", Constructor: iterkit.ConstructorAiter}))
	_, err = snapshot.RestoreSequence[int](ctx, store, "async")
	assert.ErrorIs(t, iterkit.ErrInvalidDescriptor, err)

	assert.NoError(t, store.Save(ctx, snapshot.Record{
		ID:          "type-mismatch",
		Constructor: iterkit.ConstructorIter,
		Args:        []snapshot.RawArg{snapshot.RawArg(`["a","b"]`)},
	}))
	_, err = snapshot.RestoreSequence[int](ctx, store, "type-mismatch")
	assert.ErrorIs(t, iterkit.ErrInvalidDescriptor, err)
}

func TestEncode(t *testing.T) {
	rec, err := snapshot.Encode(iterkit.Descriptor{
		Constructor: iterkit.ConstructorIter,
		Args:        []any{iterkit.List[int]{1, 2, 3}},
		State:       2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rec.Args))
	assert.Equal(t, `[1,2,3]`, string(rec.Args[0]))
	assert.NotNil(t, rec.State)
	assert.Equal(t, 2, *rec.State)

	_, err = snapshot.Encode(iterkit.Descriptor{
		Constructor: iterkit.ConstructorIter,
		Args:        []any{make(chan int)},
	})
	assert.ErrorIs(t, snapshot.ErrNotSerializable, err)
}
