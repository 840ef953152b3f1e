package iterkit_test

import (
	"context"
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/iterbridge/pkg/iterkit"
)

func TestRun(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		ctx    = testcase.Let(s, func(t *testcase.T) context.Context { return context.Background() })
		handle = testcase.Var[iterkit.Handle]{ID: "handle"}
	)
	act := func(t *testcase.T) (any, error) {
		return iterkit.Run(ctx.Get(t), handle.Get(t))
	}

	s.When("the handle completes with a value", func(s *testcase.Spec) {
		value := testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
		handle.Let(s, func(t *testcase.T) iterkit.Handle { return iterkit.Ready(value.Get(t)).Await() })

		s.Then("the value is returned", func(t *testcase.T) {
			v, err := act(t)
			t.Must.NoError(err)
			t.Must.Equal(value.Get(t), v)
		})
	})

	s.When("the handle completes with a bare stop signal", func(s *testcase.Spec) {
		handle.Let(s, func(t *testcase.T) iterkit.Handle {
			return iterkit.HandleFunc(func() (any, error) { return nil, iterkit.ErrStopIteration })
		})

		s.Then("it finishes without a value", func(t *testcase.T) {
			v, err := act(t)
			t.Must.NoError(err)
			t.Must.Nil(v)
		})
	})

	s.When("the handle fails", func(s *testcase.Spec) {
		expErr := testcase.Let(s, func(t *testcase.T) error { return t.Random.Error() })
		handle.Let(s, func(t *testcase.T) iterkit.Handle { return iterkit.Fail(expErr.Get(t)).Await() })

		s.Then("the failure is returned", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(expErr.Get(t), err)
		})
	})

	s.When("the context is cancelled", func(s *testcase.Spec) {
		ctx.Let(s, func(t *testcase.T) context.Context {
			c, cancel := context.WithCancel(context.Background())
			cancel()
			return c
		})
		handle.Let(s, func(t *testcase.T) iterkit.Handle {
			return iterkit.HandleFunc(func() (any, error) {
				t.Fatal("handle should not be resumed")
				return nil, nil
			})
		})

		s.Then("the handle is not resumed", func(t *testcase.T) {
			_, err := act(t)
			t.Must.ErrorIs(context.Canceled, err)
		})
	})
}

func TestRun_onYieldAborts(t *testing.T) {
	expErr := rnd.Error()
	h := iterkit.Coroutine(func(suspend func(any)) (any, error) {
		suspend(1)
		suspend(2)
		return nil, nil
	}).Await()
	defer h.(interface{ Close() error }).Close()

	var seen []any
	_, err := iterkit.Run(context.Background(), h, iterkit.OnYield(func(signal any) error {
		seen = append(seen, signal)
		return expErr
	}))
	assert.ErrorIs(t, expErr, err)
	assert.Equal(t, []any{1}, seen)
}

func TestAwait_notAwaitable(t *testing.T) {
	_, err := iterkit.Await(context.Background(), iterkit.AwaitableFunc(func() iterkit.Handle { return nil }))
	assert.ErrorIs(t, iterkit.ErrNotAwaitable, err)
}

func TestAwaitAs_wrongType(t *testing.T) {
	_, err := iterkit.AwaitAs[int](context.Background(), iterkit.Ready("42"))
	assert.ErrorIs(t, iterkit.ErrNoResult, err)
}

func TestCoroutine(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("suspended signals reach the scheduler, and the returned value completes the computation", func(t *testcase.T) {
		n := t.Random.IntBetween(1, 7)
		co := iterkit.Coroutine(func(suspend func(any)) (any, error) {
			for i := 0; i < n; i++ {
				suspend(i)
			}
			return "done", nil
		})

		var signals []any
		v, err := iterkit.Await(context.Background(), co, iterkit.OnYield(func(signal any) error {
			signals = append(signals, signal)
			return nil
		}))
		t.Must.NoError(err)
		t.Must.Equal("done", v)
		t.Must.Equal(n, len(signals))
	})

	s.Test("a returned error fails the computation", func(t *testcase.T) {
		expErr := t.Random.Error()
		_, err := iterkit.Await(context.Background(), iterkit.Coroutine(func(suspend func(any)) (any, error) {
			return nil, expErr
		}))
		t.Must.ErrorIs(expErr, err)
	})

	s.Test("every Await starts a new run", func(t *testcase.T) {
		var runs int
		co := iterkit.Coroutine(func(suspend func(any)) (any, error) {
			runs++
			return runs, nil
		})
		for i := 1; i <= 3; i++ {
			v, err := iterkit.AwaitAs[int](context.Background(), co)
			t.Must.NoError(err)
			t.Must.Equal(i, v)
		}
	})

	s.Test("a completed handle can't be resumed again", func(t *testcase.T) {
		h := iterkit.Coroutine(func(suspend func(any)) (any, error) { return 1, nil }).Await()
		_, err := iterkit.Run(context.Background(), h)
		t.Must.NoError(err)
		_, err = h.Resume()
		t.Must.ErrorIs(iterkit.ErrDrivenAfterCompletion, err)
	})
}

func TestReadyAndFail_singleUse(t *testing.T) {
	h := iterkit.Ready(1).Await()
	_, err := h.Resume()
	v, ok := iterkit.CompletionValue(err)
	assert.True(t, ok)
	assert.Equal[any](t, 1, v)

	_, err = h.Resume()
	assert.ErrorIs(t, iterkit.ErrDrivenAfterCompletion, err)

	expErr := rnd.Error()
	h = iterkit.Fail(expErr).Await()
	_, err = h.Resume()
	assert.ErrorIs(t, expErr, err)
	_, err = h.Resume()
	assert.ErrorIs(t, iterkit.ErrDrivenAfterCompletion, err)
}
