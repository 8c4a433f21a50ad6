package mockless_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/GeorgeMac/mockless"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleError() {
	const ErrStorageGone mockless.Error = "the storage behind the stub is gone"

	_ = ErrStorageGone
}

func TestError_Error_smoke(t *testing.T) {
	const ErrExample mockless.Error = "ErrExample"
	assert.Equal(t, ErrExample.Error(), string(ErrExample))
}

type ErrAsStub struct {
	V string
}

func (err ErrAsStub) Error() string {
	return fmt.Sprintf("ErrAsStub: %s", err.V)
}

func TestError_Wrap(t *testing.T) {
	const ErrExample mockless.Error = "ErrExample"
	t.Run("happy", func(t *testing.T) {
		exp := rnd.Error()
		got := ErrExample.Wrap(exp)
		assert.ErrorIs(t, got, exp)
		assert.ErrorIs(t, got, ErrExample)
		assert.Contain(t, got.Error(), fmt.Sprintf("[%s] %s", ErrExample, exp.Error()))

		t.Run("Is", func(t *testing.T) {
			assert.True(t, errors.Is(got, ErrExample))
			assert.True(t, errors.Is(got, exp))
		})

		t.Run("As", func(t *testing.T) {
			exp := ErrAsStub{V: rnd.String()}
			got := ErrExample.Wrap(exp)
			assert.ErrorIs(t, got, ErrExample)

			var target ErrAsStub
			assert.True(t, errors.As(got, &target))
			assert.Equal(t, exp, target)
		})
	})
	t.Run("nil", func(t *testing.T) {
		var got error = ErrExample.Wrap(nil)
		assert.ErrorIs(t, got, ErrExample)
		var exp error = ErrExample
		assert.Equal(t, exp, got)
	})
}

func TestError_F(t *testing.T) {
	const ErrExample mockless.Error = "ErrExample"
	detail := rnd.String()
	got := ErrExample.F("method: %s", detail)
	assert.ErrorIs(t, got, ErrExample)
	assert.Contain(t, got.Error(), detail)
}

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		errs = testcase.Let[[]error](s, nil)
	)
	act := func(t *testcase.T) error {
		return mockless.Merge(errs.Get(t)...)
	}

	s.When("no error is supplied", func(s *testcase.Spec) {
		errs.Let(s, func(t *testcase.T) []error {
			return []error{}
		})

		s.Then("it will return with nil", func(t *testcase.T) {
			t.Must.Nil(act(t))
		})
	})

	s.When("an error value is supplied", func(s *testcase.Spec) {
		expectedErr := let.Error(s)

		errs.Let(s, func(t *testcase.T) []error {
			return []error{expectedErr.Get(t)}
		})

		s.Then("the exact value is returned", func(t *testcase.T) {
			t.Must.Equal(expectedErr.Get(t), act(t))
		})

		s.And("but the error value is nil", func(s *testcase.Spec) {
			expectedErr.LetValue(s, nil)

			s.Then("it will return with nil", func(t *testcase.T) {
				t.Must.Nil(act(t))
			})
		})
	})

	s.When("multiple error values are supplied", func(s *testcase.Spec) {
		expectedErr1 := let.Error(s)
		expectedErr2 := let.Error(s)
		expectedErr3 := let.Error(s)

		errs.Let(s, func(t *testcase.T) []error {
			return []error{
				expectedErr1.Get(t),
				expectedErr2.Get(t),
				expectedErr3.Get(t),
			}
		})

		s.Then("returned value includes all three error value", func(t *testcase.T) {
			err := act(t)
			t.Must.ErrorIs(expectedErr1.Get(t), err)
			t.Must.ErrorIs(expectedErr2.Get(t), err)
			t.Must.ErrorIs(expectedErr3.Get(t), err)
		})

		s.Then("returned error's message includes all three error's message", func(t *testcase.T) {
			msg := act(t).Error()
			t.Must.Contain(msg, expectedErr1.Get(t).Error())
			t.Must.Contain(msg, expectedErr2.Get(t).Error())
			t.Must.Contain(msg, expectedErr3.Get(t).Error())
		})

		s.And("one of them has a typed error value", func(s *testcase.Spec) {
			expectedErr2.Let(s, func(t *testcase.T) error {
				return ErrAsStub{V: t.Random.String()}
			})

			s.Then("errors.As can find the typed error", func(t *testcase.T) {
				err := act(t)

				var gotErrWithAs ErrAsStub
				t.Must.True(errors.As(err, &gotErrWithAs))
				t.Must.Equal(expectedErr2.Get(t), gotErrWithAs)
			})
		})

		s.And("but the error values are nil", func(s *testcase.Spec) {
			expectedErr1.LetValue(s, nil)
			expectedErr2.LetValue(s, nil)
			expectedErr3.LetValue(s, nil)

			s.Then("it will return with nil", func(t *testcase.T) {
				t.Must.Nil(act(t))
			})
		})
	})
}

func TestErrUnset(t *testing.T) {
	got := mockless.ErrUnset.F("StubTx.Commit")
	assert.ErrorIs(t, got, mockless.ErrUnset)
	assert.Contain(t, got.Error(), "StubTx.Commit")
}

func TestT_testingTSatisfiesIt(t *testing.T) {
	var _ mockless.T = t
}
