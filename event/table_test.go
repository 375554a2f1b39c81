// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/asyncevent/async"
)

func testTableAdd(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		order   callOrder
		tbl     = Table[string]{
			"existing": NewHandler[string]("existing"),
		}
	)

	tbl.Add("nosubscribers")
	assert.NotContains(tbl, "nosubscribers")

	tbl.Add("existing")
	assert.Zero(tbl["existing"].Len())

	tbl.Add("test", order.recording("foo", nil))
	require.Contains(tbl, "test")
	assert.Equal("test", tbl["test"].Name())
	assert.Equal(1, tbl["test"].Len())

	tbl.Add("test", order.recording("bar", nil), order.recording("baz", nil))
	assert.Equal(3, tbl["test"].Len())

	assert.NoError(tbl.Invoke(nil, "test", "x").Err())
	assert.Equal([]string{"foo(x)", "bar(x)", "baz(x)"}, order.get())
}

func testTableSet(t *testing.T) {
	var (
		assert   = assert.New(t)
		existing = NewHandler[string]("existing")
		tbl      = Table[string]{
			"existing": existing,
		}
	)

	tbl.Set("existing", nil)
	assert.NotContains(tbl, "existing")

	tbl.Set("test", existing)
	assert.True(tbl["test"] == existing)
}

func testTableGet(t *testing.T) {
	var (
		assert   = assert.New(t)
		existing = NewHandler[string]("existing")
		def      = NewHandler[string]("default")
		def2     = NewHandler[string]("default2")
		tbl      = Table[string]{
			"existing": existing,
			"default":  def,
			"default2": def2,
		}
	)

	h, ok := tbl.Get("nosuch")
	assert.Nil(h)
	assert.False(ok)

	h, ok = tbl.Get("nosuch", "another nosuch")
	assert.Nil(h)
	assert.False(ok)

	h, ok = tbl.Get("existing")
	assert.True(h == existing)
	assert.True(ok)

	h, ok = tbl.Get("existing", "default")
	assert.True(h == existing)
	assert.True(ok)

	h, ok = tbl.Get("nosuch", "default")
	assert.True(h == def)
	assert.True(ok)

	h, ok = tbl.Get("nosuch", "still nosuch", "default2")
	assert.True(h == def2)
	assert.True(ok)
}

func testTableInvoke(t *testing.T) {
	var (
		assert = assert.New(t)
		order  callOrder
		tbl    = make(Table[string])
	)

	tbl.Add("default", order.recording("default", nil))
	tbl.Add("iot", order.recording("iot", nil))

	assert.True(tbl.Invoke(nil, "nosuch", "x") == async.Completed())
	assert.Empty(order.get())

	assert.NoError(tbl.Invoke(DefaultInvoker(), "nosuch", "x", "default").Err())
	assert.NoError(tbl.Invoke(nil, "iot", "y", "default").Err())
	assert.Equal([]string{"default(x)", "iot(y)"}, order.get())
}

func TestTable(t *testing.T) {
	t.Run("Add", testTableAdd)
	t.Run("Set", testTableSet)
	t.Run("Get", testTableGet)
	t.Run("Invoke", testTableInvoke)
}
