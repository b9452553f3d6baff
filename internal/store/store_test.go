package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	st, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := st.Get(KeyResume)
	require.NoError(t, err)
	assert.False(t, ok, "missing key must not be an error")

	require.NoError(t, st.Set(KeyResume, []byte(`{"id":"1"}`)))
	raw, ok, err := st.Get(KeyResume)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"1"}`, string(raw))

	require.NoError(t, st.Delete(KeyResume))
	_, ok, err = st.Get(KeyResume)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting an absent key is a no-op
	require.NoError(t, st.Delete(KeyResume))
}

func TestStoreJSON(t *testing.T) {
	st, err := Open(t.TempDir())
	require.NoError(t, err)

	type payload struct {
		Theme string `json:"theme"`
		Count int    `json:"count"`
	}
	require.NoError(t, st.SetJSON(KeyUserSession, payload{Theme: "dark", Count: 3}))

	var out payload
	ok, err := st.GetJSON(KeyUserSession, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload{Theme: "dark", Count: 3}, out)

	// corrupt value surfaces a decode error, presence is still reported
	require.NoError(t, st.Set(KeyUserSession, []byte("not json")))
	ok, err = st.GetJSON(KeyUserSession, &out)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestOpenRejectsEmptyDir(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
