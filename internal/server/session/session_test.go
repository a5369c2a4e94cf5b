package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStates(t *testing.T) {
	var zero Session
	assert.False(t, zero.IsAuthenticated())
	assert.Equal(t, Anonymous(), zero)
	assert.Equal(t, "Anonymous", zero.String())

	s := Authenticated("ClubNorte")
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "ClubNorte", s.UserName())
	assert.Equal(t, "Authenticated(ClubNorte)", s.String())
}

func TestContextRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.False(t, FromContext(ctx).IsAuthenticated())

	ctx = NewContext(ctx, Authenticated("acme"))
	assert.Equal(t, "acme", FromContext(ctx).UserName())
}

func TestStore_AddGetDelete(t *testing.T) {
	st := NewStore()

	id := st.Add(Authenticated("acme"))
	require.NotEmpty(t, id)

	got, ok := st.Get(id)
	require.True(t, ok)
	assert.Equal(t, "acme", got.UserName())

	st.Delete(id)
	got, ok = st.Get(id)
	assert.False(t, ok)
	assert.False(t, got.IsAuthenticated())
	assert.Equal(t, 0, st.Len())
}

func TestStore_DeleteUser(t *testing.T) {
	st := NewStore()
	a1 := st.Add(Authenticated("a"))
	a2 := st.Add(Authenticated("a"))
	b := st.Add(Authenticated("b"))
	assert.NotEqual(t, a1, a2)

	assert.Equal(t, 2, st.DeleteUser("a"))

	_, ok := st.Get(a1)
	assert.False(t, ok)
	_, ok = st.Get(b)
	assert.True(t, ok)
}

func TestStore_Concurrent(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := st.Add(Authenticated("x"))
			st.Get(id)
			st.Delete(id)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, st.Len())
}
