package settings

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"friday-assistant/internal/semparser"
)

func TestStore_Update(t *testing.T) {
	s := NewStore(semparser.Settings{Credential: "abc", Enabled: true})
	before := s.Current()

	key := "  new-key  "
	snap := s.Update(Update{Credential: &key})

	assert.Equal(t, "new-key", snap.Settings.Credential)
	assert.True(t, snap.Settings.Enabled)
	assert.Equal(t, "abc", before.Credential, "earlier snapshots are not mutated")

	off := false
	s.Update(Update{Enabled: &off})
	assert.Equal(t, semparser.Settings{Credential: "new-key", Enabled: false}, s.Current())
	assert.False(t, s.Current().Available())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore(semparser.Settings{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			k := "key"
			s.Update(Update{Credential: &k})
		}()
		go func() {
			defer wg.Done()
			_ = s.Current()
		}()
	}
	wg.Wait()

	assert.Equal(t, "key", s.Current().Credential)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "", Mask(""))
	assert.Equal(t, "****", Mask("abcd"))
	assert.Equal(t, "****6789", Mask("AIza123456789"))
}
