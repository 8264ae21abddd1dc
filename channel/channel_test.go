package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMixChangesDigest(t *testing.T) {
	c := NewSHA3Channel()
	before := c.Digest()
	c.MixU64(42)
	after := c.Digest()
	assert.NotEqual(t, before, after)
}

func TestMixRootChangesDigest(t *testing.T) {
	c := NewSHA3Channel()
	before := c.Digest()
	c.MixRoot([]byte("a root hash"))
	after := c.Digest()
	assert.NotEqual(t, before, after)
}

func TestDrawRandomBytesIsDeterministicGivenSameState(t *testing.T) {
	c1 := NewSHA3Channel()
	c1.MixU64(7)
	c2 := NewSHA3Channel()
	c2.MixU64(7)

	assert.Equal(t, c1.DrawRandomBytes(40), c2.DrawRandomBytes(40))
}

func TestDrawRandomBytesAdvancesAcrossCalls(t *testing.T) {
	c := NewSHA3Channel()
	c.MixU64(1)
	first := c.DrawRandomBytes(32)
	second := c.DrawRandomBytes(32)
	assert.NotEqual(t, first, second)
}

func TestDrawFeltDoesNotMutateTranscriptState(t *testing.T) {
	c := NewSHA3Channel()
	c.MixU64(99)
	before := c.Digest()
	_ = c.DrawFelt()
	after := c.Digest()
	assert.Equal(t, before, after)
}

func TestMixResetsDrawCounter(t *testing.T) {
	c := NewSHA3Channel()
	c.MixU64(1)
	a := c.DrawRandomBytes(16)
	c.MixU64(2)
	c.MixU64(1) // a second mix in a row leaves the counter at zero as well
	assert.Equal(t, uint64(0), c.drawCtr)
	b := c.DrawRandomBytes(16)
	assert.Len(t, a, 16)
	assert.Len(t, b, 16)
}
