// Package merklehash defines the Merkle node-combining contract the
// polynomial core consumes when committing to columns, plus a default
// blake2b-backed adapter.
package merklehash

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/vybium/circle-stark-core/m31"
)

// MerkleHasher combines a node's children hashes (nil for a leaf) with
// the column values committed at that node into the node's own hash.
type MerkleHasher interface {
	HashNode(children *[2][]byte, columnValues []m31.F31) []byte
}

// Blake2bHasher is the default MerkleHasher: it hashes the concatenation
// of any child hashes followed by the little-endian encoding of every
// column value committed at the node, mirroring a combine-then-hash
// Merkle layer that folds sibling hashes and leaf data into one digest.
type Blake2bHasher struct{}

// HashNode implements MerkleHasher.
func (Blake2bHasher) HashNode(children *[2][]byte, columnValues []m31.F31) []byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic("merklehash: blake2b.New256 with a nil key cannot fail: " + err.Error())
	}
	if children != nil {
		h.Write(children[0])
		h.Write(children[1])
	}
	var buf [4]byte
	for _, v := range columnValues {
		binary.LittleEndian.PutUint32(buf[:], v.Uint32())
		h.Write(buf[:])
	}
	return h.Sum(nil)
}
