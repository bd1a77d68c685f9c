package collections

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/crypto/blake2b"
)

// FingerprintSize is the length in bytes of a list fingerprint.
const FingerprintSize = blake2b.Size256

// Fingerprint is a BLAKE2b-256 digest of a list's elements, in order.
//
// Elements are digested in a canonical MessagePack form: map entries of any
// key type are sorted by their encoded key, and integers use their most
// compact encoding. Equal content therefore always produces the same
// fingerprint, across calls and across list kinds: NewList(1, 2) and
// NewLinkedList(1, 2) share a fingerprint.
type Fingerprint [FingerprintSize]byte

// FingerprintOf digests the elements of e. It fails only when an element
// cannot be encoded as MessagePack.
func FingerprintOf[T any](e Enumerable[T]) (Fingerprint, error) {
	b, err := msgpack.Marshal(e.ToSlice())
	if err != nil {
		return Fingerprint{}, fmt.Errorf("collections: fingerprint: %w", err)
	}

	// Decode into generic values so every map, whatever its Go key type,
	// comes back as map[any]any and can be ordered below.
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	dec.SetMapDecoder(func(d *msgpack.Decoder) (any, error) { return d.DecodeUntypedMap() })
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return Fingerprint{}, fmt.Errorf("collections: fingerprint: %w", err)
	}

	canonical, err := canonicalBytes(generic)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("collections: fingerprint: %w", err)
	}
	return blake2b.Sum256(canonical), nil
}

func canonicalBytes(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := encodeCanonical(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type canonicalEntry struct {
	key, value []byte
}

func encodeCanonical(enc *msgpack.Encoder, v any) error {
	switch x := v.(type) {
	case []any:
		if err := enc.EncodeArrayLen(len(x)); err != nil {
			return err
		}
		for _, item := range x {
			if err := encodeCanonical(enc, item); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		entries := make([]canonicalEntry, 0, len(x))
		for k, val := range x {
			kb, err := canonicalBytes(k)
			if err != nil {
				return err
			}
			vb, err := canonicalBytes(val)
			if err != nil {
				return err
			}
			entries = append(entries, canonicalEntry{key: kb, value: vb})
		}
		slices.SortFunc(entries, func(a, b canonicalEntry) int { return bytes.Compare(a.key, b.key) })

		if err := enc.EncodeMapLen(len(entries)); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := enc.Encode(msgpack.RawMessage(entry.key)); err != nil {
				return err
			}
			if err := enc.Encode(msgpack.RawMessage(entry.value)); err != nil {
				return err
			}
		}
		return nil
	default:
		return enc.Encode(x)
	}
}

// SameElements reports whether a and b hold equal elements in the same order.
func SameElements[T any](a, b Enumerable[T]) (bool, error) {
	if a.Len() != b.Len() {
		return false, nil
	}
	fa, err := FingerprintOf(a)
	if err != nil {
		return false, err
	}
	fb, err := FingerprintOf(b)
	if err != nil {
		return false, err
	}
	return fa == fb, nil
}

// Fingerprint returns the content digest of l. See [FingerprintOf].
func (l *List[T]) Fingerprint() (Fingerprint, error) { return FingerprintOf[T](l) }

// Fingerprint returns the content digest of l. See [FingerprintOf].
func (l *LinkedList[T]) Fingerprint() (Fingerprint, error) { return FingerprintOf[T](l) }
