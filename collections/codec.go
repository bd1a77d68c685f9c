package collections

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Both list kinds encode as a plain ordered sequence in JSON, YAML and
// MessagePack. Decoding replaces the receiver's contents.

// ToJSON serialises the list elements to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) { return json.Marshal(l.ToSlice()) }

// MarshalJSON implements [json.Marshaler].
func (l *List[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// UnmarshalJSON implements [json.Unmarshaler].
func (l *List[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = *ListFrom(items)
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (l *List[T]) MarshalYAML() (any, error) { return l.ToSlice(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return err
	}
	*l = *ListFrom(items)
	return nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (l *List[T]) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.Encode(l.ToSlice()) }

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (l *List[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var items []T
	if err := dec.Decode(&items); err != nil {
		return err
	}
	*l = *ListFrom(items)
	return nil
}

// String returns the JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string { return stringOf[T](l) }

// Dump prints the list to stdout and returns l for chaining.
func (l *List[T]) Dump() *List[T] {
	fmt.Println(l.String())
	return l
}

// ToJSON serialises the list elements to a JSON array.
func (l *LinkedList[T]) ToJSON() ([]byte, error) { return json.Marshal(l.ToSlice()) }

// MarshalJSON implements [json.Marshaler].
func (l *LinkedList[T]) MarshalJSON() ([]byte, error) { return l.ToJSON() }

// UnmarshalJSON implements [json.Unmarshaler].
func (l *LinkedList[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = *LinkedListFrom(items)
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (l *LinkedList[T]) MarshalYAML() (any, error) { return l.ToSlice(), nil }

// UnmarshalYAML implements [yaml.Unmarshaler].
func (l *LinkedList[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return err
	}
	*l = *LinkedListFrom(items)
	return nil
}

// EncodeMsgpack implements [msgpack.CustomEncoder].
func (l *LinkedList[T]) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.Encode(l.ToSlice()) }

// DecodeMsgpack implements [msgpack.CustomDecoder].
func (l *LinkedList[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	var items []T
	if err := dec.Decode(&items); err != nil {
		return err
	}
	*l = *LinkedListFrom(items)
	return nil
}

// String returns the JSON representation of the list.
func (l *LinkedList[T]) String() string { return stringOf[T](l) }

// Dump prints the list to stdout and returns l for chaining.
func (l *LinkedList[T]) Dump() *LinkedList[T] {
	fmt.Println(l.String())
	return l
}

func stringOf[T any](e Enumerable[T]) string {
	items := e.ToSlice()
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Sprintf("%v", items)
	}
	return string(b)
}
