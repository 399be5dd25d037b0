package seqlist

import (
	"github.com/goccy/go-json"
	"github.com/inoxlang/seqlist/internal/utils"
)

// MarshalJSON encodes the list as a JSON array, an empty list is encoded as [].
func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(utils.EmptySliceIfNil(l.view()))
}

// UnmarshalJSON decodes a JSON array, the previous buffer of l is released.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elements []T
	if err := json.Unmarshal(data, &elements); err != nil {
		return err
	}
	l.Release()
	*l = adoptSlice(elements)
	return nil
}

// MarshalYAML implements the InterfaceMarshaler interface of github.com/goccy/go-yaml.
func (l List[T]) MarshalYAML() (any, error) {
	return utils.EmptySliceIfNil(l.view()), nil
}

// UnmarshalYAML implements the InterfaceUnmarshaler interface of github.com/goccy/go-yaml.
func (l *List[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var elements []T
	if err := unmarshal(&elements); err != nil {
		return err
	}
	l.Release()
	*l = adoptSlice(elements)
	return nil
}
