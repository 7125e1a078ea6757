package entities

import (
	"encoding/json"
	"errors"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrOrderNotFound = errors.New("order not found")
	ErrShopNotFound  = errors.New("shop not found")
	ErrUnauthorized  = errors.New("invalid credentials")
)

// Optional keeps track of whether a JSON key was present at all, so that
// a missing key and an explicit null can be told apart.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Or returns the held pointer when the key was present and fallback otherwise.
func (o Optional[T]) Or(fallback *T) *T {
	if o.Set {
		return o.Value
	}
	return fallback
}
