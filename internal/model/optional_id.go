package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// OptionalID is an identifier that may be absent. The zero value is absent.
type OptionalID struct {
	id  uuid.UUID
	set bool
}

func SomeID(id uuid.UUID) OptionalID {
	return OptionalID{id: id, set: true}
}

func NoID() OptionalID {
	return OptionalID{}
}

// Get returns the identifier and whether it is present.
func (o OptionalID) Get() (uuid.UUID, bool) {
	return o.id, o.set
}

func (o OptionalID) IsSet() bool {
	return o.set
}

// OrElse returns the identifier if present, otherwise the result of gen.
func (o OptionalID) OrElse(gen func() uuid.UUID) uuid.UUID {
	if o.set {
		return o.id
	}
	return gen()
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.id.String())
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = OptionalID{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("id must be a string or null: %w", err)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("id must be a UUID: %w", err)
	}
	*o = SomeID(id)
	return nil
}
