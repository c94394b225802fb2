package schema

import (
	"fmt"

	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/extobj"
	"github.com/ua-stack/uacodec/internal/collision"
	"github.com/ua-stack/uacodec/internal/hash"
)

// Registry is the name-keyed set of known StructSchemas a struct codec walk
// resolves KindStruct/KindEnum field references against. It embeds an
// extobj.Registry so ExtensionObject-typed fields can be encoded/decoded
// in the same pass as everything else.
type Registry struct {
	schemas map[string]*StructSchema
	tracker *collision.Tracker
	ExtObj  *extobj.Registry
}

// NewRegistry creates an empty Registry. extObj may be nil if no field in
// any registered schema is ExtensionObject-typed.
func NewRegistry(extObj *extobj.Registry) *Registry {
	if extObj == nil {
		extObj = extobj.NewRegistry()
	}

	return &Registry{
		schemas: make(map[string]*StructSchema),
		tracker: collision.NewTracker(),
		ExtObj:  extObj,
	}
}

// Register adds s to the registry, keyed by s.Name. It returns
// errs.ErrDuplicateName if the name was already registered and
// errs.ErrHashCollision if a different name already hashes to the same
// xxHash64 digest.
func (r *Registry) Register(s *StructSchema) error {
	if err := r.tracker.Track(s.Name, hash.ID(s.Name)); err != nil {
		return err
	}

	r.schemas[s.Name] = s
	return nil
}

func (r *Registry) lookup(name string) (*StructSchema, error) {
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: struct schema %q", errs.ErrUnknownType, name)
	}

	return s, nil
}

// Count returns the number of registered schemas.
func (r *Registry) Count() int {
	return len(r.schemas)
}
