package extobj

import (
	"fmt"

	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/internal/collision"
	"github.com/ua-stack/uacodec/internal/hash"
	"github.com/ua-stack/uacodec/nodeid"
)

// DecodeFunc decodes a registered ExtensionObject body.
type DecodeFunc func(*buffer.Buffer) (any, error)

// EncodeFunc encodes a value into a registered ExtensionObject's body.
type EncodeFunc func(*buffer.Writer, any) error

type entry struct {
	name   string
	typeId nodeid.NodeId
	Decode DecodeFunc
	Encode EncodeFunc
}

// Registry is the bijection between a NodeId type_id and the decode/encode
// closures for the structure it identifies. Closures, rather than a direct
// dependency on the schema package, keep this package free of a schema
// import: schema registers its struct codecs here without extobj needing to
// know what a schema.StructSchema is.
//
// Registration is keyed both by type_id (for wire dispatch) and by an
// xxHash64 of the type name (for collision detection against accidental
// duplicate registrations), mirroring schema.Registry.
type Registry struct {
	byKey   map[string]*entry
	tracker *collision.Tracker
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:   make(map[string]*entry),
		tracker: collision.NewTracker(),
	}
}

// Register associates name and typeId with decode/encode closures. It
// returns errs.ErrDuplicateName if name or typeId was already registered,
// and errs.ErrHashCollision if a different name already hashes to the same
// xxHash64 digest.
func (r *Registry) Register(name string, typeId nodeid.NodeId, decode DecodeFunc, encode EncodeFunc) error {
	if err := r.tracker.Track(name, hash.ID(name)); err != nil {
		return err
	}

	key := typeId.Key()
	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("%w: type_id %s already registered", errs.ErrDuplicateName, key)
	}

	r.byKey[key] = &entry{name: name, typeId: typeId, Decode: decode, Encode: encode}
	return nil
}

func (r *Registry) lookup(typeId nodeid.NodeId) (*entry, bool) {
	e, ok := r.byKey[typeId.Key()]
	return e, ok
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	return len(r.byKey)
}
