package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ua-stack/uacodec/buffer"
	"github.com/ua-stack/uacodec/errs"
	"github.com/ua-stack/uacodec/schema"
	"github.com/ua-stack/uacodec/variant"
)

func pointSchema() *schema.StructSchema {
	return &schema.StructSchema{
		Name: "Point",
		Fields: []schema.Field{
			{Name: "X", Kind: schema.KindScalar, ScalarType: variant.TypeInt32},
			{Name: "Y", Kind: schema.KindScalar, ScalarType: variant.TypeInt32},
		},
	}
}

func TestStructRoundTrip(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(pointSchema()))

	rec := schema.Value{"X": int32(3), "Y": int32(-4)}

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Point", rec, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Point", reg)
	require.NoError(t, err)
	require.Equal(t, schema.Value{"X": int32(3), "Y": int32(-4)}, got)
}

func TestEnumRoundTrip(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(&schema.StructSchema{Name: "Color", IsEnum: true}))

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Color", uint32(2), reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Color", reg)
	require.NoError(t, err)
	require.Equal(t, uint32(2), got)
}

func TestNestedStructField(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(pointSchema()))
	require.NoError(t, reg.Register(&schema.StructSchema{
		Name: "Segment",
		Fields: []schema.Field{
			{Name: "Start", Kind: schema.KindStruct, StructName: "Point"},
			{Name: "End", Kind: schema.KindStruct, StructName: "Point"},
		},
	}))

	rec := schema.Value{
		"Start": schema.Value{"X": int32(0), "Y": int32(0)},
		"End":   schema.Value{"X": int32(1), "Y": int32(1)},
	}

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Segment", rec, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Segment", reg)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestListField(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(&schema.StructSchema{
		Name: "Polyline",
		Fields: []schema.Field{
			{Name: "Lengths", Kind: schema.KindScalar, ScalarType: variant.TypeInt32, IsList: true},
		},
	}))

	rec := schema.Value{"Lengths": []any{int32(1), int32(2), int32(3)}}

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Polyline", rec, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Polyline", reg)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestListFieldAbsentVsEmpty(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(&schema.StructSchema{
		Name: "Polyline",
		Fields: []schema.Field{
			{Name: "Lengths", Kind: schema.KindScalar, ScalarType: variant.TypeInt32, IsList: true},
		},
	}))

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Polyline", schema.Value{"Lengths": nil}, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Polyline", reg)
	require.NoError(t, err)
	require.Nil(t, got.(schema.Value)["Lengths"])

	wEmpty := buffer.Get()
	defer buffer.Put(wEmpty)
	require.NoError(t, schema.Encode(wEmpty, "Polyline", schema.Value{"Lengths": []any{}}, reg))

	gotEmpty, err := schema.Decode(buffer.New(wEmpty.Bytes()), "Polyline", reg)
	require.NoError(t, err)
	require.NotNil(t, gotEmpty.(schema.Value)["Lengths"])
	require.Empty(t, gotEmpty.(schema.Value)["Lengths"])
}

// switchFieldSchema mirrors a variable-content union: the bits of the leading
// EncodingMask field select which of A and B are present.
func switchFieldSchema() *schema.StructSchema {
	return &schema.StructSchema{
		Name: "Choice",
		Fields: []schema.Field{
			{Name: "EncodingMask", Kind: schema.KindScalar, ScalarType: variant.TypeUInt32},
			{Name: "A", Kind: schema.KindScalar, ScalarType: variant.TypeInt32, SwitchField: "EncodingMask", SwitchBit: 0},
			{Name: "B", Kind: schema.KindScalar, ScalarType: variant.TypeString, SwitchField: "EncodingMask", SwitchBit: 1},
		},
	}
}

func TestSwitchFieldOmitsAbsentMember(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(switchFieldSchema()))

	rec := schema.Value{"EncodingMask": uint32(0), "A": int32(42), "B": nil}

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Choice", rec, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Choice", reg)
	require.NoError(t, err)

	gotRec := got.(schema.Value)
	require.Equal(t, uint32(1), gotRec["EncodingMask"])
	require.Equal(t, int32(42), gotRec["A"])
	require.NotContains(t, gotRec, "B")
}

func TestSwitchFieldBothMembersPresent(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(switchFieldSchema()))

	rec := schema.Value{"EncodingMask": uint32(0), "A": int32(7), "B": "hi"}

	w := buffer.Get()
	defer buffer.Put(w)
	require.NoError(t, schema.Encode(w, "Choice", rec, reg))

	got, err := schema.Decode(buffer.New(w.Bytes()), "Choice", reg)
	require.NoError(t, err)

	gotRec := got.(schema.Value)
	require.Equal(t, uint32(3), gotRec["EncodingMask"])
	require.Equal(t, int32(7), gotRec["A"])
	require.Equal(t, "hi", gotRec["B"])
}

func TestEncodeUnknownSchemaName(t *testing.T) {
	reg := schema.NewRegistry(nil)

	w := buffer.Get()
	defer buffer.Put(w)
	err := schema.Encode(w, "Missing", schema.Value{}, reg)
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestRegisterDuplicateName(t *testing.T) {
	reg := schema.NewRegistry(nil)
	require.NoError(t, reg.Register(pointSchema()))
	err := reg.Register(pointSchema())
	require.ErrorIs(t, err, errs.ErrDuplicateName)
}
