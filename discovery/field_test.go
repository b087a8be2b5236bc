package discovery

import (
	"encoding/json/jsontext"
	"encoding/json/v2"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nullableThing string

const nullableThingNone nullableThing = ""

func (n nullableThing) MarshalJSONTo(e *jsontext.Encoder) error {
	return MarshalNullableString(e, string(n))
}

func (n *nullableThing) UnmarshalJSONFrom(d *jsontext.Decoder) error {
	return UnmarshalNullableString(d, (*string)(n))
}

type testPayload struct {
	Name     *string
	Expiry   *time.Duration
	Picture  *url.URL
	Class    *nullableThing
	Topic    string
	Options  []string
	Optional string
}

func (p *testPayload) fields() Fields {
	return Fields{
		Optional(FieldName, &p.Name),
		Optional(FieldExpireAfter, &p.Expiry),
		Optional(FieldEntityPicture, &p.Picture),
		Optional(FieldDeviceClass, &p.Class),
		Required(FieldTopic, &p.Topic),
		Slice(FieldOptions, &p.Options),
		OmitEmpty(FieldPayloadAvailable, &p.Optional),
	}
}

func unmarshalFields(data []byte, f Fields) error {
	return json.Unmarshal(data, &f)
}

func TestFields_MarshalJSONTo(t *testing.T) {
	t.Run("Zero", func(t *testing.T) {
		sut := testPayload{}

		b, err := json.Marshal(sut.fields())
		require.NoError(t, err)
		assert.JSONEq(t, `{"t":""}`, string(b))
	})

	t.Run("Everything", func(t *testing.T) {
		name := "foo"
		expiry := 90 * time.Second
		class := nullableThing("bar")
		u, err := url.Parse("https://example.com/foo.png")
		require.NoError(t, err)

		sut := testPayload{
			Name:     &name,
			Expiry:   &expiry,
			Picture:  u,
			Class:    &class,
			Topic:    "fizz/buzz",
			Options:  []string{"a", "b"},
			Optional: "online",
		}

		b, err := json.Marshal(sut.fields())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"name": "foo",
			"exp_aft": 90,
			"ent_pic": "https://example.com/foo.png",
			"dev_cla": "bar",
			"t": "fizz/buzz",
			"ops": ["a", "b"],
			"pl_avail": "online"
		}`, string(b))
	})

	t.Run("Explicit Null", func(t *testing.T) {
		class := nullableThingNone
		sut := testPayload{Class: &class}

		b, err := json.Marshal(sut.fields())
		require.NoError(t, err)
		assert.JSONEq(t, `{"dev_cla":null,"t":""}`, string(b))
	})

	t.Run("Field Order", func(t *testing.T) {
		name := "foo"
		sut := testPayload{Name: &name, Topic: "bar"}

		b, err := json.Marshal(sut.fields())
		require.NoError(t, err)
		assert.Equal(t, `{"name":"foo","t":"bar"}`, string(b))
	})
}

func TestFields_UnmarshalJSONFrom(t *testing.T) {
	t.Run("Abbreviated", func(t *testing.T) {
		sut := testPayload{}
		require.NoError(t, unmarshalFields(
			[]byte(`{"name":"foo","exp_aft":90,"ent_pic":"https://example.com/foo.png","t":"fizz/buzz","ops":["a"],"pl_avail":"online"}`),
			sut.fields(),
		))

		require.NotNil(t, sut.Name)
		assert.Equal(t, "foo", *sut.Name)
		require.NotNil(t, sut.Expiry)
		assert.Equal(t, 90*time.Second, *sut.Expiry)
		require.NotNil(t, sut.Picture)
		assert.Equal(t, "https://example.com/foo.png", sut.Picture.String())
		assert.Nil(t, sut.Class)
		assert.Equal(t, "fizz/buzz", sut.Topic)
		assert.Equal(t, []string{"a"}, sut.Options)
		assert.Equal(t, "online", sut.Optional)
	})

	t.Run("Full Names", func(t *testing.T) {
		sut := testPayload{}
		require.NoError(t, unmarshalFields(
			[]byte(`{"name":"foo","expire_after":90,"topic":"fizz/buzz","options":["a"],"payload_available":"online"}`),
			sut.fields(),
		))

		require.NotNil(t, sut.Name)
		assert.Equal(t, "foo", *sut.Name)
		require.NotNil(t, sut.Expiry)
		assert.Equal(t, 90*time.Second, *sut.Expiry)
		assert.Equal(t, "fizz/buzz", sut.Topic)
		assert.Equal(t, []string{"a"}, sut.Options)
		assert.Equal(t, "online", sut.Optional)
	})

	t.Run("Unknown Keys Skipped", func(t *testing.T) {
		sut := testPayload{}
		require.NoError(t, unmarshalFields(
			[]byte(`{"what":{"is":["this"]},"t":"fizz/buzz"}`),
			sut.fields(),
		))

		assert.Equal(t, "fizz/buzz", sut.Topic)
	})

	t.Run("Null", func(t *testing.T) {
		name := "foo"
		sut := testPayload{Name: &name}
		require.NoError(t, unmarshalFields([]byte(`{"name":null,"dev_cla":null}`), sut.fields()))

		assert.Nil(t, sut.Name)
		require.NotNil(t, sut.Class)
		assert.Equal(t, nullableThingNone, *sut.Class)
	})

	t.Run("Not An Object", func(t *testing.T) {
		sut := testPayload{}
		require.ErrorIs(t, unmarshalFields([]byte(`["t"]`), sut.fields()), ErrExpectedObject)
	})
}

func TestFields_Concatenation(t *testing.T) {
	topic := "fizz/buzz"
	mode := "any"

	sut := append(
		Fields{Required(FieldStateTopic, &topic)},
		OmitEmpty(FieldAvailabilityMode, &mode),
	)

	b, err := json.Marshal(sut)
	require.NoError(t, err)
	assert.Equal(t, `{"stat_t":"fizz/buzz","avty_mode":"any"}`, string(b))
}

func TestFields_Discard(t *testing.T) {
	sut := testPayload{Topic: "foo"}
	require.NoError(t, sut.fields().MarshalJSONTo(discardEncoder()))
}
