package bs58

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paraglidehq/bs58/base58"
)

func TestBytes(t *testing.T) {
	t.Run("IsEmpty", testBytesIsEmpty)
	t.Run("String", testBytesString)
	t.Run("Format", testBytesFormat)
}

func testBytesIsEmpty(t *testing.T) {
	var b Bytes
	if !b.IsEmpty() {
		t.Errorf("nil Bytes.IsEmpty() = false, want true")
	}
	if testBytes.IsEmpty() {
		t.Errorf("%q.IsEmpty() = true, want false", testBytes)
	}
}

func testBytesString(t *testing.T) {
	s := testBytes.String()
	if s != testEncoded {
		t.Errorf("String() = %q, want %q", s, testEncoded)
	}
	parsed, err := FromString(s)
	if err != nil {
		t.Errorf("FromString(%q) failed: %v", s, err)
	}
	if !bytes.Equal(parsed, testBytes) {
		t.Errorf("Roundtrip failed: got %q, want %q", parsed, testBytes)
	}
}

func testBytesFormat(t *testing.T) {
	tests := []struct {
		a    *base58.Alphabet
		want string
	}{
		{base58.Bitcoin, "JxF12TrwUP45BMd"},
		{base58.Monero, "JxF12TrwUP45BMd"},
		{base58.Ripple, "JxErpTiA7PhnBMd"},
		{base58.Flickr, "iXf12sRWto45bmC"},
	}
	for _, tt := range tests {
		got := testBytes.Format(tt.a)
		if got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.a, got, tt.want)
		}
		parsed, err := ParseAlphabet(got, tt.a)
		if err != nil {
			t.Fatalf("ParseAlphabet(%q): %v", got, err)
		}
		if !bytes.Equal(parsed, testBytes) {
			t.Errorf("ParseAlphabet(%q) = %q, want %q", got, parsed, testBytes)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(testEncoded)
	require.NoError(t, err)
	assert.Equal(t, testBytes, got)

	var b Bytes
	require.NoError(t, b.Parse("111"))
	assert.Equal(t, Bytes{0, 0, 0}, b)

	_, err = Parse("JxF12TrwUP45BMO")
	require.ErrorIs(t, err, base58.ErrInvalidCharacter)
	var cerr *base58.CharacterError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, 14, cerr.Pos)

	before := b
	require.Error(t, b.Parse("0"))
	assert.Equal(t, before, b)
}

func TestFromStringOrNil(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		got := FromStringOrNil("invalid!!!")
		if got != nil {
			t.Errorf("FromStringOrNil(invalid): got %v, want nil", got)
		}
	})
	t.Run("Valid", func(t *testing.T) {
		got := FromStringOrNil(testEncoded)
		if !bytes.Equal(got, testBytes) {
			t.Errorf("FromStringOrNil(%q): got %q, want %q", testEncoded, got, testBytes)
		}
	})
}

func TestMust(t *testing.T) {
	assert.Equal(t, testBytes, Must(Parse(testEncoded)))
	assert.Panics(t, func() { Must(Parse("0")) })
}

func TestSetAlphabet(t *testing.T) {
	defer func() { DefaultAlphabet = base58.Bitcoin }()

	require.NoError(t, SetAlphabet("flickr"))
	assert.Equal(t, "iXf12sRWto45bmC", testBytes.String())

	text, err := testBytes.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "iXf12sRWto45bmC", string(text))

	require.ErrorIs(t, SetAlphabet("base32"), base58.ErrUnknownPreset)
	assert.Same(t, base58.Flickr, DefaultAlphabet)
}

func TestMarshalText(t *testing.T) {
	text, err := testBytes.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, testEncoded, string(text))

	var got Bytes
	require.NoError(t, got.UnmarshalText(text))
	assert.Equal(t, testBytes, got)

	require.Error(t, got.UnmarshalText([]byte("l")))
}

func TestJSON(t *testing.T) {
	type record struct {
		Key   Bytes  `json:"key"`
		Empty Bytes  `json:"empty"`
		Null  Bytes  `json:"null"`
		Name  string `json:"name"`
	}
	in := record{Key: Bytes{0, 0x61, 0x62}, Empty: Bytes{}, Name: "x"}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"18Qq","empty":"","null":null,"name":"x"}`, string(data))

	var out record
	require.NoError(t, json.Unmarshal([]byte(`{"key":"18Qq","empty":"","null":null,"name":"x"}`), &out))
	assert.Equal(t, in.Key, out.Key)
	assert.Empty(t, out.Empty)
	assert.Nil(t, out.Null)
	assert.NotNil(t, out.Empty)

	for _, bad := range []string{`{"key":"18Q0"}`, `{"key":123}`, `{"key":"18Qq}`} {
		var r record
		assert.Error(t, json.Unmarshal([]byte(bad), &r), bad)
	}
}

func TestBinary(t *testing.T) {
	data, err := testBytes.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte(testBytes), data)

	data[0] = 'X'
	assert.Equal(t, byte('H'), testBytes[0], "MarshalBinary must copy")

	var got Bytes
	require.NoError(t, got.UnmarshalBinary([]byte{1, 2, 3}))
	assert.Equal(t, Bytes{1, 2, 3}, got)
}

func TestGob(t *testing.T) {
	type record struct {
		Key Bytes
	}
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(record{Key: testBytes}))

	var out record
	require.NoError(t, gob.NewDecoder(&buf).Decode(&out))
	assert.Equal(t, testBytes, out.Key)
}
