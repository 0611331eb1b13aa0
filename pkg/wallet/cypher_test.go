package wallet

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt(t *testing.T) {
	tests := []struct {
		name       string
		plaintext  string
		passphrase string
	}{
		{"message", "super secret message", "supersecurekey"},
		{"empty text", "", "supersecurekey"},
		{"json", `{"seed":"abc","plugins":[]}`, "pw"},
		{"unicode", "wörds ✓ 秘密", "pässwörd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cyphertext, err := Encrypt(EncryptOpts{
				PlainText:  tt.plaintext,
				Passphrase: tt.passphrase,
			})
			require.NoError(t, err)
			require.NotEqual(t, tt.plaintext, cyphertext)

			revealedtext, err := Decrypt(DecryptOpts{
				CypherText: cyphertext,
				Passphrase: tt.passphrase,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, revealedtext)
		})
	}
}

func TestDecryptWrongPassphrase(t *testing.T) {
	cyphertext, err := Encrypt(EncryptOpts{
		PlainText:  "super secret message",
		Passphrase: "supersecurekey",
	})
	require.NoError(t, err)

	_, err = Decrypt(DecryptOpts{
		CypherText: cyphertext,
		Passphrase: "notthekey",
	})
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestEncryptJSONDecryptJSON(t *testing.T) {
	type payload struct {
		Seed    string   `json:"seed"`
		Plugins []string `json:"plugins"`
	}
	in := payload{Seed: "deadbeef", Plugins: []string{"a", "b"}}

	cyphertext, err := EncryptJSON(in, "pw")
	require.NoError(t, err)

	var out payload
	err = DecryptJSON(DecryptOpts{CypherText: cyphertext, Passphrase: "pw"}, &out)
	require.NoError(t, err)
	require.Equal(t, in, out)

	err = DecryptJSON(DecryptOpts{CypherText: cyphertext, Passphrase: "pw2"}, &out)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestDecryptJSONMalformedContent(t *testing.T) {
	cyphertext, err := Encrypt(EncryptOpts{
		PlainText:  "this is not json",
		Passphrase: "pw",
	})
	require.NoError(t, err)

	var out map[string]interface{}
	err = DecryptJSON(DecryptOpts{CypherText: cyphertext, Passphrase: "pw"}, &out)
	require.ErrorIs(t, err, ErrDecrypt)
}

func TestFailingEncrypt(t *testing.T) {
	_, err := Encrypt(EncryptOpts{
		PlainText:  "super secret message",
		Passphrase: "",
	})
	assert.Equal(t, ErrNullPassphrase, err)
}

func TestFailingDecrypt(t *testing.T) {
	valid, err := Encrypt(EncryptOpts{
		PlainText:  "super secret message",
		Passphrase: "supersecurekey",
	})
	require.NoError(t, err)
	raw, _ := base64.StdEncoding.DecodeString(valid)
	truncated := base64.StdEncoding.EncodeToString(raw[:len(raw)-40])
	saltOnly := base64.StdEncoding.EncodeToString(raw[len(raw)-32:])

	tests := []struct {
		name string
		opts DecryptOpts
		err  error
	}{
		{
			name: "empty cypher",
			opts: DecryptOpts{CypherText: "", Passphrase: "supersecurekey"},
			err:  ErrNullCypherText,
		},
		{
			name: "not base64",
			opts: DecryptOpts{CypherText: "supersecretmessage!", Passphrase: "supersecurekey"},
			err:  ErrInvalidCypherText,
		},
		{
			name: "empty passphrase",
			opts: DecryptOpts{CypherText: valid, Passphrase: ""},
			err:  ErrNullPassphrase,
		},
		{
			name: "only salt",
			opts: DecryptOpts{CypherText: saltOnly, Passphrase: "supersecurekey"},
			err:  ErrMalformedCypherText,
		},
		{
			name: "too short",
			opts: DecryptOpts{CypherText: "AAAA", Passphrase: "supersecurekey"},
			err:  ErrMalformedCypherText,
		},
		{
			name: "truncated",
			opts: DecryptOpts{CypherText: truncated, Passphrase: "supersecurekey"},
			err:  ErrDecrypt,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decrypt(tt.opts)
			require.ErrorIs(t, err, ErrDecrypt)
			require.ErrorContains(t, err, tt.err.Error())
		})
	}
}
