package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 32
	keySize  = 32
)

var (
	// ScryptN is the CPU/memory cost of the key derivation. Every envelope
	// created with a given value must be opened with the same one.
	ScryptN = 32768
	// ScryptR is the block size parameter of the key derivation.
	ScryptR = 8
	// ScryptP is the parallelization parameter of the key derivation.
	ScryptP = 1
)

// EncryptOpts is the struct given to Encrypt method
type EncryptOpts struct {
	PlainText  string
	Passphrase string
}

func (o EncryptOpts) validate() error {
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Encrypt encrypts (with AES-256-GCM) a plaintext with the provided passphrase.
// The returned envelope is base64(nonce|ciphertext|salt).
func Encrypt(opts EncryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	key, salt, err := DeriveKey([]byte(opts.Passphrase), nil)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(opts.PlainText), nil)
	ciphertext = append(ciphertext, salt...)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// EncryptJSON serializes v to JSON and encrypts it with the given passphrase.
func EncryptJSON(v interface{}, passphrase string) (string, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Encrypt(EncryptOpts{
		PlainText:  string(buf),
		Passphrase: passphrase,
	})
}

// DecryptOpts is the struct given to Decrypt method
type DecryptOpts struct {
	CypherText string
	Passphrase string
}

func (o DecryptOpts) validate() error {
	if len(o.CypherText) <= 0 {
		return ErrNullCypherText
	}
	if len(o.Passphrase) <= 0 {
		return ErrNullPassphrase
	}
	return nil
}

// Decrypt decrypts (with AES-256-GCM) a cyphertext with the provided
// passphrase. Any failure, included a wrong passphrase or a malformed
// envelope, is reported as ErrDecrypt.
func Decrypt(opts DecryptOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", decryptError(err)
	}

	data, err := base64.StdEncoding.DecodeString(opts.CypherText)
	if err != nil {
		return "", decryptError(ErrInvalidCypherText)
	}
	if len(data) <= saltSize {
		return "", decryptError(ErrMalformedCypherText)
	}
	salt, data := data[len(data)-saltSize:], data[:len(data)-saltSize]

	key, _, err := DeriveKey([]byte(opts.Passphrase), salt)
	if err != nil {
		return "", decryptError(err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", decryptError(err)
	}
	if len(data) < gcm.NonceSize()+gcm.Overhead() {
		return "", decryptError(ErrMalformedCypherText)
	}
	nonce, text := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, text, nil)
	if err != nil {
		return "", decryptError(err)
	}
	return string(plaintext), nil
}

// DecryptJSON decrypts the cyphertext and unmarshals the revealed JSON
// document into v.
func DecryptJSON(opts DecryptOpts, v interface{}) error {
	plaintext, err := Decrypt(opts)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(plaintext), v); err != nil {
		return decryptError(err)
	}
	return nil
}

// DeriveKey derives a 32 byte array key from a custom passhprase
func DeriveKey(passphrase, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}
	key, err := scrypt.Key(passphrase, salt, ScryptN, ScryptR, ScryptP, keySize)
	if err != nil {
		return nil, nil, err
	}
	return key, salt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	blockCipher, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(blockCipher)
}

func decryptError(err error) error {
	return fmt.Errorf("%w: %s", ErrDecrypt, err)
}
