// Package crypto provides password hashing and verification using argon2id.
// Hashes are stored in the PHC string format so the cost parameters travel
// with each hash.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"userdash/util/common"

	"golang.org/x/crypto/argon2"
)

// Fixed process-level cost parameters. A fresh random salt is drawn per call.
const (
	memoryKB    uint32 = 64 * 1024
	timeCost    uint32 = 3
	parallelism uint8  = 2
	saltLength         = 16
	keyLength   uint32 = 32

	algorithmID = "argon2id"
)

// HashPassword derives an argon2id hash of password and encodes it as
// $argon2id$v=19$m=...,t=...,p=...$<salt>$<hash>.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, timeCost, memoryKB, parallelism, keyLength)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		memoryKB,
		timeCost,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword checks password against an encoded hash. It returns
// (true, nil) on a match, (false, nil) on a clean mismatch, and
// (false, err) when the stored hash is malformed or uses an unknown
// algorithm. Callers that must not leak the distinction collapse the
// last two into one outcome.
func VerifyPassword(password, encodedHash string) (bool, error) {
	parsed, err := parsePHC(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey(
		[]byte(password),
		parsed.salt,
		parsed.time,
		parsed.memory,
		parsed.parallelism,
		uint32(len(parsed.hash)),
	)

	return subtle.ConstantTimeCompare(computed, parsed.hash) == 1, nil
}

type parsedPHC struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	hash        []byte
}

func parsePHC(encodedHash string) (*parsedPHC, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, common.NewError("malformed password hash")
	}
	if parts[1] != algorithmID {
		return nil, common.NewErrorf("unsupported hash algorithm: %s", parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, common.NewError("malformed hash version")
	}
	if version != argon2.Version {
		return nil, common.NewErrorf("incompatible argon2 version: %d", version)
	}

	p := &parsedPHC{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.parallelism); err != nil {
		return nil, common.NewError("malformed hash parameters")
	}
	if p.memory == 0 || p.time == 0 || p.parallelism == 0 {
		return nil, common.NewError("invalid hash parameters")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, common.NewError("malformed hash salt")
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, common.NewError("malformed hash digest")
	}
	if len(salt) == 0 || len(hash) == 0 {
		return nil, common.NewError("empty hash salt or digest")
	}
	p.salt = salt
	p.hash = hash
	return p, nil
}
