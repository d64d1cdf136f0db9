package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUIDGenerator produces random (version 4) UUID strings used as user IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// DNAGenerator produces the opaque per-login DNA value: 32 hex characters
// taken from a fresh random UUID. Values are not guaranteed unique across
// users.
type DNAGenerator struct {
}

func NewDNAGenerator() *DNAGenerator {
	return &DNAGenerator{}
}

func (g *DNAGenerator) Generate() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
