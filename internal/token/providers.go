package token

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"os"
	"time"
)

// Source identifies the entropy provider a token came from.
type Source string

const (
	// SourceCryptoRand is the platform CSPRNG via crypto/rand.
	SourceCryptoRand Source = "crypto/rand"

	// SourceURandom reads the kernel random device directly. Only
	// reachable when crypto/rand itself fails, which does not happen on
	// a healthy host.
	SourceURandom Source = "/dev/urandom"

	// SourceTimestamp hashes a high-resolution timestamp. Not
	// cryptographically strong; last resort only.
	SourceTimestamp Source = "timestamp-hash"
)

// Provider is one entry in the prioritized entropy chain.
type Provider struct {
	// Source names the provider for diagnostics and weakness flagging.
	Source Source

	// Generate returns n random bytes or an error when the underlying
	// source is unavailable.
	Generate func(n int) ([]byte, error)
}

// defaultProviders returns the chain in strict preference order.
func defaultProviders() []Provider {
	return []Provider{
		{Source: SourceCryptoRand, Generate: cryptoRandBytes},
		{Source: SourceURandom, Generate: urandomBytes},
		{Source: SourceTimestamp, Generate: timestampBytes},
	}
}

func cryptoRandBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func urandomBytes(n int) ([]byte, error) {
	f, err := os.Open("/dev/urandom")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, n)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// timestampBytes derives bytes from the current nanosecond clock and
// process ID. SHA-256 output happens to match ByteLength, so a single
// digest fills the request.
func timestampBytes(n int) ([]byte, error) {
	var seed [16]byte
	binary.LittleEndian.PutUint64(seed[0:8], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(seed[8:16], uint64(os.Getpid()))
	sum := sha256.Sum256(seed[:])

	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, sum[:]...)
		sum = sha256.Sum256(sum[:])
	}
	return out[:n], nil
}
