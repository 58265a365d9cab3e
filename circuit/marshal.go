package circuit

import (
	"fmt"
	"io"

	"github.com/blang/semver/v4"
	"github.com/fxamacker/cbor/v2"

	"github.com/pqe369/qcgen"
	"github.com/pqe369/qcgen/logger"
)

// envelope wraps a serialized circuit with the generator version so a
// consumer can detect drift between producer and reader.
type envelope struct {
	Version string  `json:"version"`
	Circuit Circuit `json:"circuit"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
}

// WriteCBOR serializes the circuit to w, prefixed with the generator
// version. Invalid circuits are refused.
func WriteCBOR(w io.Writer, c *Circuit) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("refusing to serialize invalid circuit: %w", err)
	}
	return encMode.NewEncoder(w).Encode(envelope{
		Version: qcgen.Version.String(),
		Circuit: *c,
	})
}

// ReadCBOR deserializes a circuit from r and validates it. A generator
// version mismatch is logged as a warning, not an error; only an unparsable
// version header fails the read.
func ReadCBOR(r io.Reader) (*Circuit, error) {
	var e envelope
	if err := cbor.NewDecoder(r).Decode(&e); err != nil {
		return nil, fmt.Errorf("when decoding circuit: %w", err)
	}

	objectVersion, err := semver.Parse(e.Version)
	if err != nil {
		return nil, fmt.Errorf("when parsing generator version: %w", err)
	}
	if objectVersion.Compare(qcgen.Version) != 0 {
		log := logger.Logger()
		log.Warn().Str("binary", qcgen.Version.String()).Str("object", e.Version).Msg("generator version (binary) mismatch with serialized circuit. there are no guarantees on compatibility")
	}

	c := e.Circuit
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit: %w", err)
	}
	return &c, nil
}
