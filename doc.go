// Package qcgen generates static quantum-circuit descriptions: ordered gate
// lists plus advisory metadata, meant to be submitted to an external quantum
// execution service to probe statistical and structural properties
// (randomness, entanglement, non-commutativity) of a cryptographic system
// under test.
//
// qcgen contains no simulator and no execution runtime; every builder is a
// pure function from input bytes or parameters to a self-contained
// description value.
//
//   - circuit: the Gate and Circuit data model, validation and serialization
//   - probe: one builder per test type
//   - plan: composition of builders into ordered test plans
package qcgen

import "github.com/blang/semver/v4"

// Version of the generator. Serialized circuits embed it so a consumer can
// detect producer/reader drift; see circuit.ReadCBOR.
var Version = semver.MustParse("0.1.0")
