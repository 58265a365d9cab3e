package circuit

// Name identifies a gate from the fixed vocabulary understood by the
// execution service.
type Name string

const (
	GateH       Name = "h"
	GateX       Name = "x"
	GateCX      Name = "cx"
	GateCCX     Name = "ccx"
	GateRZ      Name = "rz"
	GateRX      Name = "rx"
	GateRY      Name = "ry"
	GateCP      Name = "cp"
	GateCRZ     Name = "crz"
	GateSwap    Name = "swap"
	GateMeasure Name = "measure"
)

// Names returns the gate vocabulary.
func Names() []Name {
	return []Name{
		GateH, GateX, GateCX, GateCCX, GateRZ, GateRX, GateRY,
		GateCP, GateCRZ, GateSwap, GateMeasure,
	}
}

// Arity returns the number of qubit operands the gate takes, or 0 for an
// unknown name.
func (n Name) Arity() int {
	switch n {
	case GateH, GateX, GateRZ, GateRX, GateRY, GateMeasure:
		return 1
	case GateCX, GateCP, GateCRZ, GateSwap:
		return 2
	case GateCCX:
		return 3
	}
	return 0
}

// Parametric reports whether the gate carries a rotation angle.
func (n Name) Parametric() bool {
	switch n {
	case GateRZ, GateRX, GateRY, GateCP, GateCRZ:
		return true
	}
	return false
}

// Gate is a single operation in a circuit description. Angle is set only on
// parametric gates and serializes as the optional "angle" field.
type Gate struct {
	Name   Name     `json:"gate"`
	Qubits []int    `json:"qubits"`
	Angle  *float64 `json:"angle,omitempty"`
}

func gate(name Name, qubits ...int) Gate {
	return Gate{Name: name, Qubits: qubits}
}

func rotation(name Name, angle float64, qubits ...int) Gate {
	return Gate{Name: name, Qubits: qubits, Angle: &angle}
}

// H returns a Hadamard gate on qubit q.
func H(q int) Gate { return gate(GateH, q) }

// X returns a Pauli-X gate on qubit q.
func X(q int) Gate { return gate(GateX, q) }

// CX returns a controlled-NOT gate.
func CX(control, target int) Gate { return gate(GateCX, control, target) }

// CCX returns a Toffoli gate.
func CCX(control1, control2, target int) Gate {
	return gate(GateCCX, control1, control2, target)
}

// Swap returns a swap gate on qubits a and b.
func Swap(a, b int) Gate { return gate(GateSwap, a, b) }

// Measure returns a computational-basis measurement of qubit q.
func Measure(q int) Gate { return gate(GateMeasure, q) }

// RZ returns a Z-axis rotation of angle radians on qubit q.
func RZ(q int, angle float64) Gate { return rotation(GateRZ, angle, q) }

// RX returns an X-axis rotation of angle radians on qubit q.
func RX(q int, angle float64) Gate { return rotation(GateRX, angle, q) }

// RY returns a Y-axis rotation of angle radians on qubit q.
func RY(q int, angle float64) Gate { return rotation(GateRY, angle, q) }

// CP returns a controlled-phase gate of angle radians.
func CP(control, target int, angle float64) Gate {
	return rotation(GateCP, angle, control, target)
}

// CRZ returns a controlled Z-axis rotation of angle radians.
func CRZ(control, target int, angle float64) Gate {
	return rotation(GateCRZ, angle, control, target)
}
