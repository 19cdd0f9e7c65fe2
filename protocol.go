// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package relay

import "io"

// Instruction is the opcode byte of a K8056 frame.
type Instruction byte

const (
	InstructionSetAddress     Instruction = 'A' // 65
	InstructionSendByte       Instruction = 'B' // 66
	InstructionClear          Instruction = 'C' // 67
	InstructionDisplayAddress Instruction = 'D' // 68
	InstructionEmergencyStop  Instruction = 'E' // 69
	InstructionForceAddress   Instruction = 'F' // 70
	InstructionSet            Instruction = 'S' // 83
	InstructionToggle         Instruction = 'T' // 84
)

const (
	// FrameStart marks the first byte of every frame.
	FrameStart = 13
	// FrameLength is the size of an encoded frame.
	FrameLength = 5
	// BaudRate is the fixed line speed of the card.
	BaudRate = 2400

	// DefaultAddress is the factory address of a card.
	DefaultAddress = 1
	// AllRelays addresses every relay of a card in Set, Clear and Toggle.
	AllRelays = 9

	checksumBase = 243
)

// ProtocolDataUnit (PDU) is independent of underlying communication layers.
type ProtocolDataUnit struct {
	Address     byte
	Instruction Instruction
	Data        byte
}

// Packager specifies the communication layer.
type Packager interface {
	Encode(pdu *ProtocolDataUnit) (adu []byte, err error)
}

// Transporter specifies the transport layer.
// Frames are never acknowledged, so Send only reports write errors.
type Transporter interface {
	Send(aduRequest []byte) (err error)
}

// Handler groups everything a Client needs from its backend.
type Handler interface {
	Packager
	Transporter
	io.Closer
}

// Checksum returns the frame checksum: 243 minus the payload bytes, modulo 256.
func Checksum(instruction Instruction, data, address byte) byte {
	return byte(checksumBase) - byte(instruction) - data - address
}

func mask(v int) byte {
	return byte(v & 0xff)
}
