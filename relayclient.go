// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package relay

import (
	"errors"
)

// ClientHandler implements Packager and Transporter interface.
type ClientHandler struct {
	k8056Packager
	k8056SerialTransporter
}

// NewClientHandler allocates and initializes a ClientHandler
// for the K8056 line settings (2400 baud, 8N1).
func NewClientHandler(address string) *ClientHandler {
	handler := &ClientHandler{}
	handler.Address = address
	handler.BaudRate = BaudRate
	handler.DataBits = 8
	handler.StopBits = 1
	handler.Parity = "N"
	handler.Timeout = serialTimeout
	return handler
}

// k8056Packager implements Packager interface.
type k8056Packager struct{}

// Encode encodes PDU in a K8056 frame:
//  Start           : 1 byte (13)
//  Card Address    : 1 byte
//  Instruction     : 1 byte
//  Data            : 1 byte
//  Checksum        : 1 byte
func (mb *k8056Packager) Encode(pdu *ProtocolDataUnit) (adu []byte, err error) {
	if pdu == nil {
		err = errors.New("serial: nil protocol data unit")
		return
	}
	adu = make([]byte, FrameLength)
	adu[0] = FrameStart
	adu[1] = pdu.Address
	adu[2] = byte(pdu.Instruction)
	adu[3] = pdu.Data
	adu[4] = Checksum(pdu.Instruction, pdu.Data, pdu.Address)
	return
}

// k8056SerialTransporter implements Transporter interface.
type k8056SerialTransporter struct {
	serialPort
}

// Send writes the frame. The card never answers, so nothing is read back.
func (mb *k8056SerialTransporter) Send(aduRequest []byte) (err error) {
	return mb.serialPort.write(aduRequest)
}
