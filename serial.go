// Copyright 2014 Quoc-Viet Nguyen. All rights reserved.
// This software may be modified and distributed under the terms
// of the BSD license. See the LICENSE file for details.

package relay

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/goburrow/serial"
	"go.uber.org/zap"
)

const (
	// Default timeout
	serialTimeout = 5 * time.Second
)

// openPort is replaced in tests.
var openPort = func(c *serial.Config) (io.ReadWriteCloser, error) {
	return serial.Open(c)
}

// serialPort has configuration and I/O controller.
type serialPort struct {
	// Serial port configuration.
	serial.Config

	Logger *zap.Logger

	mu     sync.Mutex
	port   io.ReadWriteCloser
	closed bool
}

func (mb *serialPort) Connect() (err error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	return mb.connect()
}

// connect connects to the serial port if it is not connected. Caller must hold the mutex.
func (mb *serialPort) connect() error {
	if mb.closed {
		return ErrClosed
	}
	if mb.port == nil {
		port, err := openPort(&mb.Config)
		if err != nil {
			return err
		}
		mb.port = port
		mb.logger().Debug("serial: opened",
			zap.String("address", mb.Address), zap.Int("baud", mb.BaudRate))
	}
	return nil
}

// Close closes the port for good. Later writes fail with ErrClosed.
func (mb *serialPort) Close() (err error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.closed = true
	return mb.close()
}

// close closes the serial port if it is connected. Caller must hold the mutex.
func (mb *serialPort) close() (err error) {
	if mb.port != nil {
		err = mb.port.Close()
		mb.port = nil
		mb.logger().Debug("serial: closed", zap.String("address", mb.Address), zap.Error(err))
	}
	return
}

// write sends a whole frame while holding the mutex.
func (mb *serialPort) write(adu []byte) (err error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if err = mb.connect(); err != nil {
		return
	}
	mb.logger().Debug("serial: sending", zap.String("frame", fmt.Sprintf("% x", adu)))
	_, err = mb.port.Write(adu)
	return
}

func (mb *serialPort) logger() *zap.Logger {
	if mb.Logger == nil {
		return zap.NewNop()
	}
	return mb.Logger
}
