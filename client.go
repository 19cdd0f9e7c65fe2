package relay

import (
	"time"
)

// SettleDelay is how long Open waits for the line to settle after connecting.
const SettleDelay = 100 * time.Millisecond

// Client sends K8056 commands through a Handler.
// Commands on one Client must not be issued concurrently.
type Client struct {
	handler Handler
	repeat  int
	wait    time.Duration
	sleep   func(time.Duration)
}

// Option configures a Client.
type Option func(*Client)

// WithRepeat sends every frame n extra times.
func WithRepeat(n int) Option {
	return func(c *Client) {
		if n < 0 {
			n = 0
		}
		c.repeat = n
	}
}

// WithWait sleeps d after every frame written.
func WithWait(d time.Duration) Option {
	return func(c *Client) {
		if d < 0 {
			d = 0
		}
		c.wait = d
	}
}

// WithSleep replaces time.Sleep.
func WithSleep(fn func(time.Duration)) Option {
	return func(c *Client) {
		if fn != nil {
			c.sleep = fn
		}
	}
}

// NewClient creates a new client with given backend handler.
func NewClient(handler Handler, opts ...Option) *Client {
	c := &Client{
		handler: handler,
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open connects to the card on device and waits SettleDelay before returning.
func Open(device string, opts ...Option) (*Client, error) {
	handler := NewClientHandler(device)
	if err := handler.Connect(); err != nil {
		return nil, err
	}
	c := NewClient(handler, opts...)
	c.sleep(SettleDelay)
	return c, nil
}

// Repeat returns the number of extra transmissions per command.
func (c *Client) Repeat() int {
	return c.repeat
}

// Wait returns the delay after each transmission.
func (c *Client) Wait() time.Duration {
	return c.wait
}

// Close closes the underlying handler.
func (c *Client) Close() error {
	return c.handler.Close()
}

// process encodes one frame and writes it repeat+1 times, sleeping after each write.
func (c *Client) process(instruction Instruction, data, address byte) error {
	adu, err := c.handler.Encode(&ProtocolDataUnit{
		Address:     address,
		Instruction: instruction,
		Data:        data,
	})
	if err != nil {
		return err
	}
	for i := 0; i <= c.repeat; i++ {
		if err = c.handler.Send(adu); err != nil {
			return err
		}
		c.sleep(c.wait)
	}
	return nil
}

// relay handles the single relay instructions.
func (c *Client) relay(instruction Instruction, relay, address int) error {
	if relay <= 0 || relay >= 10 {
		return &RelayError{Relay: relay}
	}
	return c.process(instruction, byte(relay+'0'), mask(address))
}

// Set closes relay (1..8, AllRelays for all) of the card at address.
func (c *Client) Set(relay, address int) error {
	return c.relay(InstructionSet, relay, address)
}

// Clear opens relay (1..8, AllRelays for all) of the card at address.
func (c *Client) Clear(relay, address int) error {
	return c.relay(InstructionClear, relay, address)
}

// Toggle flips relay (1..8, AllRelays for all) of the card at address.
func (c *Client) Toggle(relay, address int) error {
	return c.relay(InstructionToggle, relay, address)
}

// SetAddress changes the address of the card at address to newAddress.
// Both values are truncated to a byte.
func (c *Client) SetAddress(newAddress, address int) error {
	return c.process(InstructionSetAddress, mask(newAddress), mask(address))
}

// SendByte sets all eight relays of the card at address, bit 0 being relay 1.
func (c *Client) SendByte(num, address int) error {
	return c.process(InstructionSendByte, mask(num), mask(address))
}

// EmergencyStop clears all relays on all cards.
func (c *Client) EmergencyStop() error {
	return c.process(InstructionEmergencyStop, 1, DefaultAddress)
}

// ForceAddress resets every card to DefaultAddress.
func (c *Client) ForceAddress() error {
	return c.process(InstructionForceAddress, 1, DefaultAddress)
}

// GetAddress makes the cards show their address on the relay LEDs.
func (c *Client) GetAddress() error {
	return c.process(InstructionDisplayAddress, 1, DefaultAddress)
}
