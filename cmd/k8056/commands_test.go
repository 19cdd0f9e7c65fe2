package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	relay "github.com/zing-dev/relay-k8056-sdk"
)

type recorder struct {
	instructions []relay.Instruction
}

func (r *recorder) Encode(pdu *relay.ProtocolDataUnit) ([]byte, error) {
	return []byte{relay.FrameStart, pdu.Address, byte(pdu.Instruction), pdu.Data,
		relay.Checksum(pdu.Instruction, pdu.Data, pdu.Address)}, nil
}

func (r *recorder) Send(adu []byte) error {
	r.instructions = append(r.instructions, relay.Instruction(adu[2]))
	return nil
}

func (r *recorder) Close() error { return nil }

func TestParseArgs(t *testing.T) {
	value, address, err := parseArgs([]string{"3"})
	require.NoError(t, err)
	require.Equal(t, 3, value)
	require.Equal(t, relay.DefaultAddress, address)

	value, address, err = parseArgs([]string{"300", "5"})
	require.NoError(t, err)
	require.Equal(t, 300, value)
	require.Equal(t, 5, address)

	_, _, err = parseArgs(nil)
	require.Error(t, err)
	_, _, err = parseArgs([]string{"x"})
	require.Error(t, err)
	_, _, err = parseArgs([]string{"1", "2", "3"})
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	saved := pause
	var pauses int
	pause = func(time.Duration) { pauses++ }
	defer func() { pause = saved }()

	r := &recorder{}
	client := relay.NewClient(r, relay.WithSleep(func(time.Duration) {}))
	require.NoError(t, demo(client, time.Second))

	require.Len(t, r.instructions, 4*9+3)
	require.Equal(t, relay.InstructionSet, r.instructions[0])
	require.Equal(t, relay.InstructionClear, r.instructions[9])
	require.Equal(t, relay.InstructionToggle, r.instructions[18])
	require.Equal(t, relay.InstructionToggle, r.instructions[27])
	require.Equal(t, []relay.Instruction{relay.InstructionSet, relay.InstructionSendByte, relay.InstructionEmergencyStop},
		r.instructions[36:])
	require.Equal(t, 4*9+2, pauses)
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range commands {
		names[cmd.Name] = true
	}
	for _, name := range []string{"set", "clear", "toggle", "address", "byte", "estop", "force", "display", "demo"} {
		require.True(t, names[name], name)
	}
}
