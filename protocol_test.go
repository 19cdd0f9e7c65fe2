package relay

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	for _, instruction := range []Instruction{
		InstructionSetAddress, InstructionSendByte, InstructionClear, InstructionDisplayAddress,
		InstructionEmergencyStop, InstructionForceAddress, InstructionSet, InstructionToggle,
	} {
		for _, data := range []int{0, 1, 49, 57, 170, 255} {
			for _, address := range []int{0, 1, 5, 128, 255} {
				expect := byte((243 - int(instruction) - data - address) & 255)
				require.Equal(t, expect, Checksum(instruction, byte(data), byte(address)))
			}
		}
	}
}

func TestOpcodes(t *testing.T) {
	require.Equal(t, Instruction(65), InstructionSetAddress)
	require.Equal(t, Instruction(66), InstructionSendByte)
	require.Equal(t, Instruction(67), InstructionClear)
	require.Equal(t, Instruction(68), InstructionDisplayAddress)
	require.Equal(t, Instruction(69), InstructionEmergencyStop)
	require.Equal(t, Instruction(70), InstructionForceAddress)
	require.Equal(t, Instruction(83), InstructionSet)
	require.Equal(t, Instruction(84), InstructionToggle)
}

func TestMask(t *testing.T) {
	for _, v := range []int{-256, -1, 0, 44, 255, 256, 300, 1 << 20} {
		m := mask(v)
		require.Equal(t, byte(v&255), m)
		require.Equal(t, m, mask(int(m)))
	}
}

func TestPackager_Encode(t *testing.T) {
	var p k8056Packager
	adu, err := p.Encode(&ProtocolDataUnit{Address: 5, Instruction: InstructionSetAddress, Data: 44})
	require.NoError(t, err)
	require.Equal(t, []byte{13, 5, 65, 44, 129}, adu)

	_, err = p.Encode(nil)
	require.Error(t, err)
}
