package hosted

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// machineIDBytes is how much of the id feeds the serial number
const machineIDBytes = 16

// MachineIDSource implements core.IdentitySource from a hex machine id
type MachineIDSource struct {
	words [4]uint32
}

// ReadMachineID reads the identity from a machine-id style file
func ReadMachineID(path string) (*MachineIDSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read machine id %s", path)
	}
	return ParseMachineID(string(data))
}

// ParseMachineID decodes the first 16 bytes of a hex id into four
// big-endian words
func ParseMachineID(s string) (*MachineIDSource, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2*machineIDBytes {
		return nil, errors.Errorf("machine id too short: %d hex digits", len(s))
	}
	raw, err := hex.DecodeString(s[:2*machineIDBytes])
	if err != nil {
		return nil, errors.Wrap(err, "decode machine id")
	}

	id := &MachineIDSource{}
	for i := range id.words {
		id.words[i] = binary.BigEndian.Uint32(raw[4*i:])
	}
	return id, nil
}

// IdentityWords implements core.IdentitySource
func (m *MachineIDSource) IdentityWords() [4]uint32 {
	return m.words
}
