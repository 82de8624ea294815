package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"strings"
)

// GetTerminalID derives a stable register identifier from the machine's MAC
// address, so receipts and health checks can name the physical terminal.
func GetTerminalID() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "UNKNOWN-TERMINAL"
	}

	var macAddress string
	for _, i := range interfaces {
		if i.Flags&net.FlagUp != 0 && len(i.HardwareAddr) > 0 {
			macAddress = i.HardwareAddr.String()
			break
		}
	}

	if macAddress == "" {
		return "UNKNOWN-TERMINAL"
	}

	hash := sha256.Sum256([]byte(macAddress + "KASIR-POS-TERMINAL"))
	hashString := hex.EncodeToString(hash[:])

	return "POS-" + strings.ToUpper(hashString[:8])
}
