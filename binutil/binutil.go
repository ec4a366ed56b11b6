// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// Package binutil converts raw bytes to and from the space-separated
// hex form typed into a device's message field.
package binutil

import (
	"encoding/hex"
	"fmt"
	"strings"

	llrpbin "github.com/iomz/go-llrp/binutil"
)

const (
	// hexDigits to hold lowercase hex chars
	hexDigits = "0123456789abcdef"
)

// EncodeToSpacedHex returns two lowercase hex digits per byte,
// separated by a single space
func EncodeToSpacedHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	buf := make([]byte, len(b)*3-1)
	for i, v := range b {
		j := i * 3
		if i > 0 {
			buf[j-1] = ' '
		}
		buf[j] = hexDigits[v>>4]
		buf[j+1] = hexDigits[v&0x0f]
	}
	return string(buf)
}

// DecodeSpacedHex reverses EncodeToSpacedHex.
// Any whitespace is ignored and both upper and lower case digits are accepted.
func DecodeSpacedHex(s string) ([]byte, error) {
	joined := strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("invalid hex string: %w", err)
	}
	return b, nil
}

// ParseSpacedHexToBinString converts a spaced hex string to a binary string,
// 8 bits per byte.
// The input goes through DecodeSpacedHex first even though go-llrp rejects
// non-hex digits itself: go-llrp works per digit and would accept an odd
// digit count.
func ParseSpacedHexToBinString(s string) (string, error) {
	b, err := DecodeSpacedHex(s)
	if err != nil {
		return "", err
	}
	return llrpbin.ParseHexStringToBinString(hex.EncodeToString(b))
}
