package utils

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const idSuffixLen = 9

// GenerateEntityID builds ids like "EVT_1735689600000_k3j9x2m1q": a type
// prefix, the creation timestamp in milliseconds, and a random base36
// suffix. Practically unique; collisions are not detected.
func GenerateEntityID(prefix string) string {
	const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return fmt.Sprintf("%s_%s_%s", prefix, strconv.FormatInt(time.Now().UnixMilli(), 10), string(suffix))
}

func GenerateEventID() string     { return GenerateEntityID("EVT") }
func GenerateOrderID() string     { return GenerateEntityID("ORD") }
func GenerateInvoiceID() string   { return GenerateEntityID("INV") }
func GenerateInviteID() string    { return GenerateEntityID("INVITE") }
func GenerateStorybookID() string { return GenerateEntityID("STB") }
func GeneratePostID() string      { return GenerateEntityID("POST") }
