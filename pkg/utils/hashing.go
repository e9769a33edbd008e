package utils

import (
	"crypto/md5"
	"encoding/hex"
	"hash/fnv"
	"strings"
)

// BookingID derives the confirmation id from the flight and hotel only:
// "BK" + flight number + first six hex digits of md5(hotel name), upper-cased.
// Two guests booking the same pair get the same id.
func BookingID(flightNumber, hotelName string) string {
	sum := md5.Sum([]byte(hotelName))
	return strings.ToUpper("BK" + flightNumber + hex.EncodeToString(sum[:])[:6])
}

// DateSeed hashes a YYYY-MM-DD string into a PRNG seed.
func DateSeed(date string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	return h.Sum64()
}
