package service

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"github.com/guttosm/shiprate-service/internal/domain/model"
)

const (
	ratesKeyPrefix = "rates:"
	lockKeyPrefix  = "rates-lock:"
)

// SessionKeys scope the rates cache and the in-flight marker to one
// destination and cart composition.
type SessionKeys struct {
	Rates string
	Lock  string
}

// DeriveKeys builds the session keys for a destination and cart.
func DeriveKeys(destination model.Address, items []model.CartItem) SessionKeys {
	suffix := DestinationHash(destination) + ":" + CartHash(items)
	return SessionKeys{
		Rates: ratesKeyPrefix + suffix,
		Lock:  lockKeyPrefix + suffix,
	}
}

// DestinationHash hashes the destination postal code and country.
func DestinationHash(destination model.Address) string {
	return hashString(destination.PostalCode + "|" + destination.Country)
}

// CartHash hashes the item reference and quantity pairs of the cart. Pairs are
// sorted first so line order does not change the key.
func CartHash(items []model.CartItem) string {
	type pair struct {
		ref string
		qty int
	}

	pairs := make([]pair, 0, len(items))
	for _, item := range items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		pairs = append(pairs, pair{ref: item.ItemRef, qty: qty})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ref != pairs[j].ref {
			return pairs[i].ref < pairs[j].ref
		}
		return pairs[i].qty < pairs[j].qty
	})

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(strconv.Quote(p.ref))
		b.WriteByte('=')
		b.WriteString(strconv.Itoa(p.qty))
		b.WriteByte(';')
	}
	return hashString(b.String())
}

func hashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
