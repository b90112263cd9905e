package seval_test

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/jacoelho/seval"
)

func TestQuickInt64RoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v int64) bool {
		return seval.Evaluate[int64](strconv.FormatInt(v, 10)) == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickUint64RoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v uint64) bool {
		return seval.Evaluate[uint64](strconv.FormatUint(v, 10)) == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickHexRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v uint32) bool {
		return seval.Evaluate[uint32]("0x"+strconv.FormatUint(uint64(v), 16)) == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickBinaryRoundTrip(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v uint16) bool {
		return seval.Evaluate[uint16]("0b"+strconv.FormatUint(uint64(v), 2)) == v
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}

func TestQuickBoundedPrefixOfUnbounded(t *testing.T) {
	cfg := &quick.Config{MaxCount: 1000}
	err := quick.Check(func(v uint32, n uint8) bool {
		text := strconv.FormatUint(uint64(v), 10)
		limit := int(n) % (len(text) + 1)
		want := seval.Evaluate[uint64](text[:limit])
		return seval.EvaluateN[uint64](text, limit) == want
	}, cfg)
	if err != nil {
		t.Fatal(err)
	}
}
