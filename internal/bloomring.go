package internal

import (
	"hash/fnv"
	"sync"

	"github.com/riobard/go-bloom"
)

// Defaults sized for remembering transmit IVs across a busy server's
// connections.
const (
	DefaultSlot     = 10
	DefaultCapacity = 1e6
	DefaultFPR      = 1e-6
)

// simply use Double FNV here as our Bloom Filter hash
func doubleFNV(b []byte) (uint64, uint64) {
	hx := fnv.New64()
	hx.Write(b)
	x := hx.Sum64()
	hy := fnv.New64a()
	hy.Write(b)
	y := hy.Sum64()
	return x, y
}

// BloomRing remembers recently seen byte strings in a ring of Bloom filters.
// When the current slot is full the oldest one is cleared and reused, so
// memory stays bounded and old entries are eventually forgotten.
type BloomRing struct {
	slotCapacity int
	slotPosition int
	slotCount    int
	entryCounter int
	slots        []bloom.Filter
	mutex        sync.RWMutex
}

// NewBloomRing returns a ring of slot filters holding about capacity entries
// in total.
func NewBloomRing(slot, capacity int, falsePositiveRate float64) *BloomRing {
	if slot <= 0 {
		slot = 1
	}
	r := &BloomRing{
		slotCapacity: capacity / slot,
		slotCount:    slot,
		slots:        make([]bloom.Filter, slot),
	}
	for i := 0; i < slot; i++ {
		r.slots[i] = bloom.New(r.slotCapacity, falsePositiveRate, doubleFNV)
	}
	return r
}

// NewIVRing returns a ring with the default sizing.
func NewIVRing() *BloomRing {
	return NewBloomRing(DefaultSlot, int(DefaultCapacity), DefaultFPR)
}

func (r *BloomRing) Add(b []byte) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.add(b)
}

func (r *BloomRing) add(b []byte) {
	slot := r.slots[r.slotPosition]
	if r.entryCounter > r.slotCapacity {
		r.slotPosition = (r.slotPosition + 1) % r.slotCount
		slot = r.slots[r.slotPosition]
		slot.Reset()
		r.entryCounter = 0
	}
	r.entryCounter++
	slot.Add(b)
}

func (r *BloomRing) Test(b []byte) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.test(b)
}

func (r *BloomRing) test(b []byte) bool {
	for _, s := range r.slots {
		if s.Test(b) {
			return true
		}
	}
	return false
}

// CheckAndAdd records b and reports whether it was (probably) seen before.
// The check and the insert happen under one lock, so two sessions racing on
// the same IV cannot both pass.
func (r *BloomRing) CheckAndAdd(b []byte) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if r.test(b) {
		return true
	}
	r.add(b)
	return false
}
