package internal_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/jinmeng260/nscp/internal"
)

var (
	bloomRingInstance *internal.BloomRing
)

func TestMain(m *testing.M) {
	bloomRingInstance = internal.NewIVRing()
	os.Exit(m.Run())
}

func TestBloomRing_Add(t *testing.T) {
	defer func() {
		if any := recover(); any != nil {
			t.Fatalf("Should not got panic while adding item: %v", any)
		}
	}()
	bloomRingInstance.Add(make([]byte, 128))
}

func TestBloomRing_Test(t *testing.T) {
	buf := []byte("transmitted iv")
	bloomRingInstance.Add(buf)
	if !bloomRingInstance.Test(buf) {
		t.Fatal("Test on filter missing")
	}
}

func TestBloomRing_CheckAndAdd(t *testing.T) {
	r := internal.NewBloomRing(2, 100, 1e-6)
	iv := []byte("0123456789abcdef")
	if r.CheckAndAdd(iv) {
		t.Fatal("fresh IV reported as seen")
	}
	if !r.CheckAndAdd(iv) {
		t.Fatal("repeated IV not detected")
	}
	if r.CheckAndAdd([]byte("fedcba9876543210")) {
		t.Fatal("distinct IV reported as seen")
	}
}

func TestBloomRing_Forgets(t *testing.T) {
	r := internal.NewBloomRing(2, 20, 1e-6)
	first := []byte("first")
	r.Add(first)
	// fill both slots so the one holding first gets cleared
	for i := 0; i < 40; i++ {
		r.Add([]byte(fmt.Sprint("entry-", i)))
	}
	if r.Test(first) {
		t.Fatal("oldest entry should have been dropped")
	}
}

func BenchmarkBloomRing(b *testing.B) {
	// Generate test samples with different length
	samples := make([][]byte, internal.DefaultCapacity-internal.DefaultSlot)
	var checkPoints [][]byte
	for i := 0; i < len(samples); i++ {
		samples[i] = []byte(fmt.Sprint(i))
		if i%1000 == 0 {
			checkPoints = append(checkPoints, samples[i])
		}
	}
	b.Logf("Generated %d samples and %d check points", len(samples), len(checkPoints))
	for i := 1; i < 16; i++ {
		b.Run(fmt.Sprintf("Slot%d", i), benchmarkBloomRing(samples, checkPoints, i))
	}
}

func benchmarkBloomRing(samples, checkPoints [][]byte, slot int) func(*testing.B) {
	filter := internal.NewBloomRing(slot, int(internal.DefaultCapacity), internal.DefaultFPR)
	for _, sample := range samples {
		filter.Add(sample)
	}
	return func(b *testing.B) {
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for _, cp := range checkPoints {
				filter.Test(cp)
			}
		}
	}
}
