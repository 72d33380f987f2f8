package entropy_test

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/ulikunitz/entropy"
	"github.com/ulikunitz/entropy/ans"
	"github.com/ulikunitz/entropy/model"
	"github.com/ulikunitz/entropy/rc"
)

// Scenario 1: Range Coder encoding a message under a sequence of
// per-symbol Gaussian models.
func TestScenarioRangeCoderGaussian(t *testing.T) {
	message := []int32{6, 10, -4, 2, -9, 41, 3, 0, 2}
	means := []float64{2.5, 13.1, -1.1, -3.0, -6.1, 34.2, 2.8, -6.4, -3.1}
	stds := []float64{4.1, 8.7, 6.2, 5.4, 24.1, 12.7, 4.9, 28.9, 4.2}

	models := make([]model.Model, len(message))
	for i := range message {
		m, err := model.NewQuantizedGaussian(means[i], stds[i], -100, 100, 24)
		if err != nil {
			t.Fatalf("NewQuantizedGaussian: %s", err)
		}
		models[i] = m
	}

	enc := rc.NewEncoder()
	for i, s := range message {
		if err := enc.Encode(s, models[i]); err != nil {
			t.Fatalf("Encode: %s", err)
		}
	}
	buf := enc.GetCompressed()

	dec := rc.NewDecoderFromBuffer(buf)
	got := make([]int32, len(message))
	for i := range message {
		s, err := dec.Decode(models[i])
		if err != nil {
			t.Fatalf("Decode: %s", err)
		}
		got[i] = s
	}
	if diff := pretty.Diff(message, got); len(diff) > 0 {
		t.Fatalf("round trip mismatch: %# v", pretty.Formatter(diff))
	}
}

// Scenario 2: the ANS coder, reverse-order pop discipline.
func TestScenarioANSReverseOrder(t *testing.T) {
	m, err := model.NewQuantizedGaussian(0, 15, -64, 64, 24)
	if err != nil {
		t.Fatalf("NewQuantizedGaussian: %s", err)
	}
	message := []int32{5, -12, 0, 33, -64, 64, 7}

	c := ans.NewCoder()
	for _, s := range message {
		if err := c.Push(s, m); err != nil {
			t.Fatalf("Push: %s", err)
		}
	}
	buf := c.GetCompressed()

	d := ans.NewCoderFromBuffer(buf)
	got := make([]int32, len(message))
	for i := len(message) - 1; i >= 0; i-- {
		s, err := d.Pop(m)
		if err != nil {
			t.Fatalf("Pop: %s", err)
		}
		got[i] = s
	}
	if diff := pretty.Diff(message, got); len(diff) > 0 {
		t.Fatalf("round trip mismatch: %# v", pretty.Formatter(diff))
	}
}

// Scenario 3: a single Range Coder stream carrying two segments, one
// under per-symbol Gaussian models, the other under a shared
// Categorical model — demonstrating that a coder has no notion of "one
// model per stream".
func TestScenarioMixedGaussianCategoricalSegments(t *testing.T) {
	gaussMeans := []float64{2.5, 13.1, -1.1, -3.0}
	gaussStds := []float64{4.1, 8.7, 6.2, 5.4}
	gaussMessage := []int32{6, 10, -4, 2}
	gaussModels := make([]model.Model, len(gaussMessage))
	for i := range gaussMessage {
		m, err := model.NewQuantizedGaussian(gaussMeans[i], gaussStds[i], -50, 50, 24)
		if err != nil {
			t.Fatalf("NewQuantizedGaussian: %s", err)
		}
		gaussModels[i] = m
	}

	cat, err := model.NewCategorical([]float64{0.2, 0.1, 0.3, 0.4}, 0, 24)
	if err != nil {
		t.Fatalf("NewCategorical: %s", err)
	}
	catMessage := []int32{2, 0, 3, 3, 1}

	enc := rc.NewEncoder()
	for i, s := range gaussMessage {
		if err := enc.Encode(s, gaussModels[i]); err != nil {
			t.Fatalf("Encode gaussian: %s", err)
		}
	}
	for _, s := range catMessage {
		if err := enc.Encode(s, cat); err != nil {
			t.Fatalf("Encode categorical: %s", err)
		}
	}
	buf := enc.GetCompressed()

	dec := rc.NewDecoderFromBuffer(buf)
	for i, want := range gaussMessage {
		got, err := dec.Decode(gaussModels[i])
		if err != nil {
			t.Fatalf("Decode gaussian: %s", err)
		}
		if got != want {
			t.Fatalf("gaussian segment symbol %d: got %d; want %d", i, got, want)
		}
	}
	for i, want := range catMessage {
		got, err := dec.Decode(cat)
		if err != nil {
			t.Fatalf("Decode categorical: %s", err)
		}
		if got != want {
			t.Fatalf("categorical segment symbol %d: got %d; want %d", i, got, want)
		}
	}
}

// Scenario 4: a parameterized Cauchy model, one instantiation per
// symbol.
func TestScenarioParameterizedCauchy(t *testing.T) {
	locs := []float64{7.2, -1.4, 9.1, -60.1, 3.9, 8.1, 63.2}
	scales := []float64{4.3, 5.1, 6.0, 14.2, 31.9, 7.2, 10.7}
	message := []int32{3, 2, 6, -51, -19, 5, 87}

	models := make([]model.Model, len(message))
	for i := range message {
		m, err := model.NewQuantizedCauchy(locs[i], scales[i], -100, 100, 24)
		if err != nil {
			t.Fatalf("NewQuantizedCauchy: %s", err)
		}
		models[i] = m
	}

	enc := rc.NewEncoder()
	for i, s := range message {
		if err := enc.Encode(s, models[i]); err != nil {
			t.Fatalf("Encode: %s", err)
		}
	}
	buf := enc.GetCompressed()

	dec := rc.NewDecoderFromBuffer(buf)
	got := make([]int32, len(message))
	for i := range message {
		s, err := dec.Decode(models[i])
		if err != nil {
			t.Fatalf("Decode: %s", err)
		}
		got[i] = s
	}
	if diff := pretty.Diff(message, got); len(diff) > 0 {
		t.Fatalf("round trip mismatch: %# v", pretty.Formatter(diff))
	}
}

// Scenario 5: a single fixed Cauchy model shared across the whole
// message.
func TestScenarioFixedCauchy(t *testing.T) {
	message := []int32{3, 2, 6, -51, -19, 5, 87}
	m, err := model.NewQuantizedCauchy(10.2, 30.9, -100, 100, 24)
	if err != nil {
		t.Fatalf("NewQuantizedCauchy: %s", err)
	}

	enc := rc.NewEncoder()
	for _, s := range message {
		if err := enc.Encode(s, m); err != nil {
			t.Fatalf("Encode: %s", err)
		}
	}
	buf := enc.GetCompressed()

	dec := rc.NewDecoderFromBuffer(buf)
	got := make([]int32, len(message))
	for i := range message {
		s, err := dec.Decode(m)
		if err != nil {
			t.Fatalf("Decode: %s", err)
		}
		got[i] = s
	}
	if diff := pretty.Diff(message, got); len(diff) > 0 {
		t.Fatalf("round trip mismatch: %# v", pretty.Formatter(diff))
	}
}

// Scenario 6: byte-order persistence. A compressed word buffer survives
// a round trip through little-endian bytes, the documented
// cross-machine exchange convention, regardless of host endianness.
func TestScenarioByteOrderPersistence(t *testing.T) {
	m, err := model.NewQuantizedGaussian(0, 10, -40, 40, 20)
	if err != nil {
		t.Fatalf("NewQuantizedGaussian: %s", err)
	}
	message := []int32{1, -20, 33, 0, -40, 40, 17}

	enc := rc.NewEncoder()
	for _, s := range message {
		if err := enc.Encode(s, m); err != nil {
			t.Fatalf("Encode: %s", err)
		}
	}
	words := enc.GetCompressed()

	raw := make([]byte, len(words)*4)
	entropy.PutWordsLE(raw, words)

	roundTripped := entropy.WordsLE(raw)
	if len(roundTripped) != len(words) {
		t.Fatalf("word count mismatch after byte round trip: got %d; want %d", len(roundTripped), len(words))
	}
	for i := range words {
		if roundTripped[i] != words[i] {
			t.Fatalf("word %d mismatch after byte round trip: got %#x; want %#x", i, roundTripped[i], words[i])
		}
	}

	dec := rc.NewDecoderFromBuffer(roundTripped)
	for i, want := range message {
		got, err := dec.Decode(m)
		if err != nil {
			t.Fatalf("Decode: %s", err)
		}
		if got != want {
			t.Fatalf("symbol %d: got %d; want %d", i, got, want)
		}
	}
}
