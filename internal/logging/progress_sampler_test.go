package logging

import "testing"

func TestProgressSamplerEmitsOnLabelChange(t *testing.T) {
	sampler := NewProgressSampler(5)
	if !sampler.ShouldLog(0, "Reading points") {
		t.Fatal("first event should emit")
	}
	if !sampler.ShouldLog(0, "Interpolating") {
		t.Fatal("label change should emit")
	}
	if sampler.ShouldLog(0, "Interpolating") {
		t.Fatal("repeat of same label and bucket should be suppressed")
	}
}

func TestProgressSamplerEmitsOnBucketBoundary(t *testing.T) {
	sampler := NewProgressSampler(5)
	if !sampler.ShouldLog(1, "Computing overlap") {
		t.Fatal("first event should emit")
	}
	if sampler.ShouldLog(4, "Computing overlap") {
		t.Fatal("same bucket should be suppressed")
	}
	if !sampler.ShouldLog(5, "Computing overlap") {
		t.Fatal("next bucket should emit")
	}
	if !sampler.ShouldLog(100, "Computing overlap") {
		t.Fatal("completion should emit")
	}
	if sampler.ShouldLog(100, "Computing overlap") {
		t.Fatal("repeated completion should be suppressed")
	}
}

func TestProgressSamplerReset(t *testing.T) {
	sampler := NewProgressSampler(5)
	sampler.ShouldLog(50, "Computing overlap")
	sampler.Reset()
	if !sampler.ShouldLog(50, "Computing overlap") {
		t.Fatal("reset should allow the same event to emit again")
	}
}

func TestProgressSamplerNilReceiver(t *testing.T) {
	var sampler *ProgressSampler
	if !sampler.ShouldLog(10, "anything") {
		t.Fatal("nil sampler should always emit")
	}
	sampler.Reset()
}
