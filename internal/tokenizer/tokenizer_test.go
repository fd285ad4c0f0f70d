package tokenizer

import "testing"

func TestNewCounterDefaultModel(t *testing.T) {
	counter, resolvedModel, counterError := NewCounter("")
	if counterError != nil {
		t.Fatalf("NewCounter error: %v", counterError)
	}
	if resolvedModel != defaultModel {
		t.Fatalf("expected resolved model %s, got %q", defaultModel, resolvedModel)
	}
	tokens, countError := counter.CountString("hello world")
	if countError != nil {
		t.Fatalf("CountString error: %v", countError)
	}
	if tokens <= 0 {
		t.Fatalf("expected positive token count, got %d", tokens)
	}
}

func TestNewCounterUnknownModelFallsBack(t *testing.T) {
	counter, resolvedModel, counterError := NewCounter("not-a-real-model")
	if counterError != nil {
		t.Fatalf("NewCounter error: %v", counterError)
	}
	if resolvedModel != defaultEncodingName {
		t.Fatalf("expected fallback encoding %s, got %q", defaultEncodingName, resolvedModel)
	}
	if counter.Name() != defaultEncodingName {
		t.Fatalf("expected counter named %s, got %q", defaultEncodingName, counter.Name())
	}
}
