package service

import (
	"reflect"
	"testing"
)

func TestTopicQueries(t *testing.T) {
	got := TopicQueries("machine learning")
	want := []string{
		"machine learning comprehensive guide",
		"machine learning explanation",
		"what is machine learning definition",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopicQueries = %v, want %v", got, want)
	}
}

func TestTopicQueriesDeterministic(t *testing.T) {
	a := TopicQueries("golang")
	b := TopicQueries("golang")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same topic produced different queries: %v vs %v", a, b)
	}
}

func TestSubtopicQueries(t *testing.T) {
	got := SubtopicQueries("machine learning", []string{"neural networks", "regression"})

	if len(got) != 2 {
		t.Fatalf("got %d subtopic entries, want 2", len(got))
	}

	want := []string{
		"machine learning neural networks explanation",
		"learn neural networks machine learning",
		"machine learning neural networks guide",
	}
	if !reflect.DeepEqual(got["neural networks"], want) {
		t.Errorf("queries for neural networks = %v, want %v", got["neural networks"], want)
	}

	if len(got["regression"]) != 3 {
		t.Errorf("got %d queries for regression, want 3", len(got["regression"]))
	}
}

func TestSubtopicQueriesEmpty(t *testing.T) {
	got := SubtopicQueries("topic", nil)
	if len(got) != 0 {
		t.Errorf("got %d entries for no subtopics, want 0", len(got))
	}
}
