package util

import "errors"

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrJobNotCompleted    = errors.New("job not completed yet")
	ErrEmptyTopic         = errors.New("topic is required")
	ErrSubtopicCount      = errors.New("subtopics must contain between 1 and 10 entries")
	ErrEmptySubtopic      = errors.New("subtopics must all be non-empty")
	ErrInvalidDifficulty  = errors.New("difficulty must be beginner, intermediate or advanced")
	ErrSubtopicNotFound   = errors.New("subtopic not found in course")
	ErrSearchUnavailable  = errors.New("search service unavailable for all queries")
	ErrNoSearchResults    = errors.New("no search results found")
	ErrGeneratorNoChoices = errors.New("AI returned no choices")
)
